package grpcsvc

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/rms/internal/domain"
)

// statusError переводит доменную ошибку в gRPC-статус и пишет её в лог.
// Ошибки клиента логируются как Warn, всё остальное как Error и скрывается за Internal.
func (s *DashboardService) statusError(err error, operation string, fields log.Fields) error {
	code, message := classify(err)

	entry := s.logger.WithError(err).WithField("operation", operation)
	if len(fields) > 0 {
		entry = entry.WithFields(fields)
	}
	if code == codes.Internal {
		entry.Error("dashboard operation failed")
		return status.Errorf(code, "failed to %s", operation)
	}
	entry.WithField("code", code.String()).Warn("dashboard operation rejected")
	return status.Error(code, message)
}

func classify(err error) (codes.Code, string) {
	switch {
	case domain.IsValidation(err):
		return codes.InvalidArgument, err.Error()
	case errors.Is(err, domain.ErrInvalidStatusTransition):
		return codes.FailedPrecondition, err.Error()
	case domain.IsVersionConflict(err):
		return codes.Aborted, err.Error()
	case domain.IsNotFound(err):
		return codes.NotFound, err.Error()
	case errors.Is(err, domain.ErrAlreadyExists):
		return codes.AlreadyExists, err.Error()
	case errors.Is(err, context.Canceled):
		return codes.Canceled, err.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded, err.Error()
	default:
		return codes.Internal, ""
	}
}
