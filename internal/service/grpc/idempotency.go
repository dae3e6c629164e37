package grpcsvc

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/rms/internal/domain"
)

const idempotencyKeyHeader = "idempotency-key"

// withIdempotency выполняет create-операцию не более одного раза на ключ.
// Без метаданных idempotency-key запрос выполняется как обычно.
func withIdempotency[T any](
	s *DashboardService,
	ctx context.Context,
	method string,
	req any,
	handler func(context.Context) (*T, error),
) (*T, error) {
	key, ok := readIdempotencyKey(ctx)
	if s.idemRepo == nil || !ok {
		return handler(ctx)
	}

	reqHash, err := buildIdempotencyRequestHash(method, req)
	if err != nil {
		s.logger.WithError(err).WithField("method", method).Warn("failed to hash request for idempotency")
		return nil, status.Error(codes.Internal, "failed to initialize idempotency request")
	}

	record, err := s.idemRepo.CreateProcessing(key, reqHash, time.Now().UTC().Add(s.idemTTL))
	if err != nil {
		return replayIdempotency[T](s, err, record)
	}

	resp, runErr := handler(ctx)
	if runErr != nil {
		s.rememberFailure(key, runErr)
		return nil, runErr
	}
	s.rememberSuccess(key, resp)
	return resp, nil
}

func replayIdempotency[T any](s *DashboardService, createErr error, record domain.IdempotencyRecord) (*T, error) {
	if errors.Is(createErr, domain.ErrIdempotencyHashMismatch) {
		return nil, status.Error(codes.AlreadyExists, "idempotency key is already used with different request payload")
	}
	if !errors.Is(createErr, domain.ErrIdempotencyKeyAlreadyExists) {
		s.logger.WithError(createErr).Warn("failed to create idempotency record")
		return nil, status.Error(codes.Internal, "failed to initialize idempotency request")
	}

	switch record.Status {
	case domain.IdempotencyStatusProcessing:
		return nil, status.Error(codes.Aborted, "request with the same idempotency key is already processing")
	case domain.IdempotencyStatusFailed:
		return nil, replayedFailure(record)
	case domain.IdempotencyStatusDone:
		resp := new(T)
		if err := json.Unmarshal(record.ResponseBody, resp); err != nil {
			s.logger.WithError(err).WithField("idempotency_key", record.Key).Warn("failed to decode cached response")
			return nil, status.Error(codes.Internal, "failed to decode cached idempotency response")
		}
		s.logger.WithField("idempotency_key", record.Key).Debug("replayed idempotent response")
		return resp, nil
	default:
		return nil, status.Error(codes.Internal, "unknown idempotency record status")
	}
}

// rememberSuccess сохраняет ответ в JSON; ошибка сохранения только логируется.
func (s *DashboardService) rememberSuccess(key string, resp any) {
	data, err := json.Marshal(resp)
	if err == nil {
		err = s.idemRepo.MarkDone(key, data, int(codes.OK))
	}
	if err != nil {
		s.logger.WithError(err).WithField("idempotency_key", key).Warn("failed to store idempotent response")
	}
}

// rememberFailure сохраняет gRPC-код в StatusCode и текст ошибки в ResponseBody.
func (s *DashboardService) rememberFailure(key string, runErr error) {
	st := status.Convert(runErr)
	code := st.Code()
	if code == codes.OK {
		code = codes.Internal
	}
	if err := s.idemRepo.MarkFailed(key, []byte(st.Message()), int(code)); err != nil {
		s.logger.WithError(err).WithField("idempotency_key", key).Warn("failed to store idempotent failure")
	}
}

func replayedFailure(record domain.IdempotencyRecord) error {
	code := codes.Code(uint32(record.StatusCode)) //nolint:gosec // written by rememberFailure.
	if code == codes.OK {
		code = codes.Internal
	}
	message := string(record.ResponseBody)
	if message == "" {
		message = "previous request with the same idempotency key failed"
	}
	return status.Error(code, message)
}

func readIdempotencyKey(ctx context.Context) (string, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", false
	}
	values := md.Get(idempotencyKeyHeader)
	if len(values) == 0 {
		return "", false
	}
	key := strings.TrimSpace(values[0])
	return key, key != ""
}

func buildIdempotencyRequestHash(method string, req any) (string, error) {
	if req == nil {
		return "", fmt.Errorf("request is nil")
	}

	data, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(append([]byte(method+":"), data...))
	return hex.EncodeToString(sum[:]), nil
}
