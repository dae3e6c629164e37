package grpcsvc

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/rms/internal/domain"
	"github.com/vladislavdragonenkov/rms/internal/storage/memory"
	rmsv1 "github.com/vladislavdragonenkov/rms/proto/rms/v1"
)

type stubIdempotencyRepository struct {
	markDoneFn   func(string, []byte, int) error
	markFailedFn func(string, []byte, int) error
}

func (s *stubIdempotencyRepository) CreateProcessing(string, string, time.Time) (domain.IdempotencyRecord, error) {
	return domain.IdempotencyRecord{}, errors.New("not implemented")
}

func (s *stubIdempotencyRepository) Get(string) (domain.IdempotencyRecord, error) {
	return domain.IdempotencyRecord{}, errors.New("not implemented")
}

func (s *stubIdempotencyRepository) MarkDone(key string, body []byte, code int) error {
	if s.markDoneFn != nil {
		return s.markDoneFn(key, body, code)
	}
	return nil
}

func (s *stubIdempotencyRepository) MarkFailed(key string, body []byte, code int) error {
	if s.markFailedFn != nil {
		return s.markFailedFn(key, body, code)
	}
	return nil
}

func (s *stubIdempotencyRepository) DeleteExpired(time.Time, int) (int, error) {
	return 0, nil
}

func newInternalTestService(idem domain.IdempotencyRepository) (*DashboardService, *test.Hook) {
	logger, hook := test.NewNullLogger()
	return NewDashboardService(nil, idem, 0, log.NewEntry(logger)), hook
}

func mustStatusCode(t *testing.T, err error, expected codes.Code) {
	t.Helper()
	if status.Code(err) != expected {
		t.Fatalf("expected code %s, got %s (err=%v)", expected, status.Code(err), err)
	}
}

func TestNewDashboardService_Defaults(t *testing.T) {
	service := NewDashboardService(nil, nil, 0, nil)
	if service.logger == nil {
		t.Fatal("logger must be initialized when nil logger is provided")
	}
	if service.idemTTL != defaultIdempotencyTTL {
		t.Fatalf("expected default ttl %s, got %s", defaultIdempotencyTTL, service.idemTTL)
	}
}

func TestStatusError_Mapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
	}{
		{name: "validation", err: domain.NewValidationError([]error{domain.ErrNameRequired}), code: codes.InvalidArgument},
		{name: "transition", err: fmt.Errorf("%w: delivered -> pending", domain.ErrInvalidStatusTransition), code: codes.FailedPrecondition},
		{name: "version conflict", err: fmt.Errorf("%w: 3 attempts", domain.ErrOrderVersionConflict), code: codes.Aborted},
		{name: "not found", err: domain.ErrOrderNotFound, code: codes.NotFound},
		{name: "already exists", err: domain.ErrAlreadyExists, code: codes.AlreadyExists},
		{name: "canceled", err: context.Canceled, code: codes.Canceled},
		{name: "deadline", err: context.DeadlineExceeded, code: codes.DeadlineExceeded},
		{name: "internal", err: errors.New("disk on fire"), code: codes.Internal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			service, hook := newInternalTestService(nil)
			err := service.statusError(tc.err, "Op", log.Fields{"order_id": "order1"})
			mustStatusCode(t, err, tc.code)

			entry := hook.LastEntry()
			if entry == nil {
				t.Fatal("expected log entry")
			}
			if entry.Data["order_id"] != "order1" {
				t.Fatalf("expected order_id field, got %v", entry.Data)
			}
			wantLevel := log.WarnLevel
			if tc.code == codes.Internal {
				wantLevel = log.ErrorLevel
			}
			if entry.Level != wantLevel {
				t.Fatalf("expected level %s, got %s", wantLevel, entry.Level)
			}
		})
	}
}

func TestStatusError_HidesInternalDetails(t *testing.T) {
	service, _ := newInternalTestService(nil)
	err := service.statusError(errors.New("secret path /var/db"), "ListClients", nil)
	if got := status.Convert(err).Message(); got != "failed to ListClients" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestRememberFailure(t *testing.T) {
	var gotKey string
	var gotBody []byte
	var gotStatus int

	service, hook := newInternalTestService(&stubIdempotencyRepository{
		markFailedFn: func(key string, body []byte, statusCode int) error {
			gotKey = key
			gotBody = append([]byte(nil), body...)
			gotStatus = statusCode
			return nil
		},
	})

	service.rememberFailure("idem-1", status.Error(codes.FailedPrecondition, "failed before commit"))
	if gotKey != "idem-1" {
		t.Fatalf("expected key idem-1, got %s", gotKey)
	}
	if gotStatus != int(codes.FailedPrecondition) {
		t.Fatalf("expected code %d, got %d", int(codes.FailedPrecondition), gotStatus)
	}
	if string(gotBody) != "failed before commit" {
		t.Fatalf("unexpected body: %q", gotBody)
	}

	service.idemRepo = &stubIdempotencyRepository{
		markFailedFn: func(string, []byte, int) error { return errors.New("store failed") },
	}
	service.rememberFailure("idem-2", errors.New("plain"))
	if hook.LastEntry() == nil || hook.LastEntry().Level != log.WarnLevel {
		t.Fatal("expected warning when the failure cannot be stored")
	}
}

func TestReplayedFailure(t *testing.T) {
	err := replayedFailure(domain.IdempotencyRecord{
		ResponseBody: []byte("email is invalid"),
		StatusCode:   int(codes.InvalidArgument),
	})
	mustStatusCode(t, err, codes.InvalidArgument)
	if status.Convert(err).Message() != "email is invalid" {
		t.Fatalf("unexpected message: %s", status.Convert(err).Message())
	}

	err = replayedFailure(domain.IdempotencyRecord{StatusCode: int(codes.OK)})
	mustStatusCode(t, err, codes.Internal)
	if status.Convert(err).Message() == "" {
		t.Fatal("expected fallback message for empty body")
	}
}

func TestWithIdempotency_ProcessingKeyIsAborted(t *testing.T) {
	repo := memory.NewIdempotencyRepository()
	service, _ := newInternalTestService(repo)

	req := &rmsv1.AddMenuCategoryRequest{Name: "Drinks"}
	hash, err := buildIdempotencyRequestHash(rmsv1.FullMethod(rmsv1.MethodAddMenuCategory), req)
	if err != nil {
		t.Fatalf("build hash: %v", err)
	}
	if _, err := repo.CreateProcessing("busy", hash, time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("seed processing record: %v", err)
	}

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(idempotencyKeyHeader, "busy"))
	called := false
	_, err = withIdempotency(service, ctx, rmsv1.FullMethod(rmsv1.MethodAddMenuCategory), req,
		func(context.Context) (*rmsv1.AddMenuCategoryResponse, error) {
			called = true
			return &rmsv1.AddMenuCategoryResponse{}, nil
		})
	mustStatusCode(t, err, codes.Aborted)
	if called {
		t.Fatal("handler must not run while the key is processing")
	}
}

func TestWithIdempotency_StoresSuccess(t *testing.T) {
	repo := memory.NewIdempotencyRepository()
	service, _ := newInternalTestService(repo)

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(idempotencyKeyHeader, " key-1 "))
	resp, err := withIdempotency(service, ctx, "m", &rmsv1.AddMenuCategoryRequest{Name: "Drinks"},
		func(context.Context) (*rmsv1.AddMenuCategoryResponse, error) {
			return &rmsv1.AddMenuCategoryResponse{Category: &rmsv1.MenuCategory{ID: "cat9", Name: "Drinks"}}, nil
		})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Category.ID != "cat9" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	record, err := repo.Get("key-1")
	if err != nil {
		t.Fatalf("get record: %v", err)
	}
	if record.Status != domain.IdempotencyStatusDone {
		t.Fatalf("expected done record, got %s", record.Status)
	}
	if record.StatusCode != int(codes.OK) {
		t.Fatalf("expected OK code, got %d", record.StatusCode)
	}
}

func TestUtilityHelpers(t *testing.T) {
	method := rmsv1.FullMethod(rmsv1.MethodCreateClient)
	first, err := buildIdempotencyRequestHash(method, &rmsv1.CreateClientRequest{Name: "A"})
	if err != nil {
		t.Fatalf("build hash failed: %v", err)
	}
	second, err := buildIdempotencyRequestHash(method, &rmsv1.CreateClientRequest{Name: "B"})
	if err != nil {
		t.Fatalf("build hash failed: %v", err)
	}
	if first == "" || first == second {
		t.Fatalf("expected distinct non-empty hashes, got %q and %q", first, second)
	}

	if _, err := buildIdempotencyRequestHash(method, nil); err == nil {
		t.Fatal("expected error for nil request")
	}

	if _, ok := readIdempotencyKey(context.Background()); ok {
		t.Fatal("expected no key without metadata")
	}
	if _, ok := readIdempotencyKey(metadata.AppendToOutgoingContext(context.Background(), idempotencyKeyHeader, "out-1")); ok {
		t.Fatal("outgoing metadata must not carry a server-side key")
	}
	if _, ok := readIdempotencyKey(metadata.NewIncomingContext(context.Background(), metadata.Pairs(idempotencyKeyHeader, "  "))); ok {
		t.Fatal("blank key must be ignored")
	}
	if got := formatDate(time.Time{}); got != "" {
		t.Fatalf("zero date must format as empty string, got %q", got)
	}
}
