package integration

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/rms/internal/seed"
	"github.com/vladislavdragonenkov/rms/internal/service/dashboard"
	grpcsvc "github.com/vladislavdragonenkov/rms/internal/service/grpc"
	rmsv1 "github.com/vladislavdragonenkov/rms/proto/rms/v1"
)

// DashboardSessionTestSuite прогоняет сценарии одной сессии админки поверх засеянных данных.
type DashboardSessionTestSuite struct {
	suite.Suite
	service *grpcsvc.DashboardService
}

func (suite *DashboardSessionTestSuite) SetupTest() {
	baseLogger := log.New()
	baseLogger.SetLevel(log.WarnLevel) // Уменьшаем шум в тестах
	logger := baseLogger.WithField("component", "integration-test")

	dataset, err := seed.Load("", logger)
	require.NoError(suite.T(), err)
	store, err := dataset.NewStore()
	require.NoError(suite.T(), err)

	svc := dashboard.New(store, dashboard.WithLogger(logger))
	suite.service = grpcsvc.NewDashboardService(svc, store.Idempotency, 0, logger)
}

func (suite *DashboardSessionTestSuite) TestOrderLifecycleToDelivered() {
	ctx := context.Background()

	before, err := suite.service.GetDashboard(ctx, &rmsv1.GetDashboardRequest{})
	require.NoError(suite.T(), err)
	require.True(suite.T(), before.Summary.Revenue.Equal(decimal.RequireFromString("53.96")))

	for _, next := range []string{"preparing", "ready", "delivered"} {
		resp, err := suite.service.SetOrderStatus(ctx, &rmsv1.SetOrderStatusRequest{OrderID: "order1", Status: next})
		require.NoError(suite.T(), err)
		require.True(suite.T(), resp.Applied)
		require.NotNil(suite.T(), resp.Notification)
		require.Contains(suite.T(), resp.Notification.Message, next)
	}

	order, err := suite.service.GetOrder(ctx, &rmsv1.GetOrderRequest{OrderID: "order1"})
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), "delivered", order.Order.Status)
	require.Equal(suite.T(), int64(3), order.Order.Version)
	require.Empty(suite.T(), order.NextStatuses)
	require.Len(suite.T(), order.Notifications, 3)

	_, err = suite.service.SetOrderStatus(ctx, &rmsv1.SetOrderStatusRequest{OrderID: "order1", Status: "cancelled"})
	require.Equal(suite.T(), codes.FailedPrecondition, status.Code(err))

	after, err := suite.service.GetDashboard(ctx, &rmsv1.GetDashboardRequest{})
	require.NoError(suite.T(), err)
	require.True(suite.T(), after.Summary.Revenue.Equal(decimal.RequireFromString("97.92")),
		"revenue must include the delivered order, got %s", after.Summary.Revenue)
	require.Equal(suite.T(), int32(2), after.Summary.Orders.ByStatus["delivered"])
	require.Equal(suite.T(), int32(0), after.Summary.Orders.ByStatus["pending"])
}

func (suite *DashboardSessionTestSuite) TestCancelKeepsRevenue() {
	ctx := context.Background()

	resp, err := suite.service.SetOrderStatus(ctx, &rmsv1.SetOrderStatusRequest{OrderID: "order3", Status: "cancelled"})
	require.NoError(suite.T(), err)
	require.True(suite.T(), resp.Applied)

	orders, err := suite.service.ListOrders(ctx, &rmsv1.ListOrdersRequest{Status: "cancelled"})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), orders.Orders, 2)

	summary, err := suite.service.GetDashboard(ctx, &rmsv1.GetDashboardRequest{})
	require.NoError(suite.T(), err)
	require.True(suite.T(), summary.Summary.Revenue.Equal(decimal.RequireFromString("53.96")))
}

func (suite *DashboardSessionTestSuite) TestConcurrentStatusChangesApplyOnce() {
	const workers = 8

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		applied  int
		rejected int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := suite.service.SetOrderStatus(context.Background(), &rmsv1.SetOrderStatusRequest{OrderID: "order1", Status: "preparing"})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil && resp.Applied:
				applied++
			case status.Code(err) == codes.FailedPrecondition:
				rejected++
			}
		}()
	}
	wg.Wait()

	require.Equal(suite.T(), 1, applied)
	require.Equal(suite.T(), workers-1, rejected)

	order, err := suite.service.GetOrder(context.Background(), &rmsv1.GetOrderRequest{OrderID: "order1"})
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), int64(1), order.Order.Version)
}

func (suite *DashboardSessionTestSuite) TestClientAndUserManagement() {
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("idempotency-key", "integration-client-1"))
	req := &rmsv1.CreateClientRequest{Name: "Ana Lima", Email: "ana@example.com", Phone: "+1 (555) 000-1111"}

	created, err := suite.service.CreateClient(ctx, req)
	require.NoError(suite.T(), err)
	replayed, err := suite.service.CreateClient(ctx, req)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), created.Client.ID, replayed.Client.ID)

	clients, err := suite.service.ListClients(context.Background(), &rmsv1.ListClientsRequest{})
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), int32(5), clients.Stats.Count)

	deleted, err := suite.service.DeleteClient(context.Background(), &rmsv1.DeleteClientRequest{ClientID: created.Client.ID})
	require.NoError(suite.T(), err)
	require.True(suite.T(), deleted.Applied)

	users, err := suite.service.DeleteUser(context.Background(), &rmsv1.DeleteUserRequest{UserID: "user4"})
	require.NoError(suite.T(), err)
	require.True(suite.T(), users.Applied)

	remaining, err := suite.service.ListUsers(context.Background(), &rmsv1.ListUsersRequest{})
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), int32(3), remaining.Stats.Total)
	require.Equal(suite.T(), int32(0), remaining.Stats.ByStatus["Inactive"])

	notifications, err := suite.service.ListNotifications(context.Background(), &rmsv1.ListNotificationsRequest{})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), notifications.Notifications, 3)
}

func TestDashboardSessionSuite(t *testing.T) {
	suite.Run(t, new(DashboardSessionTestSuite))
}
