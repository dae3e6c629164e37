package grpcsvc

import (
	"context"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/rms/internal/domain"
	"github.com/vladislavdragonenkov/rms/internal/service/dashboard"
	rmsv1 "github.com/vladislavdragonenkov/rms/proto/rms/v1"
)

// DashboardService реализует gRPC API поверх сервиса админки.
type DashboardService struct {
	rmsv1.UnimplementedDashboardServiceServer

	dashboard *dashboard.Service
	idemRepo  domain.IdempotencyRepository
	idemTTL   time.Duration
	logger    *log.Entry
}

const defaultIdempotencyTTL = 24 * time.Hour

// NewDashboardService конструирует адаптер. idemRepo может быть nil: тогда ключи идемпотентности игнорируются.
func NewDashboardService(
	svc *dashboard.Service,
	idemRepo domain.IdempotencyRepository,
	idemTTL time.Duration,
	logger *log.Entry,
) *DashboardService {
	if logger == nil {
		logger = log.New().WithField("component", "dashboard-grpc")
	}
	if idemTTL <= 0 {
		idemTTL = defaultIdempotencyTTL
	}
	return &DashboardService{
		dashboard: svc,
		idemRepo:  idemRepo,
		idemTTL:   idemTTL,
		logger:    logger,
	}
}

// ListClients возвращает клиентов по запросу и сводку по всем клиентам.
func (s *DashboardService) ListClients(_ context.Context, req *rmsv1.ListClientsRequest) (*rmsv1.ListClientsResponse, error) {
	if req == nil {
		req = &rmsv1.ListClientsRequest{}
	}

	clients, stats, err := s.dashboard.ListClients(req.Query)
	if err != nil {
		return nil, s.statusError(err, "ListClients", nil)
	}

	resp := &rmsv1.ListClientsResponse{
		Clients: make([]*rmsv1.Client, 0, len(clients)),
		Stats:   toWireClientStats(stats),
	}
	for _, client := range clients {
		resp.Clients = append(resp.Clients, toWireClient(client))
	}
	return resp, nil
}

// CreateClient добавляет клиента. Повтор с тем же idempotency-key возвращает сохранённый ответ.
func (s *DashboardService) CreateClient(ctx context.Context, req *rmsv1.CreateClientRequest) (*rmsv1.CreateClientResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	return withIdempotency(s, ctx, rmsv1.FullMethod(rmsv1.MethodCreateClient), req,
		func(context.Context) (*rmsv1.CreateClientResponse, error) {
			client, notification, err := s.dashboard.CreateClient(domain.CreateClientRequest{
				Name:    req.Name,
				Email:   req.Email,
				Phone:   req.Phone,
				Address: req.Address,
			})
			if err != nil {
				return nil, s.statusError(err, "CreateClient", log.Fields{"email": req.Email})
			}
			return &rmsv1.CreateClientResponse{
				Client:       toWireClient(client),
				Notification: toWireNotification(notification),
			}, nil
		},
	)
}

// DeleteClient удаляет клиента; неизвестный ID возвращает applied=false.
func (s *DashboardService) DeleteClient(_ context.Context, req *rmsv1.DeleteClientRequest) (*rmsv1.MutationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	outcome, err := s.dashboard.DeleteClient(req.ClientID)
	if err != nil {
		return nil, s.statusError(err, "DeleteClient", log.Fields{"client_id": req.ClientID})
	}
	return toWireOutcome(outcome), nil
}

// ListOrders фильтрует заказы по тексту и статусу.
func (s *DashboardService) ListOrders(_ context.Context, req *rmsv1.ListOrdersRequest) (*rmsv1.ListOrdersResponse, error) {
	if req == nil {
		req = &rmsv1.ListOrdersRequest{}
	}

	var filter domain.OrderStatus
	if strings.TrimSpace(req.Status) != "" {
		parsed, err := domain.ParseOrderStatus(req.Status)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		filter = parsed
	}

	orders, stats, err := s.dashboard.ListOrders(req.Query, filter)
	if err != nil {
		return nil, s.statusError(err, "ListOrders", nil)
	}

	resp := &rmsv1.ListOrdersResponse{
		Orders: make([]*rmsv1.Order, 0, len(orders)),
		Stats:  toWireOrderStats(stats),
	}
	for _, order := range orders {
		resp.Orders = append(resp.Orders, toWireOrder(order))
	}
	return resp, nil
}

// GetOrder возвращает заказ, допустимые следующие статусы и историю уведомлений.
func (s *DashboardService) GetOrder(_ context.Context, req *rmsv1.GetOrderRequest) (*rmsv1.GetOrderResponse, error) {
	if req == nil || strings.TrimSpace(req.OrderID) == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}

	order, notifications, err := s.dashboard.GetOrder(req.OrderID)
	if err != nil {
		return nil, s.statusError(err, "GetOrder", log.Fields{"order_id": req.OrderID})
	}

	next := order.Status.NextStatuses()
	resp := &rmsv1.GetOrderResponse{
		Order:         toWireOrder(order),
		NextStatuses:  make([]string, 0, len(next)),
		Notifications: toWireNotifications(notifications),
	}
	for _, candidate := range next {
		resp.NextStatuses = append(resp.NextStatuses, string(candidate))
	}
	return resp, nil
}

// SetOrderStatus переводит заказ в новый статус.
func (s *DashboardService) SetOrderStatus(ctx context.Context, req *rmsv1.SetOrderStatusRequest) (*rmsv1.MutationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	next, err := domain.ParseOrderStatus(req.Status)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	outcome, err := s.dashboard.SetOrderStatus(ctx, req.OrderID, next)
	if err != nil {
		return nil, s.statusError(err, "SetOrderStatus", log.Fields{
			"order_id": req.OrderID,
			"status":   next,
		})
	}
	return toWireOutcome(outcome), nil
}

// ListMenu возвращает меню, отфильтрованное по запросу.
func (s *DashboardService) ListMenu(_ context.Context, req *rmsv1.ListMenuRequest) (*rmsv1.ListMenuResponse, error) {
	if req == nil {
		req = &rmsv1.ListMenuRequest{}
	}

	categories, stats, err := s.dashboard.ListMenu(req.Query)
	if err != nil {
		return nil, s.statusError(err, "ListMenu", nil)
	}

	resp := &rmsv1.ListMenuResponse{
		Categories: make([]*rmsv1.MenuCategory, 0, len(categories)),
		Stats:      &rmsv1.MenuStats{Categories: int32(stats.Categories), Items: int32(stats.Items)}, //nolint:gosec // menu size fits int32.
	}
	for _, category := range categories {
		resp.Categories = append(resp.Categories, toWireCategory(category))
	}
	return resp, nil
}

// AddMenuCategory добавляет пустую категорию.
func (s *DashboardService) AddMenuCategory(ctx context.Context, req *rmsv1.AddMenuCategoryRequest) (*rmsv1.AddMenuCategoryResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	return withIdempotency(s, ctx, rmsv1.FullMethod(rmsv1.MethodAddMenuCategory), req,
		func(context.Context) (*rmsv1.AddMenuCategoryResponse, error) {
			category, notification, err := s.dashboard.AddMenuCategory(req.Name)
			if err != nil {
				return nil, s.statusError(err, "AddMenuCategory", log.Fields{"name": req.Name})
			}
			return &rmsv1.AddMenuCategoryResponse{
				Category:     toWireCategory(category),
				Notification: toWireNotification(notification),
			}, nil
		},
	)
}

// AddMenuItem добавляет позицию в конец категории.
func (s *DashboardService) AddMenuItem(ctx context.Context, req *rmsv1.AddMenuItemRequest) (*rmsv1.AddMenuItemResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	return withIdempotency(s, ctx, rmsv1.FullMethod(rmsv1.MethodAddMenuItem), req,
		func(context.Context) (*rmsv1.AddMenuItemResponse, error) {
			item, notification, err := s.dashboard.AddMenuItem(domain.NewMenuItemRequest{
				Name:        req.Name,
				Description: req.Description,
				Price:       req.Price,
				CategoryID:  req.CategoryID,
			})
			if err != nil {
				return nil, s.statusError(err, "AddMenuItem", log.Fields{"category_id": req.CategoryID})
			}
			return &rmsv1.AddMenuItemResponse{
				Item:         toWireMenuItem(item),
				Notification: toWireNotification(notification),
			}, nil
		},
	)
}

// UpdateMenuItem заменяет позицию меню целиком.
func (s *DashboardService) UpdateMenuItem(_ context.Context, req *rmsv1.UpdateMenuItemRequest) (*rmsv1.MutationResponse, error) {
	if req == nil || req.Item == nil {
		return nil, status.Error(codes.InvalidArgument, "item is required")
	}

	outcome, err := s.dashboard.UpdateMenuItem(fromWireMenuItem(req.Item))
	if err != nil {
		return nil, s.statusError(err, "UpdateMenuItem", log.Fields{"item_id": req.Item.ID})
	}
	return toWireOutcome(outcome), nil
}

// DeleteMenuItem удаляет позицию меню.
func (s *DashboardService) DeleteMenuItem(_ context.Context, req *rmsv1.DeleteMenuItemRequest) (*rmsv1.MutationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	outcome, err := s.dashboard.DeleteMenuItem(req.ItemID, req.CategoryID)
	if err != nil {
		return nil, s.statusError(err, "DeleteMenuItem", log.Fields{"item_id": req.ItemID})
	}
	return toWireOutcome(outcome), nil
}

// ListUsers возвращает сотрудников по запросу.
func (s *DashboardService) ListUsers(_ context.Context, req *rmsv1.ListUsersRequest) (*rmsv1.ListUsersResponse, error) {
	if req == nil {
		req = &rmsv1.ListUsersRequest{}
	}

	users, stats, err := s.dashboard.ListUsers(req.Query)
	if err != nil {
		return nil, s.statusError(err, "ListUsers", nil)
	}

	resp := &rmsv1.ListUsersResponse{
		Users: make([]*rmsv1.User, 0, len(users)),
		Stats: toWireUserStats(stats),
	}
	for _, user := range users {
		resp.Users = append(resp.Users, toWireUser(user))
	}
	return resp, nil
}

// DeleteUser удаляет сотрудника.
func (s *DashboardService) DeleteUser(_ context.Context, req *rmsv1.DeleteUserRequest) (*rmsv1.MutationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	outcome, err := s.dashboard.DeleteUser(req.UserID)
	if err != nil {
		return nil, s.statusError(err, "DeleteUser", log.Fields{"user_id": req.UserID})
	}
	return toWireOutcome(outcome), nil
}

// GetDashboard возвращает данные главной страницы.
func (s *DashboardService) GetDashboard(context.Context, *rmsv1.GetDashboardRequest) (*rmsv1.GetDashboardResponse, error) {
	summary, err := s.dashboard.Dashboard()
	if err != nil {
		return nil, s.statusError(err, "GetDashboard", nil)
	}
	return &rmsv1.GetDashboardResponse{Summary: toWireSummary(summary)}, nil
}

func (s *DashboardService) GetRestaurantProfile(context.Context, *rmsv1.GetRestaurantProfileRequest) (*rmsv1.GetRestaurantProfileResponse, error) {
	profile, err := s.dashboard.GetRestaurantProfile()
	if err != nil {
		return nil, s.statusError(err, "GetRestaurantProfile", nil)
	}
	return &rmsv1.GetRestaurantProfileResponse{Profile: toWireProfile(profile)}, nil
}

func (s *DashboardService) UpdateRestaurantProfile(_ context.Context, req *rmsv1.UpdateRestaurantProfileRequest) (*rmsv1.UpdateResponse, error) {
	if req == nil || req.Profile == nil {
		return nil, status.Error(codes.InvalidArgument, "profile is required")
	}

	notification, err := s.dashboard.UpdateRestaurantProfile(fromWireProfile(req.Profile))
	if err != nil {
		return nil, s.statusError(err, "UpdateRestaurantProfile", nil)
	}
	return &rmsv1.UpdateResponse{Notification: toWireNotification(notification)}, nil
}

func (s *DashboardService) GetSettings(context.Context, *rmsv1.GetSettingsRequest) (*rmsv1.GetSettingsResponse, error) {
	settings, err := s.dashboard.GetSettings()
	if err != nil {
		return nil, s.statusError(err, "GetSettings", nil)
	}
	return &rmsv1.GetSettingsResponse{Settings: toWireSettings(settings)}, nil
}

func (s *DashboardService) UpdateSettings(_ context.Context, req *rmsv1.UpdateSettingsRequest) (*rmsv1.UpdateResponse, error) {
	if req == nil || req.Settings == nil {
		return nil, status.Error(codes.InvalidArgument, "settings are required")
	}

	notification, err := s.dashboard.UpdateSettings(fromWireSettings(req.Settings))
	if err != nil {
		return nil, s.statusError(err, "UpdateSettings", nil)
	}
	return &rmsv1.UpdateResponse{Notification: toWireNotification(notification)}, nil
}

func (s *DashboardService) GetAccount(context.Context, *rmsv1.GetAccountRequest) (*rmsv1.GetAccountResponse, error) {
	account, err := s.dashboard.GetAccount()
	if err != nil {
		return nil, s.statusError(err, "GetAccount", nil)
	}
	return &rmsv1.GetAccountResponse{Account: toWireAccount(account)}, nil
}

// UpdateAccount сохраняет учётную запись оператора; роль остаётся прежней.
func (s *DashboardService) UpdateAccount(_ context.Context, req *rmsv1.UpdateAccountRequest) (*rmsv1.UpdateResponse, error) {
	if req == nil || req.Account == nil {
		return nil, status.Error(codes.InvalidArgument, "account is required")
	}

	notification, err := s.dashboard.UpdateAccount(fromWireAccount(req.Account))
	if err != nil {
		return nil, s.statusError(err, "UpdateAccount", log.Fields{"email": req.Account.Email})
	}
	return &rmsv1.UpdateResponse{Notification: toWireNotification(notification)}, nil
}

// ListNotifications возвращает последние уведомления сессии; limit <= 0 возвращает все.
func (s *DashboardService) ListNotifications(_ context.Context, req *rmsv1.ListNotificationsRequest) (*rmsv1.ListNotificationsResponse, error) {
	var limit int
	if req != nil {
		limit = int(req.Limit)
	}

	notifications, err := s.dashboard.Notifications(limit)
	if err != nil {
		return nil, s.statusError(err, "ListNotifications", nil)
	}
	return &rmsv1.ListNotificationsResponse{Notifications: toWireNotifications(notifications)}, nil
}
