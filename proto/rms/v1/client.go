package rmsv1

import (
	"context"

	"google.golang.org/grpc"
)

// DashboardServiceClient — клиент API админки.
type DashboardServiceClient interface {
	ListClients(ctx context.Context, in *ListClientsRequest, opts ...grpc.CallOption) (*ListClientsResponse, error)
	CreateClient(ctx context.Context, in *CreateClientRequest, opts ...grpc.CallOption) (*CreateClientResponse, error)
	DeleteClient(ctx context.Context, in *DeleteClientRequest, opts ...grpc.CallOption) (*MutationResponse, error)
	ListOrders(ctx context.Context, in *ListOrdersRequest, opts ...grpc.CallOption) (*ListOrdersResponse, error)
	GetOrder(ctx context.Context, in *GetOrderRequest, opts ...grpc.CallOption) (*GetOrderResponse, error)
	SetOrderStatus(ctx context.Context, in *SetOrderStatusRequest, opts ...grpc.CallOption) (*MutationResponse, error)
	ListMenu(ctx context.Context, in *ListMenuRequest, opts ...grpc.CallOption) (*ListMenuResponse, error)
	AddMenuCategory(ctx context.Context, in *AddMenuCategoryRequest, opts ...grpc.CallOption) (*AddMenuCategoryResponse, error)
	AddMenuItem(ctx context.Context, in *AddMenuItemRequest, opts ...grpc.CallOption) (*AddMenuItemResponse, error)
	UpdateMenuItem(ctx context.Context, in *UpdateMenuItemRequest, opts ...grpc.CallOption) (*MutationResponse, error)
	DeleteMenuItem(ctx context.Context, in *DeleteMenuItemRequest, opts ...grpc.CallOption) (*MutationResponse, error)
	ListUsers(ctx context.Context, in *ListUsersRequest, opts ...grpc.CallOption) (*ListUsersResponse, error)
	DeleteUser(ctx context.Context, in *DeleteUserRequest, opts ...grpc.CallOption) (*MutationResponse, error)
	GetDashboard(ctx context.Context, in *GetDashboardRequest, opts ...grpc.CallOption) (*GetDashboardResponse, error)
	GetRestaurantProfile(ctx context.Context, in *GetRestaurantProfileRequest, opts ...grpc.CallOption) (*GetRestaurantProfileResponse, error)
	UpdateRestaurantProfile(ctx context.Context, in *UpdateRestaurantProfileRequest, opts ...grpc.CallOption) (*UpdateResponse, error)
	GetSettings(ctx context.Context, in *GetSettingsRequest, opts ...grpc.CallOption) (*GetSettingsResponse, error)
	UpdateSettings(ctx context.Context, in *UpdateSettingsRequest, opts ...grpc.CallOption) (*UpdateResponse, error)
	GetAccount(ctx context.Context, in *GetAccountRequest, opts ...grpc.CallOption) (*GetAccountResponse, error)
	UpdateAccount(ctx context.Context, in *UpdateAccountRequest, opts ...grpc.CallOption) (*UpdateResponse, error)
	ListNotifications(ctx context.Context, in *ListNotificationsRequest, opts ...grpc.CallOption) (*ListNotificationsResponse, error)
}

type dashboardServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewDashboardServiceClient создаёт клиента поверх соединения. Все вызовы идут с JSON-кодеком.
func NewDashboardServiceClient(cc grpc.ClientConnInterface) DashboardServiceClient {
	return &dashboardServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	callOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, FullMethod(method), in, out, callOpts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dashboardServiceClient) ListClients(ctx context.Context, in *ListClientsRequest, opts ...grpc.CallOption) (*ListClientsResponse, error) {
	return invoke[ListClientsResponse](ctx, c.cc, MethodListClients, in, opts)
}

func (c *dashboardServiceClient) CreateClient(ctx context.Context, in *CreateClientRequest, opts ...grpc.CallOption) (*CreateClientResponse, error) {
	return invoke[CreateClientResponse](ctx, c.cc, MethodCreateClient, in, opts)
}

func (c *dashboardServiceClient) DeleteClient(ctx context.Context, in *DeleteClientRequest, opts ...grpc.CallOption) (*MutationResponse, error) {
	return invoke[MutationResponse](ctx, c.cc, MethodDeleteClient, in, opts)
}

func (c *dashboardServiceClient) ListOrders(ctx context.Context, in *ListOrdersRequest, opts ...grpc.CallOption) (*ListOrdersResponse, error) {
	return invoke[ListOrdersResponse](ctx, c.cc, MethodListOrders, in, opts)
}

func (c *dashboardServiceClient) GetOrder(ctx context.Context, in *GetOrderRequest, opts ...grpc.CallOption) (*GetOrderResponse, error) {
	return invoke[GetOrderResponse](ctx, c.cc, MethodGetOrder, in, opts)
}

func (c *dashboardServiceClient) SetOrderStatus(ctx context.Context, in *SetOrderStatusRequest, opts ...grpc.CallOption) (*MutationResponse, error) {
	return invoke[MutationResponse](ctx, c.cc, MethodSetOrderStatus, in, opts)
}

func (c *dashboardServiceClient) ListMenu(ctx context.Context, in *ListMenuRequest, opts ...grpc.CallOption) (*ListMenuResponse, error) {
	return invoke[ListMenuResponse](ctx, c.cc, MethodListMenu, in, opts)
}

func (c *dashboardServiceClient) AddMenuCategory(ctx context.Context, in *AddMenuCategoryRequest, opts ...grpc.CallOption) (*AddMenuCategoryResponse, error) {
	return invoke[AddMenuCategoryResponse](ctx, c.cc, MethodAddMenuCategory, in, opts)
}

func (c *dashboardServiceClient) AddMenuItem(ctx context.Context, in *AddMenuItemRequest, opts ...grpc.CallOption) (*AddMenuItemResponse, error) {
	return invoke[AddMenuItemResponse](ctx, c.cc, MethodAddMenuItem, in, opts)
}

func (c *dashboardServiceClient) UpdateMenuItem(ctx context.Context, in *UpdateMenuItemRequest, opts ...grpc.CallOption) (*MutationResponse, error) {
	return invoke[MutationResponse](ctx, c.cc, MethodUpdateMenuItem, in, opts)
}

func (c *dashboardServiceClient) DeleteMenuItem(ctx context.Context, in *DeleteMenuItemRequest, opts ...grpc.CallOption) (*MutationResponse, error) {
	return invoke[MutationResponse](ctx, c.cc, MethodDeleteMenuItem, in, opts)
}

func (c *dashboardServiceClient) ListUsers(ctx context.Context, in *ListUsersRequest, opts ...grpc.CallOption) (*ListUsersResponse, error) {
	return invoke[ListUsersResponse](ctx, c.cc, MethodListUsers, in, opts)
}

func (c *dashboardServiceClient) DeleteUser(ctx context.Context, in *DeleteUserRequest, opts ...grpc.CallOption) (*MutationResponse, error) {
	return invoke[MutationResponse](ctx, c.cc, MethodDeleteUser, in, opts)
}

func (c *dashboardServiceClient) GetDashboard(ctx context.Context, in *GetDashboardRequest, opts ...grpc.CallOption) (*GetDashboardResponse, error) {
	return invoke[GetDashboardResponse](ctx, c.cc, MethodGetDashboard, in, opts)
}

func (c *dashboardServiceClient) GetRestaurantProfile(ctx context.Context, in *GetRestaurantProfileRequest, opts ...grpc.CallOption) (*GetRestaurantProfileResponse, error) {
	return invoke[GetRestaurantProfileResponse](ctx, c.cc, MethodGetRestaurantProfile, in, opts)
}

func (c *dashboardServiceClient) UpdateRestaurantProfile(ctx context.Context, in *UpdateRestaurantProfileRequest, opts ...grpc.CallOption) (*UpdateResponse, error) {
	return invoke[UpdateResponse](ctx, c.cc, MethodUpdateRestaurantProfile, in, opts)
}

func (c *dashboardServiceClient) GetSettings(ctx context.Context, in *GetSettingsRequest, opts ...grpc.CallOption) (*GetSettingsResponse, error) {
	return invoke[GetSettingsResponse](ctx, c.cc, MethodGetSettings, in, opts)
}

func (c *dashboardServiceClient) UpdateSettings(ctx context.Context, in *UpdateSettingsRequest, opts ...grpc.CallOption) (*UpdateResponse, error) {
	return invoke[UpdateResponse](ctx, c.cc, MethodUpdateSettings, in, opts)
}

func (c *dashboardServiceClient) GetAccount(ctx context.Context, in *GetAccountRequest, opts ...grpc.CallOption) (*GetAccountResponse, error) {
	return invoke[GetAccountResponse](ctx, c.cc, MethodGetAccount, in, opts)
}

func (c *dashboardServiceClient) UpdateAccount(ctx context.Context, in *UpdateAccountRequest, opts ...grpc.CallOption) (*UpdateResponse, error) {
	return invoke[UpdateResponse](ctx, c.cc, MethodUpdateAccount, in, opts)
}

func (c *dashboardServiceClient) ListNotifications(ctx context.Context, in *ListNotificationsRequest, opts ...grpc.CallOption) (*ListNotificationsResponse, error) {
	return invoke[ListNotificationsResponse](ctx, c.cc, MethodListNotifications, in, opts)
}
