package rmsv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName — полное имя сервиса в gRPC.
const ServiceName = "rms.v1.DashboardService"

// Имена методов DashboardService.
const (
	MethodListClients             = "ListClients"
	MethodCreateClient            = "CreateClient"
	MethodDeleteClient            = "DeleteClient"
	MethodListOrders              = "ListOrders"
	MethodGetOrder                = "GetOrder"
	MethodSetOrderStatus          = "SetOrderStatus"
	MethodListMenu                = "ListMenu"
	MethodAddMenuCategory         = "AddMenuCategory"
	MethodAddMenuItem             = "AddMenuItem"
	MethodUpdateMenuItem          = "UpdateMenuItem"
	MethodDeleteMenuItem          = "DeleteMenuItem"
	MethodListUsers               = "ListUsers"
	MethodDeleteUser              = "DeleteUser"
	MethodGetDashboard            = "GetDashboard"
	MethodGetRestaurantProfile    = "GetRestaurantProfile"
	MethodUpdateRestaurantProfile = "UpdateRestaurantProfile"
	MethodGetSettings             = "GetSettings"
	MethodUpdateSettings          = "UpdateSettings"
	MethodGetAccount              = "GetAccount"
	MethodUpdateAccount           = "UpdateAccount"
	MethodListNotifications       = "ListNotifications"
)

// FullMethod возвращает путь метода вида /rms.v1.DashboardService/Method.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// DashboardServiceServer — серверная часть API админки.
type DashboardServiceServer interface {
	ListClients(context.Context, *ListClientsRequest) (*ListClientsResponse, error)
	CreateClient(context.Context, *CreateClientRequest) (*CreateClientResponse, error)
	DeleteClient(context.Context, *DeleteClientRequest) (*MutationResponse, error)
	ListOrders(context.Context, *ListOrdersRequest) (*ListOrdersResponse, error)
	GetOrder(context.Context, *GetOrderRequest) (*GetOrderResponse, error)
	SetOrderStatus(context.Context, *SetOrderStatusRequest) (*MutationResponse, error)
	ListMenu(context.Context, *ListMenuRequest) (*ListMenuResponse, error)
	AddMenuCategory(context.Context, *AddMenuCategoryRequest) (*AddMenuCategoryResponse, error)
	AddMenuItem(context.Context, *AddMenuItemRequest) (*AddMenuItemResponse, error)
	UpdateMenuItem(context.Context, *UpdateMenuItemRequest) (*MutationResponse, error)
	DeleteMenuItem(context.Context, *DeleteMenuItemRequest) (*MutationResponse, error)
	ListUsers(context.Context, *ListUsersRequest) (*ListUsersResponse, error)
	DeleteUser(context.Context, *DeleteUserRequest) (*MutationResponse, error)
	GetDashboard(context.Context, *GetDashboardRequest) (*GetDashboardResponse, error)
	GetRestaurantProfile(context.Context, *GetRestaurantProfileRequest) (*GetRestaurantProfileResponse, error)
	UpdateRestaurantProfile(context.Context, *UpdateRestaurantProfileRequest) (*UpdateResponse, error)
	GetSettings(context.Context, *GetSettingsRequest) (*GetSettingsResponse, error)
	UpdateSettings(context.Context, *UpdateSettingsRequest) (*UpdateResponse, error)
	GetAccount(context.Context, *GetAccountRequest) (*GetAccountResponse, error)
	UpdateAccount(context.Context, *UpdateAccountRequest) (*UpdateResponse, error)
	ListNotifications(context.Context, *ListNotificationsRequest) (*ListNotificationsResponse, error)
	mustEmbedUnimplementedDashboardServiceServer()
}

// UnimplementedDashboardServiceServer отвечает Unimplemented на все методы.
type UnimplementedDashboardServiceServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func (UnimplementedDashboardServiceServer) ListClients(context.Context, *ListClientsRequest) (*ListClientsResponse, error) {
	return nil, unimplemented(MethodListClients)
}
func (UnimplementedDashboardServiceServer) CreateClient(context.Context, *CreateClientRequest) (*CreateClientResponse, error) {
	return nil, unimplemented(MethodCreateClient)
}
func (UnimplementedDashboardServiceServer) DeleteClient(context.Context, *DeleteClientRequest) (*MutationResponse, error) {
	return nil, unimplemented(MethodDeleteClient)
}
func (UnimplementedDashboardServiceServer) ListOrders(context.Context, *ListOrdersRequest) (*ListOrdersResponse, error) {
	return nil, unimplemented(MethodListOrders)
}
func (UnimplementedDashboardServiceServer) GetOrder(context.Context, *GetOrderRequest) (*GetOrderResponse, error) {
	return nil, unimplemented(MethodGetOrder)
}
func (UnimplementedDashboardServiceServer) SetOrderStatus(context.Context, *SetOrderStatusRequest) (*MutationResponse, error) {
	return nil, unimplemented(MethodSetOrderStatus)
}
func (UnimplementedDashboardServiceServer) ListMenu(context.Context, *ListMenuRequest) (*ListMenuResponse, error) {
	return nil, unimplemented(MethodListMenu)
}
func (UnimplementedDashboardServiceServer) AddMenuCategory(context.Context, *AddMenuCategoryRequest) (*AddMenuCategoryResponse, error) {
	return nil, unimplemented(MethodAddMenuCategory)
}
func (UnimplementedDashboardServiceServer) AddMenuItem(context.Context, *AddMenuItemRequest) (*AddMenuItemResponse, error) {
	return nil, unimplemented(MethodAddMenuItem)
}
func (UnimplementedDashboardServiceServer) UpdateMenuItem(context.Context, *UpdateMenuItemRequest) (*MutationResponse, error) {
	return nil, unimplemented(MethodUpdateMenuItem)
}
func (UnimplementedDashboardServiceServer) DeleteMenuItem(context.Context, *DeleteMenuItemRequest) (*MutationResponse, error) {
	return nil, unimplemented(MethodDeleteMenuItem)
}
func (UnimplementedDashboardServiceServer) ListUsers(context.Context, *ListUsersRequest) (*ListUsersResponse, error) {
	return nil, unimplemented(MethodListUsers)
}
func (UnimplementedDashboardServiceServer) DeleteUser(context.Context, *DeleteUserRequest) (*MutationResponse, error) {
	return nil, unimplemented(MethodDeleteUser)
}
func (UnimplementedDashboardServiceServer) GetDashboard(context.Context, *GetDashboardRequest) (*GetDashboardResponse, error) {
	return nil, unimplemented(MethodGetDashboard)
}
func (UnimplementedDashboardServiceServer) GetRestaurantProfile(context.Context, *GetRestaurantProfileRequest) (*GetRestaurantProfileResponse, error) {
	return nil, unimplemented(MethodGetRestaurantProfile)
}
func (UnimplementedDashboardServiceServer) UpdateRestaurantProfile(context.Context, *UpdateRestaurantProfileRequest) (*UpdateResponse, error) {
	return nil, unimplemented(MethodUpdateRestaurantProfile)
}
func (UnimplementedDashboardServiceServer) GetSettings(context.Context, *GetSettingsRequest) (*GetSettingsResponse, error) {
	return nil, unimplemented(MethodGetSettings)
}
func (UnimplementedDashboardServiceServer) UpdateSettings(context.Context, *UpdateSettingsRequest) (*UpdateResponse, error) {
	return nil, unimplemented(MethodUpdateSettings)
}
func (UnimplementedDashboardServiceServer) GetAccount(context.Context, *GetAccountRequest) (*GetAccountResponse, error) {
	return nil, unimplemented(MethodGetAccount)
}
func (UnimplementedDashboardServiceServer) UpdateAccount(context.Context, *UpdateAccountRequest) (*UpdateResponse, error) {
	return nil, unimplemented(MethodUpdateAccount)
}
func (UnimplementedDashboardServiceServer) ListNotifications(context.Context, *ListNotificationsRequest) (*ListNotificationsResponse, error) {
	return nil, unimplemented(MethodListNotifications)
}
func (UnimplementedDashboardServiceServer) mustEmbedUnimplementedDashboardServiceServer() {}

// RegisterDashboardServiceServer регистрирует реализацию на gRPC-сервере.
func RegisterDashboardServiceServer(s grpc.ServiceRegistrar, srv DashboardServiceServer) {
	s.RegisterService(&DashboardService_ServiceDesc, srv)
}

// DashboardService_ServiceDesc описывает сервис для grpc.ServiceRegistrar.
var DashboardService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*DashboardServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(MethodListClients, DashboardServiceServer.ListClients),
		unaryMethod(MethodCreateClient, DashboardServiceServer.CreateClient),
		unaryMethod(MethodDeleteClient, DashboardServiceServer.DeleteClient),
		unaryMethod(MethodListOrders, DashboardServiceServer.ListOrders),
		unaryMethod(MethodGetOrder, DashboardServiceServer.GetOrder),
		unaryMethod(MethodSetOrderStatus, DashboardServiceServer.SetOrderStatus),
		unaryMethod(MethodListMenu, DashboardServiceServer.ListMenu),
		unaryMethod(MethodAddMenuCategory, DashboardServiceServer.AddMenuCategory),
		unaryMethod(MethodAddMenuItem, DashboardServiceServer.AddMenuItem),
		unaryMethod(MethodUpdateMenuItem, DashboardServiceServer.UpdateMenuItem),
		unaryMethod(MethodDeleteMenuItem, DashboardServiceServer.DeleteMenuItem),
		unaryMethod(MethodListUsers, DashboardServiceServer.ListUsers),
		unaryMethod(MethodDeleteUser, DashboardServiceServer.DeleteUser),
		unaryMethod(MethodGetDashboard, DashboardServiceServer.GetDashboard),
		unaryMethod(MethodGetRestaurantProfile, DashboardServiceServer.GetRestaurantProfile),
		unaryMethod(MethodUpdateRestaurantProfile, DashboardServiceServer.UpdateRestaurantProfile),
		unaryMethod(MethodGetSettings, DashboardServiceServer.GetSettings),
		unaryMethod(MethodUpdateSettings, DashboardServiceServer.UpdateSettings),
		unaryMethod(MethodGetAccount, DashboardServiceServer.GetAccount),
		unaryMethod(MethodUpdateAccount, DashboardServiceServer.UpdateAccount),
		unaryMethod(MethodListNotifications, DashboardServiceServer.ListNotifications),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rms/v1/dashboard.proto",
}

// unaryMethod строит MethodDesc для унарного метода с поддержкой interceptor'ов.
func unaryMethod[Req any, Resp any](method string, call func(DashboardServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(DashboardServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(method),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(DashboardServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
