package rmsv1

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type fakeClientConn struct {
	invoke func(context.Context, string, any, any, ...grpc.CallOption) error
}

func (f *fakeClientConn) Invoke(ctx context.Context, method string, args any, reply any, opts ...grpc.CallOption) error {
	if f.invoke == nil {
		return errors.New("unexpected Invoke call")
	}
	return f.invoke(ctx, method, args, reply, opts...)
}

func (f *fakeClientConn) NewStream(context.Context, *grpc.StreamDesc, string, ...grpc.CallOption) (grpc.ClientStream, error) {
	return nil, errors.New("not implemented")
}

type grpcTestDashboardService struct {
	UnimplementedDashboardServiceServer
}

func (s *grpcTestDashboardService) ListClients(_ context.Context, req *ListClientsRequest) (*ListClientsResponse, error) {
	return &ListClientsResponse{Clients: []*Client{{ID: "client-" + req.Query}}}, nil
}

func (s *grpcTestDashboardService) GetOrder(_ context.Context, req *GetOrderRequest) (*GetOrderResponse, error) {
	return &GetOrderResponse{Order: &Order{ID: req.OrderID}}, nil
}

func contentSubtype(opts []grpc.CallOption) string {
	for _, opt := range opts {
		if cs, ok := opt.(grpc.ContentSubtypeCallOption); ok {
			return cs.ContentSubtype
		}
	}
	return ""
}

func clientCalls(client DashboardServiceClient) map[string]func(context.Context) error {
	return map[string]func(context.Context) error{
		MethodListClients: func(ctx context.Context) error {
			_, err := client.ListClients(ctx, &ListClientsRequest{})
			return err
		},
		MethodCreateClient: func(ctx context.Context) error {
			_, err := client.CreateClient(ctx, &CreateClientRequest{})
			return err
		},
		MethodDeleteClient: func(ctx context.Context) error {
			_, err := client.DeleteClient(ctx, &DeleteClientRequest{})
			return err
		},
		MethodListOrders: func(ctx context.Context) error {
			_, err := client.ListOrders(ctx, &ListOrdersRequest{})
			return err
		},
		MethodGetOrder: func(ctx context.Context) error {
			_, err := client.GetOrder(ctx, &GetOrderRequest{})
			return err
		},
		MethodSetOrderStatus: func(ctx context.Context) error {
			_, err := client.SetOrderStatus(ctx, &SetOrderStatusRequest{})
			return err
		},
		MethodListMenu: func(ctx context.Context) error {
			_, err := client.ListMenu(ctx, &ListMenuRequest{})
			return err
		},
		MethodAddMenuCategory: func(ctx context.Context) error {
			_, err := client.AddMenuCategory(ctx, &AddMenuCategoryRequest{})
			return err
		},
		MethodAddMenuItem: func(ctx context.Context) error {
			_, err := client.AddMenuItem(ctx, &AddMenuItemRequest{})
			return err
		},
		MethodUpdateMenuItem: func(ctx context.Context) error {
			_, err := client.UpdateMenuItem(ctx, &UpdateMenuItemRequest{})
			return err
		},
		MethodDeleteMenuItem: func(ctx context.Context) error {
			_, err := client.DeleteMenuItem(ctx, &DeleteMenuItemRequest{})
			return err
		},
		MethodListUsers: func(ctx context.Context) error {
			_, err := client.ListUsers(ctx, &ListUsersRequest{})
			return err
		},
		MethodDeleteUser: func(ctx context.Context) error {
			_, err := client.DeleteUser(ctx, &DeleteUserRequest{})
			return err
		},
		MethodGetDashboard: func(ctx context.Context) error {
			_, err := client.GetDashboard(ctx, &GetDashboardRequest{})
			return err
		},
		MethodGetRestaurantProfile: func(ctx context.Context) error {
			_, err := client.GetRestaurantProfile(ctx, &GetRestaurantProfileRequest{})
			return err
		},
		MethodUpdateRestaurantProfile: func(ctx context.Context) error {
			_, err := client.UpdateRestaurantProfile(ctx, &UpdateRestaurantProfileRequest{})
			return err
		},
		MethodGetSettings: func(ctx context.Context) error {
			_, err := client.GetSettings(ctx, &GetSettingsRequest{})
			return err
		},
		MethodUpdateSettings: func(ctx context.Context) error {
			_, err := client.UpdateSettings(ctx, &UpdateSettingsRequest{})
			return err
		},
		MethodGetAccount: func(ctx context.Context) error {
			_, err := client.GetAccount(ctx, &GetAccountRequest{})
			return err
		},
		MethodUpdateAccount: func(ctx context.Context) error {
			_, err := client.UpdateAccount(ctx, &UpdateAccountRequest{})
			return err
		},
		MethodListNotifications: func(ctx context.Context) error {
			_, err := client.ListNotifications(ctx, &ListNotificationsRequest{})
			return err
		},
	}
}

func TestDashboardServiceClientMethods(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		methods := map[string]int{}
		conn := &fakeClientConn{
			invoke: func(_ context.Context, method string, _ any, _ any, opts ...grpc.CallOption) error {
				methods[method]++
				if got := contentSubtype(opts); got != CodecName {
					t.Fatalf("%s: expected content subtype %q, got %q", method, CodecName, got)
				}
				return nil
			},
		}

		calls := clientCalls(NewDashboardServiceClient(conn))
		for name, call := range calls {
			if err := call(context.Background()); err != nil {
				t.Fatalf("%s failed: %v", name, err)
			}
		}

		if len(methods) != len(DashboardService_ServiceDesc.Methods) {
			t.Fatalf("expected %d distinct methods, got %d", len(DashboardService_ServiceDesc.Methods), len(methods))
		}
		for name := range calls {
			if methods[FullMethod(name)] != 1 {
				t.Fatalf("expected method %s called exactly once, got %d", name, methods[FullMethod(name)])
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		conn := &fakeClientConn{
			invoke: func(context.Context, string, any, any, ...grpc.CallOption) error {
				return status.Error(codes.Internal, "boom")
			},
		}
		for name, call := range clientCalls(NewDashboardServiceClient(conn)) {
			if err := call(context.Background()); status.Code(err) != codes.Internal {
				t.Fatalf("%s expected Internal error, got %v", name, err)
			}
		}
	})
}

func TestUnimplementedDashboardServiceServer(t *testing.T) {
	var srv UnimplementedDashboardServiceServer
	ctx := context.Background()

	for _, desc := range DashboardService_ServiceDesc.Methods {
		_, err := desc.Handler(srv, ctx, func(any) error { return nil }, nil)
		if status.Code(err) != codes.Unimplemented {
			t.Fatalf("%s expected Unimplemented error, got %v", desc.MethodName, err)
		}
	}

	srv.mustEmbedUnimplementedDashboardServiceServer()
}

func TestServiceHandlers(t *testing.T) {
	srv := &grpcTestDashboardService{}
	ctx := context.Background()

	for _, desc := range DashboardService_ServiceDesc.Methods {
		t.Run(desc.MethodName, func(t *testing.T) {
			if _, err := desc.Handler(srv, ctx, func(any) error { return errors.New("decode failed") }, nil); err == nil {
				t.Fatalf("expected decode error")
			}

			interceptorCalled := false
			_, _ = desc.Handler(srv, ctx, func(any) error { return nil }, func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
				interceptorCalled = true
				if info.FullMethod != FullMethod(desc.MethodName) {
					t.Fatalf("unexpected full method: got %s want %s", info.FullMethod, FullMethod(desc.MethodName))
				}
				return handler(ctx, req)
			})
			if !interceptorCalled {
				t.Fatalf("interceptor was not called")
			}
		})
	}
}

func TestServiceHandlerPassesDecodedRequest(t *testing.T) {
	srv := &grpcTestDashboardService{}
	var handler grpc.MethodDesc
	for _, desc := range DashboardService_ServiceDesc.Methods {
		if desc.MethodName == MethodGetOrder {
			handler = desc
		}
	}

	resp, err := handler.Handler(srv, context.Background(), func(v any) error {
		v.(*GetOrderRequest).OrderID = "order3"
		return nil
	}, nil)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if got := resp.(*GetOrderResponse).Order.ID; got != "order3" {
		t.Fatalf("expected order3, got %s", got)
	}
}

func TestRegisterAndServiceDescriptor(t *testing.T) {
	g := grpc.NewServer()
	RegisterDashboardServiceServer(g, &grpcTestDashboardService{})

	info, ok := g.GetServiceInfo()[ServiceName]
	if !ok {
		t.Fatalf("service %s is not registered", ServiceName)
	}
	if len(info.Methods) != 21 {
		t.Fatalf("expected 21 methods, got %d", len(info.Methods))
	}
	if DashboardService_ServiceDesc.Metadata == "" {
		t.Fatalf("metadata should not be empty")
	}
}
