package storefrontv1

import (
	"context"

	"google.golang.org/grpc"
)

const (
	OrderService_ListCustomerOrders_FullMethodName = "/storefront.v1.OrderService/ListCustomerOrders"
	OrderService_ListAdminOrders_FullMethodName    = "/storefront.v1.OrderService/ListAdminOrders"
	OrderService_GetOrder_FullMethodName           = "/storefront.v1.OrderService/GetOrder"
	OrderService_UpdateStatus_FullMethodName       = "/storefront.v1.OrderService/UpdateStatus"
	OrderService_AdvanceOrder_FullMethodName       = "/storefront.v1.OrderService/AdvanceOrder"
	OrderService_CancelOrder_FullMethodName        = "/storefront.v1.OrderService/CancelOrder"
	OrderService_ArchiveOrder_FullMethodName       = "/storefront.v1.OrderService/ArchiveOrder"
	OrderService_DeleteForCustomer_FullMethodName  = "/storefront.v1.OrderService/DeleteForCustomer"
	OrderService_RemoveOrder_FullMethodName        = "/storefront.v1.OrderService/RemoveOrder"
	OrderService_WatchOrders_FullMethodName        = "/storefront.v1.OrderService/WatchOrders"
)

type OrderServiceServer interface {
	ListCustomerOrders(context.Context, *ListOrdersRequest) (*ListOrdersResponse, error)
	ListAdminOrders(context.Context, *ListOrdersRequest) (*ListOrdersResponse, error)
	GetOrder(context.Context, *GetOrderRequest) (*GetOrderResponse, error)
	UpdateStatus(context.Context, *UpdateStatusRequest) (*Empty, error)
	AdvanceOrder(context.Context, *OrderIDRequest) (*Empty, error)
	CancelOrder(context.Context, *OrderIDRequest) (*Empty, error)
	ArchiveOrder(context.Context, *OrderIDRequest) (*Empty, error)
	DeleteForCustomer(context.Context, *OrderIDRequest) (*Empty, error)
	RemoveOrder(context.Context, *OrderIDRequest) (*Empty, error)
	WatchOrders(*WatchOrdersRequest, OrderService_WatchOrdersServer) error
}

type OrderService_WatchOrdersServer interface {
	Send(*ListOrdersResponse) error
	grpc.ServerStream
}

type orderServiceWatchOrdersServer struct {
	grpc.ServerStream
}

func (x *orderServiceWatchOrdersServer) Send(m *ListOrdersResponse) error {
	return x.ServerStream.SendMsg(m)
}

func _OrderService_WatchOrders_Handler(srv any, stream grpc.ServerStream) error {
	in := new(WatchOrdersRequest)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(OrderServiceServer).WatchOrders(in, &orderServiceWatchOrdersServer{stream})
}

var OrderService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "storefront.v1.OrderService",
	HandlerType: (*OrderServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListCustomerOrders", Handler: unary(OrderService_ListCustomerOrders_FullMethodName, OrderServiceServer.ListCustomerOrders)},
		{MethodName: "ListAdminOrders", Handler: unary(OrderService_ListAdminOrders_FullMethodName, OrderServiceServer.ListAdminOrders)},
		{MethodName: "GetOrder", Handler: unary(OrderService_GetOrder_FullMethodName, OrderServiceServer.GetOrder)},
		{MethodName: "UpdateStatus", Handler: unary(OrderService_UpdateStatus_FullMethodName, OrderServiceServer.UpdateStatus)},
		{MethodName: "AdvanceOrder", Handler: unary(OrderService_AdvanceOrder_FullMethodName, OrderServiceServer.AdvanceOrder)},
		{MethodName: "CancelOrder", Handler: unary(OrderService_CancelOrder_FullMethodName, OrderServiceServer.CancelOrder)},
		{MethodName: "ArchiveOrder", Handler: unary(OrderService_ArchiveOrder_FullMethodName, OrderServiceServer.ArchiveOrder)},
		{MethodName: "DeleteForCustomer", Handler: unary(OrderService_DeleteForCustomer_FullMethodName, OrderServiceServer.DeleteForCustomer)},
		{MethodName: "RemoveOrder", Handler: unary(OrderService_RemoveOrder_FullMethodName, OrderServiceServer.RemoveOrder)},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "WatchOrders", Handler: _OrderService_WatchOrders_Handler, ServerStreams: true},
	},
	Metadata: "storefront/v1/order",
}

func RegisterOrderServiceServer(s grpc.ServiceRegistrar, srv OrderServiceServer) {
	s.RegisterService(&OrderService_ServiceDesc, srv)
}

type OrderServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewOrderServiceClient(cc grpc.ClientConnInterface) *OrderServiceClient {
	return &OrderServiceClient{cc: cc}
}

func (c *OrderServiceClient) ListCustomerOrders(ctx context.Context, in *ListOrdersRequest, opts ...grpc.CallOption) (*ListOrdersResponse, error) {
	return invoke[ListOrdersResponse](ctx, c.cc, OrderService_ListCustomerOrders_FullMethodName, in, opts)
}

func (c *OrderServiceClient) ListAdminOrders(ctx context.Context, in *ListOrdersRequest, opts ...grpc.CallOption) (*ListOrdersResponse, error) {
	return invoke[ListOrdersResponse](ctx, c.cc, OrderService_ListAdminOrders_FullMethodName, in, opts)
}

func (c *OrderServiceClient) GetOrder(ctx context.Context, in *GetOrderRequest, opts ...grpc.CallOption) (*GetOrderResponse, error) {
	return invoke[GetOrderResponse](ctx, c.cc, OrderService_GetOrder_FullMethodName, in, opts)
}

func (c *OrderServiceClient) UpdateStatus(ctx context.Context, in *UpdateStatusRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, OrderService_UpdateStatus_FullMethodName, in, opts)
}

func (c *OrderServiceClient) CancelOrder(ctx context.Context, in *OrderIDRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, OrderService_CancelOrder_FullMethodName, in, opts)
}

func (c *OrderServiceClient) ArchiveOrder(ctx context.Context, in *OrderIDRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, OrderService_ArchiveOrder_FullMethodName, in, opts)
}

func (c *OrderServiceClient) DeleteForCustomer(ctx context.Context, in *OrderIDRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, OrderService_DeleteForCustomer_FullMethodName, in, opts)
}

func (c *OrderServiceClient) AdvanceOrder(ctx context.Context, in *OrderIDRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, OrderService_AdvanceOrder_FullMethodName, in, opts)
}

func (c *OrderServiceClient) RemoveOrder(ctx context.Context, in *OrderIDRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, OrderService_RemoveOrder_FullMethodName, in, opts)
}

type OrderService_WatchOrdersClient interface {
	Recv() (*ListOrdersResponse, error)
	grpc.ClientStream
}

type orderServiceWatchOrdersClient struct {
	grpc.ClientStream
}

func (x *orderServiceWatchOrdersClient) Recv() (*ListOrdersResponse, error) {
	m := new(ListOrdersResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *OrderServiceClient) WatchOrders(ctx context.Context, in *WatchOrdersRequest, opts ...grpc.CallOption) (OrderService_WatchOrdersClient, error) {
	opts = append(CallOptions(), opts...)
	stream, err := c.cc.NewStream(ctx, &OrderService_ServiceDesc.Streams[0], OrderService_WatchOrders_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &orderServiceWatchOrdersClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}
