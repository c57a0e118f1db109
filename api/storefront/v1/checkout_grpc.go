package storefrontv1

import (
	"context"

	"google.golang.org/grpc"
)

const (
	CheckoutService_Quote_FullMethodName      = "/storefront.v1.CheckoutService/Quote"
	CheckoutService_PlaceOrder_FullMethodName = "/storefront.v1.CheckoutService/PlaceOrder"
)

type CheckoutServiceServer interface {
	Quote(context.Context, *QuoteRequest) (*QuoteResponse, error)
	PlaceOrder(context.Context, *PlaceOrderRequest) (*PlaceOrderResponse, error)
}

var CheckoutService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "storefront.v1.CheckoutService",
	HandlerType: (*CheckoutServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Quote", Handler: unary(CheckoutService_Quote_FullMethodName, CheckoutServiceServer.Quote)},
		{MethodName: "PlaceOrder", Handler: unary(CheckoutService_PlaceOrder_FullMethodName, CheckoutServiceServer.PlaceOrder)},
	},
	Metadata: "storefront/v1/checkout",
}

func RegisterCheckoutServiceServer(s grpc.ServiceRegistrar, srv CheckoutServiceServer) {
	s.RegisterService(&CheckoutService_ServiceDesc, srv)
}

type CheckoutServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCheckoutServiceClient(cc grpc.ClientConnInterface) *CheckoutServiceClient {
	return &CheckoutServiceClient{cc: cc}
}

func (c *CheckoutServiceClient) Quote(ctx context.Context, in *QuoteRequest, opts ...grpc.CallOption) (*QuoteResponse, error) {
	return invoke[QuoteResponse](ctx, c.cc, CheckoutService_Quote_FullMethodName, in, opts)
}

func (c *CheckoutServiceClient) PlaceOrder(ctx context.Context, in *PlaceOrderRequest, opts ...grpc.CallOption) (*PlaceOrderResponse, error) {
	return invoke[PlaceOrderResponse](ctx, c.cc, CheckoutService_PlaceOrder_FullMethodName, in, opts)
}
