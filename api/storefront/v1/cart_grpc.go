package storefrontv1

import (
	"context"

	"google.golang.org/grpc"
)

const (
	CartService_GetCart_FullMethodName    = "/storefront.v1.CartService/GetCart"
	CartService_AddProduct_FullMethodName = "/storefront.v1.CartService/AddProduct"
	CartService_Increment_FullMethodName  = "/storefront.v1.CartService/Increment"
	CartService_Decrement_FullMethodName  = "/storefront.v1.CartService/Decrement"
	CartService_RemoveLine_FullMethodName = "/storefront.v1.CartService/RemoveLine"
)

type CartServiceServer interface {
	GetCart(context.Context, *GetCartRequest) (*Cart, error)
	AddProduct(context.Context, *CartProductRequest) (*Cart, error)
	Increment(context.Context, *CartProductRequest) (*Cart, error)
	Decrement(context.Context, *CartProductRequest) (*Cart, error)
	RemoveLine(context.Context, *CartProductRequest) (*Cart, error)
}

var CartService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "storefront.v1.CartService",
	HandlerType: (*CartServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetCart", Handler: unary(CartService_GetCart_FullMethodName, CartServiceServer.GetCart)},
		{MethodName: "AddProduct", Handler: unary(CartService_AddProduct_FullMethodName, CartServiceServer.AddProduct)},
		{MethodName: "Increment", Handler: unary(CartService_Increment_FullMethodName, CartServiceServer.Increment)},
		{MethodName: "Decrement", Handler: unary(CartService_Decrement_FullMethodName, CartServiceServer.Decrement)},
		{MethodName: "RemoveLine", Handler: unary(CartService_RemoveLine_FullMethodName, CartServiceServer.RemoveLine)},
	},
	Metadata: "storefront/v1/cart",
}

func RegisterCartServiceServer(s grpc.ServiceRegistrar, srv CartServiceServer) {
	s.RegisterService(&CartService_ServiceDesc, srv)
}

type CartServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCartServiceClient(cc grpc.ClientConnInterface) *CartServiceClient {
	return &CartServiceClient{cc: cc}
}

func (c *CartServiceClient) GetCart(ctx context.Context, in *GetCartRequest, opts ...grpc.CallOption) (*Cart, error) {
	return invoke[Cart](ctx, c.cc, CartService_GetCart_FullMethodName, in, opts)
}

func (c *CartServiceClient) AddProduct(ctx context.Context, in *CartProductRequest, opts ...grpc.CallOption) (*Cart, error) {
	return invoke[Cart](ctx, c.cc, CartService_AddProduct_FullMethodName, in, opts)
}

func (c *CartServiceClient) Increment(ctx context.Context, in *CartProductRequest, opts ...grpc.CallOption) (*Cart, error) {
	return invoke[Cart](ctx, c.cc, CartService_Increment_FullMethodName, in, opts)
}

func (c *CartServiceClient) Decrement(ctx context.Context, in *CartProductRequest, opts ...grpc.CallOption) (*Cart, error) {
	return invoke[Cart](ctx, c.cc, CartService_Decrement_FullMethodName, in, opts)
}

func (c *CartServiceClient) RemoveLine(ctx context.Context, in *CartProductRequest, opts ...grpc.CallOption) (*Cart, error) {
	return invoke[Cart](ctx, c.cc, CartService_RemoveLine_FullMethodName, in, opts)
}
