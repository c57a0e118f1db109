package storefrontv1

import (
	"context"

	"google.golang.org/grpc"
)

const (
	CatalogService_ListProducts_FullMethodName = "/storefront.v1.CatalogService/ListProducts"
	CatalogService_GetProduct_FullMethodName   = "/storefront.v1.CatalogService/GetProduct"
)

type CatalogServiceServer interface {
	ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error)
	GetProduct(context.Context, *GetProductRequest) (*GetProductResponse, error)
}

var CatalogService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "storefront.v1.CatalogService",
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListProducts", Handler: unary(CatalogService_ListProducts_FullMethodName, CatalogServiceServer.ListProducts)},
		{MethodName: "GetProduct", Handler: unary(CatalogService_GetProduct_FullMethodName, CatalogServiceServer.GetProduct)},
	},
	Metadata: "storefront/v1/catalog",
}

func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&CatalogService_ServiceDesc, srv)
}

type CatalogServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCatalogServiceClient(cc grpc.ClientConnInterface) *CatalogServiceClient {
	return &CatalogServiceClient{cc: cc}
}

func (c *CatalogServiceClient) ListProducts(ctx context.Context, in *ListProductsRequest, opts ...grpc.CallOption) (*ListProductsResponse, error) {
	return invoke[ListProductsResponse](ctx, c.cc, CatalogService_ListProducts_FullMethodName, in, opts)
}

func (c *CatalogServiceClient) GetProduct(ctx context.Context, in *GetProductRequest, opts ...grpc.CallOption) (*GetProductResponse, error) {
	return invoke[GetProductResponse](ctx, c.cc, CatalogService_GetProduct_FullMethodName, in, opts)
}
