package storefrontv1

import (
	"context"

	"google.golang.org/grpc"
)

const (
	RatingService_SubmitRating_FullMethodName  = "/storefront.v1.RatingService/SubmitRating"
	RatingService_ListRatings_FullMethodName   = "/storefront.v1.RatingService/ListRatings"
	RatingService_RatingSummary_FullMethodName = "/storefront.v1.RatingService/RatingSummary"
)

type RatingServiceServer interface {
	SubmitRating(context.Context, *SubmitRatingRequest) (*SubmitRatingResponse, error)
	ListRatings(context.Context, *ListRatingsRequest) (*ListRatingsResponse, error)
	RatingSummary(context.Context, *RatingSummaryRequest) (*RatingSummaryResponse, error)
}

var RatingService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "storefront.v1.RatingService",
	HandlerType: (*RatingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SubmitRating", Handler: unary(RatingService_SubmitRating_FullMethodName, RatingServiceServer.SubmitRating)},
		{MethodName: "ListRatings", Handler: unary(RatingService_ListRatings_FullMethodName, RatingServiceServer.ListRatings)},
		{MethodName: "RatingSummary", Handler: unary(RatingService_RatingSummary_FullMethodName, RatingServiceServer.RatingSummary)},
	},
	Metadata: "storefront/v1/rating",
}

func RegisterRatingServiceServer(s grpc.ServiceRegistrar, srv RatingServiceServer) {
	s.RegisterService(&RatingService_ServiceDesc, srv)
}

type RatingServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewRatingServiceClient(cc grpc.ClientConnInterface) *RatingServiceClient {
	return &RatingServiceClient{cc: cc}
}

func (c *RatingServiceClient) SubmitRating(ctx context.Context, in *SubmitRatingRequest, opts ...grpc.CallOption) (*SubmitRatingResponse, error) {
	return invoke[SubmitRatingResponse](ctx, c.cc, RatingService_SubmitRating_FullMethodName, in, opts)
}

func (c *RatingServiceClient) ListRatings(ctx context.Context, in *ListRatingsRequest, opts ...grpc.CallOption) (*ListRatingsResponse, error) {
	return invoke[ListRatingsResponse](ctx, c.cc, RatingService_ListRatings_FullMethodName, in, opts)
}

func (c *RatingServiceClient) RatingSummary(ctx context.Context, in *RatingSummaryRequest, opts ...grpc.CallOption) (*RatingSummaryResponse, error) {
	return invoke[RatingSummaryResponse](ctx, c.cc, RatingService_RatingSummary_FullMethodName, in, opts)
}
