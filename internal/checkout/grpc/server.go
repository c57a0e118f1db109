package grpc

import (
	"context"
	"errors"

	storefrontv1 "github.com/dwikikusuma/refill-store/api/storefront/v1"
	"github.com/dwikikusuma/refill-store/internal/auth"
	"github.com/dwikikusuma/refill-store/internal/checkout/app"
	"github.com/dwikikusuma/refill-store/internal/checkout/domain"
	ordergrpc "github.com/dwikikusuma/refill-store/internal/order/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	svc *app.Service
}

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) Quote(ctx context.Context, _ *storefrontv1.QuoteRequest) (*storefrontv1.QuoteResponse, error) {
	sess, err := auth.Require(ctx, auth.OpCheckout)
	if err != nil {
		return nil, auth.StatusError(err)
	}

	q, err := s.svc.Quote(ctx, sess.Username)
	if err != nil {
		return nil, mapErr(err)
	}

	return toQuoteResponse(q), nil
}

func (s *Server) PlaceOrder(ctx context.Context, req *storefrontv1.PlaceOrderRequest) (*storefrontv1.PlaceOrderResponse, error) {
	sess, err := auth.Require(ctx, auth.OpCheckout)
	if err != nil {
		return nil, auth.StatusError(err)
	}

	o, err := s.svc.PlaceOrder(ctx, domain.PlaceOrderRequest{
		Customer:        sess.Username,
		DeliveryAddress: req.DeliveryAddress,
	})
	if err != nil {
		return nil, mapErr(err)
	}

	return &storefrontv1.PlaceOrderResponse{Order: ordergrpc.ToAPI(o)}, nil
}

func toQuoteResponse(q domain.Quote) *storefrontv1.QuoteResponse {
	lines := make([]storefrontv1.QuoteLine, 0, len(q.Lines))
	for _, ln := range q.Lines {
		lines = append(lines, storefrontv1.QuoteLine{
			ProductID: ln.ProductID,
			Name:      ln.Name,
			Quantity:  ln.Quantity,
			UnitPrice: storefrontv1.NewMoney(ln.UnitPrice.Currency, ln.UnitPrice.Amount),
			LineTotal: storefrontv1.NewMoney(ln.LineTotal.Currency, ln.LineTotal.Amount),
		})
	}

	return &storefrontv1.QuoteResponse{
		Lines: lines,
		Total: storefrontv1.NewMoney(q.Total.Currency, q.Total.Amount),
	}
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, app.ErrEmptyCart):
		return status.Error(codes.InvalidArgument, "cart is empty")
	case errors.Is(err, app.ErrNoAddress), errors.Is(err, app.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return status.Errorf(codes.Internal, "checkout failed: %v", err)
}
