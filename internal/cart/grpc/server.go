package grpc

import (
	"context"
	"errors"

	storefrontv1 "github.com/dwikikusuma/refill-store/api/storefront/v1"
	"github.com/dwikikusuma/refill-store/internal/auth"
	"github.com/dwikikusuma/refill-store/internal/cart/app"
	"github.com/dwikikusuma/refill-store/internal/cart/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	svc *app.Service
}

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) GetCart(ctx context.Context, _ *storefrontv1.GetCartRequest) (*storefrontv1.Cart, error) {
	sess, err := auth.Require(ctx, auth.OpEditCart)
	if err != nil {
		return nil, auth.StatusError(err)
	}
	cart, err := s.svc.GetCart(ctx, sess.Username)
	if err != nil {
		return nil, mapErr(err)
	}
	return toAPI(cart), nil
}

func (s *Server) AddProduct(ctx context.Context, req *storefrontv1.CartProductRequest) (*storefrontv1.Cart, error) {
	sess, err := auth.Require(ctx, auth.OpEditCart)
	if err != nil {
		return nil, auth.StatusError(err)
	}
	cart, err := s.svc.AddProduct(ctx, sess.Username, req.ProductID)
	if err != nil {
		return nil, mapErr(err)
	}
	return toAPI(cart), nil
}

func (s *Server) Increment(ctx context.Context, req *storefrontv1.CartProductRequest) (*storefrontv1.Cart, error) {
	return s.edit(ctx, req, s.svc.Increment)
}

func (s *Server) Decrement(ctx context.Context, req *storefrontv1.CartProductRequest) (*storefrontv1.Cart, error) {
	return s.edit(ctx, req, s.svc.Decrement)
}

func (s *Server) RemoveLine(ctx context.Context, req *storefrontv1.CartProductRequest) (*storefrontv1.Cart, error) {
	return s.edit(ctx, req, s.svc.RemoveLine)
}

func (s *Server) edit(ctx context.Context, req *storefrontv1.CartProductRequest, op func(context.Context, string, string) (domain.Snapshot, error)) (*storefrontv1.Cart, error) {
	sess, err := auth.Require(ctx, auth.OpEditCart)
	if err != nil {
		return nil, auth.StatusError(err)
	}
	cart, err := op(ctx, sess.Username, req.ProductID)
	if err != nil {
		return nil, mapErr(err)
	}
	return toAPI(cart), nil
}

func toAPI(cart domain.Snapshot) *storefrontv1.Cart {
	lines := make([]storefrontv1.CartLine, 0, len(cart.Lines))
	currency := ""
	for _, l := range cart.Lines {
		if currency == "" {
			currency = l.Product.Currency
		}
		lines = append(lines, storefrontv1.CartLine{
			Product: storefrontv1.Product{
				ID:       l.Product.ID,
				Name:     l.Product.Name,
				Price:    storefrontv1.NewMoney(l.Product.Currency, l.Product.UnitAmount),
				ImageRef: l.Product.ImageRef,
			},
			Quantity:   l.Quantity,
			TotalPrice: storefrontv1.NewMoney(l.Product.Currency, l.TotalPrice()),
			Active:     l.Active(),
		})
	}

	return &storefrontv1.Cart{
		Customer:        cart.CustomerID,
		Lines:           lines,
		ActiveItemCount: cart.ActiveItemCount,
		Total:           storefrontv1.NewMoney(currency, cart.TotalAmount),
	}
}

func mapErr(err error) error {
	if errors.Is(err, app.ErrInvalidInput) {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	if errors.Is(err, app.ErrNotFound) {
		return status.Error(codes.NotFound, err.Error())
	}
	return status.Error(codes.Internal, "internal error")
}
