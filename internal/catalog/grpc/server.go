package grpc

import (
	"context"
	"errors"

	storefrontv1 "github.com/dwikikusuma/refill-store/api/storefront/v1"
	"github.com/dwikikusuma/refill-store/internal/auth"
	"github.com/dwikikusuma/refill-store/internal/catalog/app"
	"github.com/dwikikusuma/refill-store/internal/catalog/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	svc *app.Service
}

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) GetProduct(ctx context.Context, req *storefrontv1.GetProductRequest) (*storefrontv1.GetProductResponse, error) {
	if _, err := auth.Require(ctx, auth.OpBrowseCatalog); err != nil {
		return nil, auth.StatusError(err)
	}
	p, err := s.svc.GetProduct(ctx, req.ID)
	if err != nil {
		return nil, mapErr(err)
	}
	return &storefrontv1.GetProductResponse{Product: toAPI(p)}, nil
}

func (s *Server) ListProducts(ctx context.Context, req *storefrontv1.ListProductsRequest) (*storefrontv1.ListProductsResponse, error) {
	if _, err := auth.Require(ctx, auth.OpBrowseCatalog); err != nil {
		return nil, auth.StatusError(err)
	}
	products, next, err := s.svc.ListProducts(ctx, req.Query, int(req.Limit), req.Cursor)
	if err != nil {
		return nil, mapErr(err)
	}

	out := make([]storefrontv1.Product, 0, len(products))
	for _, p := range products {
		out = append(out, toAPI(p))
	}

	return &storefrontv1.ListProductsResponse{Products: out, NextCursor: next}, nil
}

func toAPI(p domain.Product) storefrontv1.Product {
	return storefrontv1.Product{
		ID:   p.ID,
		Name: p.Name,
		Price: storefrontv1.Money{
			Currency: p.Price.Currency,
			Amount:   p.Price.Amount,
			Display:  p.Price.String(),
		},
		ImageRef: p.ImageRef,
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
