package app

import (
	"context"
	"errors"
	"strings"

	"github.com/dwikikusuma/refill-store/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo ProductRepo
}

func NewService(repo ProductRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Product{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, strings.TrimSpace(id))
}

// The refill catalog is a handful of products, so one default page holds all
// of it.
const (
	defaultPageSize = 12
	maxPageSize     = 48
)

// ListProducts pages through products whose name contains query. cursor is
// the id of the last product on the previous page; an empty next cursor means
// there are no more pages.
func (s *Service) ListProducts(ctx context.Context, query string, limit int, cursor string) ([]domain.Product, string, error) {
	switch {
	case limit <= 0:
		limit = defaultPageSize
	case limit > maxPageSize:
		limit = maxPageSize
	}
	return s.repo.List(ctx, strings.TrimSpace(query), limit, strings.TrimSpace(cursor))
}
