package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dwikikusuma/refill-store/internal/catalog/domain"
)

type fakeRepo struct {
	gotLimit  int
	gotQuery  string
	gotCursor string
}

func (fakeRepo) Get(ctx context.Context, id string) (domain.Product, error) {
	return domain.Product{ID: id}, nil
}

func (f *fakeRepo) List(ctx context.Context, query string, limit int, cursor string) ([]domain.Product, string, error) {
	f.gotLimit = limit
	f.gotQuery = query
	f.gotCursor = cursor
	return nil, "", nil
}

func TestGetProductValidation(t *testing.T) {
	svc := NewService(&fakeRepo{})

	t.Run("blank id -> invalid", func(t *testing.T) {
		_, err := svc.GetProduct(context.Background(), "   ")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("id is trimmed", func(t *testing.T) {
		p, err := svc.GetProduct(context.Background(), " p1 ")
		assert.NoError(t, err)
		assert.Equal(t, "p1", p.ID)
	})
}

func TestListProductsClampsLimit(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	for _, tc := range []struct {
		in, want int
	}{{0, 12}, {-3, 12}, {6, 6}, {48, 48}, {1000, 48}} {
		_, _, _ = svc.ListProducts(context.Background(), "", tc.in, "")
		assert.Equal(t, tc.want, repo.gotLimit, "limit %d", tc.in)
	}
}

func TestListProductsTrimsQueryAndCursor(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	_, _, err := svc.ListProducts(context.Background(), "  gallon ", 0, " p2 ")
	assert.NoError(t, err)
	assert.Equal(t, "gallon", repo.gotQuery)
	assert.Equal(t, "p2", repo.gotCursor)
}
