package grpc

import (
	"context"
	"errors"

	storefrontv1 "github.com/dwikikusuma/refill-store/api/storefront/v1"
	"github.com/dwikikusuma/refill-store/internal/auth"
	"github.com/dwikikusuma/refill-store/internal/rating/app"
	"github.com/dwikikusuma/refill-store/internal/rating/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	ledger *app.Ledger
}

func NewServer(ledger *app.Ledger) *Server {
	return &Server{ledger: ledger}
}

func (s *Server) SubmitRating(ctx context.Context, req *storefrontv1.SubmitRatingRequest) (*storefrontv1.SubmitRatingResponse, error) {
	sess, err := auth.Require(ctx, auth.OpSubmitRating)
	if err != nil {
		return nil, auth.StatusError(err)
	}

	e, err := s.ledger.Submit(ctx, sess.Username, int(req.Rating), req.Comment)
	if err != nil {
		return nil, mapErr(err)
	}

	return &storefrontv1.SubmitRatingResponse{Rating: toAPI(e)}, nil
}

func (s *Server) ListRatings(ctx context.Context, _ *storefrontv1.ListRatingsRequest) (*storefrontv1.ListRatingsResponse, error) {
	if _, err := auth.Require(ctx, auth.OpViewRatings); err != nil {
		return nil, auth.StatusError(err)
	}

	entries := s.ledger.Entries()
	out := make([]storefrontv1.Rating, 0, len(entries))
	for _, e := range entries {
		out = append(out, toAPI(e))
	}
	return &storefrontv1.ListRatingsResponse{Ratings: out}, nil
}

func (s *Server) RatingSummary(ctx context.Context, _ *storefrontv1.RatingSummaryRequest) (*storefrontv1.RatingSummaryResponse, error) {
	if _, err := auth.Require(ctx, auth.OpViewRatings); err != nil {
		return nil, auth.StatusError(err)
	}

	sum := s.ledger.Summary()
	return &storefrontv1.RatingSummaryResponse{
		Count:     sum.Count,
		Average:   sum.Average.StringFixed(1),
		Histogram: sum.Histogram[:],
	}, nil
}

func toAPI(e domain.Entry) storefrontv1.Rating {
	return storefrontv1.Rating{
		ID:          e.ID,
		Rating:      int32(e.Rating),
		Comment:     e.Comment,
		Author:      e.Author,
		SubmittedAt: e.SubmittedAt,
	}
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, app.ErrInvalidRating),
		errors.Is(err, app.ErrCommentTooLong),
		errors.Is(err, app.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return status.Error(codes.Internal, "internal error")
}
