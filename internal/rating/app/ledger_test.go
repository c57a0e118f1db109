package app

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/dwikikusuma/refill-store/internal/rating/domain"
	"github.com/dwikikusuma/refill-store/pkg/logger"
)

func newTestLedger(opts ...Option) *Ledger {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	var seq int
	base := []Option{
		WithClock(func() time.Time { return at }),
		WithIDGenerator(func() (string, error) {
			seq++
			return fmt.Sprintf("rating-%d", seq), nil
		}),
	}
	return NewLedger(logger.Discard(), append(base, opts...)...)
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger()

	entry, err := l.Submit(ctx, "alice", 5, "  fast delivery  ")
	require.NoError(t, err)
	assert.Equal(t, domain.Entry{
		ID:          "rating-1",
		Rating:      5,
		Comment:     "fast delivery",
		Author:      "alice",
		SubmittedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}, entry)

	_, err = l.Submit(ctx, "bob", 3, "")
	require.NoError(t, err)

	entries := l.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "rating-1", entries[0].ID)
	assert.Equal(t, "rating-2", entries[1].ID)
	assert.Empty(t, entries[1].Comment)
}

func TestSubmit_Rejections(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		author  string
		rating  int
		comment string
		wantErr error
	}{
		{name: "no rating selected", author: "alice", rating: 0, wantErr: ErrInvalidRating},
		{name: "negative", author: "alice", rating: -1, wantErr: ErrInvalidRating},
		{name: "above five", author: "alice", rating: 6, wantErr: ErrInvalidRating},
		{name: "comment over limit", author: "alice", rating: 4, comment: strings.Repeat("a", 151), wantErr: ErrCommentTooLong},
		{name: "missing author", author: " ", rating: 4, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLedger()
			notified := 0
			l.Subscribe(func([]domain.Entry) { notified++ })

			_, err := l.Submit(ctx, tt.author, tt.rating, tt.comment)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, l.Entries())
			assert.Zero(t, notified)
		})
	}
}

func TestSubmit_CommentLimitCountsCharacters(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(WithCommentMax(5))

	_, err := l.Submit(ctx, "alice", 4, "ñañañ")
	require.NoError(t, err)

	_, err = l.Submit(ctx, "alice", 4, "ñañaña")
	require.ErrorIs(t, err, ErrCommentTooLong)

	// Surrounding whitespace does not count.
	_, err = l.Submit(ctx, "alice", 4, "  abcde  ")
	require.NoError(t, err)
}

func TestSubscribe_NotifiedInOrderWithFullSnapshot(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger()

	var calls []string
	var seen [][]domain.Entry
	l.Subscribe(func(entries []domain.Entry) {
		calls = append(calls, "first")
		seen = append(seen, entries)
	})
	cancel := l.Subscribe(func([]domain.Entry) { calls = append(calls, "second") })

	_, err := l.Submit(ctx, "alice", 5, "")
	require.NoError(t, err)
	cancel()
	_, err = l.Submit(ctx, "bob", 2, "")
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second", "first"}, calls)
	require.Len(t, seen, 2)
	assert.Len(t, seen[0], 1)
	assert.Len(t, seen[1], 2)
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger()

	for _, r := range []int{5, 5, 4, 1} {
		_, err := l.Submit(ctx, "alice", r, "")
		require.NoError(t, err)
	}

	s := l.Summary()
	assert.Equal(t, 4, s.Count)
	assert.Equal(t, "3.8", s.Average.StringFixed(1))
	assert.Equal(t, [domain.MaxRating]int{1, 0, 0, 1, 2}, s.Histogram)
}

func TestSubmit_ConcurrentWritersAllRecorded(t *testing.T) {
	ctx := context.Background()
	l := NewLedger(logger.Discard())

	var g errgroup.Group
	for i := 0; i < 50; i++ {
		rating := i%5 + 1
		g.Go(func() error {
			_, err := l.Submit(ctx, "alice", rating, "")
			return err
		})
	}
	require.NoError(t, g.Wait())

	entries := l.Entries()
	require.Len(t, entries, 50)
	ids := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		ids[e.ID] = struct{}{}
	}
	assert.Len(t, ids, 50)
	assert.Equal(t, [domain.MaxRating]int{10, 10, 10, 10, 10}, l.Summary().Histogram)
}
