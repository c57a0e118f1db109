package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dwikikusuma/refill-store/internal/rating/domain"
	"github.com/dwikikusuma/refill-store/pkg/observable"
)

var (
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrCommentTooLong = errors.New("comment is too long")
	ErrInvalidInput   = errors.New("invalid input")
)

const DefaultCommentMax = 150

// Ledger is the append-only record of submitted ratings.
type Ledger struct {
	entries    *observable.List[domain.Entry]
	commentMax int
	now        func() time.Time
	newID      func() (string, error)
	log        *slog.Logger
}

type Option func(*Ledger)

func WithCommentMax(n int) Option {
	return func(l *Ledger) {
		if n > 0 {
			l.commentMax = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

func WithIDGenerator(gen func() (string, error)) Option {
	return func(l *Ledger) { l.newID = gen }
}

func NewLedger(log *slog.Logger, opts ...Option) *Ledger {
	if log == nil {
		log = slog.Default()
	}
	l := &Ledger{
		entries:    observable.NewList[domain.Entry](),
		commentMax: DefaultCommentMax,
		now:        time.Now,
		newID: func() (string, error) {
			id, err := uuid.NewV7()
			if err != nil {
				return "", err
			}
			return id.String(), nil
		},
		log: log,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Submit validates and appends a rating. A rejected submission leaves the
// ledger untouched and notifies no one.
func (l *Ledger) Submit(ctx context.Context, author string, rating int, comment string) (domain.Entry, error) {
	author = strings.TrimSpace(author)
	if author == "" {
		return domain.Entry{}, ErrInvalidInput
	}
	if rating < domain.MinRating || rating > domain.MaxRating {
		return domain.Entry{}, fmt.Errorf("%w: got %d", ErrInvalidRating, rating)
	}
	comment = strings.TrimSpace(comment)
	if n := utf8.RuneCountInString(comment); n > l.commentMax {
		return domain.Entry{}, fmt.Errorf("%w: %d characters, limit %d", ErrCommentTooLong, n, l.commentMax)
	}

	id, err := l.newID()
	if err != nil {
		return domain.Entry{}, fmt.Errorf("generate rating id: %w", err)
	}

	entry := domain.Entry{
		ID:          id,
		Rating:      rating,
		Comment:     comment,
		Author:      author,
		SubmittedAt: l.now(),
	}
	l.entries.Append(entry)

	l.log.InfoContext(ctx, "rating submitted",
		slog.String("rating_id", entry.ID),
		slog.String("author", author),
		slog.Int("rating", rating))
	return entry, nil
}

// Entries returns all ratings in submission order.
func (l *Ledger) Entries() []domain.Entry {
	return l.entries.Snapshot()
}

func (l *Ledger) Summary() domain.Summary {
	return domain.Summarize(l.entries.Snapshot())
}

func (l *Ledger) Subscribe(fn func([]domain.Entry)) (cancel func()) {
	return l.entries.Subscribe(fn)
}
