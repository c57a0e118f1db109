package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Entry is a submitted service rating. Entries are never edited or removed.
type Entry struct {
	ID          string
	Rating      int
	Comment     string
	Author      string
	SubmittedAt time.Time
}

type Summary struct {
	Count int
	// Average is rounded to one decimal place; zero when Count is zero.
	Average decimal.Decimal
	// Histogram[i] counts entries rated i+1.
	Histogram [MaxRating]int
}

func Summarize(entries []Entry) Summary {
	var (
		s   Summary
		sum int64
	)
	for _, e := range entries {
		if e.Rating < MinRating || e.Rating > MaxRating {
			continue
		}
		s.Count++
		s.Histogram[e.Rating-1]++
		sum += int64(e.Rating)
	}
	if s.Count > 0 {
		s.Average = decimal.NewFromInt(sum).DivRound(decimal.NewFromInt(int64(s.Count)), 1)
	}
	return s
}
