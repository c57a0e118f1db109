package domain

import "errors"

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotArchivable     = errors.New("only delivered or cancelled orders can be archived")
)
