package domain

import "fmt"

// Status is the fulfillment state of an order.
//
//	pending -> preparing -> on_delivery -> delivered
//	pending -> cancelled
type Status string

const (
	StatusPending    Status = "pending"
	StatusPreparing  Status = "preparing"
	StatusOnDelivery Status = "on_delivery"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

var allStatuses = []Status{StatusPending, StatusPreparing, StatusOnDelivery, StatusDelivered, StatusCancelled}

func ParseStatus(s string) (Status, error) {
	for _, st := range allStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Next is the single forward fulfillment step from s, if any.
func (s Status) Next() (Status, bool) {
	switch s {
	case StatusPending:
		return StatusPreparing, true
	case StatusPreparing:
		return StatusOnDelivery, true
	case StatusOnDelivery:
		return StatusDelivered, true
	default:
		return "", false
	}
}

func (s Status) CanTransitionTo(target Status) bool {
	if next, ok := s.Next(); ok && next == target {
		return true
	}
	return s == StatusPending && target == StatusCancelled
}
