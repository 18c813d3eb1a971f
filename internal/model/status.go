package model

import (
	"errors"
	"fmt"
)

// OrderStatus is derived from the two order flags and never stored.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusFulfilled OrderStatus = "fulfilled"
	StatusPaid      OrderStatus = "paid"
	StatusComplete  OrderStatus = "complete"
)

func CompositeStatus(isFulfilled, isPaid bool) OrderStatus {
	switch {
	case isFulfilled && isPaid:
		return StatusComplete
	case isFulfilled:
		return StatusFulfilled
	case isPaid:
		return StatusPaid
	default:
		return StatusPending
	}
}

func (s OrderStatus) Text() string {
	switch s {
	case StatusComplete:
		return "Complete"
	case StatusFulfilled:
		return "Fulfilled"
	case StatusPaid:
		return "Paid"
	default:
		return "Pending"
	}
}

func (s OrderStatus) Color() string {
	switch s {
	case StatusComplete:
		return "green"
	case StatusFulfilled:
		return "blue"
	case StatusPaid:
		return "emerald"
	default:
		return "yellow"
	}
}

var ErrInvalidStatusFilter = errors.New("invalid status filter")

// StatusFilter selects orders by composite status; FilterAll matches everything.
type StatusFilter string

const FilterAll StatusFilter = "all"

func ParseStatusFilter(raw string) (StatusFilter, error) {
	switch f := StatusFilter(raw); f {
	case "":
		return FilterAll, nil
	case FilterAll,
		StatusFilter(StatusPending),
		StatusFilter(StatusFulfilled),
		StatusFilter(StatusPaid),
		StatusFilter(StatusComplete):
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatusFilter, raw)
}

func (f StatusFilter) Match(o *Order) bool {
	if f == FilterAll || f == "" {
		return true
	}
	return StatusFilter(o.CompositeStatus()) == f
}

func FilterOrders(orders []*Order, f StatusFilter) []*Order {
	filtered := make([]*Order, 0, len(orders))
	for _, o := range orders {
		if f.Match(o) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}
