package event

import (
	"errors"
	"time"
)

var (
	ErrNotPublished       = errors.New("event is not published")
	ErrRegistrationClosed = errors.New("registration deadline has passed")
	ErrSalesWindowClosed  = errors.New("ticket sales window is closed")
	ErrInvalidSalesWindow = errors.New("sales window start must be before end")
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusCancelled:
		return true
	default:
		return false
	}
}

// PricingMode selects which capacity/price fields apply to an event. Exactly
// one mode applies per event; a ticketed event's top-level capacity and price
// are unused.
type PricingMode string

const (
	PricingFixed    PricingMode = "fixed"
	PricingTicketed PricingMode = "ticketed"
)

// SalesWindow is the half-open interval [start, end) during which a ticket
// type may be reserved.
type SalesWindow struct {
	start time.Time
	end   time.Time
}

func NewSalesWindow(start, end time.Time) (SalesWindow, error) {
	if !start.Before(end) {
		return SalesWindow{}, ErrInvalidSalesWindow
	}
	return SalesWindow{start: start, end: end}, nil
}

func (w SalesWindow) Start() time.Time { return w.start }
func (w SalesWindow) End() time.Time   { return w.end }

func (w SalesWindow) Contains(now time.Time) bool {
	return !now.Before(w.start) && now.Before(w.end)
}

func (w SalesWindow) CheckOpen(now time.Time) error {
	if !w.Contains(now) {
		return ErrSalesWindowClosed
	}
	return nil
}

// CheckFixedSaleOpen applies the fixed-price admission preconditions: the
// event must be published and, when a registration deadline exists, now must
// precede it.
func CheckFixedSaleOpen(status Status, deadline *time.Time, now time.Time) error {
	if status != StatusPublished {
		return ErrNotPublished
	}
	if deadline != nil && !now.Before(*deadline) {
		return ErrRegistrationClosed
	}
	return nil
}
