package commands

import (
	"fmt"

	"eventtix/internal/pkg/errs"
)

var (
	ErrEventNotFound        = errs.New("event not found")
	ErrTicketTypeNotFound   = errs.New("ticket type not found")
	ErrReservationNotFound  = errs.New("reservation not found")
	ErrTicketTypeMismatch   = errs.New("ticket type does not belong to event")
	ErrTicketTypeRequired   = errs.New("ticketed event requires a ticket type")
	ErrInvalidQuantity      = errs.New("quantity must be positive")
	ErrEventNotPublished    = errs.New("event is not published")
	ErrRegistrationClosed   = errs.New("registration deadline has passed")
	ErrSalesWindowClosed    = errs.New("ticket sales window is closed")
	ErrInsufficientCapacity = errs.New("insufficient capacity")
	ErrInvalidState         = errs.New("reservation is not in a valid state for this operation")
	ErrReservationExpired   = errs.New("reservation hold has expired")
	ErrNotOwned             = errs.New("reservation not owned by user")
	ErrPaymentRequired      = errs.New("payment confirmation required")
	ErrPaymentNotVerified   = errs.New("payment could not be verified")
	ErrNoPaymentDue         = errs.New("reservation has no amount due")
	ErrAlreadyRegistered    = errs.New("user already has a booking for this event")

	// Error markers for categorization
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// CapacityError carries the remaining slot count for client display. It is
// always marked with ErrInsufficientCapacity so errors.Is matching works.
type CapacityError struct {
	Remaining int32
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("insufficient capacity: %d remaining", e.Remaining)
}

func newCapacityError(remaining int32) error {
	if remaining < 0 {
		remaining = 0
	}
	return errs.Mark(&CapacityError{Remaining: remaining}, ErrInsufficientCapacity)
}
