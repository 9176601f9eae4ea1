package reservation

import (
	"errors"
	"time"

	"eventtix/internal/domain/inventory"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrInvalidTTL      = errors.New("hold TTL must be positive")
	ErrInvalidStatus   = errors.New("invalid reservation status")
)

// Hold is a time-limited claim on capacity. While its status is reserved it
// counts toward consumed capacity only if expiresAt > now at the time of
// computation; expiry is evaluated lazily, never by an eager state rewrite.
type Hold struct {
	id           uuid.UUID
	eventID      uuid.UUID
	ticketTypeID *uuid.UUID
	userID       uuid.UUID
	quantity     int32
	unitPrice    Money
	totalAmount  Money
	status       Status
	expiresAt    time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewHold(
	eventID uuid.UUID,
	ticketTypeID *uuid.UUID,
	userID uuid.UUID,
	quantity int32,
	unitPrice Money,
	now time.Time,
	ttl time.Duration,
) (*Hold, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if ttl <= 0 {
		return nil, ErrInvalidTTL
	}

	return &Hold{
		id:           uuid.New(),
		eventID:      eventID,
		ticketTypeID: ticketTypeID,
		userID:       userID,
		quantity:     quantity,
		unitPrice:    unitPrice,
		totalAmount:  unitPrice.Times(quantity),
		status:       StatusReserved,
		expiresAt:    now.Add(ttl),
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructHold(
	id, eventID uuid.UUID,
	ticketTypeID *uuid.UUID,
	userID uuid.UUID,
	quantity int32,
	unitPrice, totalAmount Money,
	status Status,
	expiresAt, createdAt, updatedAt time.Time,
) *Hold {
	return &Hold{
		id:           id,
		eventID:      eventID,
		ticketTypeID: ticketTypeID,
		userID:       userID,
		quantity:     quantity,
		unitPrice:    unitPrice,
		totalAmount:  totalAmount,
		status:       status,
		expiresAt:    expiresAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// IsExpiredAt reports the lazy expiry classification: a stored reserved hold
// whose TTL has elapsed.
func (h *Hold) IsExpiredAt(now time.Time) bool {
	return h.status == StatusReserved && !h.expiresAt.After(now)
}

// IsActiveAt reports whether the hold currently counts toward capacity.
func (h *Hold) IsActiveAt(now time.Time) bool {
	return h.status == StatusReserved && h.expiresAt.After(now)
}

// EffectiveStatusAt applies lazy expiry on top of the stored status.
func (h *Hold) EffectiveStatusAt(now time.Time) Status {
	if h.IsExpiredAt(now) {
		return StatusExpired
	}
	return h.status
}

// IsPriced reports whether finalization requires a verified payment.
func (h *Hold) IsPriced() bool {
	return !h.totalAmount.IsZero()
}

// Target resolves the capacity pool this hold consumes.
func (h *Hold) Target() (inventory.TargetKind, uuid.UUID) {
	if h.ticketTypeID != nil {
		return inventory.TargetTicketType, *h.ticketTypeID
	}
	return inventory.TargetEvent, h.eventID
}

func (h *Hold) ID() uuid.UUID            { return h.id }
func (h *Hold) EventID() uuid.UUID       { return h.eventID }
func (h *Hold) TicketTypeID() *uuid.UUID { return h.ticketTypeID }
func (h *Hold) UserID() uuid.UUID        { return h.userID }
func (h *Hold) Quantity() int32          { return h.quantity }
func (h *Hold) UnitPrice() Money         { return h.unitPrice }
func (h *Hold) TotalAmount() Money       { return h.totalAmount }
func (h *Hold) Status() Status           { return h.status }
func (h *Hold) ExpiresAt() time.Time     { return h.expiresAt }
func (h *Hold) CreatedAt() time.Time     { return h.createdAt }
func (h *Hold) UpdatedAt() time.Time     { return h.updatedAt }
