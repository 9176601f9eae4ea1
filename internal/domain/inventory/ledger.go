package inventory

import (
	"github.com/google/uuid"
)

// TargetKind distinguishes the two capacity scopes: a fixed-price event's own
// capacity, or a ticket type's capacity within a ticketed event.
type TargetKind string

const (
	TargetEvent      TargetKind = "event"
	TargetTicketType TargetKind = "ticket_type"
)

func (k TargetKind) String() string {
	return string(k)
}

// Target identifies one capacity pool together with the catalog values the
// admission path needs. Capacity targets are owned by the event catalog; this
// struct is a point-in-time snapshot, never a persisted entity of this core.
type Target struct {
	Kind           TargetKind
	ID             uuid.UUID
	EventID        uuid.UUID
	Capacity       int32
	UnitPriceCents int64
}

// Ledger holds the aggregate counts that make up the audit view of a target's
// consumption. Confirmed sums registered booking quantities; ActiveHolds sums
// reserved, unexpired hold quantities.
type Ledger struct {
	Capacity    int32
	Confirmed   int32
	ActiveHolds int32
}

// Available computes capacity − confirmed − activeHolds. The result can be
// negative when a pool was oversold; callers that display it should clamp.
func (l Ledger) Available() int32 {
	return l.Capacity - l.Confirmed - l.ActiveHolds
}

// Remaining is Available clamped at zero for client display.
func (l Ledger) Remaining() int32 {
	if a := l.Available(); a > 0 {
		return a
	}
	return 0
}
