package shared

import (
	"context"
	"time"

	"eventtix/internal/domain/booking"
	"eventtix/internal/domain/inventory"
	"eventtix/internal/domain/reservation"
	"eventtix/internal/infra/sqlc"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Bookings() BookingRepository
	Capacity() CapacityRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	EventByID(ctx context.Context, id uuid.UUID) (*EventSnapshot, error)
	TicketTypeByID(ctx context.Context, id uuid.UUID) (*TicketTypeSnapshot, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	BookingByEventAndUser(ctx context.Context, eventID, userID uuid.UUID) (*BookingSnapshot, error)
	// LedgerCounts aggregates confirmed and active-hold quantities for one
	// target. Reporting/audit only; the capacity counter is the gate.
	LedgerCounts(ctx context.Context, kind inventory.TargetKind, targetID uuid.UUID, now time.Time) (confirmed, activeHolds int32, err error)
}

type ReservationRepository interface {
	Create(ctx context.Context, db sqlc.DBTX, hold *reservation.Hold) (uuid.UUID, error)
	// TransitionStatus is a compare-and-swap on the status column; the row is
	// touched only when the stored status matches from and the hold has not
	// lazily expired. Returns affected row count.
	TransitionStatus(ctx context.Context, db sqlc.DBTX, id uuid.UUID, from, to reservation.Status, now time.Time) (int64, error)
	// ReleaseExpired rewrites lazily-expired holds for a target to expired and
	// returns the quantity reclaimed.
	ReleaseExpired(ctx context.Context, db sqlc.DBTX, kind inventory.TargetKind, targetID uuid.UUID, now time.Time) (int32, error)
}

type BookingRepository interface {
	Create(ctx context.Context, db sqlc.DBTX, bk *booking.Booking) (uuid.UUID, error)
}

type CapacityRepository interface {
	// Ensure upserts the counter row and refreshes its cached catalog capacity.
	Ensure(ctx context.Context, db sqlc.DBTX, target inventory.Target, now time.Time) error
	// TryConsume performs the conditional increment that admits a reservation.
	TryConsume(ctx context.Context, db sqlc.DBTX, kind inventory.TargetKind, targetID uuid.UUID, quantity int32, now time.Time) (bool, error)
	Release(ctx context.Context, db sqlc.DBTX, kind inventory.TargetKind, targetID uuid.UUID, quantity int32, now time.Time) error
	Remaining(ctx context.Context, db sqlc.DBTX, kind inventory.TargetKind, targetID uuid.UUID) (int32, error)
}

// StatsRepository is the eventually-consistent read-model updater. Callers
// invoke it outside the transaction boundary and tolerate failure.
type StatsRepository interface {
	Increment(ctx context.Context, eventID uuid.UUID, field string, delta int64) error
}
