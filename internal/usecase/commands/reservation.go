package commands

import (
	"context"
	"errors"
	"time"

	"eventtix/internal/domain/event"
	"eventtix/internal/domain/inventory"
	"eventtix/internal/domain/reservation"
	"eventtix/internal/infra"
	"eventtix/internal/pkg/clock"
	"eventtix/internal/pkg/config"
	"eventtix/internal/pkg/errs"
	"eventtix/internal/usecase/queries"
	"eventtix/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation_mock.go -package=commandsmock

type ReserveInput struct {
	EventID      uuid.UUID
	TicketTypeID *uuid.UUID
	Quantity     int32
}

type ReservationCommands interface {
	Reserve(ctx context.Context, in ReserveInput, userID uuid.UUID) (*queries.ReservationView, error)
	Cancel(ctx context.Context, reservationID, userID uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow                shared.UnitOfWork
	reservationQueries queries.ReservationQueries
	clock              clock.Clock
	cfg                config.ReservationConfig
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	reservationQueries queries.ReservationQueries,
	clk clock.Clock,
	cfg config.ReservationConfig,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:                uow,
		reservationQueries: reservationQueries,
		clock:              clk,
		cfg:                cfg,
	}
}

func (uc *reservationCommandsImpl) Reserve(
	ctx context.Context,
	in ReserveInput,
	userID uuid.UUID,
) (*queries.ReservationView, error) {
	if in.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	now := uc.clock.Now()
	target, err := uc.resolveTarget(ctx, in, now)
	if err != nil {
		return nil, err
	}

	hold, err := reservation.NewHold(
		in.EventID,
		in.TicketTypeID,
		userID,
		in.Quantity,
		reservation.NewMoney(target.UnitPriceCents),
		now,
		uc.cfg.HoldTTL,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidQuantity)
	}

	var holdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Reclaim lazily-expired holds first so their quantity is back in the
		// counter before admission.
		reclaimed, txErr := tx.Reservations().ReleaseExpired(ctx, tx.DB(), target.Kind, target.ID, now)
		if txErr != nil {
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}
		if reclaimed > 0 {
			if txErr = tx.Capacity().Release(ctx, tx.DB(), target.Kind, target.ID, reclaimed, now); txErr != nil {
				return errs.Mark(txErr, ErrDatabaseOperationFailed)
			}
		}

		if txErr = tx.Capacity().Ensure(ctx, tx.DB(), target, now); txErr != nil {
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}

		// Conditional increment is the sole admission gate; aggregate counting
		// stays a reporting view.
		admitted, txErr := tx.Capacity().TryConsume(ctx, tx.DB(), target.Kind, target.ID, in.Quantity, now)
		if txErr != nil {
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}
		if !admitted {
			remaining, remErr := tx.Capacity().Remaining(ctx, tx.DB(), target.Kind, target.ID)
			if remErr != nil {
				remaining = 0
			}
			return newCapacityError(remaining)
		}

		id, txErr := tx.Reservations().Create(ctx, tx.DB(), hold)
		if txErr != nil {
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}
		holdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.reservationQueries.GetByIDSystem(ctx, holdID)
}

func (uc *reservationCommandsImpl) Cancel(ctx context.Context, reservationID, userID uuid.UUID) error {
	now := uc.clock.Now()

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReservationByID(ctx, reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if snap.UserID != userID {
			return ErrNotOwned
		}
		if snap.Status != reservation.StatusReserved {
			return ErrInvalidState
		}
		// A lazily-expired hold is terminal; cancel must not report success.
		if snap.IsExpiredAt(now) {
			return ErrInvalidState
		}

		rows, err := tx.Reservations().TransitionStatus(ctx, tx.DB(), reservationID,
			reservation.StatusReserved, reservation.StatusReleased, now)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if rows == 0 {
			// Lost a race against a concurrent finalize or a TTL boundary.
			return ErrInvalidState
		}

		kind, targetID := snap.Target()
		if err = tx.Capacity().Release(ctx, tx.DB(), kind, targetID, snap.Quantity, now); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// resolveTarget loads the capacity target snapshot and enforces the admission
// preconditions: sales window for ticket types, publication plus registration
// deadline for fixed-price events.
func (uc *reservationCommandsImpl) resolveTarget(
	ctx context.Context,
	in ReserveInput,
	now time.Time,
) (inventory.Target, error) {
	reads := uc.uow.CommandReads()

	if in.TicketTypeID != nil {
		tt, err := reads.TicketTypeByID(ctx, *in.TicketTypeID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return inventory.Target{}, ErrTicketTypeNotFound
			}
			return inventory.Target{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if tt.EventID != in.EventID {
			return inventory.Target{}, ErrTicketTypeMismatch
		}

		window, err := event.NewSalesWindow(tt.SalesStartAt, tt.SalesEndAt)
		if err != nil {
			return inventory.Target{}, ErrSalesWindowClosed
		}
		if err = window.CheckOpen(now); err != nil {
			return inventory.Target{}, ErrSalesWindowClosed
		}
		return tt.Target(), nil
	}

	ev, err := reads.EventByID(ctx, in.EventID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return inventory.Target{}, ErrEventNotFound
		}
		return inventory.Target{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if ev.PricingMode == event.PricingTicketed {
		return inventory.Target{}, ErrTicketTypeRequired
	}

	if err = event.CheckFixedSaleOpen(ev.Status, ev.RegistrationDeadline, now); err != nil {
		switch {
		case errors.Is(err, event.ErrNotPublished):
			return inventory.Target{}, ErrEventNotPublished
		case errors.Is(err, event.ErrRegistrationClosed):
			return inventory.Target{}, ErrRegistrationClosed
		default:
			return inventory.Target{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return ev.FixedTarget(), nil
}
