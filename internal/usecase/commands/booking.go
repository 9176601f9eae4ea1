package commands

import (
	"context"
	"log/slog"

	"eventtix/internal/domain/booking"
	"eventtix/internal/domain/reservation"
	"eventtix/internal/infra"
	"eventtix/internal/pkg/clock"
	"eventtix/internal/pkg/config"
	"eventtix/internal/pkg/errs"
	"eventtix/internal/usecase/queries"
	"eventtix/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking_mock.go -package=commandsmock

const (
	statRegistrations = "registrations"

	topicBookingConfirmed = "booking.confirmed"
)

type FinalizeInput struct {
	ReservationID uuid.UUID
	PaymentRef    *string
}

type FinalizeResult struct {
	Booking *queries.BookingView
	// Replayed marks the idempotent path: the hold was already paid and the
	// existing booking is returned without side effects.
	Replayed bool
}

type BookingCommands interface {
	Finalize(ctx context.Context, in FinalizeInput, userID uuid.UUID) (*FinalizeResult, error)
	CreatePaymentIntent(ctx context.Context, reservationID, userID uuid.UUID) (*PaymentIntent, error)
}

type bookingCommandsImpl struct {
	uow            shared.UnitOfWork
	stats          shared.StatsRepository
	gateway        PaymentGateway
	publisher      NotificationPublisher
	bookingQueries queries.BookingQueries
	clock          clock.Clock
	cfg            config.ReservationConfig
	logger         *slog.Logger
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	stats shared.StatsRepository,
	gateway PaymentGateway,
	publisher NotificationPublisher,
	bookingQueries queries.BookingQueries,
	clk clock.Clock,
	cfg config.ReservationConfig,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:            uow,
		stats:          stats,
		gateway:        gateway,
		publisher:      publisher,
		bookingQueries: bookingQueries,
		clock:          clk,
		cfg:            cfg,
		logger:         logger,
	}
}

func (uc *bookingCommandsImpl) Finalize(
	ctx context.Context,
	in FinalizeInput,
	userID uuid.UUID,
) (*FinalizeResult, error) {
	now := uc.clock.Now()

	snap, err := uc.readOwnedReservation(ctx, in.ReservationID, userID)
	if err != nil {
		return nil, err
	}

	switch snap.Status {
	case reservation.StatusPaid:
		return uc.replayExisting(ctx, snap)
	case reservation.StatusReserved:
		// fallthrough to the transition below
	default:
		return nil, ErrInvalidState
	}
	if snap.IsExpiredAt(now) {
		return nil, ErrReservationExpired
	}

	// Gateway verification happens before the transaction; presence of a
	// reference alone is not enough.
	if snap.TotalAmountCents > 0 {
		if err = uc.verifyPayment(ctx, in.PaymentRef, snap.TotalAmountCents); err != nil {
			return nil, err
		}
	}

	var (
		bookingID uuid.UUID
		replayed  bool
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rows, txErr := tx.Reservations().TransitionStatus(ctx, tx.DB(), snap.ID,
			reservation.StatusReserved, reservation.StatusPaid, now)
		if txErr != nil {
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}
		if rows == 0 {
			// Lost the CAS race; re-read to classify.
			current, rdErr := tx.Reads().ReservationByID(ctx, snap.ID)
			if rdErr != nil {
				return errs.Mark(rdErr, ErrDatabaseOperationFailed)
			}
			switch {
			case current.Status == reservation.StatusPaid:
				existing, bErr := tx.Reads().BookingByEventAndUser(ctx, snap.EventID, snap.UserID)
				if bErr != nil {
					return errs.Mark(bErr, ErrDatabaseOperationFailed)
				}
				bookingID = existing.ID
				replayed = true
				return nil
			case current.IsExpiredAt(now):
				return ErrReservationExpired
			default:
				return ErrInvalidState
			}
		}

		bk, txErr := booking.NewBooking(snap.EventID, snap.UserID, snap.TicketTypeID, snap.Quantity, now)
		if txErr != nil {
			return errs.Mark(txErr, ErrInvalidState)
		}
		id, txErr := tx.Bookings().Create(ctx, tx.DB(), bk)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindDuplicateKey) {
				return ErrAlreadyRegistered
			}
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}
		bookingID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := uc.bookingQueries.GetByIDSystem(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if replayed {
		return &FinalizeResult{Booking: view, Replayed: true}, nil
	}

	uc.recordSideEffects(ctx, view, snap.TotalAmountCents)
	return &FinalizeResult{Booking: view, Replayed: false}, nil
}

func (uc *bookingCommandsImpl) CreatePaymentIntent(
	ctx context.Context,
	reservationID, userID uuid.UUID,
) (*PaymentIntent, error) {
	now := uc.clock.Now()

	snap, err := uc.readOwnedReservation(ctx, reservationID, userID)
	if err != nil {
		return nil, err
	}
	if snap.Status != reservation.StatusReserved {
		return nil, ErrInvalidState
	}
	if snap.IsExpiredAt(now) {
		return nil, ErrReservationExpired
	}
	if snap.TotalAmountCents == 0 {
		return nil, ErrNoPaymentDue
	}

	// Pure delegation; no state mutation.
	intent, err := uc.gateway.CreateIntent(ctx, snap.TotalAmountCents, uc.cfg.Currency, map[string]string{
		"reservation_id": snap.ID.String(),
		"event_id":       snap.EventID.String(),
		"user_id":        snap.UserID.String(),
	})
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentNotVerified)
	}
	return intent, nil
}

func (uc *bookingCommandsImpl) readOwnedReservation(
	ctx context.Context,
	reservationID, userID uuid.UUID,
) (*shared.ReservationSnapshot, error) {
	snap, err := uc.uow.CommandReads().ReservationByID(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snap.UserID != userID {
		return nil, ErrNotOwned
	}
	return snap, nil
}

func (uc *bookingCommandsImpl) replayExisting(
	ctx context.Context,
	snap *shared.ReservationSnapshot,
) (*FinalizeResult, error) {
	existing, err := uc.uow.CommandReads().BookingByEventAndUser(ctx, snap.EventID, snap.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Paid hold without its booking should not happen; both are
			// written in one transaction.
			return nil, errs.Mark(errs.New("paid reservation missing booking"), ErrDatabaseOperationFailed)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := uc.bookingQueries.GetByIDSystem(ctx, existing.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return &FinalizeResult{Booking: view, Replayed: true}, nil
}

func (uc *bookingCommandsImpl) verifyPayment(ctx context.Context, paymentRef *string, amountCents int64) error {
	if paymentRef == nil || *paymentRef == "" {
		return ErrPaymentRequired
	}

	status, err := uc.gateway.GetStatus(ctx, *paymentRef)
	if err != nil {
		return errs.Mark(err, ErrPaymentNotVerified)
	}
	if status.Status != PaymentSucceeded {
		return ErrPaymentNotVerified
	}
	if status.AmountCents != amountCents {
		return ErrPaymentNotVerified
	}
	return nil
}

// recordSideEffects runs the post-commit, non-transactional effects: the
// eventually-consistent counter and the fire-and-forget notification. Neither
// may fail the booking.
func (uc *bookingCommandsImpl) recordSideEffects(ctx context.Context, view *queries.BookingView, amountCents int64) {
	if err := uc.stats.Increment(ctx, view.EventID, statRegistrations, int64(view.Quantity)); err != nil {
		uc.logger.Warn("failed to increment registration stats",
			"event_id", view.EventID, "error", err.Error())
	}

	payload := BookingConfirmedPayload{
		BookingID:    view.ID,
		EventID:      view.EventID,
		UserID:       view.UserID,
		TicketTypeID: view.TicketTypeID,
		Quantity:     view.Quantity,
		AmountCents:  amountCents,
	}
	if err := uc.publisher.Publish(topicBookingConfirmed, payload); err != nil {
		uc.logger.Warn("failed to publish booking confirmation",
			"booking_id", view.ID, "error", err.Error())
	}
}
