//go:build unit

package builder

import (
	"time"

	reqdto "eventtix/internal/handler/dto/request"
	"eventtix/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	EventID          uuid.UUID
	EventTitle       string
	TicketTypeID     *uuid.UUID
	TicketTypeName   *string
	UserID           uuid.UUID
	Quantity         int32
	UnitPriceCents   int64
	Status           string
	ExpiresAt        time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	return &ReservationBuilder{
		EventID:        uuid.New(),
		EventTitle:     "Test Event",
		UserID:         uuid.New(),
		Quantity:       2,
		UnitPriceCents: 2500,
		Status:         "reserved",
		ExpiresAt:      now.Add(10 * time.Minute),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) WithUserID(userID uuid.UUID) *ReservationBuilder {
	r.UserID = userID
	return r
}

func (r *ReservationBuilder) WithStatus(status string) *ReservationBuilder {
	r.Status = status
	return r
}

func (r *ReservationBuilder) BuildReserveRequestDTO() reqdto.ReserveRequest {
	return reqdto.ReserveRequest{
		TicketTypeID: r.TicketTypeID,
		Quantity:     r.Quantity,
	}
}

func (r *ReservationBuilder) BuildViewQuery() *queries.ReservationView {
	return &queries.ReservationView{
		ID:               uuid.New(),
		EventID:          r.EventID,
		EventTitle:       r.EventTitle,
		TicketTypeID:     r.TicketTypeID,
		TicketTypeName:   r.TicketTypeName,
		UserID:           r.UserID,
		Quantity:         r.Quantity,
		UnitPriceCents:   r.UnitPriceCents,
		TotalAmountCents: r.UnitPriceCents * int64(r.Quantity),
		Status:           r.Status,
		ExpiresAt:        r.ExpiresAt,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func (r *ReservationBuilder) BuildListItem() *queries.ReservationListItem {
	return &queries.ReservationListItem{
		ID:               uuid.New(),
		EventID:          r.EventID,
		EventTitle:       r.EventTitle,
		TicketTypeID:     r.TicketTypeID,
		Quantity:         r.Quantity,
		TotalAmountCents: r.UnitPriceCents * int64(r.Quantity),
		Status:           r.Status,
		ExpiresAt:        r.ExpiresAt,
		CreatedAt:        r.CreatedAt,
	}
}
