package commands

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

type PaymentStatus string

const (
	PaymentSucceeded PaymentStatus = "succeeded"
	PaymentPending   PaymentStatus = "pending"
	PaymentFailed    PaymentStatus = "failed"
)

type PaymentIntent struct {
	ID           string
	ClientSecret string
}

type PaymentStatusResult struct {
	Status      PaymentStatus
	AmountCents int64
}

// PaymentGateway is the external payment collaborator. The mock implementation
// lives in infra/payment; a production adapter would wrap the provider SDK.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (*PaymentIntent, error)
	GetStatus(ctx context.Context, paymentRef string) (*PaymentStatusResult, error)
}

// NotificationPublisher is fire-and-forget: callers never await delivery and
// never fail a booking because of it.
type NotificationPublisher interface {
	Publish(eventName string, payload any) error
}

// BookingConfirmedPayload is published after a successful finalize commit.
type BookingConfirmedPayload struct {
	BookingID    uuid.UUID  `json:"booking_id"`
	EventID      uuid.UUID  `json:"event_id"`
	UserID       uuid.UUID  `json:"user_id"`
	TicketTypeID *uuid.UUID `json:"ticket_type_id,omitempty"`
	Quantity     int32      `json:"quantity"`
	AmountCents  int64      `json:"amount_cents"`
}
