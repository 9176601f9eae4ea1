package payment

import (
	"context"
	"sync"

	"eventtix/internal/pkg/errs"
	"eventtix/internal/usecase/commands"

	"github.com/google/uuid"
)

var ErrIntentNotFound = errs.New("payment intent not found")

type intentRecord struct {
	amountCents int64
	currency    string
	metadata    map[string]string
	status      commands.PaymentStatus
}

// MockGateway is an in-memory stand-in for a real payment provider. Intents
// start pending; tests and local tooling flip them with MarkSucceeded or
// MarkFailed.
type MockGateway struct {
	mu      sync.Mutex
	intents map[string]*intentRecord
}

func NewMockGateway() *MockGateway {
	return &MockGateway{intents: make(map[string]*intentRecord)}
}

func (g *MockGateway) CreateIntent(
	_ context.Context,
	amountCents int64,
	currency string,
	metadata map[string]string,
) (*commands.PaymentIntent, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := "pi_" + uuid.NewString()
	g.intents[id] = &intentRecord{
		amountCents: amountCents,
		currency:    currency,
		metadata:    metadata,
		status:      commands.PaymentPending,
	}

	return &commands.PaymentIntent{
		ID:           id,
		ClientSecret: id + "_secret_" + uuid.NewString(),
	}, nil
}

func (g *MockGateway) GetStatus(_ context.Context, paymentRef string) (*commands.PaymentStatusResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	rec, ok := g.intents[paymentRef]
	if !ok {
		return nil, ErrIntentNotFound
	}
	return &commands.PaymentStatusResult{
		Status:      rec.status,
		AmountCents: rec.amountCents,
	}, nil
}

// MarkSucceeded simulates the provider confirming payment.
func (g *MockGateway) MarkSucceeded(paymentRef string) bool {
	return g.setStatus(paymentRef, commands.PaymentSucceeded)
}

// MarkFailed simulates a declined or abandoned payment.
func (g *MockGateway) MarkFailed(paymentRef string) bool {
	return g.setStatus(paymentRef, commands.PaymentFailed)
}

func (g *MockGateway) setStatus(paymentRef string, status commands.PaymentStatus) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	rec, ok := g.intents[paymentRef]
	if !ok {
		return false
	}
	rec.status = status
	return true
}
