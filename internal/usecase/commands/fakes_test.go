//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"eventtix/internal/domain/booking"
	"eventtix/internal/domain/event"
	"eventtix/internal/domain/inventory"
	"eventtix/internal/domain/reservation"
	"eventtix/internal/infra"
	"eventtix/internal/infra/payment"
	"eventtix/internal/infra/sqlc"
	"eventtix/internal/pkg/clock"
	"eventtix/internal/pkg/config"
	"eventtix/internal/usecase/commands"
	"eventtix/internal/usecase/queries"
	"eventtix/internal/usecase/shared"

	"github.com/google/uuid"
)

var errFakeNoRows = errors.New("no rows in fake store")

// ---------------------------------------------------------------------------
// In-memory state. The fake unit of work serializes transactions with a mutex
// and rolls back by restoring a deep copy, so the conditional capacity counter
// behaves like the real row-locked UPDATE.
// ---------------------------------------------------------------------------

type counterKey struct {
	kind inventory.TargetKind
	id   uuid.UUID
}

type counterRow struct {
	capacity int32
	consumed int32
}

type bookingKey struct {
	eventID uuid.UUID
	userID  uuid.UUID
}

type fakeState struct {
	events       map[uuid.UUID]shared.EventSnapshot
	ticketTypes  map[uuid.UUID]shared.TicketTypeSnapshot
	reservations map[uuid.UUID]*shared.ReservationSnapshot
	bookings     map[uuid.UUID]*shared.BookingSnapshot
	bookingIndex map[bookingKey]uuid.UUID
	counters     map[counterKey]*counterRow
}

func newFakeState() *fakeState {
	return &fakeState{
		events:       make(map[uuid.UUID]shared.EventSnapshot),
		ticketTypes:  make(map[uuid.UUID]shared.TicketTypeSnapshot),
		reservations: make(map[uuid.UUID]*shared.ReservationSnapshot),
		bookings:     make(map[uuid.UUID]*shared.BookingSnapshot),
		bookingIndex: make(map[bookingKey]uuid.UUID),
		counters:     make(map[counterKey]*counterRow),
	}
}

func (s *fakeState) clone() *fakeState {
	c := newFakeState()
	for k, v := range s.events {
		c.events[k] = v
	}
	for k, v := range s.ticketTypes {
		c.ticketTypes[k] = v
	}
	for k, v := range s.reservations {
		cp := *v
		c.reservations[k] = &cp
	}
	for k, v := range s.bookings {
		cp := *v
		c.bookings[k] = &cp
	}
	for k, v := range s.bookingIndex {
		c.bookingIndex[k] = v
	}
	for k, v := range s.counters {
		cp := *v
		c.counters[k] = &cp
	}
	return c
}

// ---------------------------------------------------------------------------
// Unit of work
// ---------------------------------------------------------------------------

type fakeUoW struct {
	mu    sync.Mutex
	state *fakeState
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{state: newFakeState()}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	backup := u.state.clone()
	if err := fn(ctx, &fakeTx{state: u.state}); err != nil {
		u.state = backup
		return err
	}
	return nil
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return fn(ctx, nil)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeReads{state: u.state, mu: &u.mu}
}

type fakeTx struct {
	state *fakeState
}

func (t *fakeTx) DB() sqlc.DBTX { return nil }

func (t *fakeTx) Reservations() shared.ReservationRepository {
	return &fakeReservationRepo{state: t.state}
}

func (t *fakeTx) Bookings() shared.BookingRepository {
	return &fakeBookingRepo{state: t.state}
}

func (t *fakeTx) Capacity() shared.CapacityRepository {
	return &fakeCapacityRepo{state: t.state}
}

func (t *fakeTx) Reads() shared.CommandReads {
	// Already inside the transaction lock.
	return &fakeReads{state: t.state}
}

// ---------------------------------------------------------------------------
// Command reads
// ---------------------------------------------------------------------------

type fakeReads struct {
	state *fakeState
	mu    *sync.Mutex // nil when already under the transaction lock
}

func (r *fakeReads) lock() func() {
	if r.mu == nil {
		return func() {}
	}
	r.mu.Lock()
	return r.mu.Unlock
}

func (r *fakeReads) EventByID(_ context.Context, id uuid.UUID) (*shared.EventSnapshot, error) {
	defer r.lock()()
	ev, ok := r.state.events[id]
	if !ok {
		return nil, infra.WrapRepoErr("event not found", errFakeNoRows, infra.KindNotFound)
	}
	return &ev, nil
}

func (r *fakeReads) TicketTypeByID(_ context.Context, id uuid.UUID) (*shared.TicketTypeSnapshot, error) {
	defer r.lock()()
	tt, ok := r.state.ticketTypes[id]
	if !ok {
		return nil, infra.WrapRepoErr("ticket type not found", errFakeNoRows, infra.KindNotFound)
	}
	return &tt, nil
}

func (r *fakeReads) ReservationByID(_ context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	defer r.lock()()
	snap, ok := r.state.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", errFakeNoRows, infra.KindNotFound)
	}
	cp := *snap
	return &cp, nil
}

func (r *fakeReads) BookingByEventAndUser(_ context.Context, eventID, userID uuid.UUID) (*shared.BookingSnapshot, error) {
	defer r.lock()()
	id, ok := r.state.bookingIndex[bookingKey{eventID: eventID, userID: userID}]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", errFakeNoRows, infra.KindNotFound)
	}
	cp := *r.state.bookings[id]
	return &cp, nil
}

func (r *fakeReads) LedgerCounts(
	_ context.Context,
	kind inventory.TargetKind,
	targetID uuid.UUID,
	now time.Time,
) (int32, int32, error) {
	defer r.lock()()
	var confirmed, activeHolds int32
	for _, bk := range r.state.bookings {
		if bk.Status == "registered" && matchesTarget(kind, targetID, bk.EventID, bk.TicketTypeID) {
			confirmed += bk.Quantity
		}
	}
	for _, snap := range r.state.reservations {
		if snap.Status == reservation.StatusReserved && snap.ExpiresAt.After(now) &&
			matchesTarget(kind, targetID, snap.EventID, snap.TicketTypeID) {
			activeHolds += snap.Quantity
		}
	}
	return confirmed, activeHolds, nil
}

func matchesTarget(kind inventory.TargetKind, targetID, eventID uuid.UUID, ticketTypeID *uuid.UUID) bool {
	if kind == inventory.TargetTicketType {
		return ticketTypeID != nil && *ticketTypeID == targetID
	}
	return ticketTypeID == nil && eventID == targetID
}

// ---------------------------------------------------------------------------
// Repositories
// ---------------------------------------------------------------------------

type fakeReservationRepo struct {
	state *fakeState
}

func (r *fakeReservationRepo) Create(_ context.Context, _ sqlc.DBTX, hold *reservation.Hold) (uuid.UUID, error) {
	r.state.reservations[hold.ID()] = &shared.ReservationSnapshot{
		ID:               hold.ID(),
		EventID:          hold.EventID(),
		TicketTypeID:     hold.TicketTypeID(),
		UserID:           hold.UserID(),
		Quantity:         hold.Quantity(),
		UnitPriceCents:   hold.UnitPrice().Cents(),
		TotalAmountCents: hold.TotalAmount().Cents(),
		Status:           hold.Status(),
		ExpiresAt:        hold.ExpiresAt(),
		CreatedAt:        hold.CreatedAt(),
	}
	return hold.ID(), nil
}

func (r *fakeReservationRepo) TransitionStatus(
	_ context.Context,
	_ sqlc.DBTX,
	id uuid.UUID,
	from, to reservation.Status,
	now time.Time,
) (int64, error) {
	snap, ok := r.state.reservations[id]
	if !ok {
		return 0, nil
	}
	if snap.Status != from || !snap.ExpiresAt.After(now) {
		return 0, nil
	}
	snap.Status = to
	return 1, nil
}

func (r *fakeReservationRepo) ReleaseExpired(
	_ context.Context,
	_ sqlc.DBTX,
	kind inventory.TargetKind,
	targetID uuid.UUID,
	now time.Time,
) (int32, error) {
	var reclaimed int32
	for _, snap := range r.state.reservations {
		if snap.Status == reservation.StatusReserved && !snap.ExpiresAt.After(now) &&
			matchesTarget(kind, targetID, snap.EventID, snap.TicketTypeID) {
			snap.Status = reservation.StatusExpired
			reclaimed += snap.Quantity
		}
	}
	return reclaimed, nil
}

type fakeBookingRepo struct {
	state *fakeState
}

func (r *fakeBookingRepo) Create(_ context.Context, _ sqlc.DBTX, bk *booking.Booking) (uuid.UUID, error) {
	key := bookingKey{eventID: bk.EventID(), userID: bk.UserID()}
	if _, exists := r.state.bookingIndex[key]; exists {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", errFakeNoRows, infra.KindDuplicateKey)
	}
	r.state.bookings[bk.ID()] = &shared.BookingSnapshot{
		ID:           bk.ID(),
		EventID:      bk.EventID(),
		UserID:       bk.UserID(),
		TicketTypeID: bk.TicketTypeID(),
		Quantity:     bk.Quantity(),
		Status:       bk.Status().String(),
		RegisteredAt: bk.RegisteredAt(),
	}
	r.state.bookingIndex[key] = bk.ID()
	return bk.ID(), nil
}

type fakeCapacityRepo struct {
	state *fakeState
}

func (r *fakeCapacityRepo) Ensure(_ context.Context, _ sqlc.DBTX, target inventory.Target, _ time.Time) error {
	key := counterKey{kind: target.Kind, id: target.ID}
	if c, ok := r.state.counters[key]; ok {
		c.capacity = target.Capacity
		return nil
	}
	r.state.counters[key] = &counterRow{capacity: target.Capacity}
	return nil
}

func (r *fakeCapacityRepo) TryConsume(
	_ context.Context,
	_ sqlc.DBTX,
	kind inventory.TargetKind,
	targetID uuid.UUID,
	quantity int32,
	_ time.Time,
) (bool, error) {
	c, ok := r.state.counters[counterKey{kind: kind, id: targetID}]
	if !ok {
		return false, nil
	}
	if c.consumed+quantity > c.capacity {
		return false, nil
	}
	c.consumed += quantity
	return true, nil
}

func (r *fakeCapacityRepo) Release(
	_ context.Context,
	_ sqlc.DBTX,
	kind inventory.TargetKind,
	targetID uuid.UUID,
	quantity int32,
	_ time.Time,
) error {
	c, ok := r.state.counters[counterKey{kind: kind, id: targetID}]
	if !ok {
		return nil
	}
	c.consumed -= quantity
	if c.consumed < 0 {
		c.consumed = 0
	}
	return nil
}

func (r *fakeCapacityRepo) Remaining(
	_ context.Context,
	_ sqlc.DBTX,
	kind inventory.TargetKind,
	targetID uuid.UUID,
) (int32, error) {
	c, ok := r.state.counters[counterKey{kind: kind, id: targetID}]
	if !ok {
		return 0, infra.WrapRepoErr("capacity counter not found", errFakeNoRows, infra.KindNotFound)
	}
	remaining := c.capacity - c.consumed
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// ---------------------------------------------------------------------------
// Read stores backing the query layer
// ---------------------------------------------------------------------------

type fakeReservationReadStore struct {
	uow *fakeUoW
}

func (s *fakeReservationReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	s.uow.mu.Lock()
	defer s.uow.mu.Unlock()

	snap, ok := s.uow.state.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", errFakeNoRows, infra.KindNotFound)
	}
	return reservationViewFromSnapshot(s.uow.state, snap), nil
}

func (s *fakeReservationReadStore) FindByUserID(_ context.Context, userID uuid.UUID) ([]*queries.ReservationListItem, error) {
	s.uow.mu.Lock()
	defer s.uow.mu.Unlock()

	var items []*queries.ReservationListItem
	for _, snap := range s.uow.state.reservations {
		if snap.UserID != userID {
			continue
		}
		items = append(items, &queries.ReservationListItem{
			ID:               snap.ID,
			EventID:          snap.EventID,
			EventTitle:       s.uow.state.events[snap.EventID].Title,
			TicketTypeID:     snap.TicketTypeID,
			Quantity:         snap.Quantity,
			TotalAmountCents: snap.TotalAmountCents,
			Status:           snap.Status.String(),
			ExpiresAt:        snap.ExpiresAt,
			CreatedAt:        snap.CreatedAt,
		})
	}
	return items, nil
}

func reservationViewFromSnapshot(state *fakeState, snap *shared.ReservationSnapshot) *queries.ReservationView {
	return &queries.ReservationView{
		ID:               snap.ID,
		EventID:          snap.EventID,
		EventTitle:       state.events[snap.EventID].Title,
		TicketTypeID:     snap.TicketTypeID,
		UserID:           snap.UserID,
		Quantity:         snap.Quantity,
		UnitPriceCents:   snap.UnitPriceCents,
		TotalAmountCents: snap.TotalAmountCents,
		Status:           snap.Status.String(),
		ExpiresAt:        snap.ExpiresAt,
		CreatedAt:        snap.CreatedAt,
		UpdatedAt:        snap.CreatedAt,
	}
}

type fakeBookingReadStore struct {
	uow *fakeUoW
}

func (s *fakeBookingReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	s.uow.mu.Lock()
	defer s.uow.mu.Unlock()

	bk, ok := s.uow.state.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", errFakeNoRows, infra.KindNotFound)
	}
	return bookingViewFromSnapshot(s.uow.state, bk), nil
}

func (s *fakeBookingReadStore) FindByEventAndUser(_ context.Context, eventID, userID uuid.UUID) (*queries.BookingView, error) {
	s.uow.mu.Lock()
	defer s.uow.mu.Unlock()

	id, ok := s.uow.state.bookingIndex[bookingKey{eventID: eventID, userID: userID}]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", errFakeNoRows, infra.KindNotFound)
	}
	return bookingViewFromSnapshot(s.uow.state, s.uow.state.bookings[id]), nil
}

func bookingViewFromSnapshot(state *fakeState, bk *shared.BookingSnapshot) *queries.BookingView {
	return &queries.BookingView{
		ID:           bk.ID,
		EventID:      bk.EventID,
		EventTitle:   state.events[bk.EventID].Title,
		UserID:       bk.UserID,
		TicketTypeID: bk.TicketTypeID,
		Quantity:     bk.Quantity,
		Status:       bk.Status,
		RegisteredAt: bk.RegisteredAt,
	}
}

// ---------------------------------------------------------------------------
// Side-effect collaborators
// ---------------------------------------------------------------------------

type fakeStats struct {
	mu     sync.Mutex
	counts map[string]int64
	fail   bool
}

func newFakeStats() *fakeStats {
	return &fakeStats{counts: make(map[string]int64)}
}

func (s *fakeStats) Increment(_ context.Context, eventID uuid.UUID, field string, delta int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("stats store unavailable")
	}
	s.counts[eventID.String()+"/"+field] += delta
	return nil
}

func (s *fakeStats) get(eventID uuid.UUID, field string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[eventID.String()+"/"+field]
}

type publishedEvent struct {
	topic   string
	payload any
}

type fakePublisher struct {
	mu        sync.Mutex
	published []publishedEvent
	fail      bool
}

func (p *fakePublisher) Publish(eventName string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail {
		return errors.New("broker unavailable")
	}
	p.published = append(p.published, publishedEvent{topic: eventName, payload: payload})
	return nil
}

func (p *fakePublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.published)
}

// ---------------------------------------------------------------------------
// Environment
// ---------------------------------------------------------------------------

type testEnv struct {
	uow       *fakeUoW
	clk       *clock.MockClock
	gateway   *payment.MockGateway
	stats     *fakeStats
	publisher *fakePublisher
	cfg       config.ReservationConfig

	reservations commands.ReservationCommands
	bookings     commands.BookingCommands
	resQueries   queries.ReservationQueries
}

func newTestEnv() *testEnv {
	uow := newFakeUoW()
	clk := clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	gateway := payment.NewMockGateway()
	stats := newFakeStats()
	publisher := &fakePublisher{}
	cfg := config.ReservationConfig{HoldTTL: 10 * time.Minute, Currency: "usd"}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	resQueries := queries.NewReservationQueries(&fakeReservationReadStore{uow: uow}, clk)
	bkQueries := queries.NewBookingQueries(&fakeBookingReadStore{uow: uow})

	return &testEnv{
		uow:          uow,
		clk:          clk,
		gateway:      gateway,
		stats:        stats,
		publisher:    publisher,
		cfg:          cfg,
		reservations: commands.NewReservationCommands(uow, resQueries, clk, cfg),
		bookings:     commands.NewBookingCommands(uow, stats, gateway, publisher, bkQueries, clk, cfg, logger),
		resQueries:   resQueries,
	}
}

func (e *testEnv) addFixedEvent(title string, capacity int32, priceCents int64, status event.Status, deadline *time.Time) uuid.UUID {
	id := uuid.New()
	e.uow.state.events[id] = shared.EventSnapshot{
		ID:                   id,
		Title:                title,
		Status:               status,
		PricingMode:          event.PricingFixed,
		Capacity:             capacity,
		PriceCents:           priceCents,
		RegistrationDeadline: deadline,
	}
	return id
}

func (e *testEnv) addTicketedEvent(title string) uuid.UUID {
	id := uuid.New()
	e.uow.state.events[id] = shared.EventSnapshot{
		ID:          id,
		Title:       title,
		Status:      event.StatusPublished,
		PricingMode: event.PricingTicketed,
	}
	return id
}

func (e *testEnv) addTicketType(eventID uuid.UUID, name string, capacity int32, priceCents int64, start, end time.Time) uuid.UUID {
	id := uuid.New()
	e.uow.state.ticketTypes[id] = shared.TicketTypeSnapshot{
		ID:           id,
		EventID:      eventID,
		Name:         name,
		Capacity:     capacity,
		PriceCents:   priceCents,
		SalesStartAt: start,
		SalesEndAt:   end,
	}
	return id
}

func (e *testEnv) counterConsumed(kind inventory.TargetKind, targetID uuid.UUID) int32 {
	e.uow.mu.Lock()
	defer e.uow.mu.Unlock()
	c, ok := e.uow.state.counters[counterKey{kind: kind, id: targetID}]
	if !ok {
		return 0
	}
	return c.consumed
}
