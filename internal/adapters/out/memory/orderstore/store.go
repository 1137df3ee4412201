// Package orderstore is the in-memory implementation of ports.OrderStore.
//
// Ids come from a monotonic counter that survives deletions and restarts (it is part of
// the "orders-storage" snapshot). Like the identity store, every committed mutation is
// mirrored best-effort.
package orderstore

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"setralog/internal/adapters/out/memory"
	"setralog/internal/core/domain/model/kernel"
	"setralog/internal/core/domain/model/order"
	"setralog/internal/core/ports"
	"setralog/internal/pkg/errs"
)

var _ ports.OrderStore = (*Store)(nil)

// Store keeps orders in creation order behind a RWMutex.
type Store struct {
	mu          sync.RWMutex
	orders      []*order.Order
	lastOrderID int64
	version     uint64

	now       func() time.Time
	publisher *memory.Publisher
	logger    *slog.Logger
}

// Option configures a Store.
type Option func(*options)

type options struct {
	mirror ports.SnapshotMirror
	logger *slog.Logger
	now    func() time.Time
}

// WithMirror sets the snapshot mirror.
func WithMirror(mirror ports.SnapshotMirror) Option {
	return func(o *options) { o.mirror = mirror }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithClock replaces time.Now as the source of createdAt.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// New creates an empty Store whose first order gets id 1.
func New(opts ...Option) *Store {
	o := options{logger: slog.Default(), now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &Store{
		now:       o.now,
		publisher: memory.NewPublisher(ports.OrderSnapshotKey, o.mirror, o.logger),
		logger:    o.logger.With("component", "order_store"),
	}
}

// Create stores a new PENDING order with id lastOrderId+1.
func (s *Store) Create(ctx context.Context, ownerID kernel.UUID, shipment order.Shipment) (*order.Order, error) {
	s.mu.Lock()
	o, err := order.NewOrder(s.lastOrderID+1, ownerID, shipment, s.now().UTC())
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.lastOrderID = o.ID()
	s.orders = append(s.orders, o)
	version, payload, err := s.commitLocked()
	s.mu.Unlock()

	s.publish(ctx, version, payload, err)
	s.logger.InfoContext(ctx, "Order created", "orderId", o.ID(), "userId", ownerID.String())
	return o.Clone(), nil
}

// Get returns the order id.
func (s *Store) Get(_ context.Context, id int64) (*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return s.orders[idx].Clone(), nil
}

// SetStatus overwrites the status of order id.
func (s *Store) SetStatus(ctx context.Context, id int64, status order.Status) (*order.Order, error) {
	return s.SetStatusIf(ctx, id, status, nil)
}

// SetStatusIf overwrites the status of order id when guard accepts the current order.
func (s *Store) SetStatusIf(
	ctx context.Context,
	id int64,
	status order.Status,
	guard ports.StatusGuard,
) (*order.Order, error) {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	if guard != nil {
		if err := guard(s.orders[idx].Clone()); err != nil {
			s.mu.Unlock()
			return nil, err
		}
	}

	next := s.orders[idx].Clone()
	if err := next.ChangeStatus(status); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	previous := s.orders[idx].Status()
	s.orders[idx] = next
	version, payload, err := s.commitLocked()
	s.mu.Unlock()

	s.publish(ctx, version, payload, err)
	s.logger.InfoContext(ctx, "Order status changed",
		"orderId", id, "from", previous.String(), "to", status.String())
	return next.Clone(), nil
}

// Remove deletes order id. The id is not reused.
func (s *Store) Remove(ctx context.Context, id int64) error {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return errs.NewObjectNotFoundError("order", id)
	}

	s.orders = append(s.orders[:idx:idx], s.orders[idx+1:]...)
	version, payload, err := s.commitLocked()
	s.mu.Unlock()

	s.publish(ctx, version, payload, err)
	s.logger.InfoContext(ctx, "Order removed", "orderId", id)
	return nil
}

// ListFor returns the orders referencing ownerID.
func (s *Store) ListFor(_ context.Context, ownerID kernel.UUID) ([]*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var orders []*order.Order
	for _, o := range s.orders {
		if o.IsOwnedBy(ownerID) {
			orders = append(orders, o.Clone())
		}
	}
	return orders, nil
}

// ListAll returns every order.
func (s *Store) ListAll(_ context.Context) ([]*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]*order.Order, 0, len(s.orders))
	for _, o := range s.orders {
		orders = append(orders, o.Clone())
	}
	return orders, nil
}

// LastOrderID returns the highest id ever assigned.
func (s *Store) LastOrderID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastOrderID
}

// Dirty reports whether the latest state failed to reach the mirror.
func (s *Store) Dirty() bool {
	return s.publisher.Dirty()
}

// Name identifies the store in logs and metrics.
func (s *Store) Name() string {
	return s.publisher.Key()
}

// Sync pushes the current state to the mirror.
func (s *Store) Sync(ctx context.Context) error {
	s.mu.RLock()
	version := s.version
	payload, err := s.encodeLocked()
	s.mu.RUnlock()
	if err != nil {
		return err
	}
	return s.publisher.Flush(ctx, version, payload)
}

// Restore replaces the state with the mirrored snapshot, if there is one.
// The counter is raised to the highest restored id when the snapshot lags behind.
func (s *Store) Restore(ctx context.Context) error {
	payload, found, err := s.publisher.Load(ctx)
	if err != nil {
		return fmt.Errorf("load order snapshot: %w", err)
	}
	if !found {
		s.logger.InfoContext(ctx, "No order snapshot found, starting empty")
		return nil
	}

	state, err := memory.Decode[SnapshotState](payload)
	if err != nil {
		return err
	}

	lastID := state.LastOrderID
	orders := make([]*order.Order, 0, len(state.Orders))
	for _, dto := range state.Orders {
		o, convErr := toDomain(dto)
		if convErr != nil {
			return fmt.Errorf("restore order %d: %w", dto.ID, convErr)
		}
		lastID = max(lastID, o.ID())
		orders = append(orders, o)
	}

	s.mu.Lock()
	s.orders = orders
	s.lastOrderID = lastID
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "Order snapshot restored", "orders", len(orders), "lastOrderId", lastID)
	return nil
}

func (s *Store) indexOf(id int64) int {
	for i, o := range s.orders {
		if o.ID() == id {
			return i
		}
	}
	return -1
}

func (s *Store) commitLocked() (uint64, []byte, error) {
	s.version++
	payload, err := s.encodeLocked()
	return s.version, payload, err
}

func (s *Store) encodeLocked() ([]byte, error) {
	state := SnapshotState{
		Orders:      make([]OrderDTO, 0, len(s.orders)),
		LastOrderID: s.lastOrderID,
	}
	for _, o := range s.orders {
		state.Orders = append(state.Orders, fromDomain(o))
	}
	return memory.Encode(state)
}

func (s *Store) publish(ctx context.Context, version uint64, payload []byte, encodeErr error) {
	if encodeErr != nil {
		s.logger.ErrorContext(ctx, "Order snapshot encoding failed", "error", encodeErr)
		return
	}
	s.publisher.Publish(ctx, version, payload)
}
