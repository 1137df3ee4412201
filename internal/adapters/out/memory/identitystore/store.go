// Package identitystore is the in-memory implementation of ports.IdentityStore.
//
// The store is authoritative. After every committed mutation it publishes a snapshot
// under "auth-storage" through a ports.SnapshotMirror; mirror failures are logged and
// never undo the mutation.
package identitystore

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"setralog/internal/adapters/out/memory"
	"setralog/internal/core/domain/model/kernel"
	"setralog/internal/core/domain/model/user"
	"setralog/internal/core/ports"
	"setralog/internal/pkg/errs"
)

var _ ports.IdentityStore = (*Store)(nil)

// Store keeps users in registration order behind a RWMutex.
type Store struct {
	mu      sync.RWMutex
	users   []*user.User
	version uint64

	uniqueOnUpdate bool
	adminSignup    bool
	publisher      *memory.Publisher
	logger         *slog.Logger
}

// Option configures a Store.
type Option func(*options)

type options struct {
	mirror         ports.SnapshotMirror
	logger         *slog.Logger
	uniqueOnUpdate bool
	adminSignup    bool
}

// WithMirror sets the snapshot mirror. Without one the store is purely in-memory.
func WithMirror(mirror ports.SnapshotMirror) Option {
	return func(o *options) { o.mirror = mirror }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithUniqueOnUpdate toggles the email/RUT uniqueness check on Update. It is on by default.
func WithUniqueOnUpdate(enabled bool) Option {
	return func(o *options) { o.uniqueOnUpdate = enabled }
}

// WithAdminSignup controls whether a registration may keep a requested ADMIN role once the
// store holds at least one user. When disabled such requests are stored as INDIVIDUAL.
// It is on by default.
func WithAdminSignup(allowed bool) Option {
	return func(o *options) { o.adminSignup = allowed }
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	o := options{logger: slog.Default(), uniqueOnUpdate: true, adminSignup: true}
	for _, opt := range opts {
		opt(&o)
	}
	return &Store{
		uniqueOnUpdate: o.uniqueOnUpdate,
		adminSignup:    o.adminSignup,
		publisher:      memory.NewPublisher(ports.IdentitySnapshotKey, o.mirror, o.logger),
		logger:         o.logger.With("component", "identity_store"),
	}
}

// Register adds u, promoting it to ADMIN when the store is empty.
func (s *Store) Register(ctx context.Context, u *user.User) (*user.User, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.indexOf(u.ID()) >= 0 {
		s.mu.Unlock()
		return nil, errs.NewObjectAlreadyExistsError("id", u.ID().String())
	}
	if err := s.checkUnique(u.ID(), u.Email(), u.RUT()); err != nil {
		s.mu.Unlock()
		return nil, err
	}

	stored := u.Clone()
	switch {
	case len(s.users) == 0:
		stored.PromoteToAdmin()
	case stored.IsAdmin() && !s.adminSignup:
		stored.DemoteToIndividual()
	}
	s.users = append(s.users, stored)
	version, payload, err := s.commitLocked()
	s.mu.Unlock()

	s.publish(ctx, version, payload, err)
	s.logger.InfoContext(ctx, "User registered", "userId", stored.ID().String(), "role", stored.Role().String())
	return stored.Clone(), nil
}

// Update merges patch into the user patch.ID.
func (s *Store) Update(ctx context.Context, patch user.Patch) (*user.User, error) {
	if err := patch.ID.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	idx := s.indexOf(patch.ID)
	if idx < 0 {
		s.mu.Unlock()
		return nil, errs.NewObjectNotFoundError("user", patch.ID.String())
	}

	next := s.users[idx].Clone()
	if err := next.Apply(patch); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if s.uniqueOnUpdate && patch.TouchesIdentityKeys() {
		if err := s.checkUnique(next.ID(), next.Email(), next.RUT()); err != nil {
			s.mu.Unlock()
			return nil, err
		}
	}

	s.users[idx] = next
	version, payload, err := s.commitLocked()
	s.mu.Unlock()

	s.publish(ctx, version, payload, err)
	return next.Clone(), nil
}

// Remove deletes the user id.
func (s *Store) Remove(ctx context.Context, id kernel.UUID) error {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return errs.NewObjectNotFoundError("user", id.String())
	}

	s.users = append(s.users[:idx:idx], s.users[idx+1:]...)
	version, payload, err := s.commitLocked()
	s.mu.Unlock()

	s.publish(ctx, version, payload, err)
	s.logger.InfoContext(ctx, "User removed", "userId", id.String())
	return nil
}

// Get returns the user id.
func (s *Store) Get(_ context.Context, id kernel.UUID) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, errs.NewObjectNotFoundError("user", id.String())
	}
	return s.users[idx].Clone(), nil
}

// FindByEmail returns the user whose email equals email exactly, or nil.
func (s *Store) FindByEmail(_ context.Context, email string) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email() == email {
			return u.Clone(), nil
		}
	}
	return nil, nil //nolint:nilnil // absence is not an error for lookups
}

// FindByRut returns the user with rut, or nil.
func (s *Store) FindByRut(_ context.Context, rut kernel.RUT) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.RUT().IsEqual(rut) {
			return u.Clone(), nil
		}
	}
	return nil, nil //nolint:nilnil // absence is not an error for lookups
}

// List returns all users in registration order.
func (s *Store) List(_ context.Context) ([]*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*user.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u.Clone())
	}
	return users, nil
}

// Len returns the number of registered users.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
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
// A snapshot that does not decode into valid users is an error and leaves the store unchanged.
func (s *Store) Restore(ctx context.Context) error {
	payload, found, err := s.publisher.Load(ctx)
	if err != nil {
		return fmt.Errorf("load identity snapshot: %w", err)
	}
	if !found {
		s.logger.InfoContext(ctx, "No identity snapshot found, starting empty")
		return nil
	}

	state, err := memory.Decode[SnapshotState](payload)
	if err != nil {
		return err
	}

	users := make([]*user.User, 0, len(state.Users))
	for i, dto := range state.Users {
		u, convErr := toDomain(dto)
		if convErr != nil {
			return fmt.Errorf("restore user #%d: %w", i, convErr)
		}
		users = append(users, u)
	}

	s.mu.Lock()
	s.users = users
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "Identity snapshot restored", "users", len(users))
	return nil
}

func (s *Store) indexOf(id kernel.UUID) int {
	for i, u := range s.users {
		if u.ID().IsEqual(id) {
			return i
		}
	}
	return -1
}

// checkUnique fails when a user other than self already holds email or rut.
func (s *Store) checkUnique(self kernel.UUID, email string, rut kernel.RUT) error {
	for _, u := range s.users {
		if u.ID().IsEqual(self) {
			continue
		}
		if u.Email() == email {
			return errs.NewObjectAlreadyExistsError("email", email)
		}
		if u.RUT().IsEqual(rut) {
			return errs.NewObjectAlreadyExistsError("rut", rut.String())
		}
	}
	return nil
}

// commitLocked bumps the state version and encodes the snapshot. Callers hold the write lock.
func (s *Store) commitLocked() (uint64, []byte, error) {
	s.version++
	payload, err := s.encodeLocked()
	return s.version, payload, err
}

func (s *Store) encodeLocked() ([]byte, error) {
	state := SnapshotState{Users: make([]UserDTO, 0, len(s.users))}
	for _, u := range s.users {
		state.Users = append(state.Users, fromDomain(u))
	}
	return memory.Encode(state)
}

func (s *Store) publish(ctx context.Context, version uint64, payload []byte, encodeErr error) {
	if encodeErr != nil {
		s.logger.ErrorContext(ctx, "Identity snapshot encoding failed", "error", encodeErr)
		return
	}
	s.publisher.Publish(ctx, version, payload)
}
