// Package memory holds the pieces shared by the in-memory stores: the persisted snapshot
// envelope and the Publisher that mirrors snapshots to a ports.SnapshotMirror.
package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"setralog/internal/core/ports"
	"setralog/internal/pkg/errs"
)

// Envelope is the persisted form of a store snapshot: {"state": ..., "version": 0}.
type Envelope[T any] struct {
	State   T   `json:"state"`
	Version int `json:"version"`
}

// Encode wraps state in an Envelope and marshals it.
func Encode[T any](state T) ([]byte, error) {
	return json.Marshal(Envelope[T]{State: state})
}

// Decode unmarshals an Envelope and returns its state.
func Decode[T any](payload []byte) (T, error) {
	var env Envelope[T]
	if err := json.Unmarshal(payload, &env); err != nil {
		var zero T
		return zero, fmt.Errorf("decode snapshot: %w", err)
	}
	return env.State, nil
}

// Publisher mirrors versioned snapshots of one store under a fixed key.
//
// Versions are assigned by the store under its own lock. A snapshot older than the last
// one saved is dropped, so concurrent publishers cannot overwrite newer state. A failed
// save is logged and leaves the publisher dirty until a later Publish or Flush succeeds.
type Publisher struct {
	key    string
	mirror ports.SnapshotMirror
	logger *slog.Logger

	mu     sync.Mutex
	latest uint64
	saved  uint64
}

// NewPublisher creates a Publisher. A nil mirror makes every call a no-op.
func NewPublisher(key string, mirror ports.SnapshotMirror, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{
		key:    key,
		mirror: mirror,
		logger: logger.With("component", "snapshot_publisher", "key", key),
	}
}

// Key returns the snapshot key.
func (p *Publisher) Key() string {
	return p.key
}

// Publish saves payload as snapshot version. Errors are logged, never returned.
func (p *Publisher) Publish(ctx context.Context, version uint64, payload []byte) {
	if err := p.save(ctx, version, payload); err != nil {
		p.logger.ErrorContext(ctx, "Snapshot mirror failed, store marked dirty",
			"version", version, "error", err)
	}
}

// Flush saves payload as snapshot version and returns the mirror error, if any.
func (p *Publisher) Flush(ctx context.Context, version uint64, payload []byte) error {
	return p.save(ctx, version, payload)
}

// Dirty reports whether the newest known version has not reached the mirror.
func (p *Publisher) Dirty() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mirror != nil && p.saved < p.latest
}

// Load returns the stored snapshot. found is false when the mirror has none.
func (p *Publisher) Load(ctx context.Context) (payload []byte, found bool, err error) {
	if p.mirror == nil {
		return nil, false, nil
	}
	payload, err = p.mirror.Load(ctx, p.key)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return payload, true, nil
}

func (p *Publisher) save(ctx context.Context, version uint64, payload []byte) error {
	if p.mirror == nil {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if version > p.latest {
		p.latest = version
	}
	if version < p.saved || (version == p.saved && version != 0) {
		return nil
	}

	if err := p.mirror.Save(ctx, p.key, payload); err != nil {
		return fmt.Errorf("save snapshot %q: %w", p.key, err)
	}
	p.saved = version
	return nil
}
