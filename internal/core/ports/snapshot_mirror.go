package ports

import "context"

// Snapshot keys used by the stores.
const (
	IdentitySnapshotKey = "auth-storage"
	OrderSnapshotKey    = "orders-storage"
)

// SnapshotMirror persists opaque store snapshots under a key. The in-memory stores stay
// authoritative: a failed Save never undoes a mutation.
type SnapshotMirror interface {
	// Save replaces the snapshot stored under key.
	Save(ctx context.Context, key string, payload []byte) error

	// Load returns the snapshot stored under key or errs.ErrObjectNotFound.
	Load(ctx context.Context, key string) ([]byte, error)
}
