// Package ports declares the contracts between the application core and its adapters.
//
// Driven ports (implemented in internal/adapters/out):
//   - IdentityStore, OrderStore: the authoritative in-memory stores
//   - SnapshotMirror: best-effort persistence of store snapshots
//   - CredentialHasher, TokenIssuer, PasswordResetNotifier: boundary collaborators
package ports
