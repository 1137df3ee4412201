// Package order provides the Order aggregate of the SetraLog shipment domain.
//
// The package includes:
//   - Order: a shipment request owned (by reference) by a user, identified by a
//     sequence number assigned by the order store
//   - Shipment: the validated description of what is shipped and where
//   - Status: RECEIVED, PENDING, IN_PROGRESS, COMPLETED, REJECTED
//   - TransitionMode: the administrative transition policy (permissive or strict)
//
// Status workflow:
//
//	RECEIVED ──> PENDING ──> IN_PROGRESS ──> COMPLETED
//	                │              │
//	                └──> REJECTED <┘
//
// New orders start in PENDING. RECEIVED is only reachable by administrative assignment.
// Owners may cancel (PENDING -> REJECTED). Administrators may write any status; in
// Permissive mode no graph is consulted, in Strict mode only the arrows above are legal.
package order
