// Package services provides domain services that apply business rules spanning the
// user and order aggregates.
//
// The package includes:
//   - OrderAccessPolicy: decides which actor may change, cancel or delete an order,
//     and when a user account may be removed
//
// The policy is pure: it reads aggregates and returns an error, it never mutates them.
// Callers apply the change through the stores once the policy has agreed.
package services
