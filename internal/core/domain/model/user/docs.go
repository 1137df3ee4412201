// Package user provides the User aggregate of the SetraLog identity domain.
//
// The package includes:
//   - User: an account holder identified by UUID with unique email and RUT
//   - Role: INDIVIDUAL, BUSINESS or ADMIN
//   - Representative: the contact person recorded for BUSINESS accounts
//   - Patch: a partial update applied field by field with Apply
//
// Key business rules:
//   - Email, RUT and phone are validated when set; a User never holds malformed values
//   - The first user registered in a store is promoted to ADMIN (see PromoteToAdmin)
//   - Credentials are opaque strings produced by the configured hasher
//
// Uniqueness of email and RUT is a store-level invariant and is not checked here.
package user
