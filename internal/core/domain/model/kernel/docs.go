// Package kernel provides the shared value objects of the SetraLog domain.
//
// The package includes:
//   - UUID: the opaque identifier assigned to users
//   - RUT: a Chilean national identifier that passed the modulo-11 check, kept in
//     canonical "NN.NNN.NNN-D" form, plus the pure CleanRUT/FormatRUT/ValidateRUT functions
//   - Phone: a normalized Chilean mobile number, plus FormatPhone/ValidatePhone
//
// The pure functions have no side effects and are safe for concurrent use. The value
// objects are immutable; their zero values fail Validate.
package kernel
