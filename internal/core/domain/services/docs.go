// Package services provides domain services for the bladeshop application.
//
// The package includes:
//   - AccessPolicy: role resolution against the two static identity
//     allow-lists (administrators and workshop operators)
//
// Domain services hold business logic that does not naturally belong to a
// single aggregate root.
package services
