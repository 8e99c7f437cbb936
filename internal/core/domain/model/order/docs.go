// Package order provides the domain model for custom fabrication orders.
// It implements the Order aggregate root with lifecycle management and the
// fixed status rotation.
//
// The package includes:
//   - Order: The aggregate root holding the specification fields, the optional
//     photo reference, and the lifecycle status
//   - Status: The three-state rotation (new -> in_work -> done -> new) applied
//     on demand from the order list
//   - IsOverdue: read-time interpretation of the verbatim deadline text
//
// Key business rules:
//   - Orders carry seven required text fields collected by the intake flow
//   - The status rotation is total: unrecognized stored values cycle to "new"
//   - Order identity is assigned by the store at insert and never changes
//   - The deadline has no update path after creation
package order
