// Package order provides the Order aggregate of the dispatch workflow: the
// customer purchase request, its immutable lines and the line resolutions
// produced by warehouse validation.
//
// The package includes:
//   - Order: aggregate root holding lines, totals, status and resolutions
//   - Line: one requested SKU with prices in minor units
//   - Disposition: closed union of Approved, PartiallyApproved, Substituted
//     and Rejected line outcomes
//   - ValidationError: every content problem of a validation submission
//   - Status: the order state machine
//
// Key business rules:
//   - finalTotal = subtotal - discountTotal + taxTotal
//   - validation is applied exactly once and covers every line
//   - only Validated, InPreparation and Invoiced orders may be dispatched
//   - a failed or abandoned dispatch returns the order to Validated
package order
