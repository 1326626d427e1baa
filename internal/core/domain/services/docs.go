// Package services provides domain services that apply business rules which do
// not belong to a single aggregate.
//
// The package includes:
//   - StatusAdvancer: the time-driven rule that moves orders through their
//     delivery lifecycle
package services
