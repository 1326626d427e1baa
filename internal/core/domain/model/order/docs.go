// Package order contains the Order aggregate and its delivery lifecycle.
//
// Lifecycle:
//
//	Preparing ──> OutForDelivery ──> Delivered
//
// Transitions only move forward, one step at a time, and Delivered is terminal.
// There is no cancellation path. Each transition stamps updatedAt and records a
// StatusChangedEvent that the application layer publishes after committing.
package order
