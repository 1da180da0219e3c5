// Package order contains the order aggregate: the status state machine, the
// dine-in / takeout / delivery type variants with their capability table, and
// the immutable line item snapshots captured at order time.
package order
