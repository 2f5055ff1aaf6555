// Package order contains the Order aggregate: the canonical record the whole
// pipeline revolves around.
//
// An order is created in pending status with a total priced by the pricing
// package at that moment; the total is a snapshot and is never recomputed.
// Status follows a five-state lifecycle in which only terminality is enforced:
// completed and cancelled orders are frozen, while administrators may move
// freely among the non-terminal states to correct mistakes.
package order
