// Package pricing implements the bakery's quote calculation rules.
//
// A single mutable Config record holds the per-cookie base price and the
// ordered bulk discount tiers. Quoting is a pure function of (quantity, Config):
// the highest tier whose threshold does not exceed the quantity wins, the unit
// price is rounded to cents, and the total is rounded to cents again after
// multiplication. Prices are a point-in-time snapshot: changing the Config
// never reprices orders that were already created.
package pricing
