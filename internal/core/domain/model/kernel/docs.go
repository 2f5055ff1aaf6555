// Package kernel contains shared value objects used across domain aggregates.
// These types are immutable, validated at construction, and carry no behavior
// specific to any single aggregate.
package kernel
