// Package services contains stateless domain services that fold collections
// of orders into derived read models.
//
// Neither aggregator persists or caches anything: customer and revenue views
// are recomputed from the raw order records on every read, so they can never
// go stale and are trivially safe to run concurrently.
package services
