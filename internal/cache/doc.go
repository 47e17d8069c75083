// Package cache provides an LRU cache for blob contents fetched from remote
// stores.
//
// Cached bytes count against a resource.Controller memory budget when one is
// given; a Set that would exceed the budget is dropped rather than blocking.
package cache
