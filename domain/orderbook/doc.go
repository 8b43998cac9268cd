// Package orderbook holds the deterministic core data structures of the
// exchange: the arena-backed ordered index, order records, and one side of
// a price-time priority book. Everything here is single-writer; callers
// serialize access per trading pair.
package orderbook
