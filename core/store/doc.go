// Package store implements the authoritative path cache.
//
// The store maps a deterministic 64-bit PathKey, derived from a query's start
// and end positions, to a previously computed route of waypoints. Lookups
// resolve in priority order:
//
//  1. Hot cache: a small bounded LRU in front of the authoritative map.
//  2. Exact match: the authoritative key -> path map.
//  3. Approximate match: the nearest cached path whose endpoints both lie
//     within a search radius of the query, spliced onto the new endpoints.
//  4. Generation: the full router/assembler/pathfinder pipeline (only when
//     the caller permits it), deduplicated in-process with singleflight.
//  5. Fallback: a straight interpolated path.
//
// GetPath is therefore total: it never fails and always returns a usable
// route; internal errors only lower the quality of the result.
//
// # Cross-peer consistency
//
// Independent peers must agree on keys and, ideally, waypoints without
// coordinating. Key derivation hashes the raw coordinate bit patterns, and
// the whole generation pipeline is deterministic, so two peers answering the
// same query insert the same entry. Checksum produces an order-independent
// digest of the key set for cheap divergence detection, and Synchronize
// merges a remote path list with an insert-if-absent policy.
//
// Entries are never evicted from the authoritative map; only the hot cache
// evicts, via LRU, independently of the authoritative retention.
package store
