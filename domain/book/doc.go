// Package book implements the lock-free in-memory order book core.
// Each instrument maps to a fixed book slot through a deterministic
// hash; each book holds two preallocated, append-only arenas of order
// slots (one per side) whose next-free indices are handed out with an
// atomic fetch-and-add. Filled orders are never reclaimed: a slot
// stays behind as an inactive placeholder for the life of the process.
//
// The matching path is an O(n) unordered scan over both sides. There
// is no price-time priority structure and no locking anywhere; the
// only serialized step is slot-index reservation. The package favors
// throughput over linearizable correctness, and the races that remain
// (notably quantity oversubtraction under concurrent matchers) are
// documented on the operations that can observe them.
package book
