// Package simulator drives the engine with random concurrent
// traffic: a fixed pool of workers, each submitting random orders
// over a small ticker set and immediately attempting a match. It sits
// outside the core and talks to it only through the order service.
package simulator
