// Package service is the only entry point into the engine. It wires
// the domain book registry to the ambient infrastructure: trade
// sequencing, metrics, the match-notification log line, and the
// optional external trade sink.
package service
