// Package publisher implements the optional background job that
// drains matched-trade events from a bounded in-memory buffer and
// publishes them to an external sink such as Kafka. Delivery is
// best-effort: a full buffer drops, a failed send is logged and
// skipped.
package publisher
