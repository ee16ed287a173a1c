// Package sqlite implements the durable link store on SQLite via the
// pure-Go modernc.org/sqlite driver.
//
// The schema is a single keyed table: one row per topic, the filtered
// reference list JSON-encoded in a TEXT column, plus the fetch timestamp.
// The store tolerates being empty on first run and grows without bound;
// there is no eviction. Writes are whole-record upserts, so repeating a
// write is harmless and no multi-key transaction guarantees are needed.
//
// Schema changes are applied through embedded, numbered migrations at
// open time.
package sqlite
