// Package driven defines the driven ports (secondary adapters' contracts)
// for Wikihop.
//
// Driven ports are interfaces the core calls out through:
//
//   - LinkSource: remote resolution of a topic name to its raw references
//   - LinkStore: durable persistence of cache records
//   - ReferenceCache: bounded in-process cache tiers
//   - ConfigStore: persisted application settings
//
// Adapters (SQLite, in-memory, the MediaWiki connector, TOML files)
// implement these interfaces; services depend only on the interfaces.
package driven
