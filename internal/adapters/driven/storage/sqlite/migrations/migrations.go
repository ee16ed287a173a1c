// Package migrations embeds the SQL schema migrations for the link store.
package migrations

import "embed"

// FS contains all migration files.
//
//go:embed *.sql
var FS embed.FS
