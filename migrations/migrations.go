// Package migrations embeds the SQL schema migrations applied at startup and by monedasctl.
package migrations

import "embed"

// FS holds the numbered *.up.sql / *.down.sql files.
//
//go:embed *.sql
var FS embed.FS
