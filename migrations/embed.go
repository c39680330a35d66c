// Package migrations embeds the numbered SQL schema migrations for each storage backend.
package migrations

import "embed"

//go:embed sqlite/*.sql
var FS embed.FS
