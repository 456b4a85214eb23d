// Package migrations embeds the SQL schema files so a standalone binary
// can migrate its own database.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
