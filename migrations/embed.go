// Package migrations embeds the SQL migration files so the server and the
// repository tests can apply them through the goose provider API.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time.
//
//go:embed *.sql
var FS embed.FS
