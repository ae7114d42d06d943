// Package migrations содержит SQL-миграции goose для PostgreSQL.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
