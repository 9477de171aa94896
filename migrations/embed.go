package migrations

import "embed"

// Files holds the content schema migrations. db.OpenSQLite applies them in
// version order and records each one in schema_migrations.
//
//go:embed *.sql
var Files embed.FS
