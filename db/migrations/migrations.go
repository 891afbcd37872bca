package migrations

import "embed"

// FS embeds the SQL migrations for the postgres report source. They are
// applied through golang-migrate's iofs driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the dashboard expects.
const Version uint = 1
