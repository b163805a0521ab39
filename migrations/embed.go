// Package migrations embeds the SQL migration files for the trip planner
// database so server bootstrap and tests run goose without a filesystem
// checkout of the migrations directory.
package migrations

import "embed"

// FS holds every *.sql migration embedded at compile time. Hand it to a
// goose.Provider together with the open database handle.
//
//go:embed *.sql
var FS embed.FS
