package sqlstore

import (
	"regexp"
)

// Dialect captures what differs between the SQL backends: the database/sql
// driver name and the bind-parameter syntax.
type Dialect struct {
	Name   string
	Driver string
	// positional reports whether the driver takes $N placeholders.
	positional bool
}

var (
	Postgres = Dialect{Name: "postgres", Driver: "postgres", positional: true}
	SQLite   = Dialect{Name: "sqlite", Driver: "sqlite"}
)

var placeholder = regexp.MustCompile(`\$\d+`)

// Rebind rewrites $N placeholders for drivers that only accept "?".
func (d Dialect) Rebind(query string) string {
	if d.positional {
		return query
	}
	return placeholder.ReplaceAllString(query, "?")
}
