// Package migrations embeds the database schema so the bot binary does
// not depend on its working directory.
package migrations

import (
	"embed"

	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed *.sql
var FS embed.FS

// Source returns the embedded migrations as a migrate source driver
func Source() (source.Driver, error) {
	return iofs.New(FS, ".")
}
