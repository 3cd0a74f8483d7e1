package db

import (
	"context"

	"github.com/Asantae/Cluify-sub000/internal/errors"

	_ "embed"
)

//go:embed fixtures.sql
var fixturesScript string

// Seed applies the embedded demo content. The fixtures use INSERT OR IGNORE so
// seeding an already-seeded database is a no-op.
func (db *Database) Seed(ctx context.Context) error {
	if _, err := db.ReadWrite.ExecContext(ctx, fixturesScript); err != nil {
		return errors.Wrap(err, "apply fixtures")
	}
	return nil
}
