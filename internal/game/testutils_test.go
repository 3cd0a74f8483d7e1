package game_test

import (
	"context"
	"io"
	"testing"

	"github.com/Asantae/Cluify-sub000/internal/db"
	"github.com/Asantae/Cluify-sub000/internal/game"
	"github.com/Asantae/Cluify-sub000/internal/repositories"
	"github.com/Asantae/Cluify-sub000/internal/testhelpers"
	"github.com/stretchr/testify/require"
)

// fixture bundles the adjudication stack over an in-memory database seeded
// with the demo case content.
type fixture struct {
	adjudicator *game.Adjudicator
	aggregator  *game.Aggregator
	progress    *repositories.ProgressRepository
	dbs         *db.Database
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	logger := testhelpers.NewLogger(io.Discard)

	dbs, err := db.NewDatabase(ctx, ":memory:", logger)
	require.NoError(t, err)
	require.NoError(t, dbs.Seed(ctx))
	t.Cleanup(func() {
		require.NoError(t, dbs.Close())
	})

	// The demo content has no case that is both inactive and not
	// practice-eligible; add one for the rejection path.
	_, err = dbs.ReadWrite.Exec(
		`INSERT INTO cases (id, case_number, title, is_active, can_be_practice) VALUES ('cold-case', 'T-404', 'Cold case', 0, 0)`)
	require.NoError(t, err)

	evidence := repositories.NewEvidenceRepository(dbs, logger)
	aggregator := game.NewAggregator(evidence, logger)
	progress := repositories.NewProgressRepository(dbs, logger)
	adjudicator := game.NewAdjudicator(
		repositories.NewCaseRepository(dbs, logger),
		repositories.NewReportRepository(dbs, logger),
		repositories.NewRegistryRepository(dbs, logger),
		progress,
		aggregator,
		logger,
	)

	return fixture{
		adjudicator: adjudicator,
		aggregator:  aggregator,
		progress:    progress,
		dbs:         dbs,
	}
}
