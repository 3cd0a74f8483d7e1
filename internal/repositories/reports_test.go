package repositories_test

import (
	"context"
	"io"
	"testing"

	"github.com/Asantae/Cluify-sub000/internal/repositories"
	"github.com/Asantae/Cluify-sub000/internal/testhelpers"
	"github.com/stretchr/testify/require"
)

func TestReportRepository_Get(t *testing.T) {
	dbs := newTestDB(t)
	repo := repositories.NewReportRepository(dbs, testhelpers.NewLogger(io.Discard))

	report, err := repo.Get(context.TODO(), "t-report-guilty")
	require.NoError(t, err)
	require.Equal(t, "t-case-active", report.CaseID)
	require.Equal(t, "t-suspect-x", report.SuspectID)
	require.True(t, report.Guilty)

	_, err = repo.Get(context.TODO(), "nonexistent")
	require.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestReportRepository_ListByCase(t *testing.T) {
	dbs := newTestDB(t)
	repo := repositories.NewReportRepository(dbs, testhelpers.NewLogger(io.Discard))

	reports, err := repo.ListByCase(context.TODO(), "t-case-active")
	require.NoError(t, err)
	require.Len(t, reports, 2)
	require.Equal(t, "t-report-guilty", reports[0].ID, "reports come back in authored order")
	require.Equal(t, "t-report-decoy", reports[1].ID)

	reports, err = repo.ListByCase(context.TODO(), "nonexistent")
	require.NoError(t, err)
	require.Empty(t, reports)
}

func TestSuspectRepository_Get(t *testing.T) {
	dbs := newTestDB(t)
	repo := repositories.NewSuspectRepository(dbs, testhelpers.NewLogger(io.Discard))

	suspect, err := repo.Get(context.TODO(), "t-suspect-x")
	require.NoError(t, err)
	require.Equal(t, "Suspect X", suspect.Name)

	_, err = repo.Get(context.TODO(), "nonexistent")
	require.ErrorIs(t, err, repositories.ErrNotFound)
}
