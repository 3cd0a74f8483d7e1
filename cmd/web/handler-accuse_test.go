package main

import (
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Asantae/Cluify-sub000/internal/game"
)

func (s *testServer) accuse(t *testing.T, request accusationRequest) game.Verdict {
	t.Helper()
	resp := s.PostJSON(t, "/api/accusations", request)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var verdict game.Verdict
	decodeResponse(t, resp, &verdict)
	return verdict
}

func Test_application_submitAccusation_solvesTheCase(t *testing.T) {
	srv := startTestServer(t, os.Stdout, testLookupEnv)
	srv.StartSession(t)

	verdict := srv.accuse(t, accusationRequest{
		ReportID:         "report-webb",
		RegistryRecordID: "reg-webb",
		CaseID:           "fairview-hit-and-run",
		EvidenceIDs:      []string{"phone-webb-1", "police-webb-1"},
	})
	require.Equal(t, game.OutcomeSuccess, verdict.Kind)
	require.True(t, verdict.CorrectSuspect)
	require.Equal(t, int64(70), verdict.EvidenceValue)

	resp := srv.Get(t, "/api/progress?caseId=fairview-hit-and-run")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var progress progressResponse
	decodeResponse(t, resp, &progress)
	require.Equal(t, int64(1), progress.Attempts)
	require.True(t, progress.HasWon)
	require.False(t, progress.LockedOut)
}

func Test_application_submitAccusation_lockout(t *testing.T) {
	srv := startTestServer(t, os.Stdout, testLookupEnv)
	srv.StartSession(t)

	wrong := accusationRequest{
		ReportID:         "report-kolar",
		RegistryRecordID: "reg-kolar",
		CaseID:           "fairview-hit-and-run",
	}
	for i := 0; i < game.MaxAttempts; i++ {
		verdict := srv.accuse(t, wrong)
		require.Equal(t, game.OutcomeWrongSuspect, verdict.Kind)
	}

	verdict := srv.accuse(t, wrong)
	require.Equal(t, game.OutcomeLockedOut, verdict.Kind)

	resp := srv.Get(t, "/api/progress?caseId=fairview-hit-and-run")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var progress progressResponse
	decodeResponse(t, resp, &progress)
	require.Equal(t, int64(game.MaxAttempts), progress.Attempts)
	require.False(t, progress.HasWon)
	require.True(t, progress.LockedOut)
}

func Test_application_submitAccusation_asGuest(t *testing.T) {
	srv := startTestServer(t, os.Stdout, testLookupEnv)

	// Guests play without a session and are never attempt-tracked.
	for i := 0; i < game.MaxAttempts+1; i++ {
		verdict := srv.accuse(t, accusationRequest{
			ReportID:         "report-kolar",
			RegistryRecordID: "reg-kolar",
			CaseID:           "fairview-hit-and-run",
		})
		require.Equal(t, game.OutcomeWrongSuspect, verdict.Kind)
	}
}

func Test_application_submitAccusation_rejections(t *testing.T) {
	srv := startTestServer(t, os.Stdout, testLookupEnv)
	srv.StartSession(t)

	// A precondition failure is a verdict, not an HTTP error.
	verdict := srv.accuse(t, accusationRequest{
		ReportID:         "no-such-report",
		RegistryRecordID: "reg-webb",
		CaseID:           "fairview-hit-and-run",
	})
	require.Equal(t, game.OutcomeRejected, verdict.Kind)
	require.NotEmpty(t, verdict.Message)

	verdict = srv.accuse(t, accusationRequest{
		ReportID:         "report-webb",
		RegistryRecordID: "reg-webb",
		CaseID:           "",
	})
	require.Equal(t, game.OutcomeRejected, verdict.Kind)
}
