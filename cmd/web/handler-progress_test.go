package main

import (
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_application_caseProgress(t *testing.T) {
	srv := startTestServer(t, os.Stdout, testLookupEnv)

	// Guests have no progress to look up.
	resp := srv.Get(t, "/api/progress?caseId=fairview-hit-and-run")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	srv.StartSession(t)

	resp = srv.Get(t, "/api/progress")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	// No tracked attempt yet.
	resp = srv.Get(t, "/api/progress?caseId=fairview-hit-and-run")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.NoError(t, resp.Body.Close())
}
