package main

import (
	"net/http"

	"github.com/Asantae/Cluify-sub000/internal/contexthelpers"
	"github.com/Asantae/Cluify-sub000/internal/errors"
	"github.com/Asantae/Cluify-sub000/internal/game"
	"github.com/Asantae/Cluify-sub000/internal/repositories"
)

type progressResponse struct {
	CaseID      string `json:"caseId"`
	Attempts    int64  `json:"attempts"`
	MaxAttempts int64  `json:"maxAttempts"`
	HasWon      bool   `json:"hasWon"`
	LockedOut   bool   `json:"lockedOut"`
}

// caseProgress returns the authenticated player's attempt state for one case.
// 404 means the player has not made a tracked attempt on the case yet.
func (app *application) caseProgress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	playerID := contexthelpers.AuthenticatedPlayerID(ctx)
	if playerID == "" {
		app.clientError(w, r, http.StatusUnauthorized)
		return
	}
	caseID := r.URL.Query().Get("caseId")
	if caseID == "" {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	progress, err := app.progress.Get(ctx, playerID, caseID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			app.notFound(w, r)
			return
		}
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, progressResponse{
		CaseID:      progress.CaseID,
		Attempts:    progress.Attempts,
		MaxAttempts: game.MaxAttempts,
		HasWon:      progress.HasWon,
		LockedOut:   !progress.HasWon && progress.Attempts >= game.MaxAttempts,
	})
}
