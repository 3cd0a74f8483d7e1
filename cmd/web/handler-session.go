package main

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/Asantae/Cluify-sub000/internal/contexthelpers"
	"github.com/Asantae/Cluify-sub000/internal/errors"
)

type sessionResponse struct {
	PlayerID string `json:"playerId"`
}

// startSession mints an anonymous player identity and binds it to the
// session. Calling it again on an authenticated session is a no-op that
// returns the existing identity.
func (app *application) startSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if playerID := contexthelpers.AuthenticatedPlayerID(ctx); playerID != "" {
		app.writeJSON(w, r, http.StatusOK, sessionResponse{PlayerID: playerID})
		return
	}

	// Renew the token on privilege change to prevent session fixation.
	if err := app.sessionManager.RenewToken(ctx); err != nil {
		app.serverError(w, r, errors.Wrap(err, "renew session token"))
		return
	}
	playerID := uuid.NewString()
	app.sessionManager.Put(ctx, playerIDSessionKey, playerID)

	app.writeJSON(w, r, http.StatusCreated, sessionResponse{PlayerID: playerID})
}
