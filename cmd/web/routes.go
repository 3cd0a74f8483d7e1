package main

import (
	"net/http"

	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	session := alice.New(app.sessionManager.LoadAndSave, noSurf, app.authenticate, commonContext)

	mux.Handle("GET /api/healthy", http.HandlerFunc(app.healthy))
	mux.Handle("GET /{$}", session.ThenFunc(app.home))

	mux.Handle("POST /api/session/start", session.ThenFunc(app.startSession))
	mux.Handle("GET /api/cases/active", session.ThenFunc(app.activeCase))
	mux.Handle("POST /api/registry/search", session.ThenFunc(app.searchRegistry))
	mux.Handle("POST /api/accusations", session.ThenFunc(app.submitAccusation))
	mux.Handle("GET /api/progress", session.ThenFunc(app.caseProgress))

	return app.recoverPanic(app.logRequest(secureHeaders(mux)))
}
