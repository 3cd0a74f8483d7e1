package main

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Asantae/Cluify-sub000/internal/errors"
)

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error",
		slog.String("method", method), slog.String("uri", uri), errors.SlogError(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (app *application) clientError(w http.ResponseWriter, r *http.Request, status int) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.Debug(http.StatusText(status), "method", method, "uri", uri)
	http.Error(w, http.StatusText(status), status)
}

func (app *application) notFound(w http.ResponseWriter, r *http.Request) {
	app.clientError(w, r, http.StatusNotFound)
}

func (app *application) writeJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		app.logger.LogAttrs(r.Context(), slog.LevelError, "failed to write response", errors.SlogError(err))
	}
}

// decodeJSON decodes the request body into dst and reports whether it
// succeeded. On failure, it has already written a 400 response.
func (app *application) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	maxBodySize := int64(1 << 20)
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		app.logger.Debug("malformed request body", "method", r.Method, "uri", r.URL.RequestURI(),
			errors.SlogError(err))
		app.clientError(w, r, http.StatusBadRequest)
		return false
	}
	return true
}
