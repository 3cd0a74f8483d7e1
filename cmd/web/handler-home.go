package main

import (
	"html/template"
	"net/http"

	"github.com/Asantae/Cluify-sub000/internal/contexthelpers"
	"github.com/Asantae/Cluify-sub000/internal/errors"
	"github.com/Asantae/Cluify-sub000/internal/models"
	"github.com/Asantae/Cluify-sub000/internal/repositories"
)

var homeTemplate = template.Must(template.New("home").Parse(`<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Cluify</title>
</head>
<body>
  <h1>Cluify</h1>
  {{- if .Case}}
  <section id="active-case">
    <h2>{{.Case.Title}}</h2>
    <p class="objective">{{.Case.Objective}}</p>
  </section>
  {{- else}}
  <p id="no-active-case">No case is open right now. Check back tomorrow, detective.</p>
  {{- end}}
  {{- if .IsAuthenticated}}
  <p id="player-badge">Detective on duty</p>
  {{- else}}
  <form action="/api/session/start" method="post">
    <input type="hidden" name="csrf_token" value="{{.CSRFToken}}">
    <button>Start investigating</button>
  </form>
  {{- end}}
</body>
</html>
`))

type homeData struct {
	Case            *models.Case
	IsAuthenticated bool
	CSRFToken       string
}

// home renders a minimal shell page. The game itself is played through the
// JSON API by the client application.
func (app *application) home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	activeCase, err := app.cases.Active(ctx)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		app.serverError(w, r, err)
		return
	}

	data := homeData{
		Case:            activeCase,
		IsAuthenticated: contexthelpers.IsAuthenticated(ctx),
		CSRFToken:       contexthelpers.CSRFToken(ctx),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err = homeTemplate.Execute(w, data); err != nil {
		app.serverError(w, r, err)
	}
}
