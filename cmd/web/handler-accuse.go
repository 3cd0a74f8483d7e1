package main

import (
	"net/http"

	"github.com/Asantae/Cluify-sub000/internal/contexthelpers"
	"github.com/Asantae/Cluify-sub000/internal/game"
)

type accusationRequest struct {
	ReportID         string   `json:"reportId"`
	RegistryRecordID string   `json:"registryRecordId"`
	CaseID           string   `json:"caseId"`
	EvidenceIDs      []string `json:"evidenceIds"`
}

// submitAccusation adjudicates an accusation. Rejections and lockouts come
// back as normal verdicts with HTTP 200; errors are reserved for the server
// genuinely failing.
func (app *application) submitAccusation(w http.ResponseWriter, r *http.Request) {
	var request accusationRequest
	if !app.decodeJSON(w, r, &request) {
		return
	}

	verdict, err := app.adjudicator.Submit(r.Context(), game.Submission{
		PlayerID:         contexthelpers.AuthenticatedPlayerID(r.Context()),
		ReportID:         request.ReportID,
		RegistryRecordID: request.RegistryRecordID,
		CaseID:           request.CaseID,
		EvidenceIDs:      request.EvidenceIDs,
	})
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, verdict)
}
