package main

import (
	"net/http"

	"github.com/Asantae/Cluify-sub000/internal/errors"
	"github.com/Asantae/Cluify-sub000/internal/repositories"
)

type suspectPayload struct {
	Name        string `json:"name"`
	Aliases     string `json:"aliases,omitempty"`
	AgeRange    string `json:"ageRange"`
	HeightRange string `json:"heightRange"`
	WeightRange string `json:"weightRange"`
	HairColor   string `json:"hairColor"`
	EyeColor    string `json:"eyeColor"`
}

// reportPayload deliberately omits the report's suspect id and guilt flag,
// those are the puzzle. The fuzzy suspect description is the player's lead.
type reportPayload struct {
	ID          string         `json:"id"`
	Description string         `json:"description"`
	Suspect     suspectPayload `json:"suspect"`
}

type casePayload struct {
	ID            string `json:"id"`
	CaseNumber    string `json:"caseNumber"`
	Title         string `json:"title"`
	Victims       string `json:"victims"`
	IncidentDate  string `json:"incidentDate"`
	Location      string `json:"location"`
	Details       string `json:"details"`
	Objective     string `json:"objective"`
	Difficulty    string `json:"difficulty"`
	CanBePractice bool   `json:"canBePractice"`
}

type activeCaseResponse struct {
	Case    casePayload     `json:"case"`
	Reports []reportPayload `json:"reports"`
}

// activeCase returns today's case with its witness reports in authored order.
func (app *application) activeCase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	activeCase, err := app.cases.Active(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			app.notFound(w, r)
			return
		}
		app.serverError(w, r, err)
		return
	}

	reports, err := app.reports.ListByCase(ctx, activeCase.ID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	response := activeCaseResponse{
		Case: casePayload{
			ID:            activeCase.ID,
			CaseNumber:    activeCase.CaseNumber,
			Title:         activeCase.Title,
			Victims:       activeCase.Victims,
			IncidentDate:  activeCase.IncidentDate,
			Location:      activeCase.Location,
			Details:       activeCase.Details,
			Objective:     activeCase.Objective,
			Difficulty:    activeCase.Difficulty,
			CanBePractice: activeCase.CanBePractice,
		},
		Reports: make([]reportPayload, 0, len(reports)),
	}
	for _, report := range reports {
		suspect, suspectErr := app.suspects.Get(ctx, report.SuspectID)
		if suspectErr != nil {
			app.serverError(w, r, suspectErr)
			return
		}
		response.Reports = append(response.Reports, reportPayload{
			ID:          report.ID,
			Description: report.Description,
			Suspect: suspectPayload{
				Name:        suspect.Name,
				Aliases:     suspect.Aliases,
				AgeRange:    suspect.AgeRange,
				HeightRange: suspect.HeightRange,
				WeightRange: suspect.WeightRange,
				HairColor:   suspect.HairColor,
				EyeColor:    suspect.EyeColor,
			},
		})
	}

	app.writeJSON(w, r, http.StatusOK, response)
}
