package main

import (
	"net/http"

	"github.com/Asantae/Cluify-sub000/internal/models"
	"github.com/Asantae/Cluify-sub000/internal/repositories"
)

type registrySearchRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	AgeStart     *int64 `json:"ageStart"`
	AgeEnd       *int64 `json:"ageEnd"`
	WeightStart  *int64 `json:"weightStart"`
	WeightEnd    *int64 `json:"weightEnd"`
	HeightStart  string `json:"heightStart"`
	HeightEnd    string `json:"heightEnd"`
	Sex          string `json:"sex"`
	HairColor    string `json:"hairColor"`
	EyeColor     string `json:"eyeColor"`
	LicensePlate string `json:"licensePlate"`
}

func (req registrySearchRequest) empty() bool {
	return req.FirstName == "" && req.LastName == "" &&
		req.AgeStart == nil && req.AgeEnd == nil &&
		req.WeightStart == nil && req.WeightEnd == nil &&
		req.HeightStart == "" && req.HeightEnd == "" &&
		req.Sex == "" && req.HairColor == "" && req.EyeColor == "" &&
		req.LicensePlate == ""
}

// registryRecordPayload omits the suspect back-reference; handing it to the
// client would solve the case for free.
type registryRecordPayload struct {
	ID           string `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Age          int64  `json:"age"`
	Weight       int64  `json:"weight"`
	Sex          string `json:"sex"`
	HairColor    string `json:"hairColor"`
	EyeColor     string `json:"eyeColor"`
	Height       string `json:"height"`
	LicensePlate string `json:"licensePlate"`
}

type registrySearchResponse struct {
	Records []registryRecordPayload `json:"records"`
}

// searchRegistry runs a registry query. A search with no criteria at all is
// refused; the registry is not for browsing.
func (app *application) searchRegistry(w http.ResponseWriter, r *http.Request) {
	var request registrySearchRequest
	if !app.decodeJSON(w, r, &request) {
		return
	}
	if request.empty() {
		app.clientError(w, r, http.StatusUnprocessableEntity)
		return
	}

	records, err := app.registry.Search(r.Context(), repositories.RegistrySearch{
		AgeStart:     request.AgeStart,
		AgeEnd:       request.AgeEnd,
		WeightStart:  request.WeightStart,
		WeightEnd:    request.WeightEnd,
		HeightStart:  request.HeightStart,
		HeightEnd:    request.HeightEnd,
		Sex:          request.Sex,
		HairColor:    request.HairColor,
		EyeColor:     request.EyeColor,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		LicensePlate: request.LicensePlate,
	})
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	response := registrySearchResponse{Records: make([]registryRecordPayload, 0, len(records))}
	for _, record := range records {
		response.Records = append(response.Records, toRegistryRecordPayload(record))
	}
	app.writeJSON(w, r, http.StatusOK, response)
}

func toRegistryRecordPayload(record models.RegistryRecord) registryRecordPayload {
	return registryRecordPayload{
		ID:           record.ID,
		FirstName:    record.FirstName,
		LastName:     record.LastName,
		Age:          record.Age,
		Weight:       record.Weight,
		Sex:          record.Sex,
		HairColor:    record.HairColor,
		EyeColor:     record.EyeColor,
		Height:       record.Height,
		LicensePlate: record.LicensePlate,
	}
}
