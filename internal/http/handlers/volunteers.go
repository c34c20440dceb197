package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"volunteerhub/internal/records"
)

func (a *App) VolunteersCreate(w http.ResponseWriter, r *http.Request) {
	var params records.CreateVolunteerParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	record, err := a.Records.CreateVolunteer(r.Context(), params)
	if err != nil {
		a.serviceError(w, r, err)
		return
	}
	a.json(w, http.StatusCreated, record)
}

func (a *App) VolunteersGet(w http.ResponseWriter, r *http.Request) {
	record, err := a.Records.GetVolunteer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.serviceError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, record)
}

func (a *App) VolunteersList(w http.ResponseWriter, r *http.Request) {
	items, err := a.Records.ListVolunteers(r.Context())
	if err != nil {
		a.serviceError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}
