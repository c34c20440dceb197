package handlers

import (
	"encoding/json"
	"net/http"

	"volunteerhub/internal/records"
)

func (a *App) FeedbacksCreate(w http.ResponseWriter, r *http.Request) {
	var params records.CreateFeedbackParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	record, err := a.Records.CreateFeedback(r.Context(), params)
	if err != nil {
		a.serviceError(w, r, err)
		return
	}
	a.json(w, http.StatusCreated, record)
}

func (a *App) FeedbacksList(w http.ResponseWriter, r *http.Request) {
	items, err := a.Records.ListFeedback(r.Context())
	if err != nil {
		a.serviceError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}
