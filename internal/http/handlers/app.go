package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"volunteerhub/internal/domain"
	"volunteerhub/internal/records"
)

// App bundles the dependencies shared by the HTTP handlers.
type App struct {
	Records *records.Service
	Logger  zerolog.Logger
}

func NewApp(svc *records.Service, logger zerolog.Logger) *App {
	return &App{Records: svc, Logger: logger}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errCode, message string) {
	a.json(w, code, map[string]string{"error": errCode, "message": message})
}

// serviceError maps record-service errors onto HTTP responses. Validation and
// conflict failures surface their own message; anything unexpected becomes a
// logged 500 with a generic body.
func (a *App) serviceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	var cerr *domain.ConflictError
	switch {
	case errors.As(err, &verr):
		a.error(w, http.StatusBadRequest, "bad_request", verr.Error())
	case errors.As(err, &cerr):
		a.error(w, http.StatusBadRequest, "conflict", cerr.Error())
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", "record not found")
	default:
		a.Logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		a.error(w, http.StatusInternalServerError, "internal", "internal server error")
	}
}
