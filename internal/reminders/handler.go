package reminders

import (
	"encoding/json"
	"net/http"
	"strings"

	"medication-reminder/internal/middleware"

	"github.com/go-chi/chi/v5"
)

type feedResponse struct {
	Reminders []Reminder `json:"reminders"`
}

func RegisterRoutes(r chi.Router, runner *Runner) {
	r.Get("/me/reminders", listRemindersHandler(runner))
}

// listRemindersHandler godoc
// @Summary Listar recordatorios registrados
// @Description Recordatorios de toma que registró el ticker para el usuario (más reciente primero). No se entregan, sólo quedan en el feed.
// @Tags reminders
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {object} feedResponse
// @Failure 401 {string} string "unauthorized"
// @Router /me/reminders [get]
func listRemindersHandler(runner *Runner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		writeJSON(w, http.StatusOK, feedResponse{Reminders: runner.Feed(claims.UserID)})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
