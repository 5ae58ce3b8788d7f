package refill

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"medication-reminder/internal/domain/medications"
	"medication-reminder/internal/middleware"
	"medication-reminder/internal/platform/apperr"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta la estimación bajo /medications/{medicationID}.
// mws se aplican sólo a esta ruta (p.ej. rate limit por usuario).
func RegisterRoutes(r chi.Router, svc *Service, medsSvc *medications.Service, defaultLoc *time.Location, mws ...func(http.Handler) http.Handler) {
	if defaultLoc == nil {
		defaultLoc = time.UTC
	}
	r.With(mws...).Post("/medications/{medicationID}/refill-estimate", estimateRefillHandler(svc, medsSvc, defaultLoc))
}

type suggestionResponse struct {
	MedicationID    string `json:"medication_id"`
	MedicationName  string `json:"medication_name"`
	CurrentQuantity int    `json:"current_quantity"`
	DosesPerDay     int    `json:"doses_per_day"`
	DaysOfSupply    int    `json:"days_of_supply"`
	DepletionDate   string `json:"depletion_date"`
	RefillDate      string `json:"refill_date"`
	Recommendation  string `json:"recommendation"`
	Source          string `json:"source" enums:"generator,fallback"`
}

type errorResponse struct {
	Error     string `json:"error"`
	Retryable bool   `json:"retryable,omitempty"`
}

// estimateRefillHandler godoc
// @Summary Estimar fecha de reposición
// @Description Calcula cuándo se agota la medicación (cantidad / tomas distintas por día) y sugiere reponer 3 días antes, nunca antes de hoy. El texto de la recomendación lo escribe el generador externo; si falla devuelve 502 y el usuario puede reintentar. No modifica la cantidad.
// @Tags medications
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param medicationID path string true "ID de la medicación"
// @Param tz query string false "Zona IANA del usuario (o header X-Timezone)"
// @Success 200 {object} suggestionResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {object} errorResponse
// @Failure 429 {string} string "too many requests"
// @Failure 502 {object} errorResponse
// @Router /medications/{medicationID}/refill-estimate [post]
func estimateRefillHandler(svc *Service, medsSvc *medications.Service, defaultLoc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		m, err := medsSvc.GetByID(r.Context(), claims.UserID, chi.URLParam(r, "medicationID"))
		if err != nil {
			writeError(w, err)
			return
		}

		today := svc.now().In(userLocation(r, defaultLoc))
		sg, err := svc.EstimateRefillAt(r.Context(), m.Name, m.Quantity, m.DoseTimes, today)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, suggestionResponse{
			MedicationID:    m.ID,
			MedicationName:  m.Name,
			CurrentQuantity: m.Quantity,
			DosesPerDay:     sg.DosesPerDay,
			DaysOfSupply:    sg.DaysOfSupply,
			DepletionDate:   sg.DepletionDate.Format("2006-01-02"),
			RefillDate:      sg.RefillDate.Format("2006-01-02"),
			Recommendation:  sg.Recommendation,
			Source:          sg.Source,
		})
	}
}

func userLocation(r *http.Request, def *time.Location) *time.Location {
	name := strings.TrimSpace(r.URL.Query().Get("tz"))
	if name == "" {
		name = strings.TrimSpace(r.Header.Get("X-Timezone"))
	}
	if name == "" {
		return def
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return def
	}
	return loc
}

func writeError(w http.ResponseWriter, err error) {
	status := apperr.HTTPStatus(err)
	resp := errorResponse{Error: err.Error()}

	var ee *apperr.EstimationError
	if errors.As(err, &ee) {
		// El detalle del upstream queda en logs; al usuario sólo el motivo.
		resp.Error = "refill estimation failed: " + ee.Reason
		resp.Retryable = true
	}
	if status == http.StatusInternalServerError {
		resp.Error = "internal error"
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
