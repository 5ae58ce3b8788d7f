package subscriptions

import (
	"encoding/json"
	"net/http"
	"strings"

	"medication-reminder/internal/middleware"
	"medication-reminder/internal/platform/apperr"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/me/subscription", getSubscriptionHandler(svc))
}

type subscriptionResponse struct {
	Type                 Type `json:"type"`
	MaxMedicines         int  `json:"max_medicines"`
	BloodPressureManager bool `json:"blood_pressure_manager"`
	DiabeticManager      bool `json:"diabetic_manager"`
}

// getSubscriptionHandler godoc
// @Summary Plan del usuario
// @Description Devuelve el plan actual; en el primer acceso crea el plan Basic (5 medicaciones, sin gestores premium).
// @Tags subscriptions
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {object} subscriptionResponse
// @Failure 401 {string} string "unauthorized"
// @Router /me/subscription [get]
func getSubscriptionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		sub, err := svc.Ensure(r.Context(), claims.UserID, claims.Email)
		if err != nil {
			http.Error(w, http.StatusText(apperr.HTTPStatus(err)), apperr.HTTPStatus(err))
			return
		}

		resp := subscriptionResponse{
			Type:                 sub.Type,
			MaxMedicines:         sub.MaxMedicines,
			BloodPressureManager: sub.BloodPressureManager,
			DiabeticManager:      sub.DiabeticManager,
		}
		if svc.allowAll {
			resp.MaxMedicines = PremiumMaxMedicines
			resp.BloodPressureManager = true
			resp.DiabeticManager = true
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
