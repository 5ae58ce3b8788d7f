package contacts

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"medication-reminder/internal/middleware"
	"medication-reminder/internal/platform/apperr"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/me/emergency-contact", func(cr chi.Router) {
		cr.Get("/", getContactHandler(svc))
		cr.Put("/", putContactHandler(svc))
		cr.Delete("/", deleteContactHandler(svc))
	})
}

type contactRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type contactResponse struct {
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	UpdatedAt time.Time `json:"updated_at"`
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// getContactHandler godoc
// @Summary Contacto de emergencia
// @Tags contacts
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {object} contactResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {object} errorResponse
// @Router /me/emergency-contact [get]
func getContactHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		c, err := svc.Get(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, contactResponse{Name: c.Name, Phone: c.Phone, UpdatedAt: c.UpdatedAt})
	}
}

// putContactHandler godoc
// @Summary Guardar contacto de emergencia
// @Description Crea o reemplaza el contacto. name con al menos 2 caracteres; phone con dígitos, espacios, guiones, paréntesis y "+" inicial opcional.
// @Tags contacts
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body contactRequest true "Contacto"
// @Success 200 {object} contactResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {string} string "unauthorized"
// @Router /me/emergency-contact [put]
func putContactHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req contactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, apperr.Invalid("", "invalid json"))
			return
		}

		c, err := svc.Save(r.Context(), claims.UserID, req.Name, req.Phone)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, contactResponse{Name: c.Name, Phone: c.Phone, UpdatedAt: c.UpdatedAt})
	}
}

// deleteContactHandler godoc
// @Summary Borrar contacto de emergencia
// @Tags contacts
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 204
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {object} errorResponse
// @Router /me/emergency-contact [delete]
func deleteContactHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), claims.UserID); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := apperr.HTTPStatus(err)
	resp := errorResponse{Error: err.Error()}
	var ve *apperr.ValidationError
	if errors.As(err, &ve) {
		resp.Field = ve.Field
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
