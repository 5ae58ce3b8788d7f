package readings

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"medication-reminder/internal/middleware"
	"medication-reminder/internal/platform/apperr"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/blood-pressure", func(br chi.Router) {
		// Leyenda y clasificador: públicos, no dependen del plan.
		br.Get("/categories", bpCategoriesHandler())
		br.Get("/classify", bpClassifyHandler())

		br.Post("/", createBloodPressureHandler(svc))
		br.Get("/", listBloodPressureHandler(svc))
		br.Delete("/{readingID}", deleteBloodPressureHandler(svc))
	})

	r.Route("/glucose", func(gr chi.Router) {
		gr.Get("/categories", glucoseCategoriesHandler())
		gr.Get("/classify", glucoseClassifyHandler())

		gr.Post("/", createGlucoseHandler(svc))
		gr.Get("/", listGlucoseHandler(svc))
		gr.Delete("/{readingID}", deleteGlucoseHandler(svc))
	})
}

type bloodPressureRequest struct {
	Systolic    int         `json:"systolic"`
	Diastolic   int         `json:"diastolic"`
	Pulse       int         `json:"pulse"`
	Timestamp   string      `json:"timestamp"` // RFC3339 opcional; vacío = ahora
	Arm         Arm         `json:"arm" enums:"left,right"`
	Position    Position    `json:"position" enums:"sitting,laying,standing"`
	Conditions  *Conditions `json:"conditions"`
	Description string      `json:"description"`
}

type bloodPressureResponse struct {
	ID          string      `json:"id"`
	Systolic    int         `json:"systolic"`
	Diastolic   int         `json:"diastolic"`
	Pulse       int         `json:"pulse"`
	Timestamp   time.Time   `json:"timestamp"`
	Arm         Arm         `json:"arm,omitempty"`
	Position    Position    `json:"position,omitempty"`
	Conditions  *Conditions `json:"conditions,omitempty"`
	Description string      `json:"description,omitempty"`
	Category    Category    `json:"category"`
}

type glucoseRequest struct {
	GlucoseLevel int         `json:"glucose_level"`
	ReadingType  ReadingType `json:"reading_type" enums:"fasting,post-meal,random"`
	Timestamp    string      `json:"timestamp"` // RFC3339 opcional
}

type glucoseResponse struct {
	ID           string      `json:"id"`
	GlucoseLevel int         `json:"glucose_level"`
	ReadingType  ReadingType `json:"reading_type"`
	Timestamp    time.Time   `json:"timestamp"`
	Category     Category    `json:"category"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
	Field string `json:"field,omitempty"`
}

// bpCategoriesHandler godoc
// @Summary Leyenda de categorías de presión arterial
// @Tags blood-pressure
// @Produce json
// @Success 200 {array} Category
// @Router /blood-pressure/categories [get]
func bpCategoriesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, BloodPressureCategories())
	}
}

// bpClassifyHandler godoc
// @Summary Clasificar una medición de presión
// @Description Aplica la tabla en orden de precedencia: crisis, stage 2, stage 1, elevated, hypotension, normal.
// @Tags blood-pressure
// @Produce json
// @Param systolic query int true "Sistólica"
// @Param diastolic query int true "Diastólica"
// @Success 200 {object} Category
// @Failure 400 {object} errorResponse
// @Router /blood-pressure/classify [get]
func bpClassifyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sys, err := queryInt(r, "systolic")
		if err != nil {
			writeError(w, err)
			return
		}
		dia, err := queryInt(r, "diastolic")
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ClassifyBloodPressure(sys, dia))
	}
}

// createBloodPressureHandler godoc
// @Summary Registrar medición de presión arterial
// @Description Requiere el gestor de presión arterial en el plan. systolic, diastolic y pulse entre 0 y 300.
// @Tags blood-pressure
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body bloodPressureRequest true "Medición"
// @Success 201 {object} bloodPressureResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {object} errorResponse
// @Router /blood-pressure [post]
func createBloodPressureHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req bloodPressureRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, apperr.Invalid("", "invalid json"))
			return
		}
		ts, err := parseTimestamp(req.Timestamp)
		if err != nil {
			writeError(w, err)
			return
		}

		rd, err := svc.AddBloodPressure(r.Context(), claims.UserID, BloodPressureInput{
			Systolic:    req.Systolic,
			Diastolic:   req.Diastolic,
			Pulse:       req.Pulse,
			Timestamp:   ts,
			Arm:         req.Arm,
			Position:    req.Position,
			Conditions:  req.Conditions,
			Description: req.Description,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toBloodPressureResponse(rd))
	}
}

// listBloodPressureHandler godoc
// @Summary Listar mediciones de presión arterial
// @Description order=desc (default, tabla) u order=asc (gráfico de tendencia).
// @Tags blood-pressure
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param order query string false "asc|desc"
// @Success 200 {array} bloodPressureResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {object} errorResponse
// @Router /blood-pressure [get]
func listBloodPressureHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListBloodPressure(r.Context(), claims.UserID, ParseOrder(r.URL.Query().Get("order")))
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]bloodPressureResponse, 0, len(items))
		for _, rd := range items {
			out = append(out, toBloodPressureResponse(rd))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// deleteBloodPressureHandler godoc
// @Summary Borrar medición de presión arterial
// @Tags blood-pressure
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param readingID path string true "ID de la medición"
// @Success 204
// @Failure 403 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /blood-pressure/{readingID} [delete]
func deleteBloodPressureHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.DeleteBloodPressure(r.Context(), claims.UserID, chi.URLParam(r, "readingID")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// glucoseCategoriesHandler godoc
// @Summary Leyenda de categorías de glucemia
// @Tags glucose
// @Produce json
// @Success 200 {array} Category
// @Router /glucose/categories [get]
func glucoseCategoriesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, GlucoseCategories())
	}
}

// glucoseClassifyHandler godoc
// @Summary Clasificar una glucemia
// @Tags glucose
// @Produce json
// @Param level query int true "mg/dL"
// @Param type query string false "fasting|post-meal|random (default random)"
// @Success 200 {object} Category
// @Failure 400 {object} errorResponse
// @Router /glucose/classify [get]
func glucoseClassifyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		level, err := queryInt(r, "level")
		if err != nil {
			writeError(w, err)
			return
		}
		t := ReadingType(strings.TrimSpace(r.URL.Query().Get("type")))
		if t == "" {
			t = ReadingRandom
		}
		if !t.Valid() {
			writeError(w, apperr.Invalid("type", "must be fasting, post-meal or random"))
			return
		}
		writeJSON(w, http.StatusOK, ClassifyGlucose(level, t))
	}
}

// createGlucoseHandler godoc
// @Summary Registrar glucemia
// @Description Requiere el gestor diabético en el plan. glucose_level entre 0 y 1000 mg/dL.
// @Tags glucose
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body glucoseRequest true "Medición"
// @Success 201 {object} glucoseResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {object} errorResponse
// @Router /glucose [post]
func createGlucoseHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req glucoseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, apperr.Invalid("", "invalid json"))
			return
		}
		ts, err := parseTimestamp(req.Timestamp)
		if err != nil {
			writeError(w, err)
			return
		}

		rd, err := svc.AddGlucose(r.Context(), claims.UserID, GlucoseInput{
			GlucoseLevel: req.GlucoseLevel,
			ReadingType:  req.ReadingType,
			Timestamp:    ts,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toGlucoseResponse(rd))
	}
}

// listGlucoseHandler godoc
// @Summary Listar glucemias
// @Tags glucose
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param order query string false "asc|desc"
// @Success 200 {array} glucoseResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {object} errorResponse
// @Router /glucose [get]
func listGlucoseHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListGlucose(r.Context(), claims.UserID, ParseOrder(r.URL.Query().Get("order")))
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]glucoseResponse, 0, len(items))
		for _, rd := range items {
			out = append(out, toGlucoseResponse(rd))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// deleteGlucoseHandler godoc
// @Summary Borrar glucemia
// @Tags glucose
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param readingID path string true "ID de la medición"
// @Success 204
// @Failure 403 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /glucose/{readingID} [delete]
func deleteGlucoseHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.DeleteGlucose(r.Context(), claims.UserID, chi.URLParam(r, "readingID")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toBloodPressureResponse(rd BloodPressureReading) bloodPressureResponse {
	return bloodPressureResponse{
		ID:          rd.ID,
		Systolic:    rd.Systolic,
		Diastolic:   rd.Diastolic,
		Pulse:       rd.Pulse,
		Timestamp:   rd.Timestamp,
		Arm:         rd.Arm,
		Position:    rd.Position,
		Conditions:  rd.Conditions,
		Description: rd.Description,
		Category:    ClassifyBloodPressure(rd.Systolic, rd.Diastolic),
	}
}

func toGlucoseResponse(rd DiabeticReading) glucoseResponse {
	return glucoseResponse{
		ID:           rd.ID,
		GlucoseLevel: rd.GlucoseLevel,
		ReadingType:  rd.ReadingType,
		Timestamp:    rd.Timestamp,
		Category:     ClassifyGlucose(rd.GlucoseLevel, rd.ReadingType),
	}
}

func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, apperr.Invalid("timestamp", "must be RFC3339")
	}
	return t, nil
}

func queryInt(r *http.Request, name string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get(name)))
	if err != nil {
		return 0, apperr.Invalid(name, "must be an integer")
	}
	return v, nil
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrFeatureLocked) {
		writeJSON(w, http.StatusForbidden, errorResponse{Error: err.Error(), Code: "upgrade_required"})
		return
	}

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
