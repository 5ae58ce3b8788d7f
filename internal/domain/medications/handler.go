package medications

import (
	"context"
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

// ContactFinder resuelve el contacto de emergencia del usuario para el
// deep link de WhatsApp. ok=false si no hay contacto guardado.
type ContactFinder interface {
	FindEmergencyContact(ctx context.Context, ownerUserID string) (name, phone string, ok bool, err error)
}

// RegisterRoutes monta CRUD de medicaciones y el panel de alertas.
// defaultLoc es la zona usada cuando el request no indica una.
func RegisterRoutes(r chi.Router, svc *Service, contacts ContactFinder, defaultLoc *time.Location) {
	if defaultLoc == nil {
		defaultLoc = time.UTC
	}

	r.Route("/medications", func(mr chi.Router) {
		mr.Post("/", createMedicationHandler(svc, defaultLoc))
		mr.Get("/", listMedicationsHandler(svc, defaultLoc))

		mr.Get("/{medicationID}", getMedicationHandler(svc, defaultLoc))
		mr.Put("/{medicationID}", updateMedicationHandler(svc, defaultLoc))
		mr.Delete("/{medicationID}", deleteMedicationHandler(svc))

		mr.Post("/{medicationID}/toggle", toggleMedicationHandler(svc, defaultLoc))
		mr.Post("/{medicationID}/archive", archiveMedicationHandler(svc, defaultLoc))
	})

	r.Get("/alerts", alertsHandler(svc, defaultLoc))
	r.Get("/alerts/low-stock/whatsapp", lowStockWhatsAppHandler(svc, contacts, defaultLoc))

	r.Post("/me/seed", seedHandler(svc, defaultLoc))
}

type courseRequest struct {
	DurationDays int    `json:"duration_days"`
	StartDate    string `json:"start_date"` // YYYY-MM-DD; vacío = hoy
}

// medicationRequest es el cuerpo del formulario de alta/edición.
type medicationRequest struct {
	Name         string         `json:"name"`
	Quantity     int            `json:"quantity"`
	DoseTimes    []string       `json:"dose_times"`
	ExpiryDate   string         `json:"expiry_date"` // YYYY-MM-DD opcional
	Active       *bool          `json:"active"`
	Instructions string         `json:"instructions"`
	Course       *courseRequest `json:"course"`
}

type courseResponse struct {
	DurationDays int    `json:"duration_days"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
}

// medicationResponse incluye los campos derivados del motor de cursos.
type medicationResponse struct {
	ID                  string          `json:"id"`
	OwnerUserID         string          `json:"owner_user_id"`
	Name                string          `json:"name"`
	Quantity            int             `json:"quantity"`
	DoseTimes           []string        `json:"dose_times"`
	ExpiryDate          string          `json:"expiry_date,omitempty"`
	Active              bool            `json:"active"`
	EffectivelyActive   bool            `json:"effectively_active"`
	LowStock            bool            `json:"low_stock"`
	Instructions        string          `json:"instructions,omitempty"`
	Course              *courseResponse `json:"course,omitempty"`
	RemainingCourseDays *int            `json:"remaining_course_days,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

type alertsResponse struct {
	EvaluatedAt    time.Time            `json:"evaluated_at"`
	Clock          string               `json:"clock"`
	TimeZone       string               `json:"time_zone"`
	DoseTimeAlerts []medicationResponse `json:"dose_time_alerts"`
	LowStockAlerts []medicationResponse `json:"low_stock_alerts"`
	AllClear       bool                 `json:"all_clear"`
}

type whatsAppResponse struct {
	URL           string `json:"url"`
	Message       string `json:"message"`
	LowStockCount int    `json:"low_stock_count"`
}

type seedResponse struct {
	Inserted int `json:"inserted"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
	Field string `json:"field,omitempty"`
}

// createMedicationHandler godoc
// @Summary Crear medicación
// @Description Alta desde el formulario. dose_times en HH:MM (se normalizan, deduplican y ordenan). Si active=false los horarios se guardan vacíos. Si se envía course, duration_days debe ser > 0 (si no, 400). Falla con 403 `upgrade_required` si el plan no admite más medicaciones.
// @Tags medications
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body medicationRequest true "Datos de la medicación"
// @Success 201 {object} medicationResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {object} errorResponse
// @Router /medications [post]
func createMedicationHandler(svc *Service, defaultLoc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		in, err := decodeMedicationRequest(r, svc.Now().In(requestLocation(r, defaultLoc)))
		if err != nil {
			writeError(w, err)
			return
		}

		m, err := svc.Create(r.Context(), claims.UserID, in)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toMedicationResponse(m, svc.Now().In(requestLocation(r, defaultLoc))))
	}
}

// listMedicationsHandler godoc
// @Summary Listar medicaciones
// @Description Por defecto sólo las efectivamente activas (flag active y curso no vencido). show_inactive=true devuelve todas. Para usuarios anónimos con la colección vacía se insertan primero los datos demo.
// @Tags medications
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param show_inactive query bool false "Incluir inactivas y cursos vencidos"
// @Param tz query string false "Zona IANA del usuario (o header X-Timezone)"
// @Success 200 {array} medicationResponse
// @Failure 401 {string} string "unauthorized"
// @Router /medications [get]
func listMedicationsHandler(svc *Service, defaultLoc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		now := svc.Now().In(requestLocation(r, defaultLoc))

		if claims.Anonymous {
			if _, err := svc.EnsureSeeded(r.Context(), claims.UserID, true, now); err != nil {
				writeError(w, err)
				return
			}
		}

		showInactive, _ := strconv.ParseBool(r.URL.Query().Get("show_inactive"))

		items, err := svc.List(r.Context(), claims.UserID, showInactive, now)
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]medicationResponse, 0, len(items))
		for _, m := range items {
			out = append(out, toMedicationResponse(m, now))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getMedicationHandler godoc
// @Summary Obtener medicación
// @Tags medications
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param medicationID path string true "ID de la medicación"
// @Success 200 {object} medicationResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {object} errorResponse
// @Router /medications/{medicationID} [get]
func getMedicationHandler(svc *Service, defaultLoc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		m, err := svc.GetByID(r.Context(), claims.UserID, chi.URLParam(r, "medicationID"))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toMedicationResponse(m, svc.Now().In(requestLocation(r, defaultLoc))))
	}
}

// updateMedicationHandler godoc
// @Summary Editar medicación
// @Description Reemplaza los campos editables. Si active se omite se conserva el valor actual.
// @Tags medications
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param medicationID path string true "ID de la medicación"
// @Param payload body medicationRequest true "Datos de la medicación"
// @Success 200 {object} medicationResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {object} errorResponse
// @Router /medications/{medicationID} [put]
func updateMedicationHandler(svc *Service, defaultLoc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		now := svc.Now().In(requestLocation(r, defaultLoc))
		in, err := decodeMedicationRequest(r, now)
		if err != nil {
			writeError(w, err)
			return
		}

		m, err := svc.Update(r.Context(), claims.UserID, chi.URLParam(r, "medicationID"), in)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toMedicationResponse(m, now))
	}
}

// deleteMedicationHandler godoc
// @Summary Borrar medicación
// @Tags medications
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param medicationID path string true "ID de la medicación"
// @Success 204
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {object} errorResponse
// @Router /medications/{medicationID} [delete]
func deleteMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), claims.UserID, chi.URLParam(r, "medicationID")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// toggleMedicationHandler godoc
// @Summary Activar/desactivar medicación
// @Tags medications
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param medicationID path string true "ID de la medicación"
// @Success 200 {object} medicationResponse
// @Failure 404 {object} errorResponse
// @Router /medications/{medicationID}/toggle [post]
func toggleMedicationHandler(svc *Service, defaultLoc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		m, err := svc.Toggle(r.Context(), claims.UserID, chi.URLParam(r, "medicationID"))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toMedicationResponse(m, svc.Now().In(requestLocation(r, defaultLoc))))
	}
}

// archiveMedicationHandler godoc
// @Summary Archivar medicación
// @Description Desactiva sin borrar. Idempotente.
// @Tags medications
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param medicationID path string true "ID de la medicación"
// @Success 200 {object} medicationResponse
// @Failure 404 {object} errorResponse
// @Router /medications/{medicationID}/archive [post]
func archiveMedicationHandler(svc *Service, defaultLoc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		m, err := svc.Archive(r.Context(), claims.UserID, chi.URLParam(r, "medicationID"))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toMedicationResponse(m, svc.Now().In(requestLocation(r, defaultLoc))))
	}
}

// alertsHandler godoc
// @Summary Alertas actuales
// @Description Evalúa alertas de toma (coincidencia exacta HH:MM en la zona del usuario) y de stock bajo (cantidad < 5). Sólo cuentan medicaciones efectivamente activas. El cliente re-consulta periódicamente (30s).
// @Tags alerts
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param tz query string false "Zona IANA del usuario (o header X-Timezone)"
// @Success 200 {object} alertsResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {string} string "unauthorized"
// @Router /alerts [get]
func alertsHandler(svc *Service, defaultLoc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		loc, err := parseLocation(r, defaultLoc)
		if err != nil {
			writeError(w, err)
			return
		}

		now := svc.Now().In(loc)
		a, err := svc.Alerts(r.Context(), claims.UserID, now)
		if err != nil {
			writeError(w, err)
			return
		}

		resp := alertsResponse{
			EvaluatedAt:    a.EvaluatedAt,
			Clock:          ClockString(now),
			TimeZone:       loc.String(),
			DoseTimeAlerts: make([]medicationResponse, 0, len(a.DoseTime)),
			LowStockAlerts: make([]medicationResponse, 0, len(a.LowStock)),
			AllClear:       a.AllClear(),
		}
		for _, m := range a.DoseTime {
			resp.DoseTimeAlerts = append(resp.DoseTimeAlerts, toMedicationResponse(m, now))
		}
		for _, m := range a.LowStock {
			resp.LowStockAlerts = append(resp.LowStockAlerts, toMedicationResponse(m, now))
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// lowStockWhatsAppHandler godoc
// @Summary Link de WhatsApp por stock bajo
// @Description Arma el mensaje para el contacto de emergencia con las medicaciones con stock bajo y lo devuelve como deep link wa.me. No envía nada. Sin stock bajo devuelve url vacía.
// @Tags alerts
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {object} whatsAppResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 409 {object} errorResponse
// @Router /alerts/low-stock/whatsapp [get]
func lowStockWhatsAppHandler(svc *Service, contacts ContactFinder, defaultLoc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if contacts == nil {
			writeJSON(w, http.StatusConflict, errorResponse{Error: "no emergency contact", Code: "no_emergency_contact"})
			return
		}
		name, phone, found, err := contacts.FindEmergencyContact(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, err)
			return
		}
		if !found {
			writeJSON(w, http.StatusConflict, errorResponse{Error: "no emergency contact", Code: "no_emergency_contact"})
			return
		}

		a, err := svc.Alerts(r.Context(), claims.UserID, svc.Now().In(requestLocation(r, defaultLoc)))
		if err != nil {
			writeError(w, err)
			return
		}
		if len(a.LowStock) == 0 {
			writeJSON(w, http.StatusOK, whatsAppResponse{})
			return
		}

		msg := LowStockMessage(name, a.LowStock)
		writeJSON(w, http.StatusOK, whatsAppResponse{
			URL:           WhatsAppURL(phone, msg),
			Message:       msg,
			LowStockCount: len(a.LowStock),
		})
	}
}

// seedHandler godoc
// @Summary Cargar datos demo
// @Description Inserta Aspirin, Vitamin D y Antibiotic si la colección del usuario está vacía. Idempotente.
// @Tags medications
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param tz query string false "Zona IANA del usuario (o header X-Timezone)"
// @Success 200 {object} seedResponse
// @Failure 401 {string} string "unauthorized"
// @Router /me/seed [post]
func seedHandler(svc *Service, defaultLoc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		n, err := svc.EnsureSeeded(r.Context(), claims.UserID, true, svc.Now().In(requestLocation(r, defaultLoc)))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, seedResponse{Inserted: n})
	}
}

func decodeMedicationRequest(r *http.Request, now time.Time) (Input, error) {
	var req medicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return Input{}, apperr.Invalid("", "invalid json")
	}

	in := Input{
		Name:         req.Name,
		Quantity:     req.Quantity,
		DoseTimes:    req.DoseTimes,
		Active:       req.Active,
		Instructions: req.Instructions,
	}
	if in.DoseTimes == nil {
		in.DoseTimes = []string{}
	}

	if strings.TrimSpace(req.ExpiryDate) != "" {
		t, err := time.Parse("2006-01-02", strings.TrimSpace(req.ExpiryDate))
		if err != nil {
			return Input{}, apperr.Invalid("expiry_date", "must be YYYY-MM-DD")
		}
		in.ExpiryDate = &t
	}

	// Un curso enviado debe tener duración positiva (lo valida validateInput).
	if req.Course != nil {
		start := civilDay(now)
		if s := strings.TrimSpace(req.Course.StartDate); s != "" {
			t, err := time.Parse("2006-01-02", s)
			if err != nil {
				return Input{}, apperr.Invalid("course.start_date", "must be YYYY-MM-DD")
			}
			start = t
		}
		in.Course = &Course{DurationDays: req.Course.DurationDays, StartDate: start}
	}
	return in, nil
}

func toMedicationResponse(m Medication, now time.Time) medicationResponse {
	out := medicationResponse{
		ID:                  m.ID,
		OwnerUserID:         m.OwnerUserID,
		Name:                m.Name,
		Quantity:            m.Quantity,
		DoseTimes:           m.DoseTimes,
		Active:              m.Active,
		EffectivelyActive:   IsEffectivelyActive(m, now),
		LowStock:            m.Quantity < LowStockThreshold,
		Instructions:        m.Instructions,
		RemainingCourseDays: RemainingCourseDays(m, now),
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
	if out.DoseTimes == nil {
		out.DoseTimes = []string{}
	}
	if m.ExpiryDate != nil {
		out.ExpiryDate = m.ExpiryDate.Format("2006-01-02")
	}
	if m.Course != nil {
		out.Course = &courseResponse{
			DurationDays: m.Course.DurationDays,
			StartDate:    m.Course.StartDate.Format("2006-01-02"),
			EndDate:      m.Course.EndDate().Format("2006-01-02"),
		}
	}
	return out
}

// requestLocation: ?tz= o X-Timezone; si no es válida, la default.
func requestLocation(r *http.Request, def *time.Location) *time.Location {
	loc, err := parseLocation(r, def)
	if err != nil {
		return def
	}
	return loc
}

func parseLocation(r *http.Request, def *time.Location) (*time.Location, error) {
	name := strings.TrimSpace(r.URL.Query().Get("tz"))
	if name == "" {
		name = strings.TrimSpace(r.Header.Get("X-Timezone"))
	}
	if name == "" {
		return def, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, apperr.Invalid("tz", "unknown time zone")
	}
	return loc, nil
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrLimitReached) {
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
		// No exponer detalles del driver.
		resp.Error = "internal error"
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
