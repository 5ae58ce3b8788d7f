package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"medication-reminder/internal/domain/subscriptions"
	"medication-reminder/internal/ports/textgen"
	"medication-reminder/internal/router"
)

type user struct {
	id        string
	email     string
	anonymous bool
}

func TestHTTP_EndToEnd_MedicationLifecycle(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	u := user{id: "user-1"}

	// 1) sin auth => 401
	{
		st, _ := doReq(t, ts.URL, "GET", "/medications", user{}, nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without user, got %d", st)
		}
	}

	// 2) alta y lectura devuelven lo mismo
	medID := createMedication(t, ts.URL, u, map[string]any{
		"name":         "Aspirin",
		"quantity":     50,
		"dose_times":   []string{"20:00", "08:00", "08:00"},
		"instructions": "Take with food.",
	})
	{
		st, body := doReq(t, ts.URL, "GET", "/medications/"+medID, u, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get medication, got %d body=%s", st, string(body))
		}
		var m medication
		_ = json.Unmarshal(body, &m)
		if m.Name != "Aspirin" || m.Quantity != 50 || strings.Join(m.DoseTimes, ",") != "08:00,20:00" {
			t.Fatalf("unexpected medication: %+v", m)
		}
		if !m.Active || !m.EffectivelyActive {
			t.Fatalf("expected active medication: %+v", m)
		}
	}

	// 3) otro usuario no la ve
	{
		st, _ := doReq(t, ts.URL, "GET", "/medications/"+medID, user{id: "user-2"}, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for other user, got %d", st)
		}
	}

	// 4) validación
	{
		st, body := doReq(t, ts.URL, "POST", "/medications", u, map[string]any{
			"name":       "Bad",
			"quantity":   1,
			"dose_times": []string{"25:00"},
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for bad dose time, got %d body=%s", st, string(body))
		}
	}

	// 5) toggle => deja de listarse por defecto, aparece con show_inactive
	{
		st, body := doReq(t, ts.URL, "POST", "/medications/"+medID+"/toggle", u, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 toggle, got %d body=%s", st, string(body))
		}
		if got := listMedications(t, ts.URL, u, false); len(got) != 0 {
			t.Fatalf("expected no active medications, got %d", len(got))
		}
		if got := listMedications(t, ts.URL, u, true); len(got) != 1 {
			t.Fatalf("expected 1 medication with show_inactive, got %d", len(got))
		}
	}

	// 6) borrar
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/medications/"+medID, u, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/medications/"+medID, u, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", st)
		}
	}
}

func TestHTTP_BasicPlanLimitAndPremiumEmail(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{
		Subscriptions: subscriptions.Options{PremiumEmails: []string{"vip@example.com"}},
	}))
	defer ts.Close()

	basic := user{id: "basic-1", email: "someone@example.com"}
	for i := 0; i < subscriptions.BasicMaxMedicines; i++ {
		createMedication(t, ts.URL, basic, map[string]any{"name": "Med", "quantity": 10})
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/medications", basic, map[string]any{"name": "One more", "quantity": 10})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 over the basic limit, got %d body=%s", st, string(body))
		}
		if !strings.Contains(string(body), "upgrade_required") {
			t.Fatalf("expected upgrade_required code, body=%s", string(body))
		}
	}

	vip := user{id: "vip-1", email: "VIP@example.com"}
	for i := 0; i < subscriptions.BasicMaxMedicines+1; i++ {
		createMedication(t, ts.URL, vip, map[string]any{"name": "Med", "quantity": 10})
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/me/subscription", vip, nil)
		if st != http.StatusOK || !strings.Contains(string(body), `"Premium"`) {
			t.Fatalf("expected premium subscription, got %d body=%s", st, string(body))
		}
	}
}

func TestHTTP_AnonymousSeedingAndAlerts(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	guest := user{id: "guest-1", anonymous: true}

	meds := listMedications(t, ts.URL, guest, false)
	if len(meds) != 3 {
		t.Fatalf("expected 3 demo medications, got %d", len(meds))
	}
	// segunda vez no vuelve a sembrar
	if meds = listMedications(t, ts.URL, guest, false); len(meds) != 3 {
		t.Fatalf("expected seeding once, got %d", len(meds))
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/me/seed", guest, nil)
		if st != http.StatusOK || !strings.Contains(string(body), `"inserted":0`) {
			t.Fatalf("expected no new seed rows, got %d body=%s", st, string(body))
		}
	}

	// Vitamin D (3) queda en stock bajo
	{
		st, body := doReq(t, ts.URL, "GET", "/alerts?tz=UTC", guest, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 alerts, got %d body=%s", st, string(body))
		}
		var a struct {
			LowStock []medication `json:"low_stock_alerts"`
			AllClear bool         `json:"all_clear"`
		}
		_ = json.Unmarshal(body, &a)
		if len(a.LowStock) != 1 || a.LowStock[0].Name != "Vitamin D" || a.AllClear {
			t.Fatalf("unexpected low stock alerts: %s", string(body))
		}
	}
	{
		st, _ := doReq(t, ts.URL, "GET", "/alerts?tz=Not/AZone", guest, nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for bad tz, got %d", st)
		}
	}

	// WhatsApp: sin contacto => 409; con contacto => link
	{
		st, _ := doReq(t, ts.URL, "GET", "/alerts/low-stock/whatsapp", guest, nil)
		if st != http.StatusConflict {
			t.Fatalf("expected 409 without emergency contact, got %d", st)
		}
		st, body := doReq(t, ts.URL, "PUT", "/me/emergency-contact", guest, map[string]any{
			"name":  "Jane",
			"phone": "+1 (555) 123-4567",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 save contact, got %d body=%s", st, string(body))
		}
		st, body = doReq(t, ts.URL, "GET", "/alerts/low-stock/whatsapp", guest, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 whatsapp link, got %d body=%s", st, string(body))
		}
		var w struct {
			URL string `json:"url"`
		}
		_ = json.Unmarshal(body, &w)
		if !strings.HasPrefix(w.URL, "https://wa.me/15551234567?text=Hi%20Jane") {
			t.Fatalf("unexpected whatsapp url: %s", w.URL)
		}
	}
}

func TestHTTP_ReadingsGatedBySubscription(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{
		Subscriptions: subscriptions.Options{PremiumEmails: []string{"vip@example.com"}},
	}))
	defer ts.Close()

	reading := map[string]any{"systolic": 125, "diastolic": 79, "pulse": 70, "arm": "left", "position": "sitting"}

	// clasificación pública
	{
		st, body := doReq(t, ts.URL, "GET", "/blood-pressure/classify?systolic=125&diastolic=79", user{}, nil)
		if st != http.StatusOK || !strings.Contains(string(body), `"elevated"`) {
			t.Fatalf("expected elevated classification, got %d body=%s", st, string(body))
		}
	}

	basic := user{id: "basic-1"}
	{
		st, body := doReq(t, ts.URL, "POST", "/blood-pressure", basic, reading)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 for basic plan, got %d body=%s", st, string(body))
		}
		st, _ = doReq(t, ts.URL, "GET", "/glucose", basic, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 listing glucose on basic plan, got %d", st)
		}
	}

	vip := user{id: "vip-1", email: "vip@example.com"}
	{
		st, body := doReq(t, ts.URL, "POST", "/blood-pressure", vip, reading)
		if st != http.StatusCreated {
			t.Fatalf("expected 201 for premium, got %d body=%s", st, string(body))
		}
		st, body = doReq(t, ts.URL, "POST", "/glucose", vip, map[string]any{"glucose_level": 95, "reading_type": "fasting"})
		if st != http.StatusCreated || !strings.Contains(string(body), `"normal"`) {
			t.Fatalf("expected 201 normal glucose, got %d body=%s", st, string(body))
		}
		st, body = doReq(t, ts.URL, "GET", "/blood-pressure?order=asc", vip, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list, got %d body=%s", st, string(body))
		}
		var items []map[string]any
		_ = json.Unmarshal(body, &items)
		if len(items) != 1 {
			t.Fatalf("expected 1 reading, got %d", len(items))
		}
	}
}

type failingGenerator struct{}

func (failingGenerator) Generate(context.Context, textgen.Request) (string, error) {
	return "", errors.New("upstream down")
}

type fixedGenerator struct{}

func (fixedGenerator) Generate(context.Context, textgen.Request) (string, error) {
	return "```json\n{\"refillDate\":\"2099-01-01\",\"recommendation\":\"Call your pharmacy this week.\"}\n```", nil
}

func TestHTTP_RefillEstimate(t *testing.T) {
	u := user{id: "user-1"}

	t.Run("fallback without generator", func(t *testing.T) {
		ts := httptest.NewServer(router.NewRouter(router.Options{}))
		defer ts.Close()

		medID := createMedication(t, ts.URL, u, map[string]any{"name": "Aspirin", "quantity": 30, "dose_times": []string{"08:00", "20:00"}})
		st, body := doReq(t, ts.URL, "POST", "/medications/"+medID+"/refill-estimate", u, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 refill estimate, got %d body=%s", st, string(body))
		}
		var s struct {
			DosesPerDay  int    `json:"doses_per_day"`
			DaysOfSupply int    `json:"days_of_supply"`
			Source       string `json:"source"`
		}
		_ = json.Unmarshal(body, &s)
		if s.DosesPerDay != 2 || s.DaysOfSupply != 15 || s.Source != "fallback" {
			t.Fatalf("unexpected suggestion: %s", string(body))
		}

		// la estimación no toca la cantidad
		st, body = doReq(t, ts.URL, "GET", "/medications/"+medID, u, nil)
		if st != http.StatusOK || !strings.Contains(string(body), `"quantity":30`) {
			t.Fatalf("expected quantity untouched, got %d body=%s", st, string(body))
		}
	})

	t.Run("generator reply", func(t *testing.T) {
		ts := httptest.NewServer(router.NewRouter(router.Options{TextGen: fixedGenerator{}}))
		defer ts.Close()

		medID := createMedication(t, ts.URL, u, map[string]any{"name": "Aspirin", "quantity": 30, "dose_times": []string{"08:00"}})
		st, body := doReq(t, ts.URL, "POST", "/medications/"+medID+"/refill-estimate", u, nil)
		if st != http.StatusOK || !strings.Contains(string(body), "Call your pharmacy this week.") {
			t.Fatalf("expected generator recommendation, got %d body=%s", st, string(body))
		}
	})

	t.Run("generator failure is 502", func(t *testing.T) {
		ts := httptest.NewServer(router.NewRouter(router.Options{TextGen: failingGenerator{}}))
		defer ts.Close()

		medID := createMedication(t, ts.URL, u, map[string]any{"name": "Aspirin", "quantity": 30})
		st, body := doReq(t, ts.URL, "POST", "/medications/"+medID+"/refill-estimate", u, nil)
		if st != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d body=%s", st, string(body))
		}
	})

	t.Run("rate limited per user", func(t *testing.T) {
		ts := httptest.NewServer(router.NewRouter(router.Options{RefillRatePerMin: 1}))
		defer ts.Close()

		medID := createMedication(t, ts.URL, u, map[string]any{"name": "Aspirin", "quantity": 30})
		st, _ := doReq(t, ts.URL, "POST", "/medications/"+medID+"/refill-estimate", u, nil)
		if st != http.StatusOK {
			t.Fatalf("expected first call 200, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "POST", "/medications/"+medID+"/refill-estimate", u, nil)
		if st != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", st)
		}
	})
}

func TestHTTP_HealthMetricsSwagger(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/health", user{}, nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected health ok, got %d body=%s", st, string(body))
	}

	st, body = doReq(t, ts.URL, "GET", "/metrics", user{}, nil)
	if st != http.StatusOK || !strings.Contains(string(body), "medication_reminder_http_requests_total") {
		t.Fatalf("expected metrics exposition, got %d", st)
	}

	st, body = doReq(t, ts.URL, "GET", "/swagger/doc.json", user{}, nil)
	if st != http.StatusOK || !strings.Contains(string(body), "/medications/{medicationID}/refill-estimate") {
		t.Fatalf("expected swagger doc, got %d", st)
	}
}

type medication struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Quantity          int      `json:"quantity"`
	DoseTimes         []string `json:"dose_times"`
	Active            bool     `json:"active"`
	EffectivelyActive bool     `json:"effectively_active"`
}

func createMedication(t *testing.T, baseURL string, u user, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/medications", u, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create medication, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create medication: missing id body=%s", string(body))
	}
	return resp.ID
}

func listMedications(t *testing.T, baseURL string, u user, showInactive bool) []medication {
	t.Helper()

	path := "/medications"
	if showInactive {
		path += "?show_inactive=true"
	}
	st, body := doReq(t, baseURL, "GET", path, u, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list medications, got %d body=%s", st, string(body))
	}
	var out []medication
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("list medications: %v body=%s", err, string(body))
	}
	return out
}

func doReq(t *testing.T, baseURL, method, path string, u user, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if u.id != "" {
		req.Header.Set("X-Debug-User-ID", u.id)
	}
	if u.email != "" {
		req.Header.Set("X-Debug-Email", u.email)
	}
	if u.anonymous {
		req.Header.Set("X-Debug-Anonymous", "true")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
