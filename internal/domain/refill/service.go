package refill

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"medication-reminder/internal/platform/apperr"
	"medication-reminder/internal/ports/textgen"
)

const (
	SourceGenerator = "generator"
	SourceFallback  = "fallback"

	OutcomeOK       = "ok"
	OutcomeFallback = "fallback"
	OutcomeError    = "error"
)

// Recorder recibe el resultado de cada estimación (métricas).
type Recorder interface {
	RefillEstimated(outcome string)
}

// Suggestion es advisory: nunca modifica la cantidad.
type Suggestion struct {
	MedicationName string
	Plan
	Recommendation string
	Source         string
}

type Service struct {
	gen textgen.Generator // nil = texto determinístico
	rec Recorder
	now func() time.Time
}

func NewService(gen textgen.Generator, rec Recorder) *Service {
	return &Service{gen: gen, rec: rec, now: time.Now}
}

// EstimateRefill usa el reloj del servicio como "hoy".
func (s *Service) EstimateRefill(ctx context.Context, name string, quantity int, doseTimes []string) (Suggestion, error) {
	return s.EstimateRefillAt(ctx, name, quantity, doseTimes, s.now())
}

// EstimateRefillAt calcula la fecha de forma determinística y pide al
// generador sólo el texto de la recomendación. La fecha devuelta por el
// generador se valida pero no se usa.
func (s *Service) EstimateRefillAt(ctx context.Context, name string, quantity int, doseTimes []string, today time.Time) (Suggestion, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Suggestion{}, apperr.Invalid("name", "required")
	}

	plan := Estimate(quantity, doseTimes, today)
	out := Suggestion{MedicationName: name, Plan: plan}

	if s.gen == nil {
		out.Recommendation = fallbackRecommendation(name, quantity, plan)
		out.Source = SourceFallback
		s.record(OutcomeFallback)
		return out, nil
	}

	raw, err := s.gen.Generate(ctx, buildRequest(name, quantity, doseTimes, plan))
	if err != nil {
		s.record(OutcomeError)
		reason := "upstream error"
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			reason = "upstream timeout"
		}
		return Suggestion{}, &apperr.EstimationError{Reason: reason, Cause: err}
	}

	reply, err := parseReply(raw)
	if err != nil {
		s.record(OutcomeError)
		return Suggestion{}, err
	}

	out.Recommendation = reply.Recommendation
	out.Source = SourceGenerator
	s.record(OutcomeOK)
	return out, nil
}

func (s *Service) record(outcome string) {
	if s.rec != nil {
		s.rec.RefillEstimated(outcome)
	}
}

type generatorInput struct {
	MedicationName  string   `json:"medicationName"`
	CurrentQuantity int      `json:"currentQuantity"`
	DoseTimes       []string `json:"doseTimes"`
}

// Reply es el schema exigido al generador.
type Reply struct {
	RefillDate     string `json:"refillDate"`
	Recommendation string `json:"recommendation"`
}

const systemPrompt = `You are a helpful pharmacy assistant. Given a medication, its current quantity and its daily dose times, ` +
	`write a short, friendly refill recommendation for the patient. ` +
	`Reply ONLY with a JSON object of the form {"refillDate": "YYYY-MM-DD", "recommendation": "..."}.`

func buildRequest(name string, quantity int, doseTimes []string, plan Plan) textgen.Request {
	if doseTimes == nil {
		doseTimes = []string{}
	}
	in, _ := json.Marshal(generatorInput{
		MedicationName:  name,
		CurrentQuantity: quantity,
		DoseTimes:       doseTimes,
	})

	var b strings.Builder
	fmt.Fprintf(&b, "Medication: %s\n", in)
	fmt.Fprintf(&b, "Doses per day: %d\n", plan.DosesPerDay)
	fmt.Fprintf(&b, "Supply lasts: %d day(s), until %s\n", plan.DaysOfSupply, plan.DepletionDate.Format("2006-01-02"))
	fmt.Fprintf(&b, "Suggested refill date: %s (%d days before running out, never before today)\n",
		plan.RefillDate.Format("2006-01-02"), LeadDays)

	return textgen.Request{System: systemPrompt, Prompt: b.String()}
}

// parseReply exige un objeto JSON con refillDate y recommendation string.
func parseReply(raw string) (Reply, error) {
	raw = strings.TrimSpace(raw)
	// Algunos modelos envuelven el JSON en ```json ... ```.
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var fields map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &fields); err != nil {
		return Reply{}, &apperr.EstimationError{Reason: "reply is not a JSON object", Cause: err}
	}

	var r Reply
	for _, f := range []struct {
		key string
		dst *string
	}{
		{"refillDate", &r.RefillDate},
		{"recommendation", &r.Recommendation},
	} {
		v, ok := fields[f.key]
		if !ok {
			return Reply{}, &apperr.EstimationError{Reason: "reply missing " + f.key}
		}
		str, ok := v.(string)
		if !ok {
			return Reply{}, &apperr.EstimationError{Reason: "reply field " + f.key + " is not a string"}
		}
		*f.dst = str
	}

	r.Recommendation = strings.TrimSpace(r.Recommendation)
	if r.Recommendation == "" {
		return Reply{}, &apperr.EstimationError{Reason: "reply recommendation is empty"}
	}
	return r, nil
}

func fallbackRecommendation(name string, quantity int, p Plan) string {
	refill := p.RefillDate.Format("Jan 2, 2006")
	if quantity <= 0 || p.DaysOfSupply == 0 {
		return fmt.Sprintf("You have run out of %s. Request a refill today.", name)
	}
	return fmt.Sprintf(
		"At %d dose(s) per day your %d %s will last about %d day(s), until %s. Request a refill by %s so you don't run out.",
		p.DosesPerDay, quantity, name, p.DaysOfSupply, p.DepletionDate.Format("Jan 2, 2006"), refill,
	)
}
