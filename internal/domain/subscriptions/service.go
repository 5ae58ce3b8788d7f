package subscriptions

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"medication-reminder/internal/middleware"
	"medication-reminder/internal/platform/apperr"
	"medication-reminder/internal/ports/capabilities"
)

var ErrNotFound = apperr.ErrNotFound

type Options struct {
	// PremiumEmails reciben Premium automáticamente.
	PremiumEmails []string
	// AllowAll habilita todo sin consultar el plan (modo dev).
	AllowAll bool
}

// Service es dueño de las suscripciones e implementa capabilities.Resolver.
type Service struct {
	repo     Repository
	premium  map[string]struct{}
	allowAll bool
	now      func() time.Time

	mu sync.Mutex // serializa lectura+escritura del plan
}

var _ capabilities.Resolver = (*Service)(nil)

func NewService(repo Repository, opts Options) *Service {
	premium := make(map[string]struct{}, len(opts.PremiumEmails))
	for _, e := range opts.PremiumEmails {
		if e = normalizeEmail(e); e != "" {
			premium[e] = struct{}{}
		}
	}
	return &Service{
		repo:     repo,
		premium:  premium,
		allowAll: opts.AllowAll,
		now:      time.Now,
	}
}

// Ensure devuelve la suscripción del usuario creando Basic en el primer
// acceso. Un email en PremiumEmails sube el plan a Premium.
func (s *Service) Ensure(ctx context.Context, ownerUserID, email string) (Subscription, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return Subscription{}, apperr.Invalid("owner", "required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	want := TypeBasic
	if s.isPremiumEmail(email) {
		want = TypePremium
	}

	current, found, err := s.get(ctx, ownerUserID)
	if err != nil {
		return Subscription{}, err
	}
	if !found {
		return s.save(ctx, ownerUserID, want, time.Time{})
	}
	if current.Type == TypeBasic && want == TypePremium {
		return s.save(ctx, ownerUserID, TypePremium, current.CreatedAt)
	}
	return current, nil
}

// SetPlan cambia el plan del usuario (upgrade/downgrade manual). Lectura y
// escritura van bajo el mismo lock que Ensure.
func (s *Service) SetPlan(ctx context.Context, ownerUserID string, t Type) (Subscription, error) {
	if t != TypeBasic && t != TypePremium {
		return Subscription{}, apperr.Invalid("type", "must be Basic or Premium")
	}
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return Subscription{}, apperr.Invalid("owner", "required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, _, err := s.get(ctx, ownerUserID)
	if err != nil {
		return Subscription{}, err
	}
	return s.save(ctx, ownerUserID, t, current.CreatedAt)
}

// get: found=false si el usuario todavía no tiene suscripción.
func (s *Service) get(ctx context.Context, ownerUserID string) (Subscription, bool, error) {
	current, err := s.repo.Get(ctx, ownerUserID)
	switch {
	case err == nil:
		return current, true, nil
	case errors.Is(err, ErrNotFound):
		return Subscription{}, false, nil
	default:
		return Subscription{}, false, apperr.Storage("get subscription", err)
	}
}

func (s *Service) HasFeature(ctx context.Context, userID string, f capabilities.Feature) (bool, error) {
	if s.allowAll {
		return true, nil
	}
	sub, err := s.Ensure(ctx, userID, emailFrom(ctx))
	if err != nil {
		return false, err
	}
	switch f {
	case capabilities.FeatureBloodPressure:
		return sub.BloodPressureManager, nil
	case capabilities.FeatureDiabetic:
		return sub.DiabeticManager, nil
	default:
		return false, nil
	}
}

func (s *Service) MedicationLimit(ctx context.Context, userID string) (int, error) {
	if s.allowAll {
		return PremiumMaxMedicines, nil
	}
	sub, err := s.Ensure(ctx, userID, emailFrom(ctx))
	if err != nil {
		return 0, err
	}
	return sub.MaxMedicines, nil
}

func (s *Service) save(ctx context.Context, ownerUserID string, t Type, createdAt time.Time) (Subscription, error) {
	now := s.now()
	sub := planFor(t)
	sub.OwnerUserID = ownerUserID
	sub.CreatedAt = createdAt
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = now
	}
	sub.UpdatedAt = now

	if err := s.repo.Save(ctx, sub); err != nil {
		return Subscription{}, apperr.Storage("save subscription", err)
	}
	return sub, nil
}

func (s *Service) isPremiumEmail(email string) bool {
	email = normalizeEmail(email)
	if email == "" {
		return false
	}
	_, ok := s.premium[email]
	return ok
}

// emailFrom toma el email de los claims del request, si los hay.
func emailFrom(ctx context.Context) string {
	c, ok := middleware.GetClaims(ctx)
	if !ok {
		return ""
	}
	return c.Email
}

func normalizeEmail(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}
