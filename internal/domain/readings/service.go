package readings

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"medication-reminder/internal/platform/apperr"
	"medication-reminder/internal/ports/capabilities"

	"github.com/google/uuid"
)

var (
	ErrNotFound = apperr.ErrNotFound
	// ErrFeatureLocked: el plan del usuario no incluye el gestor pedido.
	ErrFeatureLocked = fmt.Errorf("%w: upgrade required", apperr.ErrForbidden)
)

type Service struct {
	bp   BloodPressureRepository
	dia  DiabeticRepository
	caps capabilities.Resolver // nil = todo habilitado
	now  func() time.Time
}

func NewService(bp BloodPressureRepository, dia DiabeticRepository, caps capabilities.Resolver) *Service {
	return &Service{bp: bp, dia: dia, caps: caps, now: time.Now}
}

type BloodPressureInput struct {
	Systolic    int
	Diastolic   int
	Pulse       int
	Timestamp   time.Time // cero = ahora
	Arm         Arm
	Position    Position
	Conditions  *Conditions
	Description string
}

type GlucoseInput struct {
	GlucoseLevel int
	ReadingType  ReadingType
	Timestamp    time.Time // cero = ahora
}

// Require devuelve ErrFeatureLocked si el plan no incluye f.
func (s *Service) Require(ctx context.Context, ownerUserID string, f capabilities.Feature) error {
	if s.caps == nil {
		return nil
	}
	ok, err := s.caps.HasFeature(ctx, ownerUserID, f)
	if err != nil {
		return err
	}
	if !ok {
		return ErrFeatureLocked
	}
	return nil
}

func (s *Service) AddBloodPressure(ctx context.Context, ownerUserID string, in BloodPressureInput) (BloodPressureReading, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return BloodPressureReading{}, apperr.Invalid("owner", "required")
	}
	if err := s.Require(ctx, ownerUserID, capabilities.FeatureBloodPressure); err != nil {
		return BloodPressureReading{}, err
	}
	if err := validateBloodPressure(&in); err != nil {
		return BloodPressureReading{}, err
	}

	now := s.now()
	ts := in.Timestamp
	if ts.IsZero() {
		ts = now
	}

	r := BloodPressureReading{
		ID:          uuid.NewString(),
		OwnerUserID: ownerUserID,
		Systolic:    in.Systolic,
		Diastolic:   in.Diastolic,
		Pulse:       in.Pulse,
		Timestamp:   ts,
		Arm:         in.Arm,
		Position:    in.Position,
		Conditions:  in.Conditions,
		Description: in.Description,
		CreatedAt:   now,
	}
	if err := s.bp.Create(ctx, r); err != nil {
		return BloodPressureReading{}, apperr.Storage("create blood pressure reading", err)
	}
	return r, nil
}

func (s *Service) ListBloodPressure(ctx context.Context, ownerUserID string, order Order) ([]BloodPressureReading, error) {
	if err := s.Require(ctx, ownerUserID, capabilities.FeatureBloodPressure); err != nil {
		return nil, err
	}
	items, err := s.bp.ListByOwner(ctx, ownerUserID)
	if err != nil {
		return nil, apperr.Storage("list blood pressure readings", err)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return before(items[i].Timestamp, items[j].Timestamp, order)
	})
	return items, nil
}

func (s *Service) DeleteBloodPressure(ctx context.Context, ownerUserID, id string) error {
	if err := s.Require(ctx, ownerUserID, capabilities.FeatureBloodPressure); err != nil {
		return err
	}
	if strings.TrimSpace(id) == "" {
		return ErrNotFound
	}
	return apperr.Storage("delete blood pressure reading", s.bp.Delete(ctx, ownerUserID, id))
}

func (s *Service) AddGlucose(ctx context.Context, ownerUserID string, in GlucoseInput) (DiabeticReading, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return DiabeticReading{}, apperr.Invalid("owner", "required")
	}
	if err := s.Require(ctx, ownerUserID, capabilities.FeatureDiabetic); err != nil {
		return DiabeticReading{}, err
	}
	if err := validateGlucose(&in); err != nil {
		return DiabeticReading{}, err
	}

	now := s.now()
	ts := in.Timestamp
	if ts.IsZero() {
		ts = now
	}

	r := DiabeticReading{
		ID:           uuid.NewString(),
		OwnerUserID:  ownerUserID,
		GlucoseLevel: in.GlucoseLevel,
		ReadingType:  in.ReadingType,
		Timestamp:    ts,
		CreatedAt:    now,
	}
	if err := s.dia.Create(ctx, r); err != nil {
		return DiabeticReading{}, apperr.Storage("create diabetic reading", err)
	}
	return r, nil
}

func (s *Service) ListGlucose(ctx context.Context, ownerUserID string, order Order) ([]DiabeticReading, error) {
	if err := s.Require(ctx, ownerUserID, capabilities.FeatureDiabetic); err != nil {
		return nil, err
	}
	items, err := s.dia.ListByOwner(ctx, ownerUserID)
	if err != nil {
		return nil, apperr.Storage("list diabetic readings", err)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return before(items[i].Timestamp, items[j].Timestamp, order)
	})
	return items, nil
}

func (s *Service) DeleteGlucose(ctx context.Context, ownerUserID, id string) error {
	if err := s.Require(ctx, ownerUserID, capabilities.FeatureDiabetic); err != nil {
		return err
	}
	if strings.TrimSpace(id) == "" {
		return ErrNotFound
	}
	return apperr.Storage("delete diabetic reading", s.dia.Delete(ctx, ownerUserID, id))
}

func before(a, b time.Time, order Order) bool {
	if order == OrderAsc {
		return a.Before(b)
	}
	return a.After(b)
}
