package readings

import (
	"context"
	"sync"
	"testing"
	"time"

	"medication-reminder/internal/platform/apperr"
	"medication-reminder/internal/ports/capabilities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBP struct {
	mu    sync.Mutex
	items []BloodPressureReading
}

func (f *fakeBP) Create(_ context.Context, r BloodPressureReading) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, r)
	return nil
}

func (f *fakeBP) Delete(_ context.Context, owner, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, r := range f.items {
		if r.ID == id && r.OwnerUserID == owner {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeBP) ListByOwner(_ context.Context, owner string) ([]BloodPressureReading, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []BloodPressureReading{}
	for _, r := range f.items {
		if r.OwnerUserID == owner {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeDiabetic struct {
	mu    sync.Mutex
	items []DiabeticReading
}

func (f *fakeDiabetic) Create(_ context.Context, r DiabeticReading) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, r)
	return nil
}

func (f *fakeDiabetic) Delete(_ context.Context, owner, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, r := range f.items {
		if r.ID == id && r.OwnerUserID == owner {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeDiabetic) ListByOwner(_ context.Context, owner string) ([]DiabeticReading, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []DiabeticReading{}
	for _, r := range f.items {
		if r.OwnerUserID == owner {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeCaps map[capabilities.Feature]bool

func (f fakeCaps) HasFeature(_ context.Context, _ string, feat capabilities.Feature) (bool, error) {
	return f[feat], nil
}

func (f fakeCaps) MedicationLimit(context.Context, string) (int, error) { return 5, nil }

func TestService_BloodPressureOrdering(t *testing.T) {
	s := NewService(&fakeBP{}, &fakeDiabetic{}, nil)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

	for i, sys := range []int{120, 135, 110} {
		_, err := s.AddBloodPressure(ctx, "u1", BloodPressureInput{
			Systolic: sys, Diastolic: 70, Pulse: 60,
			Timestamp: base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	desc, err := s.ListBloodPressure(ctx, "u1", OrderDesc)
	require.NoError(t, err)
	require.Len(t, desc, 3)
	assert.Equal(t, 110, desc[0].Systolic)
	assert.Equal(t, 120, desc[2].Systolic)

	asc, err := s.ListBloodPressure(ctx, "u1", ParseOrder("asc"))
	require.NoError(t, err)
	assert.Equal(t, 120, asc[0].Systolic)

	require.NoError(t, s.DeleteBloodPressure(ctx, "u1", asc[0].ID))
	assert.ErrorIs(t, s.DeleteBloodPressure(ctx, "u1", asc[0].ID), ErrNotFound)
}

func TestService_BloodPressureValidation(t *testing.T) {
	s := NewService(&fakeBP{}, &fakeDiabetic{}, nil)
	ctx := context.Background()

	bad := []BloodPressureInput{
		{Systolic: 301, Diastolic: 80, Pulse: 60},
		{Systolic: 120, Diastolic: -1, Pulse: 60},
		{Systolic: 120, Diastolic: 80, Pulse: 60, Arm: "both"},
		{Systolic: 120, Diastolic: 80, Pulse: 60, Position: "running"},
		{Systolic: 120, Diastolic: 80, Pulse: 60, Conditions: &Conditions{Meal: "during"}},
	}
	for _, in := range bad {
		_, err := s.AddBloodPressure(ctx, "u1", in)
		assert.True(t, apperr.IsValidation(err), "%+v", in)
	}

	r, err := s.AddBloodPressure(ctx, "u1", BloodPressureInput{
		Systolic: 300, Diastolic: 0, Pulse: 0,
		Arm: ArmLeft, Position: PositionLaying,
		Conditions:  &Conditions{},
		Description: "  after run ",
	})
	require.NoError(t, err)
	assert.Nil(t, r.Conditions)
	assert.Equal(t, "after run", r.Description)
	assert.False(t, r.Timestamp.IsZero())
}

func TestService_GlucoseValidationAndOrdering(t *testing.T) {
	s := NewService(&fakeBP{}, &fakeDiabetic{}, nil)
	ctx := context.Background()

	_, err := s.AddGlucose(ctx, "u1", GlucoseInput{GlucoseLevel: 1001, ReadingType: ReadingFasting})
	assert.True(t, apperr.IsValidation(err))
	_, err = s.AddGlucose(ctx, "u1", GlucoseInput{GlucoseLevel: 100, ReadingType: "bedtime"})
	assert.True(t, apperr.IsValidation(err))

	base := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	for i, lvl := range []int{90, 150} {
		_, err := s.AddGlucose(ctx, "u1", GlucoseInput{GlucoseLevel: lvl, ReadingType: ReadingRandom, Timestamp: base.Add(time.Duration(i) * time.Minute)})
		require.NoError(t, err)
	}
	items, err := s.ListGlucose(ctx, "u1", OrderDesc)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 150, items[0].GlucoseLevel)
}

func TestService_FeatureGating(t *testing.T) {
	s := NewService(&fakeBP{}, &fakeDiabetic{}, fakeCaps{capabilities.FeatureDiabetic: true})
	ctx := context.Background()

	_, err := s.AddBloodPressure(ctx, "u1", BloodPressureInput{Systolic: 120, Diastolic: 80, Pulse: 60})
	assert.ErrorIs(t, err, ErrFeatureLocked)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = s.ListBloodPressure(ctx, "u1", OrderDesc)
	assert.ErrorIs(t, err, ErrFeatureLocked)

	_, err = s.AddGlucose(ctx, "u1", GlucoseInput{GlucoseLevel: 100, ReadingType: ReadingFasting})
	assert.NoError(t, err)
}
