package memory

import (
	"context"
	"testing"
	"time"

	"medication-reminder/internal/domain/contacts"
	"medication-reminder/internal/domain/medications"
	"medication-reminder/internal/domain/readings"
	"medication-reminder/internal/domain/subscriptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedicationRepo_OwnerScopingAndIsolation(t *testing.T) {
	repo := NewMedicationRepo()
	ctx := context.Background()
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	m := medications.Medication{ID: "m1", OwnerUserID: "u1", Name: "Aspirin", DoseTimes: []string{"08:00"}, CreatedAt: t0}
	require.NoError(t, repo.Create(ctx, m))
	assert.Error(t, repo.Create(ctx, m))
	require.NoError(t, repo.Create(ctx, medications.Medication{ID: "m2", OwnerUserID: "u2", Name: "Other", CreatedAt: t0}))

	_, err := repo.GetByID(ctx, "u2", "m1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "u2", "m1"), ErrNotFound)

	got, err := repo.GetByID(ctx, "u1", "m1")
	require.NoError(t, err)
	got.DoseTimes[0] = "09:00"
	again, _ := repo.GetByID(ctx, "u1", "m1")
	assert.Equal(t, "08:00", again.DoseTimes[0])

	owners, err := repo.ListOwners(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"u1", "u2"}, owners)

	m.Name = "Aspirin 100"
	m.OwnerUserID = "u2"
	assert.ErrorIs(t, repo.Update(ctx, m), ErrNotFound)
}

func TestReadingRepos(t *testing.T) {
	ctx := context.Background()

	bp := NewBloodPressureRepo()
	require.NoError(t, bp.Create(ctx, readings.BloodPressureReading{ID: "r1", OwnerUserID: "u1", Systolic: 120}))
	items, err := bp.ListByOwner(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.ErrorIs(t, bp.Delete(ctx, "u2", "r1"), ErrNotFound)
	require.NoError(t, bp.Delete(ctx, "u1", "r1"))

	dia := NewDiabeticRepo()
	require.NoError(t, dia.Create(ctx, readings.DiabeticReading{ID: "g1", OwnerUserID: "u1", GlucoseLevel: 90}))
	gs, err := dia.ListByOwner(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, gs)
}

func TestProfileRepos(t *testing.T) {
	ctx := context.Background()

	subs := NewSubscriptionRepo()
	_, err := subs.Get(ctx, "u1")
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, subs.Save(ctx, subscriptions.Subscription{OwnerUserID: "u1", Type: subscriptions.TypeBasic}))
	s, err := subs.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, subscriptions.TypeBasic, s.Type)

	cs := NewContactRepo()
	require.NoError(t, cs.Save(ctx, contacts.Contact{OwnerUserID: "u1", Name: "Ana", Phone: "555"}))
	require.NoError(t, cs.Delete(ctx, "u1"))
	assert.ErrorIs(t, cs.Delete(ctx, "u1"), ErrNotFound)
}
