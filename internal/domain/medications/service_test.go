package medications

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"medication-reminder/internal/platform/apperr"
	"medication-reminder/internal/ports/capabilities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	mu    sync.Mutex
	items map[string]Medication
	fail  error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: map[string]Medication{}}
}

func (f *fakeRepo) Create(_ context.Context, m Medication) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return f.fail
	}
	f.items[m.ID] = m
	return nil
}

func (f *fakeRepo) Update(_ context.Context, m Medication) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[m.ID]; !ok {
		return ErrNotFound
	}
	f.items[m.ID] = m
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, owner, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.items[id]
	if !ok || m.OwnerUserID != owner {
		return ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, owner, id string) (Medication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.items[id]
	if !ok || m.OwnerUserID != owner {
		return Medication{}, ErrNotFound
	}
	return m, nil
}

func (f *fakeRepo) ListByOwner(_ context.Context, owner string) ([]Medication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return nil, f.fail
	}
	out := []Medication{}
	for _, m := range f.items {
		if m.OwnerUserID == owner {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeRepo) ListOwners(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	seen := map[string]bool{}
	out := []string{}
	for _, m := range f.items {
		if !seen[m.OwnerUserID] {
			seen[m.OwnerUserID] = true
			out = append(out, m.OwnerUserID)
		}
	}
	return out, nil
}

type fakeCaps struct{ limit int }

func (f fakeCaps) HasFeature(context.Context, string, capabilities.Feature) (bool, error) {
	return true, nil
}

func (f fakeCaps) MedicationLimit(context.Context, string) (int, error) {
	return f.limit, nil
}

func newTestService(repo Repository, caps capabilities.Resolver, now time.Time) *Service {
	s := NewService(repo, caps)
	s.now = func() time.Time { return now }
	return s
}

func TestService_CreateThenGetRoundTrip(t *testing.T) {
	now := time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC)
	s := newTestService(newFakeRepo(), nil, now)
	ctx := context.Background()

	created, err := s.Create(ctx, "u1", Input{
		Name:      "Antibiotic",
		Quantity:  14,
		DoseTimes: []string{"22:00", "10:00"},
		Course:    &Course{DurationDays: 7, StartDate: time.Date(2024, 4, 2, 15, 0, 0, 0, time.UTC)},
	})
	require.NoError(t, err)
	assert.True(t, created.Active)

	got, err := s.GetByID(ctx, "u1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Antibiotic", got.Name)
	assert.Equal(t, 14, got.Quantity)
	assert.Equal(t, []string{"10:00", "22:00"}, got.DoseTimes)
	require.NotNil(t, got.Course)
	assert.Equal(t, Course{DurationDays: 7, StartDate: day(2024, 4, 2)}, *got.Course)

	_, err = s.GetByID(ctx, "someone-else", created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_CreateInactiveClearsDoseTimes(t *testing.T) {
	s := newTestService(newFakeRepo(), nil, time.Now())
	inactive := false

	m, err := s.Create(context.Background(), "u1", Input{Name: "Aspirin", DoseTimes: []string{"08:00"}, Active: &inactive})
	require.NoError(t, err)
	assert.False(t, m.Active)
	assert.Empty(t, m.DoseTimes)
}

func TestService_CreateRejectsInvalid(t *testing.T) {
	s := newTestService(newFakeRepo(), nil, time.Now())
	_, err := s.Create(context.Background(), "u1", Input{Name: "Aspirin", DoseTimes: []string{"25:00"}})
	assert.True(t, apperr.IsValidation(err))
}

func TestService_CreateRespectsPlanLimit(t *testing.T) {
	s := newTestService(newFakeRepo(), fakeCaps{limit: 2}, time.Now())
	ctx := context.Background()

	for _, name := range []string{"One", "Two"} {
		_, err := s.Create(ctx, "u1", Input{Name: name, Quantity: 10})
		require.NoError(t, err)
	}
	_, err := s.Create(ctx, "u1", Input{Name: "Three", Quantity: 10})
	assert.ErrorIs(t, err, ErrLimitReached)

	// El límite es por usuario.
	_, err = s.Create(ctx, "u2", Input{Name: "Other", Quantity: 10})
	assert.NoError(t, err)
}

func TestService_ToggleArchiveAndList(t *testing.T) {
	now := time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC)
	s := newTestService(newFakeRepo(), nil, now)
	ctx := context.Background()

	m, err := s.Create(ctx, "u1", Input{Name: "Aspirin", Quantity: 10, DoseTimes: []string{"08:00"}})
	require.NoError(t, err)

	toggled, err := s.Toggle(ctx, "u1", m.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Active)

	visible, err := s.List(ctx, "u1", false, now)
	require.NoError(t, err)
	assert.Empty(t, visible)

	all, err := s.List(ctx, "u1", true, now)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	toggled, err = s.Toggle(ctx, "u1", m.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Active)

	archived, err := s.Archive(ctx, "u1", m.ID)
	require.NoError(t, err)
	assert.False(t, archived.Active)
	again, err := s.Archive(ctx, "u1", m.ID)
	require.NoError(t, err)
	assert.Equal(t, archived, again)
}

func TestService_UpdateKeepsActiveWhenOmitted(t *testing.T) {
	s := newTestService(newFakeRepo(), nil, time.Now())
	ctx := context.Background()

	m, err := s.Create(ctx, "u1", Input{Name: "Aspirin", Quantity: 10})
	require.NoError(t, err)

	updated, err := s.Update(ctx, "u1", m.ID, Input{Name: "Aspirin 100", Quantity: 8, DoseTimes: []string{"7:30"}})
	require.NoError(t, err)
	assert.True(t, updated.Active)
	assert.Equal(t, "Aspirin 100", updated.Name)
	assert.Equal(t, []string{"07:30"}, updated.DoseTimes)
	assert.Equal(t, m.CreatedAt, updated.CreatedAt)

	_, err = s.Update(ctx, "u1", "missing", Input{Name: "Aspirin", Quantity: 1})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_DeleteAndStorageErrors(t *testing.T) {
	repo := newFakeRepo()
	s := newTestService(repo, nil, time.Now())
	ctx := context.Background()

	m, err := s.Create(ctx, "u1", Input{Name: "Aspirin", Quantity: 10})
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, "u1", m.ID))
	assert.ErrorIs(t, s.Delete(ctx, "u1", m.ID), ErrNotFound)

	repo.fail = errors.New("disk full")
	_, err = s.List(ctx, "u1", true, time.Now())
	assert.True(t, apperr.IsStorage(err))
}

func TestService_Alerts(t *testing.T) {
	now := time.Date(2024, 4, 2, 8, 0, 0, 0, time.UTC)
	s := newTestService(newFakeRepo(), nil, now)
	ctx := context.Background()

	_, err := s.Create(ctx, "u1", Input{Name: "Aspirin", Quantity: 50, DoseTimes: []string{"08:00"}})
	require.NoError(t, err)
	_, err = s.Create(ctx, "u1", Input{Name: "Vitamin D", Quantity: 3, DoseTimes: []string{"09:00"}})
	require.NoError(t, err)

	a, err := s.Alerts(ctx, "u1", now)
	require.NoError(t, err)
	assert.Equal(t, []string{"Aspirin"}, names(a.DoseTime))
	assert.Equal(t, []string{"Vitamin D"}, names(a.LowStock))
}

func TestService_EnsureSeeded(t *testing.T) {
	now := time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC)
	repo := newFakeRepo()
	s := newTestService(repo, nil, now)
	ctx := context.Background()

	n, err := s.EnsureSeeded(ctx, "registered", false, now)
	require.NoError(t, err)
	assert.Zero(t, n)

	var wg sync.WaitGroup
	inserted := make([]int, 8)
	for i := range inserted {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			inserted[i], _ = s.EnsureSeeded(ctx, "anon", true, now)
		}(i)
	}
	wg.Wait()

	total := 0
	for _, n := range inserted {
		total += n
	}
	assert.Equal(t, 3, total)

	items, err := repo.ListByOwner(ctx, "anon")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"Antibiotic", "Aspirin", "Vitamin D"}, names(items))

	antibiotic := items[0]
	require.NotNil(t, antibiotic.Course)
	assert.Equal(t, day(2024, 4, 2), antibiotic.Course.StartDate)
	assert.Equal(t, []string{"10:00", "22:00"}, antibiotic.DoseTimes)

	// Con datos existentes no vuelve a insertar.
	n, err = s.EnsureSeeded(ctx, "anon", true, now)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestService_ListUsesViewerDay(t *testing.T) {
	// 03:00 UTC del 19 es todavía el 18 a las 20:00 en Los Ángeles.
	now := time.Date(2026, 10, 19, 3, 0, 0, 0, time.UTC)
	la, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	s := newTestService(newFakeRepo(), nil, now)
	ctx := context.Background()

	_, err = s.Create(ctx, "u1", Input{
		Name:      "Antibiotic",
		Quantity:  14,
		DoseTimes: []string{"20:00"},
		Course:    &Course{DurationDays: 7, StartDate: day(2026, 10, 11)},
	})
	require.NoError(t, err)

	// El curso termina el 18: hoy para el usuario, ayer para UTC.
	visible, err := s.List(ctx, "u1", false, now.In(la))
	require.NoError(t, err)
	assert.Equal(t, []string{"Antibiotic"}, names(visible))

	a, err := s.Alerts(ctx, "u1", now.In(la))
	require.NoError(t, err)
	assert.Equal(t, []string{"Antibiotic"}, names(a.DoseTime))

	visible, err = s.List(ctx, "u1", false, now)
	require.NoError(t, err)
	assert.Empty(t, visible)
}

func TestService_EnsureSeededStartsCourseOnViewerDay(t *testing.T) {
	now := time.Date(2026, 10, 19, 3, 0, 0, 0, time.UTC)
	la, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	repo := newFakeRepo()
	s := newTestService(repo, nil, now)
	ctx := context.Background()

	n, err := s.EnsureSeeded(ctx, "anon", true, now.In(la))
	require.NoError(t, err)
	require.Equal(t, 3, n)

	items, err := repo.ListByOwner(ctx, "anon")
	require.NoError(t, err)
	require.NotNil(t, items[0].Course)
	assert.Equal(t, day(2026, 10, 18), items[0].Course.StartDate)
	assert.Equal(t, now, items[0].CreatedAt)
}

func TestOwnerLock_StableAndBounded(t *testing.T) {
	s := newTestService(newFakeRepo(), nil, time.Now())

	assert.Same(t, s.ownerLock("anon-1"), s.ownerLock("anon-1"))

	inStripes := func(l *sync.Mutex) bool {
		for i := range s.seedLocks {
			if l == &s.seedLocks[i] {
				return true
			}
		}
		return false
	}
	for i := 0; i < 1000; i++ {
		require.True(t, inStripes(s.ownerLock(fmt.Sprintf("anon-%d", i))))
	}
}
