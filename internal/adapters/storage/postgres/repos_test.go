package postgres

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"medication-reminder/internal/domain/contacts"
	"medication-reminder/internal/domain/medications"
	"medication-reminder/internal/domain/readings"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Requiere un Postgres real: DB_DSN=postgres://... go test ./...
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		t.Skip("DB_DSN not set")
	}
	db, err := Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(context.Background(), db))
	return db
}

func TestMedicationsRepo_RoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewMedicationsRepo(db)
	ctx := context.Background()
	owner := "test-" + uuid.NewString()

	start := time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)
	m := medications.Medication{
		ID:          uuid.NewString(),
		OwnerUserID: owner,
		Name:        "Antibiotic",
		Quantity:    14,
		DoseTimes:   []string{"10:00", "22:00"},
		Active:      true,
		Course:      &medications.Course{DurationDays: 7, StartDate: start},
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}
	require.NoError(t, repo.Create(ctx, m))

	got, err := repo.GetByID(ctx, owner, m.ID)
	require.NoError(t, err)
	assert.Equal(t, m.Name, got.Name)
	assert.Equal(t, m.DoseTimes, got.DoseTimes)
	require.NotNil(t, got.Course)
	assert.True(t, start.Equal(got.Course.StartDate))

	_, err = repo.GetByID(ctx, "someone-else", m.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	m.Quantity = 3
	require.NoError(t, repo.Update(ctx, m))
	list, err := repo.ListByOwner(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 3, list[0].Quantity)

	owners, err := repo.ListOwners(ctx)
	require.NoError(t, err)
	assert.Contains(t, owners, owner)

	require.NoError(t, repo.Delete(ctx, owner, m.ID))
	assert.ErrorIs(t, repo.Delete(ctx, owner, m.ID), ErrNotFound)
}

func TestReadingsAndContacts(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	owner := "test-" + uuid.NewString()

	bp := NewBloodPressureRepo(db)
	require.NoError(t, bp.Create(ctx, readings.BloodPressureReading{ID: uuid.NewString(), OwnerUserID: owner, Systolic: 120, Diastolic: 80, Timestamp: time.Now()}))
	items, err := bp.ListByOwner(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	cs := NewContactsRepo(db)
	require.NoError(t, cs.Save(ctx, contacts.Contact{OwnerUserID: owner, Name: "Ana", Phone: "555", UpdatedAt: time.Now()}))
	require.NoError(t, cs.Save(ctx, contacts.Contact{OwnerUserID: owner, Name: "Eva", Phone: "555", UpdatedAt: time.Now()}))
	c, err := cs.Get(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, "Eva", c.Name)
	require.NoError(t, cs.Delete(ctx, owner))
}
