package medications

import (
	"context"
	"hash/fnv"
	"strings"
	"sync"
	"time"

	"medication-reminder/internal/platform/apperr"

	"github.com/google/uuid"
)

// demoMedications se insertan una única vez para cuentas anónimas vacías.
func demoMedications(today time.Time) []Medication {
	return []Medication{
		{
			Name:         "Aspirin",
			Quantity:     50,
			DoseTimes:    []string{"08:00"},
			Active:       true,
			Instructions: "Take with food.",
		},
		{
			Name:         "Vitamin D",
			Quantity:     3,
			DoseTimes:    []string{"09:00"},
			Active:       true,
			Instructions: "Take with breakfast.",
		},
		{
			Name:         "Antibiotic",
			Quantity:     14,
			DoseTimes:    []string{"10:00", "22:00"},
			Active:       true,
			Instructions: "Finish the full course.",
			Course: &Course{
				DurationDays: 7,
				StartDate:    civilDay(today),
			},
		},
	}
}

// seedStripes acota los mutex de siembra: dos usuarios pueden compartir
// franja, nunca crece.
const seedStripes = 64

// EnsureSeeded inserta los datos demo si el usuario es anónimo y su
// colección está vacía. Idempotente: llamadas concurrentes del mismo
// usuario insertan una sola vez. at es el instante en la zona del usuario;
// el curso demo empieza en su día calendario. Devuelve cuántas se insertaron.
func (s *Service) EnsureSeeded(ctx context.Context, ownerUserID string, anonymous bool, at time.Time) (int, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if !anonymous || ownerUserID == "" {
		return 0, nil
	}

	l := s.ownerLock(ownerUserID)
	l.Lock()
	defer l.Unlock()

	existing, err := s.repo.ListByOwner(ctx, ownerUserID)
	if err != nil {
		return 0, apperr.Storage("list medications", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	now := s.now()
	n := 0
	for _, m := range demoMedications(at) {
		m.ID = uuid.NewString()
		m.OwnerUserID = ownerUserID
		m.CreatedAt = now
		m.UpdatedAt = now
		if err := s.repo.Create(ctx, m); err != nil {
			return n, apperr.Storage("seed medication", err)
		}
		n++
	}
	return n, nil
}

func (s *Service) ownerLock(ownerUserID string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(ownerUserID))
	return &s.seedLocks[h.Sum32()%seedStripes]
}
