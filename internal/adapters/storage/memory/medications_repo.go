package memory

import (
	"context"
	"errors"
	"slices"
	"sort"
	"strings"
	"sync"

	"medication-reminder/internal/domain/medications"
)

type medicationRepo struct {
	mu   sync.RWMutex
	byID map[string]medications.Medication
}

func NewMedicationRepo() medications.Repository {
	return &medicationRepo{
		byID: make(map[string]medications.Medication),
	}
}

func (r *medicationRepo) Create(ctx context.Context, m medications.Medication) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(m.ID) == "" {
		return errors.New("medication id required")
	}
	if _, exists := r.byID[m.ID]; exists {
		return errors.New("medication already exists")
	}
	r.byID[m.ID] = clone(m)
	return nil
}

func (r *medicationRepo) Update(ctx context.Context, m medications.Medication) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, exists := r.byID[m.ID]
	if !exists || cur.OwnerUserID != m.OwnerUserID {
		return ErrNotFound
	}
	r.byID[m.ID] = clone(m)
	return nil
}

func (r *medicationRepo) Delete(ctx context.Context, ownerUserID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, exists := r.byID[id]
	if !exists || cur.OwnerUserID != ownerUserID {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *medicationRepo) GetByID(ctx context.Context, ownerUserID, id string) (medications.Medication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byID[id]
	if !ok || m.OwnerUserID != ownerUserID {
		return medications.Medication{}, ErrNotFound
	}
	return clone(m), nil
}

func (r *medicationRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]medications.Medication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]medications.Medication, 0)
	for _, m := range r.byID {
		if m.OwnerUserID == ownerUserID {
			out = append(out, clone(m))
		}
	}

	// Orden estable por created_at asc
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *medicationRepo) ListOwners(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, m := range r.byID {
		if _, ok := seen[m.OwnerUserID]; ok {
			continue
		}
		seen[m.OwnerUserID] = struct{}{}
		out = append(out, m.OwnerUserID)
	}
	sort.Strings(out)
	return out, nil
}

// clone evita que quien llama mute el estado interno vía slices/punteros.
func clone(m medications.Medication) medications.Medication {
	m.DoseTimes = slices.Clone(m.DoseTimes)
	if m.ExpiryDate != nil {
		t := *m.ExpiryDate
		m.ExpiryDate = &t
	}
	if m.Course != nil {
		c := *m.Course
		m.Course = &c
	}
	return m
}
