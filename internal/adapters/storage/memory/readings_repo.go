package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"medication-reminder/internal/domain/readings"
)

type bloodPressureRepo struct {
	mu   sync.RWMutex
	byID map[string]readings.BloodPressureReading
}

func NewBloodPressureRepo() readings.BloodPressureRepository {
	return &bloodPressureRepo{byID: make(map[string]readings.BloodPressureReading)}
}

func (r *bloodPressureRepo) Create(ctx context.Context, rd readings.BloodPressureReading) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rd.ID) == "" {
		return errors.New("reading id required")
	}
	if _, exists := r.byID[rd.ID]; exists {
		return errors.New("reading already exists")
	}
	if rd.Conditions != nil {
		c := *rd.Conditions
		rd.Conditions = &c
	}
	r.byID[rd.ID] = rd
	return nil
}

func (r *bloodPressureRepo) Delete(ctx context.Context, ownerUserID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.byID[id]
	if !ok || cur.OwnerUserID != ownerUserID {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// ListByOwner no ordena: el servicio ordena según el pedido.
func (r *bloodPressureRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]readings.BloodPressureReading, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]readings.BloodPressureReading, 0)
	for _, rd := range r.byID {
		if rd.OwnerUserID == ownerUserID {
			out = append(out, rd)
		}
	}
	return out, nil
}

type diabeticRepo struct {
	mu   sync.RWMutex
	byID map[string]readings.DiabeticReading
}

func NewDiabeticRepo() readings.DiabeticRepository {
	return &diabeticRepo{byID: make(map[string]readings.DiabeticReading)}
}

func (r *diabeticRepo) Create(ctx context.Context, rd readings.DiabeticReading) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rd.ID) == "" {
		return errors.New("reading id required")
	}
	if _, exists := r.byID[rd.ID]; exists {
		return errors.New("reading already exists")
	}
	r.byID[rd.ID] = rd
	return nil
}

func (r *diabeticRepo) Delete(ctx context.Context, ownerUserID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.byID[id]
	if !ok || cur.OwnerUserID != ownerUserID {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *diabeticRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]readings.DiabeticReading, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]readings.DiabeticReading, 0)
	for _, rd := range r.byID {
		if rd.OwnerUserID == ownerUserID {
			out = append(out, rd)
		}
	}
	return out, nil
}
