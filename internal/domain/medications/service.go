package medications

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"medication-reminder/internal/platform/apperr"
	"medication-reminder/internal/ports/capabilities"

	"github.com/google/uuid"
)

var (
	ErrNotFound     = apperr.ErrNotFound
	ErrLimitReached = errors.New("medication limit reached")
)

type Service struct {
	repo Repository
	caps capabilities.Resolver // nil = sin límite de plan
	now  func() time.Time

	seedLocks [seedStripes]sync.Mutex
}

func NewService(repo Repository, caps capabilities.Resolver) *Service {
	return &Service{
		repo: repo,
		caps: caps,
		now:  time.Now,
	}
}

// Input es lo que llega del formulario de alta/edición.
// Active nil = default (true en alta, sin cambio en edición).
type Input struct {
	Name         string
	Quantity     int
	DoseTimes    []string
	ExpiryDate   *time.Time
	Active       *bool
	Instructions string
	Course       *Course
}

// Now expone el reloj del servicio (handlers lo usan para campos derivados).
func (s *Service) Now() time.Time {
	return s.now()
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in Input) (Medication, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return Medication{}, apperr.Invalid("owner", "required")
	}
	if err := validateInput(&in); err != nil {
		return Medication{}, err
	}
	if err := s.checkLimit(ctx, ownerUserID); err != nil {
		return Medication{}, err
	}

	active := true
	if in.Active != nil {
		active = *in.Active
	}

	now := s.now()
	m := Medication{
		ID:           uuid.NewString(),
		OwnerUserID:  ownerUserID,
		Name:         in.Name,
		Quantity:     in.Quantity,
		DoseTimes:    in.DoseTimes,
		ExpiryDate:   in.ExpiryDate,
		Active:       active,
		Instructions: in.Instructions,
		Course:       in.Course,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	// Guardar inactiva limpia los horarios (igual que el formulario).
	if !m.Active {
		m.DoseTimes = []string{}
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return Medication{}, apperr.Storage("create medication", err)
	}
	return m, nil
}

func (s *Service) GetByID(ctx context.Context, ownerUserID, id string) (Medication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Medication{}, ErrNotFound
	}
	m, err := s.repo.GetByID(ctx, ownerUserID, id)
	if err != nil {
		return Medication{}, apperr.Storage("get medication", err)
	}
	return m, nil
}

// Update reemplaza los campos editables (PUT del formulario de edición).
func (s *Service) Update(ctx context.Context, ownerUserID, id string, in Input) (Medication, error) {
	current, err := s.GetByID(ctx, ownerUserID, id)
	if err != nil {
		return Medication{}, err
	}
	if err := validateInput(&in); err != nil {
		return Medication{}, err
	}

	current.Name = in.Name
	current.Quantity = in.Quantity
	current.DoseTimes = in.DoseTimes
	current.ExpiryDate = in.ExpiryDate
	current.Instructions = in.Instructions
	current.Course = in.Course
	if in.Active != nil {
		current.Active = *in.Active
	}
	if !current.Active {
		current.DoseTimes = []string{}
	}

	return s.save(ctx, current)
}

// Toggle invierte el flag active. Los horarios se conservan; el motor de
// alertas ya ignora medicaciones inactivas.
func (s *Service) Toggle(ctx context.Context, ownerUserID, id string) (Medication, error) {
	current, err := s.GetByID(ctx, ownerUserID, id)
	if err != nil {
		return Medication{}, err
	}
	current.Active = !current.Active
	return s.save(ctx, current)
}

// Archive desactiva sin borrar (idempotente).
func (s *Service) Archive(ctx context.Context, ownerUserID, id string) (Medication, error) {
	current, err := s.GetByID(ctx, ownerUserID, id)
	if err != nil {
		return Medication{}, err
	}
	if !current.Active {
		return current, nil
	}
	current.Active = false
	return s.save(ctx, current)
}

func (s *Service) Delete(ctx context.Context, ownerUserID, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotFound
	}
	return apperr.Storage("delete medication", s.repo.Delete(ctx, ownerUserID, id))
}

// List devuelve las medicaciones visibles para el usuario en el instante at
// (at ya viene en la zona horaria del usuario, igual que en Alerts).
func (s *Service) List(ctx context.Context, ownerUserID string, showInactive bool, at time.Time) ([]Medication, error) {
	items, err := s.repo.ListByOwner(ctx, ownerUserID)
	if err != nil {
		return nil, apperr.Storage("list medications", err)
	}

	out := make([]Medication, 0, len(items))
	for _, m := range items {
		if IsVisible(m, at, showInactive) {
			out = append(out, m)
		}
	}
	return out, nil
}

// Alerts evalúa el motor de alertas para el usuario en el instante at
// (at ya viene en la zona horaria del usuario).
func (s *Service) Alerts(ctx context.Context, ownerUserID string, at time.Time) (Alerts, error) {
	items, err := s.repo.ListByOwner(ctx, ownerUserID)
	if err != nil {
		return Alerts{}, apperr.Storage("list medications", err)
	}
	return ComputeAlerts(items, at), nil
}

func (s *Service) Owners(ctx context.Context) ([]string, error) {
	owners, err := s.repo.ListOwners(ctx)
	if err != nil {
		return nil, apperr.Storage("list owners", err)
	}
	return owners, nil
}

func (s *Service) save(ctx context.Context, m Medication) (Medication, error) {
	m.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, m); err != nil {
		return Medication{}, apperr.Storage("update medication", err)
	}
	return m, nil
}

func (s *Service) checkLimit(ctx context.Context, ownerUserID string) error {
	if s.caps == nil {
		return nil
	}
	limit, err := s.caps.MedicationLimit(ctx, ownerUserID)
	if err != nil {
		return err
	}
	items, err := s.repo.ListByOwner(ctx, ownerUserID)
	if err != nil {
		return apperr.Storage("count medications", err)
	}
	if len(items) >= limit {
		return ErrLimitReached
	}
	return nil
}
