package contacts

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"sync"
	"time"

	"medication-reminder/internal/platform/apperr"
)

var ErrNotFound = apperr.ErrNotFound

var phoneRe = regexp.MustCompile(`^([+]?[\s0-9]+)?(\d{3}|[(]?[0-9]+[)])?([-]?[\s]?[0-9])+$`)

// Listener recibe los cambios de forma síncrona, después de persistir.
type Listener func(ContactChanged)

// Service es un store observable: cada cambio persistido se notifica a los
// suscriptores con un evento tipado.
type Service struct {
	repo Repository
	now  func() time.Time

	mu        sync.RWMutex
	nextID    int
	listeners map[int]Listener
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:      repo,
		now:       time.Now,
		listeners: make(map[int]Listener),
	}
}

// Subscribe registra fn y devuelve la función para darse de baja.
func (s *Service) Subscribe(fn Listener) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

func (s *Service) Get(ctx context.Context, ownerUserID string) (Contact, error) {
	c, err := s.repo.Get(ctx, strings.TrimSpace(ownerUserID))
	if err != nil {
		return Contact{}, apperr.Storage("get emergency contact", err)
	}
	return c, nil
}

// FindEmergencyContact adapta Get a lo que necesita el deep link de WhatsApp.
func (s *Service) FindEmergencyContact(ctx context.Context, ownerUserID string) (string, string, bool, error) {
	c, err := s.Get(ctx, ownerUserID)
	if errors.Is(err, ErrNotFound) {
		return "", "", false, nil
	}
	if err != nil {
		return "", "", false, err
	}
	return c.Name, c.Phone, true, nil
}

func (s *Service) Save(ctx context.Context, ownerUserID, name, phone string) (Contact, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return Contact{}, apperr.Invalid("owner", "required")
	}

	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if len([]rune(name)) < 2 {
		return Contact{}, apperr.Invalid("name", "must be at least 2 characters")
	}
	if !phoneRe.MatchString(phone) {
		return Contact{}, apperr.Invalid("phone", "invalid phone number")
	}

	c := Contact{
		OwnerUserID: ownerUserID,
		Name:        name,
		Phone:       phone,
		UpdatedAt:   s.now(),
	}
	if err := s.repo.Save(ctx, c); err != nil {
		return Contact{}, apperr.Storage("save emergency contact", err)
	}

	saved := c
	s.publish(ContactChanged{OwnerUserID: ownerUserID, Contact: &saved, Kind: ChangeSaved})
	return c, nil
}

func (s *Service) Delete(ctx context.Context, ownerUserID string) error {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return ErrNotFound
	}
	if err := s.repo.Delete(ctx, ownerUserID); err != nil {
		return apperr.Storage("delete emergency contact", err)
	}

	s.publish(ContactChanged{OwnerUserID: ownerUserID, Kind: ChangeDeleted})
	return nil
}

func (s *Service) publish(ev ContactChanged) {
	s.mu.RLock()
	ls := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		ls = append(ls, fn)
	}
	s.mu.RUnlock()

	for _, fn := range ls {
		fn(ev)
	}
}
