package memory

import (
	"context"
	"sync"

	"medication-reminder/internal/domain/contacts"
	"medication-reminder/internal/domain/subscriptions"
)

// Documentos de un solo registro por usuario: suscripción y contacto.

type subscriptionRepo struct {
	mu      sync.RWMutex
	byOwner map[string]subscriptions.Subscription
}

func NewSubscriptionRepo() subscriptions.Repository {
	return &subscriptionRepo{byOwner: make(map[string]subscriptions.Subscription)}
}

func (r *subscriptionRepo) Get(ctx context.Context, ownerUserID string) (subscriptions.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byOwner[ownerUserID]
	if !ok {
		return subscriptions.Subscription{}, ErrNotFound
	}
	return s, nil
}

func (r *subscriptionRepo) Save(ctx context.Context, s subscriptions.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byOwner[s.OwnerUserID] = s
	return nil
}

type contactRepo struct {
	mu      sync.RWMutex
	byOwner map[string]contacts.Contact
}

func NewContactRepo() contacts.Repository {
	return &contactRepo{byOwner: make(map[string]contacts.Contact)}
}

func (r *contactRepo) Get(ctx context.Context, ownerUserID string) (contacts.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byOwner[ownerUserID]
	if !ok {
		return contacts.Contact{}, ErrNotFound
	}
	return c, nil
}

func (r *contactRepo) Save(ctx context.Context, c contacts.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byOwner[c.OwnerUserID] = c
	return nil
}

func (r *contactRepo) Delete(ctx context.Context, ownerUserID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byOwner[ownerUserID]; !ok {
		return ErrNotFound
	}
	delete(r.byOwner, ownerUserID)
	return nil
}
