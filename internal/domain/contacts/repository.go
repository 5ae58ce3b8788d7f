package contacts

import "context"

// Repository: colección "emergency_contacts", clave = usuario.
type Repository interface {
	Get(ctx context.Context, ownerUserID string) (Contact, error)
	Save(ctx context.Context, c Contact) error
	Delete(ctx context.Context, ownerUserID string) error
}
