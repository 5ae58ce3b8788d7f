package medications

import "context"

// Repository es la colección "medications" del document store, por usuario.
// GetByID/Delete/Update devuelven apperr.ErrNotFound si no existe.
type Repository interface {
	Create(ctx context.Context, m Medication) error
	Update(ctx context.Context, m Medication) error
	Delete(ctx context.Context, ownerUserID, id string) error
	GetByID(ctx context.Context, ownerUserID, id string) (Medication, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]Medication, error)

	// ListOwners lista usuarios con al menos una medicación (para el tick de recordatorios).
	ListOwners(ctx context.Context) ([]string, error)
}
