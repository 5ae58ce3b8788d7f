package contacts

import "time"

// Contact es el contacto de emergencia del usuario (uno por usuario).
type Contact struct {
	OwnerUserID string    `json:"userId"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ChangeKind string

const (
	ChangeSaved   ChangeKind = "saved"
	ChangeDeleted ChangeKind = "deleted"
)

// ContactChanged se publica en cada alta/edición/borrado.
// Contact es nil cuando Kind == ChangeDeleted.
type ContactChanged struct {
	OwnerUserID string
	Contact     *Contact
	Kind        ChangeKind
}
