package readings

import "context"

// BloodPressureRepository: colección "blood_pressure_readings" por usuario.
type BloodPressureRepository interface {
	Create(ctx context.Context, r BloodPressureReading) error
	Delete(ctx context.Context, ownerUserID, id string) error
	ListByOwner(ctx context.Context, ownerUserID string) ([]BloodPressureReading, error)
}

// DiabeticRepository: colección "diabetic_readings" por usuario.
type DiabeticRepository interface {
	Create(ctx context.Context, r DiabeticReading) error
	Delete(ctx context.Context, ownerUserID, id string) error
	ListByOwner(ctx context.Context, ownerUserID string) ([]DiabeticReading, error)
}
