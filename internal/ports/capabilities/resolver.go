package capabilities

import "context"

// Feature identifica una funcionalidad premium gateada por suscripción.
type Feature string

const (
	FeatureBloodPressure Feature = "blood_pressure_manager"
	FeatureDiabetic      Feature = "diabetic_manager"
)

// Resolver responde qué puede hacer un usuario según su plan.
// Lo implementa subscriptions.Service; los handlers sólo ven esta interfaz.
type Resolver interface {
	HasFeature(ctx context.Context, userID string, f Feature) (bool, error)
	MedicationLimit(ctx context.Context, userID string) (int, error)
}
