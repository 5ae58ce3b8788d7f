package subscriptions

import "time"

type Type string

const (
	TypeBasic   Type = "Basic"
	TypePremium Type = "Premium"
)

const (
	BasicMaxMedicines   = 5
	PremiumMaxMedicines = 999
)

// Subscription gatea la cantidad de medicaciones y los gestores premium.
type Subscription struct {
	OwnerUserID string `json:"userId"`
	Type        Type   `json:"type"`

	MaxMedicines         int  `json:"maxMedicines"`
	BloodPressureManager bool `json:"bloodPressureManager"`
	DiabeticManager      bool `json:"diabeticManager"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// planFor devuelve los límites de cada tipo de plan.
func planFor(t Type) Subscription {
	if t == TypePremium {
		return Subscription{
			Type:                 TypePremium,
			MaxMedicines:         PremiumMaxMedicines,
			BloodPressureManager: true,
			DiabeticManager:      true,
		}
	}
	return Subscription{
		Type:         TypeBasic,
		MaxMedicines: BasicMaxMedicines,
	}
}
