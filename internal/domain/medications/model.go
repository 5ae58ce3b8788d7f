package medications

import "time"

// LowStockThreshold: cantidad estrictamente menor a esto dispara alerta de stock.
const LowStockThreshold = 5

// Course es un tratamiento de duración fija (p.ej. antibiótico 7 días).
// StartDate es una fecha calendario; sólo importa año/mes/día.
type Course struct {
	DurationDays int       `json:"durationDays"`
	StartDate    time.Time `json:"startDate"`
}

// EndDate = StartDate + DurationDays (fecha calendario, UTC 00:00).
func (c Course) EndDate() time.Time {
	return civilDay(c.StartDate).AddDate(0, 0, c.DurationDays)
}

// Medication es el documento persistido por usuario (colección "medications").
type Medication struct {
	ID          string `json:"id"`
	OwnerUserID string `json:"userId"`

	Name      string   `json:"name"`
	Quantity  int      `json:"quantity"`
	DoseTimes []string `json:"dose_times"` // "HH:MM", sin duplicados, ordenados

	ExpiryDate   *time.Time `json:"expiryDate,omitempty"`
	Active       bool       `json:"active"`
	Instructions string     `json:"instructions,omitempty"`
	Course       *Course    `json:"course,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
