package medications

import (
	"slices"
	"time"
)

// Alerts es el estado derivado para el panel de alertas.
// El valor cero significa "todavía no evaluado" (no hay hora actual).
type Alerts struct {
	DoseTime []Medication
	LowStock []Medication

	EvaluatedAt time.Time
}

func (a Alerts) Evaluated() bool {
	return !a.EvaluatedAt.IsZero()
}

// AllClear: evaluado y sin ninguna alerta.
func (a Alerts) AllClear() bool {
	return a.Evaluated() && len(a.DoseTime) == 0 && len(a.LowStock) == 0
}

// ClockString formatea now como "HH:MM" 24h en la zona de now.
func ClockString(now time.Time) string {
	return now.Format("15:04")
}

// ComputeAlerts deriva alertas de toma y de stock bajo.
// Sólo cuentan las medicaciones efectivamente activas. La alerta de toma
// exige coincidencia exacta del minuto; quien llama re-evalúa al menos una
// vez por minuto.
func ComputeAlerts(meds []Medication, now time.Time) Alerts {
	if now.IsZero() {
		return Alerts{}
	}

	out := Alerts{
		DoseTime:    []Medication{},
		LowStock:    []Medication{},
		EvaluatedAt: now,
	}
	clock := ClockString(now)

	for _, m := range meds {
		if !IsEffectivelyActive(m, now) {
			continue
		}
		if slices.Contains(m.DoseTimes, clock) {
			out.DoseTime = append(out.DoseTime, m)
		}
		if m.Quantity < LowStockThreshold {
			out.LowStock = append(out.LowStock, m)
		}
	}
	return out
}
