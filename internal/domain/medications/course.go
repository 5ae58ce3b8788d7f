package medications

import "time"

// IsEffectivelyActive combina el flag manual con la expiración del curso.
// La comparación es por día calendario (en la zona de now), así un curso
// que termina hoy sigue activo todo el día.
func IsEffectivelyActive(m Medication, now time.Time) bool {
	if !m.Active {
		return false
	}
	if m.Course == nil {
		return true
	}
	// Un curso de 0 días ya está vencido el mismo día que empieza.
	if m.Course.DurationDays <= 0 {
		return false
	}
	return daysBetween(now, m.Course.EndDate()) >= 0
}

// IsVisible: con showInactive se ve todo; si no, sólo lo efectivamente activo.
func IsVisible(m Medication, now time.Time, showInactive bool) bool {
	if showInactive {
		return true
	}
	return IsEffectivelyActive(m, now)
}

// RemainingCourseDays devuelve nil si no hay curso; nunca negativo.
func RemainingCourseDays(m Medication, now time.Time) *int {
	if m.Course == nil {
		return nil
	}
	d := daysBetween(now, m.Course.EndDate())
	if d < 0 || m.Course.DurationDays <= 0 {
		d = 0
	}
	return &d
}

// civilDay normaliza t a su fecha calendario (en su propia zona) como UTC 00:00.
func civilDay(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween cuenta días calendario completos de from a to (puede ser negativo).
func daysBetween(from, to time.Time) int {
	return int(civilDay(to).Sub(civilDay(from)) / (24 * time.Hour))
}
