package refill

import (
	"strings"
	"time"
)

// LeadDays: cuántos días antes del agotamiento se sugiere pedir la reposición.
const LeadDays = 3

// Plan es la aritmética determinística detrás de una sugerencia.
type Plan struct {
	DosesPerDay   int
	DaysOfSupply  int
	DepletionDate time.Time
	RefillDate    time.Time
}

// Estimate calcula agotamiento y fecha de reposición a partir de hoy.
// Las fechas son días calendario (UTC 00:00) en la zona de today.
// RefillDate nunca es anterior a today.
func Estimate(quantity int, doseTimes []string, today time.Time) Plan {
	if quantity < 0 {
		quantity = 0
	}

	perDay := distinct(doseTimes)
	if perDay < 1 {
		perDay = 1
	}

	y, m, d := today.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	days := quantity / perDay
	depletion := start.AddDate(0, 0, days)
	refill := depletion.AddDate(0, 0, -LeadDays)
	if refill.Before(start) {
		refill = start
	}

	return Plan{
		DosesPerDay:   perDay,
		DaysOfSupply:  days,
		DepletionDate: depletion,
		RefillDate:    refill,
	}
}

func distinct(times []string) int {
	seen := make(map[string]struct{}, len(times))
	for _, t := range times {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		seen[t] = struct{}{}
	}
	return len(seen)
}
