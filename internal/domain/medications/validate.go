package medications

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"medication-reminder/internal/platform/apperr"
)

// Acepta "8:00" y "08:00"; se normaliza a HH:MM con cero a la izquierda.
var doseTimeRe = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):([0-5][0-9])$`)

// NormalizeDoseTimes valida HH:MM, rellena con cero, deduplica y ordena.
func NormalizeDoseTimes(times []string) ([]string, error) {
	seen := make(map[string]struct{}, len(times))
	out := make([]string, 0, len(times))

	for i, raw := range times {
		m := doseTimeRe.FindStringSubmatch(strings.TrimSpace(raw))
		if m == nil {
			return nil, apperr.Invalid(fmt.Sprintf("dose_times[%d]", i), "must be HH:MM")
		}
		h, _ := strconv.Atoi(m[1])
		t := fmt.Sprintf("%02d:%s", h, m[2])
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}

	sort.Strings(out)
	return out, nil
}

func validateInput(in *Input) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Instructions = strings.TrimSpace(in.Instructions)

	if len([]rune(in.Name)) < 2 {
		return apperr.Invalid("name", "must be at least 2 characters")
	}
	if in.Quantity < 0 {
		return apperr.Invalid("quantity", "must be >= 0")
	}

	times, err := NormalizeDoseTimes(in.DoseTimes)
	if err != nil {
		return err
	}
	in.DoseTimes = times

	if in.Course != nil {
		if in.Course.DurationDays <= 0 {
			return apperr.Invalid("course.duration_days", "must be > 0")
		}
		if in.Course.StartDate.IsZero() {
			return apperr.Invalid("course.start_date", "required")
		}
		c := *in.Course
		c.StartDate = civilDay(c.StartDate)
		in.Course = &c
	}
	if in.ExpiryDate != nil {
		d := civilDay(*in.ExpiryDate)
		in.ExpiryDate = &d
	}
	return nil
}
