package readings

import (
	"strings"

	"medication-reminder/internal/platform/apperr"
)

const (
	maxVital   = 300
	maxGlucose = 1000
)

func validateBloodPressure(in *BloodPressureInput) error {
	for _, f := range []struct {
		name string
		v    int
	}{
		{"systolic", in.Systolic},
		{"diastolic", in.Diastolic},
		{"pulse", in.Pulse},
	} {
		if f.v < 0 || f.v > maxVital {
			return apperr.Invalid(f.name, "must be between 0 and 300")
		}
	}

	switch in.Arm {
	case "", ArmLeft, ArmRight:
	default:
		return apperr.Invalid("arm", "must be left or right")
	}
	switch in.Position {
	case "", PositionSitting, PositionLaying, PositionStanding:
	default:
		return apperr.Invalid("position", "must be sitting, laying or standing")
	}

	if c := in.Conditions; c != nil {
		for _, f := range []struct {
			name string
			v    Timing
		}{
			{"conditions.meal", c.Meal},
			{"conditions.medicine", c.Medicine},
			{"conditions.activity", c.Activity},
		} {
			if f.v != "" && f.v != TimingBefore && f.v != TimingAfter {
				return apperr.Invalid(f.name, "must be before or after")
			}
		}
		if *c == (Conditions{}) {
			in.Conditions = nil
		}
	}

	in.Description = strings.TrimSpace(in.Description)
	return nil
}

func validateGlucose(in *GlucoseInput) error {
	if in.GlucoseLevel < 0 || in.GlucoseLevel > maxGlucose {
		return apperr.Invalid("glucoseLevel", "must be between 0 and 1000")
	}
	if !in.ReadingType.Valid() {
		return apperr.Invalid("readingType", "must be fasting, post-meal or random")
	}
	return nil
}
