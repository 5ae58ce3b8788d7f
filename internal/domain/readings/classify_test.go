package readings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyBloodPressure_Boundaries(t *testing.T) {
	cases := []struct {
		sys, dia int
		want     Category
	}{
		{181, 70, BPCrisis},
		{110, 121, BPCrisis},
		{180, 120, BPStage2},
		{140, 89, BPStage2},
		{139, 90, BPStage2},
		{139, 89, BPStage1},
		{130, 70, BPStage1},
		{120, 80, BPStage1},
		{100, 80, BPStage1},
		{129, 79, BPElevated},
		{120, 79, BPElevated},
		{119, 79, BPNormal},
		{90, 60, BPNormal},
		{89, 70, BPHypotension},
		{100, 59, BPHypotension},
		// Elevated gana sobre hipotensión por precedencia.
		{125, 50, BPElevated},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ClassifyBloodPressure(c.sys, c.dia), "%d/%d", c.sys, c.dia)
	}
}

func TestClassifyGlucose_Boundaries(t *testing.T) {
	cases := []struct {
		level int
		typ   ReadingType
		want  Category
	}{
		{69, ReadingFasting, GlucoseLow},
		{69, ReadingPostMeal, GlucoseLow},
		{70, ReadingFasting, GlucoseNormalFasting},
		{99, ReadingFasting, GlucoseNormalFasting},
		{100, ReadingFasting, GlucoseElevatedFasting},
		{125, ReadingFasting, GlucoseElevatedFasting},
		{126, ReadingFasting, GlucoseHighFasting},
		{139, ReadingPostMeal, GlucoseNormalNonFasting},
		{140, ReadingPostMeal, GlucoseElevatedNonFasting},
		{199, ReadingRandom, GlucoseElevatedNonFasting},
		{200, ReadingRandom, GlucoseHighNonFasting},
		{130, ReadingType("bogus"), GlucoseNormalNonFasting},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ClassifyGlucose(c.level, c.typ), "%d %s", c.level, c.typ)
	}
}

func TestCategoryLists(t *testing.T) {
	bp := BloodPressureCategories()
	assert.Len(t, bp, 6)
	assert.Equal(t, BPHypotension, bp[0])
	assert.Equal(t, BPCrisis, bp[len(bp)-1])

	assert.Len(t, GlucoseCategories(), 7)
}
