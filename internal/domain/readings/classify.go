package readings

// Category es el resultado del clasificador, con el token de color y el
// rango legible que muestra la UI.
type Category struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Color string `json:"color"`
	Range string `json:"range"`
}

var (
	BPHypotension = Category{Code: "hypotension", Label: "Hypotension", Color: "bg-blue-500", Range: "SYS < 90 or DIA < 60"}
	BPNormal      = Category{Code: "normal", Label: "Normal", Color: "bg-green-500", Range: "SYS 90-119 and DIA 60-79"}
	BPElevated    = Category{Code: "elevated", Label: "Elevated", Color: "bg-yellow-500", Range: "SYS 120-129 and DIA < 80"}
	BPStage1      = Category{Code: "hypertension_stage_1", Label: "Hypertension - Stage 1", Color: "bg-orange-500", Range: "SYS 130-139 or DIA 80-89"}
	BPStage2      = Category{Code: "hypertension_stage_2", Label: "Hypertension - Stage 2", Color: "bg-red-500", Range: "SYS >= 140 or DIA >= 90"}
	BPCrisis      = Category{Code: "hypertensive_crisis", Label: "Hypertensive Crisis", Color: "bg-red-700", Range: "SYS > 180 or DIA > 120"}
)

// BloodPressureCategories en el orden de la leyenda (de menor a mayor).
func BloodPressureCategories() []Category {
	return []Category{BPHypotension, BPNormal, BPElevated, BPStage1, BPStage2, BPCrisis}
}

// ClassifyBloodPressure aplica la tabla en orden; gana la primera regla que
// matchea. Por eso 120/80 es Stage 1 y no Elevated.
func ClassifyBloodPressure(systolic, diastolic int) Category {
	switch {
	case systolic > 180 || diastolic > 120:
		return BPCrisis
	case systolic >= 140 || diastolic >= 90:
		return BPStage2
	case systolic >= 130 || diastolic >= 80:
		return BPStage1
	case systolic >= 120 && systolic <= 129 && diastolic < 80:
		return BPElevated
	case systolic < 90 || diastolic < 60:
		return BPHypotension
	default:
		return BPNormal
	}
}

var (
	GlucoseLow                = Category{Code: "low", Label: "Low (Hypoglycemia)", Color: "bg-blue-500", Range: "< 70 mg/dL"}
	GlucoseNormalFasting      = Category{Code: "normal", Label: "Normal (Fasting)", Color: "bg-green-500", Range: "70-99 mg/dL"}
	GlucoseElevatedFasting    = Category{Code: "elevated", Label: "Elevated (Prediabetes)", Color: "bg-yellow-500", Range: "100-125 mg/dL (Fasting)"}
	GlucoseHighFasting        = Category{Code: "high", Label: "High (Diabetes)", Color: "bg-red-500", Range: ">= 126 mg/dL (Fasting)"}
	GlucoseNormalNonFasting   = Category{Code: "normal", Label: "Normal (Post-Meal / Random)", Color: "bg-green-500", Range: "70-139 mg/dL"}
	GlucoseElevatedNonFasting = Category{Code: "elevated", Label: "Elevated (Prediabetes)", Color: "bg-yellow-500", Range: "140-199 mg/dL (Post-Meal / Random)"}
	GlucoseHighNonFasting     = Category{Code: "high", Label: "High (Diabetes)", Color: "bg-red-500", Range: ">= 200 mg/dL (Post-Meal / Random)"}
)

func GlucoseCategories() []Category {
	return []Category{
		GlucoseLow,
		GlucoseNormalFasting, GlucoseElevatedFasting, GlucoseHighFasting,
		GlucoseNormalNonFasting, GlucoseElevatedNonFasting, GlucoseHighNonFasting,
	}
}

// ClassifyGlucose: hipoglucemia (<70) para cualquier tipo; el resto de
// umbrales depende de si la medición fue en ayunas. Un tipo desconocido se
// trata como "random".
func ClassifyGlucose(level int, t ReadingType) Category {
	if level < 70 {
		return GlucoseLow
	}
	if t == ReadingFasting {
		switch {
		case level <= 99:
			return GlucoseNormalFasting
		case level <= 125:
			return GlucoseElevatedFasting
		default:
			return GlucoseHighFasting
		}
	}
	switch {
	case level < 140:
		return GlucoseNormalNonFasting
	case level < 200:
		return GlucoseElevatedNonFasting
	default:
		return GlucoseHighNonFasting
	}
}
