package readings

import "time"

type Arm string

const (
	ArmLeft  Arm = "left"
	ArmRight Arm = "right"
)

type Position string

const (
	PositionSitting  Position = "sitting"
	PositionLaying   Position = "laying"
	PositionStanding Position = "standing"
)

// Timing indica si la medición fue antes o después de comer, medicarse, etc.
type Timing string

const (
	TimingBefore Timing = "before"
	TimingAfter  Timing = "after"
)

type Conditions struct {
	Meal     Timing `json:"meal,omitempty"`
	Medicine Timing `json:"medicine,omitempty"`
	Activity Timing `json:"activity,omitempty"`
}

// BloodPressureReading es inmutable; sólo se crea o se borra.
type BloodPressureReading struct {
	ID          string `json:"id"`
	OwnerUserID string `json:"userId"`

	Systolic  int       `json:"systolic"`
	Diastolic int       `json:"diastolic"`
	Pulse     int       `json:"pulse"`
	Timestamp time.Time `json:"timestamp"`

	Arm         Arm         `json:"arm,omitempty"`
	Position    Position    `json:"position,omitempty"`
	Conditions  *Conditions `json:"conditions,omitempty"`
	Description string      `json:"description,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

type ReadingType string

const (
	ReadingFasting  ReadingType = "fasting"
	ReadingPostMeal ReadingType = "post-meal"
	ReadingRandom   ReadingType = "random"
)

func (t ReadingType) Valid() bool {
	switch t {
	case ReadingFasting, ReadingPostMeal, ReadingRandom:
		return true
	default:
		return false
	}
}

// DiabeticReading: glucemia en mg/dL.
type DiabeticReading struct {
	ID          string `json:"id"`
	OwnerUserID string `json:"userId"`

	GlucoseLevel int         `json:"glucoseLevel"`
	ReadingType  ReadingType `json:"readingType"`
	Timestamp    time.Time   `json:"timestamp"`

	CreatedAt time.Time `json:"createdAt"`
}

// Order de listado: desc para la tabla, asc para gráficos de tendencia.
type Order string

const (
	OrderDesc Order = "desc"
	OrderAsc  Order = "asc"
)

func ParseOrder(s string) Order {
	if Order(s) == OrderAsc {
		return OrderAsc
	}
	return OrderDesc
}
