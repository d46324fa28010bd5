package types

import (
	"time"
)

type Severity string

const (
	SeverityCritical Severity = "critica"
	SeverityReview   Severity = "revision"
	SeverityNormal   Severity = "normal"
)

type AlertStatus string

const (
	AlertPending  AlertStatus = "pendiente"
	AlertResolved AlertStatus = "resuelta"
)

type RuleType string

const (
	RuleLowOxygenation    RuleType = "oxigenacion-baja"
	RuleAbnormalHeartRate RuleType = "frecuencia-anormal"
)

// SensorReading is one timestamped snapshot of vitals for a crib. Readings
// are immutable once stored; the id is assigned by the store and only used
// as an ordering tiebreaker.
type SensorReading struct {
	ID               int64     `json:"-"`
	CribID           string    `json:"cunaId"`
	Origin           string    `json:"origin"`
	Timestamp        time.Time `json:"timestamp"`
	HeartRateBpm     float64   `json:"frecuenciaCardiaca"`
	Spo2Percent      float64   `json:"oxigenacion"`
	TemperatureC     float64   `json:"temperatura"`
	MovementDetected bool      `json:"movimiento"`
}

// Alert records a rule breach derived from a single reading. Severity is
// stored denormalized so that historical rows keep the classification they
// were created with even if thresholds change later.
type Alert struct {
	ID             string      `json:"id"`
	CribID         string      `json:"cunaId"`
	RuleType       RuleType    `json:"tipo"`
	ObservedValue  float64     `json:"valor"`
	Threshold      float64     `json:"umbral"`
	Severity       Severity    `json:"severidad"`
	Status         AlertStatus `json:"estado"`
	ResolvedBy     *string     `json:"atendidaPor,omitempty"`
	ResolutionNote *string     `json:"observacion,omitempty"`
	CreatedAt      time.Time   `json:"timestamp"`
}

// FaultReport is a free form hardware fault report filed by nursing staff.
type FaultReport struct {
	ID          string    `json:"id"`
	CribID      string    `json:"idCuna"`
	Description string    `json:"descripcion"`
	ReportedBy  string    `json:"idEnfermero"`
	ReportedAt  time.Time `json:"fecha"`
}

type Collection[T any] struct {
	Data       []T
	Count      uint64
	Offset     uint64
	Limit      uint64
	TotalCount uint64
}
