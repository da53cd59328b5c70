package model

// Priority is the urgency of a task as reported by the model.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// IsValid reports whether p is one of the known priorities.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// DurationUnit is the canonical unit of a Duration.
type DurationUnit string

const (
	UnitHours DurationUnit = "hours"
	UnitDays  DurationUnit = "days"
)

// Duration is a normalized effort estimate. A nil *Duration means "unknown".
type Duration struct {
	Quantity float64      `json:"quantity"`
	Unit     DurationUnit `json:"unit"`
}

// TaskDescriptor is a validated task produced from a model response.
type TaskDescriptor struct {
	Task              string    `json:"task"`
	Description       string    `json:"description"`
	Priority          Priority  `json:"priority"`
	EstimatedDuration *Duration `json:"estimated_duration"`
}
