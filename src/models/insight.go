package models

type InsightCategory string

const (
	InsightSuccess  InsightCategory = "success"
	InsightInfo     InsightCategory = "info"
	InsightWarning  InsightCategory = "warning"
	InsightCritical InsightCategory = "critical"
)

type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Rank orders priorities: critical first. Unknown values sort last.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	}
	return 4
}

type Insight struct {
	Rule        string          `json:"rule"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    InsightCategory `json:"category"`
	Priority    Priority        `json:"priority"`
}
