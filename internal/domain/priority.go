package domain

import "strconv"

// Priority is the urgency tier of a task. Lower numbers are more urgent.
type Priority int

const (
	PriorityHigh   Priority = 1
	PriorityMedium Priority = 2
	PriorityLow    Priority = 3
)

// Priorities lists every valid tier, most urgent first.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// IsValid reports whether p is one of the three known tiers.
func (p Priority) IsValid() bool {
	return p >= PriorityHigh && p <= PriorityLow
}

// String returns the tier name, or the raw number for unknown values.
func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	default:
		return strconv.Itoa(int(p))
	}
}
