package domain

import "strings"

// Priority enumerates ticket urgency levels. Severity is ordered
// low < medium < high, although the service only ever maps priorities,
// never compares them.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Department enumerates the teams a ticket can be routed to.
type Department string

const (
	DepartmentAccount  Department = "account"
	DepartmentHardware Department = "hardware"
	DepartmentNetwork  Department = "network"
	DepartmentSoftware Department = "software"
	DepartmentOther    Department = "other"
)

// Defaults substituted when a candidate label falls outside the vocabulary.
// Note the fallback classifier uses low, not DefaultPriority, when no keyword
// matches.
const (
	DefaultPriority   = PriorityMedium
	DefaultDepartment = DepartmentOther
)

var priorities = map[Priority]struct{}{
	PriorityLow:    {},
	PriorityMedium: {},
	PriorityHigh:   {},
}

var departments = map[Department]struct{}{
	DepartmentAccount:  {},
	DepartmentHardware: {},
	DepartmentNetwork:  {},
	DepartmentSoftware: {},
	DepartmentOther:    {},
}

// Valid reports whether the priority is part of the closed vocabulary.
func (p Priority) Valid() bool {
	_, ok := priorities[p]
	return ok
}

// Valid reports whether the department is part of the closed vocabulary.
func (d Department) Valid() bool {
	_, ok := departments[d]
	return ok
}

// NormalizePriority coerces an arbitrary candidate label into the priority
// vocabulary. Total over all inputs: whitespace and case are forgiven,
// anything else becomes the default.
func NormalizePriority(candidate string) Priority {
	p := Priority(normalizeLabel(candidate))
	if p.Valid() {
		return p
	}
	return DefaultPriority
}

// NormalizeDepartment coerces an arbitrary candidate label into the
// department vocabulary, substituting the catch-all on mismatch.
func NormalizeDepartment(candidate string) Department {
	d := Department(normalizeLabel(candidate))
	if d.Valid() {
		return d
	}
	return DefaultDepartment
}

func normalizeLabel(candidate string) string {
	return strings.ToLower(strings.TrimSpace(candidate))
}
