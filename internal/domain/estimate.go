package domain

import "math"

// Base handling minutes per department and urgency multipliers per priority.
// Estimates must stay reproducible across releases, so these values are part
// of the service contract.
var baseMinutes = map[Department]int{
	DepartmentAccount:  45,
	DepartmentNetwork:  90,
	DepartmentSoftware: 120,
	DepartmentHardware: 180,
	DepartmentOther:    60,
}

var priorityMultipliers = map[Priority]float64{
	PriorityLow:    0.75,
	PriorityMedium: 1.0,
	PriorityHigh:   1.5,
}

// EstimateMinutes derives the estimated handling time for a department and
// priority pair, rounded half-up to whole minutes. Unknown departments use
// the catch-all base and unknown priorities a neutral multiplier, so the
// function is total; after normalization neither case occurs.
func EstimateMinutes(department Department, priority Priority) int {
	base, ok := baseMinutes[department]
	if !ok {
		base = baseMinutes[DepartmentOther]
	}
	multiplier, ok := priorityMultipliers[priority]
	if !ok {
		multiplier = 1.0
	}
	return int(math.Round(float64(base) * multiplier))
}
