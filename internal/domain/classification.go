package domain

// Classification is the verdict produced for a single ticket: both labels are
// guaranteed members of their vocabularies and the estimate is derived from
// them. Built once per request, never mutated, never persisted.
type Classification struct {
	Priority         Priority
	Department       Department
	EstimatedMinutes int
}
