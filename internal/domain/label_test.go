package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePriority(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		want      Priority
	}{
		{"exact match", "high", PriorityHigh},
		{"uppercase", "HIGH", PriorityHigh},
		{"mixed case with padding", "  Medium ", PriorityMedium},
		{"low", "low", PriorityLow},
		{"out of vocabulary", "urgent", DefaultPriority},
		{"out of vocabulary synonym", "critical", DefaultPriority},
		{"empty", "", DefaultPriority},
		{"whitespace only", "   ", DefaultPriority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePriority(tt.candidate)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid())
		})
	}
}

func TestNormalizeDepartment(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		want      Department
	}{
		{"exact match", "network", DepartmentNetwork},
		{"uppercase with padding", " SOFTWARE  ", DepartmentSoftware},
		{"account", "account", DepartmentAccount},
		{"hardware", "Hardware", DepartmentHardware},
		{"out of vocabulary", "billing", DefaultDepartment},
		{"empty", "", DefaultDepartment},
		{"other is itself valid", "other", DepartmentOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDepartment(tt.candidate)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid())
		})
	}
}
