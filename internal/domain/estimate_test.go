package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateMinutes(t *testing.T) {
	tests := []struct {
		department Department
		priority   Priority
		want       int
	}{
		{DepartmentAccount, PriorityLow, 34},
		{DepartmentAccount, PriorityMedium, 45},
		{DepartmentAccount, PriorityHigh, 68},
		{DepartmentNetwork, PriorityLow, 68},
		{DepartmentNetwork, PriorityMedium, 90},
		{DepartmentNetwork, PriorityHigh, 135},
		{DepartmentSoftware, PriorityLow, 90},
		{DepartmentSoftware, PriorityMedium, 120},
		{DepartmentSoftware, PriorityHigh, 180},
		{DepartmentHardware, PriorityLow, 135},
		{DepartmentHardware, PriorityMedium, 180},
		{DepartmentHardware, PriorityHigh, 270},
		{DepartmentOther, PriorityLow, 45},
		{DepartmentOther, PriorityMedium, 60},
		{DepartmentOther, PriorityHigh, 90},
	}

	for _, tt := range tests {
		t.Run(string(tt.department)+"/"+string(tt.priority), func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateMinutes(tt.department, tt.priority))
		})
	}
}

func TestEstimateMinutesHalfMinuteRoundsUp(t *testing.T) {
	// 45 * 1.5 and 90 * 0.75 both land on 67.5 and must round to 68.
	assert.Equal(t, 68, EstimateMinutes(DepartmentAccount, PriorityHigh))
	assert.Equal(t, 68, EstimateMinutes(DepartmentNetwork, PriorityLow))
}

func TestEstimateMinutesUnknownLabels(t *testing.T) {
	// Unknown labels fall back to the catch-all base and neutral multiplier.
	assert.Equal(t, 60, EstimateMinutes(Department("billing"), Priority("critical")))
	assert.Equal(t, 45, EstimateMinutes(Department("billing"), PriorityLow))
	assert.Equal(t, 120, EstimateMinutes(DepartmentSoftware, Priority("asap")))
}
