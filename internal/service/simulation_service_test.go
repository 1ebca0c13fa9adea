package service

import (
	"testing"

	"edubridge_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateBusinessBaseline(t *testing.T) {
	result, err := SimulateBusiness(SimulationInput{})
	require.NoError(t, err)

	assert.Equal(t, 50000, result.ProjectedRevenue)
	assert.Equal(t, 20, result.ProjectedGrowth)
	assert.Equal(t, 10000, result.RemainingBudget)

	require.Len(t, result.RevenueSeries, 6)
	assert.Equal(t, MonthProjection{Month: "Jan", Current: 50000, Projected: 50000}, result.RevenueSeries[0])
	assert.Equal(t, MonthProjection{Month: "Jun", Current: 75000, Projected: 75000}, result.RevenueSeries[5])
}

func TestSimulateBusinessAllInMarketing(t *testing.T) {
	result, err := SimulateBusiness(SimulationInput{Marketing: 10000})
	require.NoError(t, err)

	// Full marketing spend triples the base.
	assert.Equal(t, 150000, result.ProjectedRevenue)
	assert.Equal(t, 60, result.ProjectedGrowth)
	assert.Zero(t, result.RemainingBudget)
	assert.Contains(t, result.Advice, "Strong marketing focus")
}

func TestSimulateBusinessAdviceThresholds(t *testing.T) {
	cases := []struct {
		name  string
		input SimulationInput
		want  string
	}{
		{"marketing wins first", SimulationInput{Marketing: 5001, RnD: 4001}, "Strong marketing focus"},
		{"rnd", SimulationInput{RnD: 4001}, "Excellent R&D investment"},
		{"hiring", SimulationInput{Hiring: 4001}, "Smart hiring strategy"},
		{"balanced", SimulationInput{Marketing: 3000, RnD: 3000, Hiring: 3000}, "Balanced approach is prudent"},
		{"boundary values stay balanced", SimulationInput{Marketing: 5000, RnD: 4000, Hiring: 1000}, "Balanced approach is prudent"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := SimulateBusiness(tc.input)
			require.NoError(t, err)
			assert.Contains(t, result.Advice, tc.want)
		})
	}
}

func TestSimulateBusinessRejectsInvalidAllocations(t *testing.T) {
	_, err := SimulateBusiness(SimulationInput{Marketing: -1})
	assert.ErrorIs(t, err, util.ErrInvalidAllocation)

	_, err = SimulateBusiness(SimulationInput{Marketing: 5000, RnD: 5000, Hiring: 1})
	assert.ErrorIs(t, err, util.ErrInvalidAllocation)
}
