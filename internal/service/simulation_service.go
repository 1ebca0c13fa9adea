package service

import (
	"math"

	"edubridge_backend/internal/util"
)

// totalSeedBudget is the simulated seed funding to allocate.
const totalSeedBudget = 10000

// SimulationInput is one budget allocation across the three areas.
type SimulationInput struct {
	Marketing int `json:"marketing"`
	RnD       int `json:"rnd"`
	Hiring    int `json:"hiring"`
}

// MonthProjection is one point of the six-month revenue series.
type MonthProjection struct {
	Month     string `json:"month"`
	Current   int    `json:"current"`
	Projected int    `json:"projected"`
}

// SimulationResult is the projection for one allocation.
type SimulationResult struct {
	ProjectedRevenue int               `json:"projectedRevenue"`
	ProjectedGrowth  int               `json:"projectedGrowth"`
	RemainingBudget  int               `json:"remainingBudget"`
	RevenueSeries    []MonthProjection `json:"revenueSeries"`
	Advice           string            `json:"advice"`
}

// SimulateBusiness projects revenue and growth for a seed-budget split.
// Each area scales its multiplier linearly against the full budget, and the
// six-month series grows the projection in 10% increments.
func SimulateBusiness(input SimulationInput) (*SimulationResult, error) {
	if input.Marketing < 0 || input.RnD < 0 || input.Hiring < 0 {
		return nil, util.ErrInvalidAllocation
	}
	if input.Marketing+input.RnD+input.Hiring > totalSeedBudget {
		return nil, util.ErrInvalidAllocation
	}

	marketingMultiplier := 1 + float64(input.Marketing)/10000*2
	rndMultiplier := 1 + float64(input.RnD)/10000*1.5
	hiringMultiplier := 1 + float64(input.Hiring)/10000*1.8

	const baseRevenue = 50000
	const baseGrowth = 20

	projectedRevenue := int(math.Round(baseRevenue * marketingMultiplier * rndMultiplier * hiringMultiplier))
	projectedGrowth := int(math.Round(baseGrowth * marketingMultiplier * rndMultiplier * hiringMultiplier))

	months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}
	series := make([]MonthProjection, 0, len(months))
	for i, month := range months {
		factor := 1 + float64(i)*0.1
		series = append(series, MonthProjection{
			Month:     month,
			Current:   50000 + i*5000,
			Projected: int(math.Round(float64(projectedRevenue) * factor)),
		})
	}

	return &SimulationResult{
		ProjectedRevenue: projectedRevenue,
		ProjectedGrowth:  projectedGrowth,
		RemainingBudget:  totalSeedBudget - input.Marketing - input.RnD - input.Hiring,
		RevenueSeries:    series,
		Advice:           simulationAdvice(input),
	}, nil
}

// simulationAdvice picks the canned consultant line, first threshold wins.
func simulationAdvice(input SimulationInput) string {
	switch {
	case input.Marketing > 5000:
		return "Strong marketing focus is good for quick growth, but consider balancing with R&D for sustainable innovation."
	case input.RnD > 4000:
		return "Excellent R&D investment for long-term competitiveness. Ensure marketing keeps up to convert innovations to sales."
	case input.Hiring > 4000:
		return "Smart hiring strategy for talent acquisition. Monitor productivity and ensure proper onboarding processes."
	default:
		return "Balanced approach is prudent. Consider market conditions - if competition is high, increase marketing spend."
	}
}
