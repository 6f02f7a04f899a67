package assign_test

import (
	"math"
	"testing"

	"github.com/colonykit/colony/assign"
	"github.com/stretchr/testify/assert"
)

// TestComputeCost_Basic verifies the aggregation formula on plain inputs.
func TestComputeCost_Basic(t *testing.T) {
	assert.Equal(t, 0.0, assign.ComputeCost(0, 0, 0, 1), "neutral inputs cost nothing")
	assert.Equal(t, 10.0, assign.ComputeCost(4, 6, 0, 1), "times add up")
	assert.InDelta(t, 20.0, assign.ComputeCost(4, 6, 0.5, 1), 1e-12, "retry risk scales cost")
	assert.InDelta(t, 5.0, assign.ComputeCost(4, 6, 0, 2), 1e-12, "priority divides cost")
}

// TestComputeCost_InfinityIff verifies that the result is +Inf exactly when
// retryRisk >= 1 or priority <= 0.
func TestComputeCost_InfinityIff(t *testing.T) {
	assert.True(t, math.IsInf(assign.ComputeCost(5, 5, 1.0, 1), 1), "certain failure")
	assert.True(t, math.IsInf(assign.ComputeCost(5, 5, 1.5, 1), 1), "risk above one")
	assert.True(t, math.IsInf(assign.ComputeCost(5, 5, 0, 0), 1), "zero priority")
	assert.True(t, math.IsInf(assign.ComputeCost(5, 5, 0, -2), 1), "negative priority")

	assert.False(t, math.IsInf(assign.ComputeCost(5, 5, 0.999, 0.001), 1),
		"in-domain factors stay finite")
}

// TestComputeCost_Monotonicity verifies monotone behavior in each factor:
// non-decreasing in travel and work time, non-increasing in priority.
func TestComputeCost_Monotonicity(t *testing.T) {
	base := assign.ComputeCost(2, 3, 0.25, 2)

	assert.GreaterOrEqual(t, assign.ComputeCost(5, 3, 0.25, 2), base, "more travel")
	assert.GreaterOrEqual(t, assign.ComputeCost(2, 9, 0.25, 2), base, "more work")
	assert.GreaterOrEqual(t, assign.ComputeCost(2, 3, 0.5, 2), base, "more risk")
	assert.LessOrEqual(t, assign.ComputeCost(2, 3, 0.25, 4), base, "higher priority")
}

// TestComputeCost_PermissiveDomain verifies the documented permissiveness:
// out-of-domain inputs yield consistent (possibly nonsensical) values
// rather than errors.
func TestComputeCost_PermissiveDomain(t *testing.T) {
	assert.Equal(t, -10.0, assign.ComputeCost(-4, -6, 0, 1),
		"negative times produce a negative cost; input sanity is the caller's")
}
