package assign

import "math"

// ComputeCost aggregates the four task factors into a single scalar:
//
//	cost = (travelTime + workTime) / (1 - retryRisk) / priority
//
// Inputs:
//   - travelTime — time to reach the task location (≥ 0; 0 when in place)
//   - workTime   — time to execute the task (≥ 0)
//   - retryRisk  — probability of failure and retry, in [0, 1)
//   - priority   — perceived value of the task (> 0; 1 for ordinary work)
//
// A retryRisk of 1 (certain failure) or a priority of 0 or less (worthless
// work) makes the task impossible: the result is +Inf and such a pairing is
// never selected by Optimize when a finite alternative exists.
//
// The domain expectations above are not validated; out-of-range inputs
// yield mathematically consistent but possibly meaningless results (a
// negative travelTime produces a negative cost). Input sanity is the
// caller's responsibility.
//
// Pure and deterministic. Complexity: O(1).
func ComputeCost(travelTime, workTime, retryRisk, priority float64) float64 {
	if retryRisk >= 1 || priority <= 0 {
		return math.Inf(1)
	}

	cost := travelTime + workTime
	cost /= 1 - retryRisk
	cost /= priority

	return cost
}
