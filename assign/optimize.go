package assign

import (
	"math"

	"github.com/colonykit/colony/matrix"
	"github.com/colonykit/colony/munkres"
)

const (
	// defaultValue is the synthetic value of every unlisted (character, task)
	// pair. Listed candidates transform to maxCost - cost + 1 >= 1, so with
	// the floor strictly below 1 any real pairing outweighs a synthetic one
	// (a floor of exactly 1 would tie with candidates at maxCost and let
	// traversal order drop them, breaking re-run stability), while the
	// synthetic fallback still lets the matcher cover the smaller side when
	// real candidates don't.
	defaultValue = 0.5

	// forbiddenValue marks candidates listed with +Inf cost. It sits strictly
	// below defaultValue so an impossible pairing loses even to the synthetic
	// fallback and can never displace a possible one.
	forbiddenValue = 0.0
)

// Optimize filters the candidate pairings down to the cost-minimal
// one-to-one matching, using DefaultOptions. See OptimizeWith.
func Optimize(as []Assignment) ([]Assignment, error) {
	return OptimizeWith(as, DefaultOptions())
}

// OptimizeWith filters the candidate pairings down to the cost-minimal
// one-to-one matching. It truncates the caller's slice in place (preserving
// input order of the survivors) and returns the surviving prefix.
//
// Pipeline, per the Kuhn–Munkres minimum-cost adaptation:
//
//  1. Validate ids (ErrNegativeID) and find maxCharacter/maxTask/maxCost,
//     ignoring +Inf costs when computing maxCost.
//  2. Orient the value table so rows are the smaller id space: the solver
//     certifies optimality only for rows <= cols.
//  3. Build an NX×NY matrix.Dense filled with defaultValue; each listed
//     candidate gets value maxCost - cost + 1 (forbiddenValue when its cost
//     is +Inf).
//  4. munkres.Solve for the maximum-value matching.
//  5. Keep exactly the input candidates whose pair appears in the matching;
//     synthetic pairs were never in the input, so they cannot surface, and
//     +Inf candidates are dropped unconditionally.
//
// An empty input is a no-op returning the empty slice and nil error.
// Re-running on its own output returns it unchanged (with no competing
// candidates for the involved ids, every survivor keeps its partner).
//
// Errors: ErrNegativeID; munkres.ErrBadEpsilon when opts.Epsilon < 0.
//
// Complexity: O(NX²·NY) time and O(NX·NY) memory with NX/NY = max id + 1
// per side — the reason LimitAssignments and id compaction exist.
func OptimizeWith(as []Assignment, opts Options) ([]Assignment, error) {
	if len(as) == 0 {
		return as, nil
	}

	// Stage 1: validation and extents.
	maxCharacter, maxTask, err := idRange(as)
	if err != nil {
		return nil, err
	}
	var maxCost float64
	for i := range as {
		if c := as[i].Cost; !math.IsInf(c, 1) && c > maxCost {
			maxCost = c
		}
	}

	// Stage 2: orientation. Rows index characters when the task space is
	// the larger side, tasks otherwise.
	var (
		characterRows = int(maxTask) > int(maxCharacter)
		nx, ny        int
	)
	if characterRows {
		nx, ny = int(maxCharacter)+1, int(maxTask)+1
	} else {
		nx, ny = int(maxTask)+1, int(maxCharacter)+1
	}

	// Stage 3: dense value table, synthetic fallback everywhere first.
	values, err := matrix.NewDense(nx, ny)
	if err != nil {
		return nil, err
	}
	values.Fill(defaultValue)

	for i := range as {
		v := forbiddenValue
		if !math.IsInf(as[i].Cost, 1) {
			v = maxCost - as[i].Cost + 1
		}
		row, col := int(as[i].Task), int(as[i].Character)
		if characterRows {
			row, col = col, row
		}
		if err = values.Set(row, col, v); err != nil {
			return nil, err
		}
	}

	// Stage 4: exact matching.
	xy, _, err := munkres.Solve(values, munkres.Options{Epsilon: opts.Epsilon})
	if err != nil {
		return nil, err
	}

	// Stage 5: stable in-place filter of the caller's candidates.
	kept := as[:0]
	for _, a := range as {
		if math.IsInf(a.Cost, 1) {
			continue
		}
		if characterRows {
			if xy[a.Character] == int(a.Task) {
				kept = append(kept, a)
			}
		} else if xy[a.Task] == int(a.Character) {
			kept = append(kept, a)
		}
	}

	return kept, nil
}
