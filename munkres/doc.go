// Package munkres implements the Kuhn–Munkres (Hungarian) algorithm for
// maximum-weight bipartite matching over a dense value matrix.
//
// 🚀 What is Kuhn–Munkres?
//
//	The classic primal-dual method for the assignment problem: given an
//	NX×NY table of values, pick one cell per row (no column reused) so the
//	total value is maximal.  It powers:
//	  • character-to-task assignment in colony simulations
//	  • cluster-to-track association in sensor fusion
//	  • any one-shot resource/worker pairing that must be exact, not greedy
//
// ✨ Key features:
//   - exact optimum, certified by a feasible vertex labeling (lx, ly)
//   - BFS alternating trees over the equality subgraph
//   - per-column slack bookkeeping for O(NX²·NY) overall work
//   - tunable floating-point tolerance for the equality test (Options.Epsilon)
//
// ⚙️ Usage:
//
//	import "github.com/colonykit/colony/munkres"
//
//	values, _ := matrix.NewDense(2, 3) // rows must not exceed cols
//	// ... fill values ...
//	xy, yx, err := munkres.Solve(values, munkres.DefaultOptions())
//	// xy[x] = column matched with row x; yx[y] = row matched with column y (-1 if none)
//
// Contract:
//
//	The solver certifies optimality only when Rows() <= Cols(); wider-than-tall
//	inputs are rejected with ErrShape.  Transpose (or reorient ids) first.
//
// Performance:
//
//   - Time:   O(NX²·NY) — one root search per matched row, each with
//     O(NX·NY) slack refresh work
//   - Memory: O(NX + NY) working arrays beyond the caller's value matrix
//
// See examples in the assign package, which drives this solver with a
// min-cost → max-value transform.
package munkres
