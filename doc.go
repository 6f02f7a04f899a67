// Package colony assigns simulation characters to tasks — optimally,
// every frame, for games in the Dwarf Fortress family and any other
// simulation with dynamic agents and dynamic work.
//
// 🚀 What is colony?
//
//	A small, pure-Go assignment engine built around three operations:
//		• Cost aggregation: travel time, work time, retry risk & priority → one scalar
//		• Candidate pruning: cap candidates per character & per task for scalability
//		• Optimal matching: exact Kuhn–Munkres (Hungarian) O(n³) bipartite matching
//
// ✨ Why choose colony?
//
//   - Exact, not greedy – globally optimal assignments, no flapping heuristics
//   - Frame-rate friendly – stateless, allocation-bounded, recompute every tick
//   - Pure Go – no cgo, no hidden deps
//   - Emergent behavior – treat "work" and "leisure" tasks uniformly and pawns
//     start taking sensible lunch breaks on their own
//
// Under the hood, everything is organized under three subpackages:
//
//	assign/  — public engine: Assignment, ComputeCost, LimitAssignments, Optimize
//	munkres/ — maximum-weight bipartite matching over a dense value table
//	matrix/  — row-major dense float64 storage shared by the solver
//
// Quick ASCII example:
//
//	characters          tasks
//	    C0 ──1.0──▶ T0
//	      ╲5.0   5.0╱
//	    C1 ──1.0──▶ T1
//
//	Optimize keeps {C0→T0, C1→T1} and discards the crossing candidates.
//
// Dive into assign/doc.go for usage guidance (per-frame recomputation,
// hauling pipelines, long-term planning) and examples/ for runnable
// scenarios.
//
//	go get github.com/colonykit/colony/assign
package colony
