// Package assign matches simulation characters to tasks with a globally
// optimal, recompute-every-frame assignment pipeline.
//
// 🚀 What is assign?
//
//	The public engine surface of colony.  Tasks are anything a character
//	might do — hauling, crafting, eating, taking a break.  Each frame the
//	caller pairs live characters with live tasks, scores each pairing with
//	ComputeCost, optionally prunes with LimitAssignments, and hands the
//	candidates to Optimize, which keeps exactly the cost-minimal matching.
//	Treating "work" and "leisure" tasks uniformly produces emergent
//	behavior: characters take lunch breaks when food is close, finish
//	nearly-done jobs before resting, and hand work over to idle neighbors.
//
// ✨ Key features:
//   - ComputeCost: travel time, work time, retry risk & priority → one scalar
//   - LimitAssignments: cap candidates per character & per task (O(n³)→O(n²))
//   - Optimize: exact Kuhn–Munkres matching, never greedy, never flapping
//     between clearly unequal options
//
// ⚙️ Usage:
//
//	import "github.com/colonykit/colony/assign"
//
//	candidates := []assign.Assignment{
//	  {Character: 0, Task: 0, Cost: assign.ComputeCost(2, 5, 0.1, 1)},
//	  {Character: 0, Task: 1, Cost: assign.ComputeCost(9, 5, 0.0, 1)},
//	  // ...
//	}
//	candidates, err := assign.Optimize(candidates)
//	// candidates now holds one task per character, cost-minimal overall
//
// Identifier contract:
//
//	CharacterID and TaskID are dense non-negative integers.  Working storage
//	is sized from (max id + 1) on each side, so callers must compact ids
//	before invocation; sparse or huge ids inflate the dense value table.
//	Negative ids are rejected with ErrNegativeID.  Unlisted (character,
//	task) pairs are treated internally as available at a fixed low default
//	value, so the matcher can always cover the smaller side; such synthetic
//	pairings never appear in the output.
//
// Ordering:
//
//	LimitAssignments returns candidates in ascending cost order with a
//	deterministic (character, task) tie-break.  Optimize preserves the input
//	order of the surviving candidates.  When several distinct matchings are
//	exactly equally good, which one wins is an artifact of traversal order.
//
// Stability of assignments:
//
//	If an assignment flaps between two equally good tasks across frames,
//	decay the costs of the currently assigned task slightly each frame so
//	the incumbent wins ties.
//
// Hauling & delivery:
//
//	Run the pipeline twice per frame: first match resources to delivery
//	destinations, then turn that result into delivery tasks and match
//	characters to them.  See examples/hauling.
//
// Long-term planning:
//
//	Run the assignment, mark the task that finishes first as done, move its
//	character there virtually and bump that character's other costs by the
//	finished task's cost, then re-run.  Repeating within a time budget
//	yields multi-step plans where one fast pawn clears a remote cluster of
//	small tasks alone.
//
// Personal tasks:
//
//	A task is executed by one character at a time.  For work that many
//	characters may do simultaneously (eating, idling), create one task
//	instance per character.
//
// Concurrency & cost:
//
//	All operations are pure, synchronous and stateless; concurrent calls on
//	disjoint slices need no synchronization, but a slice must not be shared
//	between simultaneous calls.  Optimize allocates a dense NX×NY value
//	table and runs in O(n³) worst case — that is why LimitAssignments and
//	id compaction exist.
//
// Performance:
//
//   - ComputeCost: O(1); LimitAssignments: O(n log n)
//   - Optimize: O(NX²·NY) time, O(NX·NY) memory, NX/NY = max id + 1 per side
package assign
