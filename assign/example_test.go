package assign_test

import (
	"fmt"

	"github.com/colonykit/colony/assign"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleComputeCost
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A pawn considers hauling a stone block: 4s of walking, 6s of work,
//	a 50% chance the block slips and the job restarts, ordinary priority.
//
// ExampleComputeCost demonstrates factor aggregation into one scalar.
func ExampleComputeCost() {
	cost := assign.ComputeCost(4, 6, 0.5, 1)
	fmt.Printf("cost=%.1f\n", cost)
	// Output:
	// cost=20.0
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleLimitAssignments
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	One character sees two tasks; capping candidates per character at one
//	keeps only the cheaper option and shrinks the matcher's workload.
//
// ExampleLimitAssignments demonstrates candidate pruning.
func ExampleLimitAssignments() {
	candidates := []assign.Assignment{
		{Character: 0, Task: 0, Cost: 1.0},
		{Character: 0, Task: 1, Cost: 2.0},
	}
	candidates, err := assign.LimitAssignments(candidates, 1, 5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, a := range candidates {
		fmt.Printf("character %d → task %d (cost %.1f)\n", a.Character, a.Task, a.Cost)
	}
	// Output:
	// character 0 → task 0 (cost 1.0)
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleOptimize
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two characters, two tasks, crossing costs: each character is cheap on
//	"its own" task and expensive on the other. The optimal matching keeps
//	the two cheap diagonal pairings.
//
// ExampleOptimize demonstrates exact cost-minimal matching.
func ExampleOptimize() {
	candidates := []assign.Assignment{
		{Character: 0, Task: 0, Cost: 1.0},
		{Character: 0, Task: 1, Cost: 5.0},
		{Character: 1, Task: 0, Cost: 5.0},
		{Character: 1, Task: 1, Cost: 1.0},
	}
	candidates, err := assign.Optimize(candidates)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, a := range candidates {
		fmt.Printf("character %d → task %d (cost %.1f)\n", a.Character, a.Task, a.Cost)
	}
	// Output:
	// character 0 → task 0 (cost 1.0)
	// character 1 → task 1 (cost 1.0)
}
