package assign

import "sort"

// LimitAssignments reduces the number of candidate pairings per character
// and per task, keeping the cheapest ones. It reorders and truncates the
// caller's slice in place and returns the surviving prefix.
//
// The candidates are sorted by ascending cost (ties broken by character id,
// then task id, so the result is deterministic) and then greedily retained:
// a candidate survives only while its character has fewer than
// limitPerCharacter retained candidates and its task fewer than
// limitPerTask. The returned slice is in that sorted order.
//
// A non-positive limit retains nothing on that side, so the result is empty.
// Pruning bounds the branching factor ahead of Optimize but does not shrink
// the id range: compact ids afterwards if the survivors are sparse.
//
// Errors: ErrNegativeID.
//
// Complexity: O(n log n) time, O(maxID) counting space.
func LimitAssignments(as []Assignment, limitPerCharacter, limitPerTask int) ([]Assignment, error) {
	if len(as) == 0 {
		return as, nil
	}

	maxCharacter, maxTask, err := idRange(as)
	if err != nil {
		return nil, err
	}

	sort.Slice(as, func(i, j int) bool {
		if as[i].Cost != as[j].Cost {
			return as[i].Cost < as[j].Cost
		}
		if as[i].Character != as[j].Character {
			return as[i].Character < as[j].Character
		}

		return as[i].Task < as[j].Task
	})

	var (
		perCharacter = make([]int, maxCharacter+1) // retained count per character
		perTask      = make([]int, maxTask+1)      // retained count per task
		kept         = as[:0]                      // stable filter into the prefix
	)
	for _, a := range as {
		if perCharacter[a.Character] >= limitPerCharacter || perTask[a.Task] >= limitPerTask {
			continue
		}
		perCharacter[a.Character]++
		perTask[a.Task]++
		kept = append(kept, a)
	}

	return kept, nil
}
