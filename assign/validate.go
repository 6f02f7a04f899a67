package assign

// idRange validates every candidate's ids and returns the maximum character
// and task ids seen. The maxima size the dense working arrays downstream.
//
// Errors: ErrNegativeID on the first negative id encountered.
//
// Complexity: O(n), no allocations.
func idRange(as []Assignment) (maxCharacter CharacterID, maxTask TaskID, err error) {
	for i := range as {
		if as[i].Character < 0 || as[i].Task < 0 {
			return 0, 0, ErrNegativeID
		}
		if as[i].Character > maxCharacter {
			maxCharacter = as[i].Character
		}
		if as[i].Task > maxTask {
			maxTask = as[i].Task
		}
	}

	return maxCharacter, maxTask, nil
}
