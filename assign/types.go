// Package assign defines the engine's core types, options and sentinel errors.
package assign

import (
	"errors"

	"github.com/colonykit/colony/munkres"
)

// CharacterID identifies an agent. IDs must be dense non-negative integers
// starting from 0; see the package documentation for the sizing contract.
type CharacterID int

// TaskID identifies a unit of work, under the same density contract.
type TaskID int

// Assignment is one candidate (character, task) pairing with its scalar
// cost. Cost is non-negative in normal use; +Inf marks an impossible
// pairing that is never selected.
type Assignment struct {
	Character CharacterID
	Task      TaskID
	Cost      float64
}

// ErrNegativeID indicates a candidate with a negative character or task id.
// IDs index dense working arrays, so negatives are rejected once at entry.
var ErrNegativeID = errors.New("assign: character and task ids must be non-negative")

// Options configures Optimize.
//
// Fields:
//   - Epsilon — floating-point tolerance forwarded to the matching solver's
//     equality test. See munkres.DefaultEpsilon for guidance on tuning it
//     to unusual cost scales.
type Options struct {
	Epsilon float64
}

// DefaultOptions returns the recommended engine configuration.
func DefaultOptions() Options {
	return Options{Epsilon: munkres.DefaultEpsilon}
}
