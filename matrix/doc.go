// Package matrix provides the dense numeric storage backing the solver
// packages: a row-major float64 matrix with safe, error-returning accessors
// and unchecked fast paths for hot loops.
//
// ✨ Key properties:
//   - row-major flat buffer (offset = i*cols + j) for cache friendliness
//   - At/Set return sentinel errors instead of panicking
//   - Fill for constant initialization (the matching default value)
//   - deterministic layout: fixed loop orders, no map iteration
//
// ⚙️ Usage:
//
//	m, err := matrix.NewDense(3, 4)
//	if err != nil { ... }
//	m.Fill(1.0)
//	if err = m.Set(0, 2, 7.5); err != nil { ... }
//	v, _ := m.At(0, 2)
//
// Performance:
//
//   - NewDense: O(r·c) zero-init
//   - At/Set/Fill element access: O(1) / O(1) / O(r·c)
//
// The package is intentionally minimal: it carries exactly what the
// munkres solver and the assign facade need, nothing more.
package matrix
