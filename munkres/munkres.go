package munkres

import (
	"math"

	"github.com/colonykit/colony/matrix"
)

// Solve computes a maximum-weight matching of the bipartite graph whose
// edge values are given by the dense NX×NY table values (rows = X side,
// cols = Y side). Every (x, y) pair is a usable edge; callers encode
// "forbidden" pairs with values strictly below every real edge.
//
// Returns (xy, yx, err) where xy[x] is the column matched with row x and
// yx[y] the row matched with column y, or -1 when the column is unmatched.
// On success every row is matched (NX <= NY guarantees a full matching on
// the row side).
//
// Algorithm outline (standard Hungarian method):
//  1. Start from the feasible labeling lx[x] = max value in row x, ly = 0.
//  2. For each unmatched root row, grow an alternating tree via BFS over
//     the equality subgraph (lx[x] + ly[y] == value(x,y), within Epsilon),
//     tracking per-column slack = lx[x] + ly[y] - value(x,y) over tree rows.
//  3. If no augmenting path exists, relax: delta = min slack over columns
//     outside the tree; subtract delta from tree-row labels, add it to
//     tree-column labels, decrement remaining slacks. New equality edges
//     appear; resume the search.
//  4. On reaching an exposed column, flip matched/unmatched edges along
//     the augmenting path and restart with the next root.
//
// Errors: ErrNilMatrix, ErrShape, ErrBadEpsilon. The solve itself cannot
// fail once preconditions hold.
//
// Complexity: O(NX²·NY) time, O(NX+NY) extra space.
func Solve(values *matrix.Dense, opts Options) (xy, yx []int, err error) {
	// Stage 1: preconditions.
	if values == nil {
		return nil, nil, ErrNilMatrix
	}
	if opts.Epsilon < 0 {
		return nil, nil, ErrBadEpsilon
	}
	var (
		nx  = values.Rows()
		ny  = values.Cols()
		eps = opts.Epsilon
	)
	if nx > ny {
		return nil, nil, ErrShape
	}

	// Stage 2: working storage, sized by the two sides.
	var (
		lx     = make([]float64, nx) // X labels
		ly     = make([]float64, ny) // Y labels (start at zero)
		slack  = make([]float64, ny) // min label violation per column
		slackx = make([]int, ny)     // tree row realizing slack[y]
		prev   = make([]int, nx)     // alternating-tree parent links
		inS    = make([]bool, nx)    // X vertices in the tree
		inT    = make([]bool, ny)    // Y vertices in the tree
		queue  = make([]int, nx)     // BFS queue over X vertices
	)
	xy = make([]int, nx)
	yx = make([]int, ny)
	for x := range xy {
		xy[x] = -1
	}
	for y := range yx {
		yx[y] = -1
	}

	// Feasible start: lx[x] = row maximum, ly = 0.
	for x := 0; x < nx; x++ {
		lx[x] = values.UncheckedAt(x, 0)
		for y := 1; y < ny; y++ {
			if v := values.UncheckedAt(x, y); v > lx[x] {
				lx[x] = v
			}
		}
	}

	// eq tests equality-subgraph membership within the tolerance.
	eq := func(a, b float64) bool { return math.Abs(a-b) <= eps }

	// addToTree admits row x with parent prevx and refreshes slacks.
	addToTree := func(x, prevx int) {
		inS[x] = true
		prev[x] = prevx
		for y := 0; y < ny; y++ {
			if s := lx[x] + ly[y] - values.UncheckedAt(x, y); s < slack[y] {
				slack[y] = s
				slackx[y] = x
			}
		}
	}

	// updateLabels performs the delta relaxation when the tree is stuck.
	updateLabels := func() {
		delta := math.Inf(1)
		for y := 0; y < ny; y++ {
			if !inT[y] && slack[y] < delta {
				delta = slack[y]
			}
		}
		for x := 0; x < nx; x++ {
			if inS[x] {
				lx[x] -= delta
			}
		}
		for y := 0; y < ny; y++ {
			if inT[y] {
				ly[y] += delta
			} else {
				slack[y] -= delta
			}
		}
	}

	// Stage 3: one augmentation per iteration until the row side is covered.
	for matched := 0; matched < nx; matched++ {
		for x := range inS {
			inS[x] = false
			prev[x] = -1
		}
		for y := range inT {
			inT[y] = false
		}

		// Root: the unmatched row with the highest label.
		root := -1
		for x := 0; x < nx; x++ {
			if xy[x] == -1 && (root == -1 || lx[x] > lx[root]) {
				root = x
			}
		}

		wr, rd := 0, 0
		queue[wr] = root
		wr++
		prev[root] = -2 // tree root marker
		inS[root] = true
		for y := 0; y < ny; y++ {
			slack[y] = lx[root] + ly[y] - values.UncheckedAt(root, y)
			slackx[y] = root
		}

		// (ax, ay) are the endpoints of the augmenting path once found.
		ax, ay := -1, -1
		for ax == -1 {
			// BFS across the current equality subgraph.
			for rd < wr && ax == -1 {
				x := queue[rd]
				rd++
				for y := 0; y < ny; y++ {
					if inT[y] || !eq(values.UncheckedAt(x, y), lx[x]+ly[y]) {
						continue
					}
					if yx[y] == -1 {
						// Exposed column: augmenting path exists.
						ax, ay = x, y

						break
					}
					inT[y] = true
					queue[wr] = yx[y]
					wr++
					addToTree(yx[y], x)
				}
			}
			if ax != -1 {
				break
			}

			// Stuck: relax labels, then admit the columns whose slack
			// dropped to zero (new equality edges).
			updateLabels()
			wr, rd = 0, 0
			for y := 0; y < ny; y++ {
				if inT[y] || !eq(slack[y], 0) {
					continue
				}
				if yx[y] == -1 {
					ax, ay = slackx[y], y

					break
				}
				inT[y] = true
				if !inS[yx[y]] {
					queue[wr] = yx[y]
					wr++
					addToTree(yx[y], slackx[y])
				}
			}
		}

		// Flip matched/unmatched edges along the augmenting path.
		for cx, cy := ax, ay; cx != -2; {
			tx := xy[cx]
			yx[cy] = cx
			xy[cx] = cy
			cx, cy = prev[cx], tx
		}
	}

	return xy, yx, nil
}
