package nussinov

// interval is a pending [i..j] range on the traceback work-list.
type interval struct {
	i, j int
}

// traceback recovers one concrete optimal pairing from the filled table.
// It walks intervals with an explicit work-list instead of call-stack
// recursion, so arbitrarily long sequences cannot exhaust the stack, while
// committing pairs in exactly the order the recursive formulation would.
//
// Two tie-break rules determine which of possibly several optimal
// structures is reported, applied in this order per interval:
//
//  1. if table[i][j] == table[i][j-1], j is unpaired: shrink to [i, j-1];
//  2. otherwise scan k upward from i; the first legal pair (k, j) whose
//     decomposition table[i][k-1] + table[k+1][j-1] + score(k, j) explains
//     the cell value is committed, and the interval splits into [i, k-1]
//     and [k+1, j-1].
//
// With the four-branch fill recurrence one of the two rules always fires:
// a cell whose value came from a bifurcation is still explained by rule 2
// at the k that pairs with j inside the winning split. Splitting into
// disjoint sub-intervals makes the recovered pair set non-crossing by
// construction.
//
// Complexity: O(n²) over the whole walk (each committed pair or shrink
// pays one O(n) scan).
func traceback(table *Table, seq string, model Scorer, minSep int) [][2]int {
	var pairs [][2]int

	stack := []interval{{0, table.Len() - 1}}
	for len(stack) > 0 {
		iv := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		i, j := iv.i, iv.j
		for j > i {
			// Rule 1: j unpaired.
			if table.At(i, j) == table.At(i, j-1) {
				j--

				continue
			}

			// Rule 2: smallest k pairing with j.
			paired := false
			for k := i; k < j-minSep; k++ {
				score, ok := model.Score(seq, k, j)
				if !ok {
					continue
				}
				if table.At(i, j) == table.At(i, k-1)+table.At(k+1, j-1)+score {
					pairs = append(pairs, [2]int{k, j})
					// Defer [k+1, j-1]; keep walking [i, k-1] so pairs
					// are recorded in recursive commit order.
					stack = append(stack, interval{k + 1, j - 1})
					j = k - 1
					paired = true

					break
				}
			}
			if !paired {
				// No decomposition explains the cell; leave the rest of
				// the interval unpaired.
				break
			}
		}
	}

	return pairs
}
