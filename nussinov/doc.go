// Package nussinov implements the Nussinov dynamic program for non-crossing
// RNA secondary-structure prediction: DP table fill, deterministic
// traceback and bracket-notation rendering.
//
// # Algorithm Outline
//
//  1. Let n be the number of pairable positions (model.Units(seq)).
//     Allocate an n×n table; table[i][j] holds the maximum pairing score
//     attainable inside the subsequence [i..j].
//  2. Base cases: table[i][i] = 0 and table[i][i-1] = 0 (empty interval).
//     Reads below the diagonal or at j < 0 resolve to 0 through the
//     boundary-checked accessor Table.At.
//  3. Fill by strictly increasing band distance d = j-i from 1 to n-1;
//     every referenced cell then lies on a smaller band. For j-i greater
//     than the minimum separation:
//
//     table[i][j] = max(
//     score(i,j) + table[i+1][j-1]    if (i,j) is legal,
//     table[i+1][j],                  // i unpaired
//     table[i][j-1],                  // j unpaired
//     max over i<k<j of table[i][k] + table[k+1][j],
//     )
//
//     otherwise table[i][j] = 0 (forced unpaired region).
//  4. The optimal score is table[0][n-1].
//  5. Traceback walks intervals with an explicit work-list (no call-stack
//     recursion) and commits to exactly one optimal structure using two
//     fixed tie-break rules, in order:
//     – "j unpaired" (table[i][j] == table[i][j-1]) is checked first;
//     – otherwise the smallest k with a legal pair (k, j) explaining the
//     cell value wins. The interval then splits into [i, k-1] and
//     [k+1, j-1], which makes the recovered pair set structurally
//     non-crossing.
//  6. Rendering initializes an all-dot buffer and lets the model mark each
//     recorded pair (base models: "{" at k, "}" at j; stacked models
//     additionally span positions k+1 and j+1).
//
// Complexity:
//
//	– Time:  O(n³)  (O(n²) cells, O(n) bifurcation scan per cell)
//	– Space: O(n²)  (the table; traceback adds O(n))
//
// # Degenerate inputs
//
// An empty sequence yields a zero Result without error. Symbols outside
// the model's alphabet never satisfy the legality predicate and stay
// unpaired. A minimum separation at or beyond the sequence length leaves
// every cell 0 and no recoverable pairs. None of these conditions is an
// error.
//
// Errors (sentinel):
//
//	– ErrNilScorer     if the model is nil.
//	– ErrBadSeparation if MinSeparation < 0.
//
// Example usage:
//
//	res, err := nussinov.Predict("GCACG", pairing.Flat(), nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Score, res.Structure) // 2 {}.{}
package nussinov
