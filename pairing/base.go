package pairing

// Base is a base-pair scoring model: an ordered symbol pair (x, y) is legal
// exactly when it appears in the score table, and contributes its mapped
// non-negative score. Unknown pairs are illegal and contribute nothing.
//
// The zero value is unusable; construct via Flat, Weighted or NewBase.
type Base struct {
	scores map[[2]byte]int
}

// Flat returns the flat Watson–Crick model: A-U, U-A, G-C and C-G each
// score 1, so the optimal score is the maximum count of base pairs.
func Flat() *Base {
	return &Base{scores: map[[2]byte]int{
		{'A', 'U'}: 1,
		{'U', 'A'}: 1,
		{'G', 'C'}: 1,
		{'C', 'G'}: 1,
	}}
}

// Weighted returns the gamma-weighted model: A-U and U-A score 2,
// G-C and C-G score 3, reflecting the stronger triple hydrogen bond of
// the G-C pairing.
func Weighted() *Base {
	return &Base{scores: map[[2]byte]int{
		{'A', 'U'}: 2,
		{'U', 'A'}: 2,
		{'G', 'C'}: 3,
		{'C', 'G'}: 3,
	}}
}

// NewBase builds a base-pair model from a custom score table. Keys are
// two-symbol strings ("AU", "GC", ...); listed pairs are legal with the
// mapped score, everything else is illegal.
//
// Errors: ErrBadSymbolPair for a key that is not exactly two bytes,
// ErrNegativeScore for a negative score.
func NewBase(scores map[string]int) (*Base, error) {
	m := make(map[[2]byte]int, len(scores))
	for pair, score := range scores {
		if len(pair) != 2 {
			return nil, ErrBadSymbolPair
		}
		if score < 0 {
			return nil, ErrNegativeScore
		}
		m[[2]byte{pair[0], pair[1]}] = score
	}

	return &Base{scores: m}, nil
}

// Units reports the number of pairable DP positions for seq: one per
// sequence symbol.
func (m *Base) Units(seq string) int { return len(seq) }

// Score reports the contribution of pairing positions i and j of seq and
// whether the symbol pair (seq[i], seq[j]) is legal under the model.
func (m *Base) Score(seq string, i, j int) (int, bool) {
	score, ok := m.scores[[2]byte{seq[i], seq[j]}]

	return score, ok
}

// Annotate marks the recorded pair (k, j) into the structure buffer:
// position k opens, position j closes.
func (m *Base) Annotate(out []byte, k, j int) {
	out[k] = Open
	out[j] = Close
}
