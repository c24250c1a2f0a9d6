package pairing

// StackSize is the number of legal dinucleotides; the stacking matrix is
// StackSize×StackSize.
const StackSize = 6

// dinucleotideIndex assigns each legal dinucleotide its row/column in the
// stacking matrix. The six legal dinucleotides are the Watson–Crick pairs
// plus the G-U wobble pairs.
var dinucleotideIndex = map[[2]byte]int{
	{'A', 'U'}: 0,
	{'U', 'A'}: 1,
	{'G', 'C'}: 2,
	{'C', 'G'}: 3,
	{'G', 'U'}: 4,
	{'U', 'G'}: 5,
}

// Stacked is a stacked-pair scoring model. The scoring unit at position i
// is the dinucleotide (seq[i], seq[i+1]); the final position has no
// successor and is therefore never legal. Two positions may bond only when
// both of their dinucleotides are legal, and the contribution is a lookup
// in the 6×6 stacking matrix indexed by their dinucleotide indices.
//
// The zero value is unusable; construct via Uniform or NewStacked.
type Stacked struct {
	matrix [StackSize][StackSize]int
}

// Uniform returns the stacked model in which every legal stacking scores 1,
// so the optimal score is the maximum count of stacked pairs. A real
// stacking-energy matrix can replace it via NewStacked without any change
// to the DP engine.
func Uniform() *Stacked {
	var m Stacked
	for a := 0; a < StackSize; a++ {
		for b := 0; b < StackSize; b++ {
			m.matrix[a][b] = 1
		}
	}

	return &m
}

// NewStacked builds a stacked model from a custom stacking matrix.
// Rows and columns follow the dinucleotide order A-U, U-A, G-C, C-G,
// G-U, U-G.
//
// Errors: ErrNegativeScore for a negative entry, ErrAsymmetricMatrix when
// matrix[a][b] != matrix[b][a].
func NewStacked(matrix [StackSize][StackSize]int) (*Stacked, error) {
	for a := 0; a < StackSize; a++ {
		for b := 0; b < StackSize; b++ {
			if matrix[a][b] < 0 {
				return nil, ErrNegativeScore
			}
			if matrix[a][b] != matrix[b][a] {
				return nil, ErrAsymmetricMatrix
			}
		}
	}

	return &Stacked{matrix: matrix}, nil
}

// Units reports the number of pairable DP positions for seq: one
// dinucleotide position per sequence symbol (the last has no successor
// and never pairs).
func (m *Stacked) Units(seq string) int { return len(seq) }

// dinucleotide resolves position i of seq to its stacking-matrix index;
// ok is false for the final position and for any symbol combination
// outside the six legal dinucleotides.
func (m *Stacked) dinucleotide(seq string, i int) (int, bool) {
	if i+1 >= len(seq) {
		return 0, false
	}
	idx, ok := dinucleotideIndex[[2]byte{seq[i], seq[i+1]}]

	return idx, ok
}

// Score reports the stacking contribution of pairing positions i and j of
// seq. Legality requires both dinucleotides to be individually legal.
func (m *Stacked) Score(seq string, i, j int) (int, bool) {
	a, ok := m.dinucleotide(seq, i)
	if !ok {
		return 0, false
	}
	b, ok := m.dinucleotide(seq, j)
	if !ok {
		return 0, false
	}

	return m.matrix[a][b], true
}

// Annotate marks the recorded pair (k, j) of dinucleotide positions into
// the structure buffer. A stacked pair spans two adjacent nucleotides on
// each side: k opens and k+1 is promoted to open only if still unpaired,
// while j closes only if still unpaired and j+1 is overwritten to close
// unconditionally. The open/close asymmetry is part of the rendering
// contract.
func (m *Stacked) Annotate(out []byte, k, j int) {
	out[k] = Open
	if k+1 < len(out) && out[k+1] == Unpaired {
		out[k+1] = Open
	}
	if out[j] == Unpaired {
		out[j] = Close
	}
	if j+1 < len(out) {
		out[j+1] = Close
	}
}
