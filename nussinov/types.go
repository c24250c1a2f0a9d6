package nussinov

import "errors"

// Sentinel errors returned by Fill and Predict.
var (
	// ErrNilScorer indicates that a nil Scorer was passed in.
	ErrNilScorer = errors.New("nussinov: scorer must be non-nil")

	// ErrBadSeparation indicates Options.MinSeparation < 0.
	ErrBadSeparation = errors.New("nussinov: minimum separation must be non-negative")
)

// Scorer is the pairing model consumed by the DP engine. Both model
// families in the pairing package implement it.
type Scorer interface {
	// Units reports the number of pairable DP positions derived from seq.
	Units(seq string) int

	// Score reports the contribution of pairing positions i and j of seq
	// and whether that pair is legal. Illegal pairs contribute nothing.
	Score(seq string, i, j int) (score int, ok bool)

	// Annotate marks the recorded pair (k, j) into the structure buffer,
	// which is pre-filled with '.' and has Units(seq) bytes.
	Annotate(out []byte, k, j int)
}

// Options configures a prediction run.
type Options struct {
	// MinSeparation is the minimum index distance between paired
	// positions: i and j may pair only when j-i > MinSeparation.
	// 0 (the default) only forbids what j > i already excludes.
	MinSeparation int

	// ReturnStructure enables traceback and bracket rendering. When
	// false, only the optimal score is computed (Result.Pairs and
	// Result.Structure stay empty).
	ReturnStructure bool
}

// DefaultOptions returns the canonical defaults: no separation constraint,
// structure rendering enabled.
func DefaultOptions() Options {
	return Options{MinSeparation: 0, ReturnStructure: true}
}

// Result holds the outcome of a prediction.
type Result struct {
	// Score is the optimal pairing score table[0][n-1].
	Score int

	// Pairs is the recovered optimal pairing: index pairs {k, j} with
	// k < j, pairwise non-crossing, in traceback commit order.
	Pairs [][2]int

	// Structure is the bracket annotation over the sequence positions,
	// one of '{', '}' or '.' per position. Empty when ReturnStructure
	// was false or the sequence is empty.
	Structure string
}
