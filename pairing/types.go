package pairing

import "errors"

// Sentinel errors returned by model constructors and loaders.
var (
	// ErrBadSymbolPair indicates a custom score-table key that is not
	// exactly two symbols (e.g. "A" or "AUG").
	ErrBadSymbolPair = errors.New("pairing: symbol pair must be exactly two bases")

	// ErrNegativeScore indicates a negative score in a custom table or
	// stacking matrix; pairing scores are non-negative by contract.
	ErrNegativeScore = errors.New("pairing: pair score must be non-negative")

	// ErrAsymmetricMatrix indicates a custom stacking matrix with
	// matrix[a][b] != matrix[b][a]; stacking compatibility is symmetric.
	ErrAsymmetricMatrix = errors.New("pairing: stacking matrix must be symmetric")
)

// Open, Close and Unpaired are the three annotation symbols used when a
// model marks its pairs into a structure buffer.
const (
	Open     = '{'
	Close    = '}'
	Unpaired = '.'
)
