// Package pairing defines the legality and scoring models consumed by the
// nussinov DP engine.
//
// # Models
//
// Two model families exist, mirroring the two flavors of the prediction
// problem:
//
//   - Base-pair models (Base): a pair of sequence positions may bond when
//     the ordered symbol pair (seq[i], seq[j]) appears in the model's score
//     table. Flat() scores every Watson–Crick pair 1; Weighted() assigns
//     gamma scores (A-U/U-A = 2, G-C/C-G = 3); NewBase builds a custom
//     table, e.g. one loaded from YAML via LoadBase.
//
//   - Stacked-pair models (Stacked): the scoring unit is a dinucleotide,
//     the ordered pair of adjacent symbols (seq[i], seq[i+1]). Exactly six
//     dinucleotides are legal (A-U, U-A, G-C, C-G, G-U, U-G); two positions
//     may bond only when both of their dinucleotides are legal, and the
//     score is a 6×6 matrix lookup over their indices. Uniform() scores
//     every legal stacking 1; NewStacked accepts a custom symmetric
//     stacking matrix.
//
// Symbols outside the model's table never match: such positions are simply
// never paired, no error is raised. This leniency is deliberate and keeps
// the DP engine total over arbitrary input strings.
//
// Models are immutable after construction and safe for concurrent reads.
// Both satisfy the nussinov.Scorer interface:
//
//	res, err := nussinov.Predict("GCACG", pairing.Flat(), nil)
//
// # Errors (sentinel)
//
//	– ErrBadSymbolPair    if a custom table key is not exactly two symbols.
//	– ErrNegativeScore    if a custom score or matrix entry is negative.
//	– ErrAsymmetricMatrix if a custom stacking matrix is not symmetric.
package pairing
