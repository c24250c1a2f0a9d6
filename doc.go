// Package rna predicts the maximal-pairing secondary structure of
// single-stranded RNA sequences with a Nussinov-style dynamic program.
//
// 🚀 What does it do?
//
//	Given a sequence over {A, C, G, U} and a pairing-score model, the
//	library computes the optimal non-crossing (pseudoknot-free) set of
//	base pairs and renders it as a three-symbol bracket annotation:
//		• "{" — a position that opens a pair
//		• "}" — a position that closes a pair
//		• "." — an unpaired position
//
// ✨ Key features:
//   - Nussinov DP table fill in O(n³) time, O(n²) memory
//   - deterministic traceback with fixed tie-breaking rules
//   - flat, gamma-weighted and stacked-pair (dinucleotide) scoring models
//   - optional minimum-separation constraint between paired positions
//   - score-only mode when the annotation is not needed
//
// Everything is organized under two subpackages:
//
//	pairing/  — legality and score models (flat, weighted, stacked)
//	nussinov/ — DP table engine, traceback and structure rendering
//
// Quick ASCII example:
//
//	    sequence:  G C A C G
//	    structure: { } . { }
//
//	pairs G-C and C-G, the middle A stays unpaired.
//
// A runnable CLI lives in cmd/rnafold; see examples/ for library usage.
//
//	go get github.com/aashishyadavally/rna-structure-prediction
package rna
