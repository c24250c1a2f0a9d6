package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aashishyadavally/rna-structure-prediction/nussinov"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReadSequence verifies first-line extraction and newline stripping.
func TestReadSequence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sequence.txt")
	require.NoError(t, os.WriteFile(path, []byte("GCACG\nsecond line ignored\n"), 0o644))

	seq, err := readSequence(path)
	require.NoError(t, err)
	assert.Equal(t, "GCACG", seq)

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	seq, err = readSequence(empty)
	require.NoError(t, err, "an empty file is not an error")
	assert.Empty(t, seq)

	_, err = readSequence(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err, "a missing file is an error")
}

// TestFormatResult covers both output contracts: annotated and score-only.
func TestFormatResult(t *testing.T) {
	res := nussinov.Result{Score: 2, Structure: "{}.{}"}

	energyMode = false
	assert.Equal(t, "> GCACG\n{}.{}\n> max count of pairs\n2\n", formatResult("GCACG", res))

	energyMode = true
	defer func() { energyMode = false }()
	assert.Equal(t, "> total score\n2\n", formatResult("GCACG", res))
}
