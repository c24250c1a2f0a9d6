package nussinov

// Predict computes the optimal non-crossing pairing of seq under model and
// returns its score together with one concrete optimal structure.
// opts may be nil, which is equivalent to DefaultOptions().
//
// An empty sequence returns a zero Result and no error; see the package
// documentation for the other degenerate inputs.
//
// Complexity: O(n³) time, O(n²) memory.
func Predict(seq string, model Scorer, opts *Options) (Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	table, err := Fill(seq, model, &o)
	if err != nil {
		return Result{}, err
	}

	n := table.Len()
	if n == 0 {
		return Result{}, nil
	}

	res := Result{Score: table.At(0, n-1)}
	if o.ReturnStructure {
		res.Pairs = traceback(table, seq, model, o.MinSeparation)
		res.Structure = render(n, res.Pairs, model)
	}

	return res, nil
}

// Fill builds and fills the DP table for seq under model. Predict is the
// usual entry point; Fill is exported for callers that want to inspect the
// table itself.
//
// The fill proceeds by strictly increasing band distance j-i, so every
// cell referenced on the right-hand side of the recurrence is already
// final. Cells with j-i <= MinSeparation form a forced unpaired region
// and stay 0.
func Fill(seq string, model Scorer, opts *Options) (*Table, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if model == nil {
		return nil, ErrNilScorer
	}
	if o.MinSeparation < 0 {
		return nil, ErrBadSeparation
	}

	n := model.Units(seq)
	table := newTable(n)

	var i, j, k, d, best, v int
	for d = 1; d < n; d++ {
		for i = 0; i+d < n; i++ {
			j = i + d
			if j-i <= o.MinSeparation {
				continue // forced unpaired region, cell stays 0
			}

			// i unpaired / j unpaired.
			best = table.At(i+1, j)
			if v = table.At(i, j-1); v > best {
				best = v
			}

			// Pair (i, j) when legal.
			if score, ok := model.Score(seq, i, j); ok {
				if v = score + table.At(i+1, j-1); v > best {
					best = v
				}
			}

			// Bifurcation: split [i..j] at some interior k.
			for k = i + 1; k < j; k++ {
				if v = table.At(i, k) + table.At(k+1, j); v > best {
					best = v
				}
			}

			table.set(i, j, best)
		}
	}

	return table, nil
}

// render produces the bracket annotation for the recorded pairs: an
// all-dot buffer that the model marks pair by pair, in commit order.
func render(n int, pairs [][2]int, model Scorer) string {
	out := make([]byte, n)
	for i := range out {
		out[i] = '.'
	}
	for _, p := range pairs {
		model.Annotate(out, p[0], p[1])
	}

	return string(out)
}
