package editdistance

import (
	"errors"
	"fmt"
)

// Minimum edit distance with all-ties operation table
//
// Description:
//
//	Builds the classic (n+1)x(m+1) edit-distance table with unit costs for
//	insert, delete, substitute and adjacent transpose. Next to every cost it
//	stores the set of operations that reproduce that cost, so later
//	backtracking can branch into every optimal alignment.
//
// Algorithm Outline:
//  1. Let n = len(s), m = len(t) in runes. Reject n or m > MaxLength.
//  2. Initialize:
//     C[i][0] = i, O[i][0] = Delete   for i=1..n
//     C[0][j] = j, O[0][j] = Insert   for j=1..m
//  3. For i = 1..n, j = 1..m:
//     del  = C[i-1][j]   + 1
//     ins  = C[i][j-1]   + 1
//     diag = C[i-1][j-1] + (s[i-1] != t[j-1])
//     swap = C[i-2][j-2] + 1   if i,j ≥ 2, s[i-1]==t[j-2], s[i-2]==t[j-1]
//     C[i][j] = min of the applicable candidates
//     O[i][j] = every operation whose candidate equals C[i][j]
//  4. distance = C[n][m].
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m)
//
// Errors:
//   - ErrLengthExceeded: a sequence is longer than MaxLength.
//   - ErrBadInput      : MaxLength or Limit out of range, or a malformed
//     Ops table handed to the enumerator.
var (
	// ErrLengthExceeded indicates an input longer than the configured capacity.
	ErrLengthExceeded = errors.New("editdistance: sequence exceeds maximum length")

	// ErrBadInput indicates invalid options or a malformed operation table.
	ErrBadInput = errors.New("editdistance: invalid input")

	// ErrNilTables indicates a nil *Tables passed to the enumerator.
	ErrNilTables = errors.New("editdistance: tables are nil")
)

// Tables is the outcome of ComputeTables. Cost and Ops share the same
// (len(Source)+1)x(len(Target)+1) shape and are read-only once returned.
type Tables struct {
	Source []rune
	Target []rune
	Cost   [][]int
	Ops    [][]Op
}

// Distance returns the minimum edit distance, Cost[n][m].
func (t *Tables) Distance() int {
	return t.Cost[len(t.Source)][len(t.Target)]
}

// ComputeTables builds the cost and operation tables for source → target.
//
// Example:
//
//	t, err := ComputeTables("kitten", "sitting")
//	// t.Distance() == 3
func ComputeTables(source, target string, opts ...Option) (*Tables, error) {
	o := applyOptions(opts)
	if o.MaxLength <= 0 {
		return nil, fmt.Errorf("ComputeTables: MaxLength=%d: %w", o.MaxLength, ErrBadInput)
	}

	s, t := []rune(source), []rune(target)
	n, m := len(s), len(t)
	if n > o.MaxLength {
		return nil, fmt.Errorf("ComputeTables: source length %d > %d: %w", n, o.MaxLength, ErrLengthExceeded)
	}
	if m > o.MaxLength {
		return nil, fmt.Errorf("ComputeTables: target length %d > %d: %w", m, o.MaxLength, ErrLengthExceeded)
	}

	cost := make([][]int, n+1)
	ops := make([][]Op, n+1)
	for i := range cost {
		cost[i] = make([]int, m+1)
		ops[i] = make([]Op, m+1)
	}

	// Boundaries: pure delete down the first column, pure insert along the first row.
	for i := 1; i <= n; i++ {
		cost[i][0] = i
		ops[i][0] = Delete
	}
	for j := 1; j <= m; j++ {
		cost[0][j] = j
		ops[0][j] = Insert
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			equal := s[i-1] == t[j-1]
			diag := cost[i-1][j-1]
			if !equal {
				diag++
			}
			best := min(cost[i-1][j]+1, cost[i][j-1]+1, diag)

			swappable := o.Transposition && i >= 2 && j >= 2 &&
				s[i-1] == t[j-2] && s[i-2] == t[j-1]
			if swappable {
				best = min(best, cost[i-2][j-2]+1)
			}
			cost[i][j] = best

			var flags Op
			if equal && best == cost[i-1][j-1] {
				flags |= Match
			}
			if best == cost[i-1][j-1]+1 {
				flags |= Substitute
			}
			if best == cost[i][j-1]+1 {
				flags |= Insert
			}
			if best == cost[i-1][j]+1 {
				flags |= Delete
			}
			if swappable && best == cost[i-2][j-2]+1 {
				flags |= Transpose
			}
			ops[i][j] = flags
		}
	}

	return &Tables{
		Source: s,
		Target: t,
		Cost:   cost,
		Ops:    ops,
	}, nil
}

// Distance is a convenience wrapper returning ComputeTables(...).Distance().
func Distance(source, target string, opts ...Option) (int, error) {
	t, err := ComputeTables(source, target, opts...)
	if err != nil {
		return 0, err
	}

	return t.Distance(), nil
}
