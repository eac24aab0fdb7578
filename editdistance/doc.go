// Package editdistance computes the minimum edit distance between two strings
// and enumerates every optimal alignment that realizes it.
//
// 🚀 What is it?
//
//	The distance counts unit-cost insertions, deletions, substitutions and
//	adjacent transpositions (restricted Damerau-Levenshtein). Unlike the
//	usual one-path backtrace, the builder records every operation that
//	ties for the optimum at each cell, so the enumerator can walk all
//	optimal alignments, not just one.
//
// ✨ Key features:
//   - ComputeTables: (n+1)×(m+1) cost table + parallel operation bitmask table
//   - Alignments:   lazy, deterministic sequence of optimal alignments
//   - WithLimit / WithContext to cap or cancel enumeration
//   - WithTransposition(false) pins the plain Levenshtein scheme
//   - Alignment.Apply replays an alignment against its source
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/courselab/editdistance"
//
//	t, err := editdistance.ComputeTables("ab", "ba")
//	if err != nil {
//	  // ErrLengthExceeded or ErrBadInput
//	}
//	fmt.Println(t.Distance()) // 1
//	n := 0
//	for a, err := range t.Alignments(editdistance.WithLimit(10)) {
//	  if err != nil {
//	    // ErrBadInput or ctx.Err()
//	  }
//	  n++
//	  fmt.Printf("[%d]\n%s\n", n, a)
//	}
//
// Performance:
//
//   - Tables: O(N·M) time & memory
//   - Enumeration: O(N+M) memory per step; the number of alignments can be
//     exponential in the number of tied cells
package editdistance
