package editdistance_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/courselab/editdistance"
)

// benchmarkTables builds tables for two strings of length n that differ by
// a rotation, so every cell has to be filled.
func benchmarkTables(b *testing.B, n int, opts ...editdistance.Option) {
	src := strings.Repeat("abcde", n/5+1)[:n]
	dst := src[1:] + src[:1]
	opts = append(opts, editdistance.WithMaxLength(n))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := editdistance.ComputeTables(src, dst, opts...); err != nil {
			b.Fatalf("ComputeTables failed: %v", err)
		}
	}
}

// BenchmarkComputeTables_Small covers the default capacity.
func BenchmarkComputeTables_Small(b *testing.B) {
	benchmarkTables(b, editdistance.DefaultMaxLength)
}

// BenchmarkComputeTables_Medium uses a raised capacity of 500 runes.
func BenchmarkComputeTables_Medium(b *testing.B) {
	benchmarkTables(b, 500)
}

// BenchmarkComputeTables_NoTransposition measures the plain Levenshtein scheme.
func BenchmarkComputeTables_NoTransposition(b *testing.B) {
	benchmarkTables(b, 500, editdistance.WithTransposition(false))
}

// BenchmarkEnumerate_Capped pulls at most 1000 alignments from a tie-heavy pair.
func BenchmarkEnumerate_Capped(b *testing.B) {
	t, err := editdistance.ComputeTables(strings.Repeat("ab", 14), strings.Repeat("ba", 14),
		editdistance.WithTransposition(false))
	if err != nil {
		b.Fatalf("ComputeTables failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = editdistance.All(t, editdistance.WithLimit(1000)); err != nil {
			b.Fatalf("All failed: %v", err)
		}
	}
}
