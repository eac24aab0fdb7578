package editdistance

import (
	"context"
	"strings"
)

// Op is a bitmask of elementary edit operations. A single cell of the
// operation table may hold several of them when they tie for the optimum.
type Op uint8

const (
	// Insert consumes one target character.
	Insert Op = 1 << iota
	// Delete consumes one source character.
	Delete
	// Substitute replaces one source character with a different target character.
	Substitute
	// Match pairs two equal characters at no cost.
	Match
	// Transpose swaps two adjacent source characters.
	Transpose
)

// DefaultMaxLength is the longest sequence accepted when no WithMaxLength
// option is given.
const DefaultMaxLength = 29

// Gap is the marker emitted on the side of a pair that has no character.
const Gap = "*"

// Has reports whether every bit of x is set in o.
func (o Op) Has(x Op) bool { return o&x == x && x != 0 }

// String renders o with one letter per flag: S, M, I, D, T.
func (o Op) String() string {
	var sb strings.Builder
	for _, f := range [...]struct {
		op  Op
		sym byte
	}{{Substitute, 'S'}, {Match, 'M'}, {Insert, 'I'}, {Delete, 'D'}, {Transpose, 'T'}} {
		if o&f.op != 0 {
			sb.WriteByte(f.sym)
		}
	}

	return sb.String()
}

// Option configures ComputeTables, Distance and the enumerator.
type Option func(*Options)

// Options holds the knobs shared by table building and enumeration.
//
// Fields:
//   - MaxLength    : longest accepted sequence, in runes. Must be positive.
//   - Transposition: enable the adjacent-swap operation.
//   - Limit        : stop enumeration after Limit alignments; 0 means no cap.
//   - Ctx          : cancels enumeration early.
type Options struct {
	MaxLength     int
	Transposition bool
	Limit         int
	Ctx           context.Context
}

// DefaultOptions returns Options with DefaultMaxLength, transposition
// enabled, no enumeration cap and a background context.
func DefaultOptions() Options {
	return Options{
		MaxLength:     DefaultMaxLength,
		Transposition: true,
		Limit:         0,
		Ctx:           context.Background(),
	}
}

// WithMaxLength sets the capacity limit for both sequences.
func WithMaxLength(n int) Option {
	return func(o *Options) {
		o.MaxLength = n
	}
}

// WithTransposition toggles the transpose operation.
func WithTransposition(enabled bool) Option {
	return func(o *Options) {
		o.Transposition = enabled
	}
}

// WithLimit caps the number of alignments produced by the enumerator.
func WithLimit(k int) Option {
	return func(o *Options) {
		o.Limit = k
	}
}

// WithContext sets the context checked between enumeration steps.
// A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// Pair is one step of an alignment: the operation and the characters it
// emits on each side. A missing side holds Gap.
type Pair struct {
	Op     Op
	Source string
	Target string
}

// String renders the pair as "a - b", "* - b", "a - *" or "ab - ba".
func (p Pair) String() string {
	return p.Source + " - " + p.Target
}

// Alignment is a full accounting of both sequences, ordered from the
// start of the strings to their end.
type Alignment []Pair

// String renders one pair per line.
func (a Alignment) String() string {
	lines := make([]string, len(a))
	for i, p := range a {
		lines[i] = p.String()
	}

	return strings.Join(lines, "\n")
}

// Cost returns the number of non-match operations in a.
func (a Alignment) Cost() int {
	cost := 0
	for _, p := range a {
		if p.Op != Match {
			cost++
		}
	}

	return cost
}
