package editdistance

import (
	"fmt"
	"iter"
)

// frame is one pending branch of the backtrace: the cell to expand, its
// depth below (n,m), and the pair emitted on the edge that led to it.
type frame struct {
	i, j  int
	level int
	pair  Pair
}

// Enumerator walks the operation table from (n,m) back to (0,0) and
// produces one optimal alignment per call to Next.
//
// The walk is depth-first with an explicit stack, so memory stays at
// O(n+m) per path regardless of how many alignments exist. At every cell
// flags are expanded in the order Match/Substitute, Insert, Delete,
// Transpose, which fixes the output order.
type Enumerator struct {
	t     *Tables
	opts  Options
	stack []frame
	path  []Pair // path[k] is the pair emitted at depth k+1, (n,m)-side first
	count int
	err   error
	done  bool
}

// NewEnumerator prepares an enumerator over t. Only Limit and Ctx of the
// options are consulted. t.Ops is checked for shape and flag placement so
// hand-built tables fail with ErrBadInput.
func NewEnumerator(t *Tables, opts ...Option) (*Enumerator, error) {
	if t == nil {
		return nil, fmt.Errorf("NewEnumerator: %w", ErrNilTables)
	}
	o := applyOptions(opts)
	if o.Limit < 0 {
		return nil, fmt.Errorf("NewEnumerator: Limit=%d: %w", o.Limit, ErrBadInput)
	}
	if err := checkOps(t); err != nil {
		return nil, fmt.Errorf("NewEnumerator: %w", err)
	}

	n, m := len(t.Source), len(t.Target)
	e := &Enumerator{
		t:     t,
		opts:  o,
		stack: make([]frame, 0, n+m+1),
		path:  make([]Pair, n+m),
	}
	e.stack = append(e.stack, frame{i: n, j: m})

	return e, nil
}

// checkOps verifies that Ops is (n+1)x(m+1) and that no flag steps
// outside the table: Insert needs j≥1, Delete i≥1, Match and Substitute
// i,j≥1, Transpose i,j≥2. Every cell but the origin needs a flag.
func checkOps(t *Tables) error {
	n, m := len(t.Source), len(t.Target)
	if len(t.Ops) != n+1 {
		return fmt.Errorf("Ops has %d rows, want %d: %w", len(t.Ops), n+1, ErrBadInput)
	}
	for i, row := range t.Ops {
		if len(row) != m+1 {
			return fmt.Errorf("Ops[%d] has %d cells, want %d: %w", i, len(row), m+1, ErrBadInput)
		}
		for j, flags := range row {
			bad := flags&^(Insert|Delete|Substitute|Match|Transpose) != 0 ||
				(i > 0 || j > 0) && flags == 0 ||
				flags&Insert != 0 && j < 1 ||
				flags&Delete != 0 && i < 1 ||
				flags&(Match|Substitute) != 0 && (i < 1 || j < 1) ||
				flags&Match != 0 && flags&Substitute != 0 ||
				flags&Transpose != 0 && (i < 2 || j < 2)
			if bad {
				return fmt.Errorf("Ops[%d][%d]=%08b: %w", i, j, uint8(flags), ErrBadInput)
			}
		}
	}

	return nil
}

// Count returns how many alignments Next has produced so far.
func (e *Enumerator) Count() int { return e.count }

// Err returns the error that stopped the walk, if any. It is nil after a
// normal exhaustion or after hitting the limit.
func (e *Enumerator) Err() error { return e.err }

// Next returns the next optimal alignment. ok is false once the walk is
// exhausted, the limit is reached or the context is done; check Err to
// tell these apart.
func (e *Enumerator) Next() (a Alignment, ok bool) {
	if e.done {
		return nil, false
	}
	if e.opts.Limit > 0 && e.count >= e.opts.Limit {
		e.done = true

		return nil, false
	}

	var f frame
	for len(e.stack) > 0 {
		select {
		case <-e.opts.Ctx.Done():
			e.err = e.opts.Ctx.Err()
			e.done = true

			return nil, false
		default:
		}

		f = e.stack[len(e.stack)-1]
		e.stack = e.stack[:len(e.stack)-1]
		if f.level > 0 {
			e.path[f.level-1] = f.pair
		}

		if f.i == 0 && f.j == 0 {
			e.count++

			return e.emit(f.level), true
		}
		e.expand(f)
	}
	e.done = true

	return nil, false
}

// expand pushes the successors of f. They are pushed in reverse of the
// visiting order so the stack pops Match/Substitute first.
func (e *Enumerator) expand(f frame) {
	s, t := e.t.Source, e.t.Target
	i, j := f.i, f.j
	flags := e.t.Ops[i][j]
	next := f.level + 1

	if flags&Transpose != 0 {
		e.stack = append(e.stack, frame{i: i - 2, j: j - 2, level: next, pair: Pair{
			Op:     Transpose,
			Source: string(s[i-2 : i]),
			Target: string(t[j-2 : j]),
		}})
	}
	if flags&Delete != 0 {
		e.stack = append(e.stack, frame{i: i - 1, j: j, level: next, pair: Pair{
			Op:     Delete,
			Source: string(s[i-1]),
			Target: Gap,
		}})
	}
	if flags&Insert != 0 {
		e.stack = append(e.stack, frame{i: i, j: j - 1, level: next, pair: Pair{
			Op:     Insert,
			Source: Gap,
			Target: string(t[j-1]),
		}})
	}
	if diag := flags & (Match | Substitute); diag != 0 {
		e.stack = append(e.stack, frame{i: i - 1, j: j - 1, level: next, pair: Pair{
			Op:     diag,
			Source: string(s[i-1]),
			Target: string(t[j-1]),
		}})
	}
}

// emit copies the current path of the given depth in source order.
func (e *Enumerator) emit(level int) Alignment {
	out := make(Alignment, level)
	for k := 0; k < level; k++ {
		out[k] = e.path[level-1-k]
	}

	return out
}

// Alignments returns a lazy sequence of alignments. Breaking out of the
// range loop stops the walk. If the walk cannot start or is cancelled, the
// error is yielded once with a nil alignment as the final element; a nil
// error is never yielded after the last alignment. Callers that need an
// ordinal keep their own counter.
func (t *Tables) Alignments(opts ...Option) iter.Seq2[Alignment, error] {
	return func(yield func(Alignment, error) bool) {
		e, err := NewEnumerator(t, opts...)
		if err != nil {
			yield(nil, err)

			return
		}
		for {
			a, ok := e.Next()
			if !ok {
				if e.Err() != nil {
					yield(nil, e.Err())
				}

				return
			}
			if !yield(a, nil) {
				return
			}
		}
	}
}

// All materializes every alignment of t, honoring WithLimit and WithContext.
func All(t *Tables, opts ...Option) ([]Alignment, error) {
	e, err := NewEnumerator(t, opts...)
	if err != nil {
		return nil, err
	}

	var out []Alignment
	for {
		a, ok := e.Next()
		if !ok {
			break
		}
		out = append(out, a)
	}

	return out, e.Err()
}
