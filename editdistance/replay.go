package editdistance

import (
	"errors"
	"fmt"
	"strings"
)

// ErrReplayMismatch indicates an alignment that does not fit its source.
var ErrReplayMismatch = errors.New("editdistance: alignment does not match source")

// Apply replays a against source and returns the edited string. Each pair
// must consume exactly the source characters it names; Match pairs must
// carry equal characters and Transpose pairs must be a swap.
func (a Alignment) Apply(source string) (string, error) {
	src := []rune(source)
	pos := 0
	var out strings.Builder

	take := func(step int, want string) error {
		w := []rune(want)
		if pos+len(w) > len(src) || string(src[pos:pos+len(w)]) != want {
			return fmt.Errorf("Apply: step %d wants %q at offset %d: %w", step, want, pos, ErrReplayMismatch)
		}
		pos += len(w)

		return nil
	}

	for k, p := range a {
		switch p.Op {
		case Match, Substitute:
			if (p.Op == Match) != (p.Source == p.Target) {
				return "", fmt.Errorf("Apply: step %d %s pair %q: %w", k, p.Op, p, ErrReplayMismatch)
			}
			if err := take(k, p.Source); err != nil {
				return "", err
			}
			out.WriteString(p.Target)
		case Insert:
			out.WriteString(p.Target)
		case Delete:
			if err := take(k, p.Source); err != nil {
				return "", err
			}
		case Transpose:
			sr, tr := []rune(p.Source), []rune(p.Target)
			if len(sr) != 2 || len(tr) != 2 || sr[0] != tr[1] || sr[1] != tr[0] {
				return "", fmt.Errorf("Apply: step %d pair %q is not a swap: %w", k, p, ErrReplayMismatch)
			}
			if err := take(k, p.Source); err != nil {
				return "", err
			}
			out.WriteString(p.Target)
		default:
			return "", fmt.Errorf("Apply: step %d has operation %q: %w", k, p.Op, ErrReplayMismatch)
		}
	}
	if pos != len(src) {
		return "", fmt.Errorf("Apply: %d source runes left over: %w", len(src)-pos, ErrReplayMismatch)
	}

	return out.String(), nil
}
