package pairs_test

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/courselab/internal/pairs"
)

func readAll(t *testing.T, r *pairs.Reader) ([]pairs.Pair, error) {
	t.Helper()
	var out []pairs.Pair
	for {
		p, err := r.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, p)
	}
}

func TestReader_Pairs(t *testing.T) {
	in := "kitten\tsitting\r\n\n  \nab\tba\n\tabc\n"

	got, err := readAll(t, pairs.NewReader(strings.NewReader(in)))
	require.NoError(t, err)
	assert.Equal(t, []pairs.Pair{
		{Line: 1, Source: "kitten", Target: "sitting"},
		{Line: 4, Source: "ab", Target: "ba"},
		{Line: 5, Source: "", Target: "abc"},
	}, got)
}

func TestReader_Malformed(t *testing.T) {
	for _, in := range []string{"no-separator\n", "a\tb\tc\n"} {
		_, err := readAll(t, pairs.NewReader(strings.NewReader(in)))
		assert.ErrorIs(t, err, pairs.ErrMalformed, "input %q", in)
		assert.Contains(t, err.Error(), "line 1")
	}
}

func TestReader_Empty(t *testing.T) {
	_, err := pairs.NewReader(strings.NewReader("")).Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReader_UnderlyingError(t *testing.T) {
	boom := errors.New("boom")
	_, err := pairs.NewReader(iotest.ErrReader(boom)).Next()
	assert.ErrorIs(t, err, boom)
}
