package stream

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

type counter struct {
	n, max int
	err    error
}

func (c *counter) Next() (int, error) {
	if c.n == c.max {
		if c.err != nil {
			return 0, c.err
		}
		return 0, io.EOF
	}
	c.n++
	return c.n, nil
}

func TestEach(t *testing.T) {
	sum := 0
	require.NoError(t, Each[int](&counter{max: 3}, func(v int) error {
		sum += v
		return nil
	}))
	require.Equal(t, 6, sum)

	stop := errors.New("stop")
	seen := 0
	err := Each[int](&counter{max: 3}, func(v int) error {
		seen++
		if v == 2 {
			return stop
		}
		return nil
	})
	require.ErrorIs(t, err, stop)
	require.Equal(t, 2, seen)
}

func TestEachSourceError(t *testing.T) {
	broken := errors.New("broken")
	seen := []int{}
	err := Each[int](&counter{max: 2, err: broken}, func(v int) error {
		seen = append(seen, v)
		return nil
	})
	require.ErrorIs(t, err, broken)
	require.Equal(t, []int{1, 2}, seen)
}
