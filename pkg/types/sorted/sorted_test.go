package sorted

import (
	"errors"
	"io"
	"testing"

	"go-flatdb/util/stream"

	"github.com/stretchr/testify/require"
)

// items replays a slice, then fails with err if set.
type items[T any] struct {
	list []T
	err  error
}

func (s *items[T]) Next() (T, error) {
	var zero T
	if len(s.list) == 0 {
		if s.err != nil {
			return zero, s.err
		}
		return zero, io.EOF
	}
	v := s.list[0]
	s.list = s.list[1:]
	return v, nil
}

func from[T any](list ...T) stream.Reader[T] {
	return &items[T]{list: list}
}

func drain[T any](t *testing.T, r stream.Reader[T]) ([]T, error) {
	t.Helper()
	out := []T{}
	err := stream.Each(r, func(v T) error {
		out = append(out, v)
		return nil
	})
	return out, err
}

type item struct {
	key int
	tag string
}

func lessItem(a, b item) bool { return a.key < b.key }

func TestMerge(t *testing.T) {
	merged, err := drain(t, Merge([]stream.Reader[int]{
		from(1, 4, 7),
		from(2, 5, 8),
		from[int](),
		from(0, 3, 6, 9),
	}, func(a, b int) bool { return a < b }))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, merged)
}

func TestMergeStable(t *testing.T) {
	merged, err := drain(t, Merge([]stream.Reader[item]{
		from(item{1, "a0"}, item{2, "a1"}, item{2, "a2"}),
		from(item{1, "b0"}, item{2, "b1"}),
		from(item{0, "c0"}, item{2, "c1"}),
	}, lessItem))
	require.NoError(t, err)

	tags := make([]string, 0, len(merged))
	for _, m := range merged {
		tags = append(tags, m.tag)
	}
	require.Equal(t, []string{"c0", "a0", "b0", "a1", "a2", "b1", "c1"}, tags)
}

func TestMergeEmpty(t *testing.T) {
	r := Merge[int](nil, func(a, b int) bool { return a < b })
	_, err := r.Next()
	require.Equal(t, io.EOF, err)
}

func TestMergeSourceError(t *testing.T) {
	broken := errors.New("broken partition")
	_, err := drain(t, Merge([]stream.Reader[int]{
		from(1, 2, 3),
		&items[int]{list: []int{5}, err: broken},
	}, func(a, b int) bool { return a < b }))
	require.ErrorIs(t, err, broken)
}
