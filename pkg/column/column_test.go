package column

import (
	"testing"

	"go-flatdb/pkg/customerrors"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	l, err := New([]string{"id", " name ", "age"})
	require.NoError(t, err)
	require.Equal(t, List{"id", "name", "age"}, l)

	_, err = New(nil)
	require.ErrorIs(t, err, customerrors.ErrInvalidArgument)

	_, err = New([]string{"id", ""})
	require.ErrorIs(t, err, customerrors.ErrInvalidArgument)

	_, err = New([]string{"id", "name", "id"})
	require.ErrorIs(t, err, customerrors.ErrInvalidArgument)
}

func TestPositions(t *testing.T) {
	l := List{"id", "name", "age"}

	require.Equal(t, 2, l.Index("age"))
	require.Equal(t, -1, l.Index("email"))
	require.True(t, l.Has("name"))

	pos, err := l.Positions("age", "id")
	require.NoError(t, err)
	require.Equal(t, []int{2, 0}, pos)

	_, err = l.Positions("age", "email")
	require.ErrorIs(t, err, customerrors.ErrSchemaMismatch)

	p, err := l.Position("name")
	require.NoError(t, err)
	require.Equal(t, 1, p)
}

func TestQualify(t *testing.T) {
	l := List{"id", "name"}
	require.Equal(t, List{"table1_id", "table1_name"}, l.Qualify("table1_"))
	require.Equal(t, List{"id", "name"}, l)
	require.True(t, l.Equal(List{"id", "name"}))
	require.False(t, l.Equal(List{"name", "id"}))
	require.Equal(t, "id,name", l.String())
}
