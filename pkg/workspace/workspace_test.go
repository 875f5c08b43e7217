package workspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-flatdb/pkg/column"
	"go-flatdb/pkg/customerrors"
	"go-flatdb/pkg/types"

	"github.com/stretchr/testify/require"
)

func TestWorkspace(t *testing.T) {
	root := t.TempDir()

	a, err := New(root, "sort")
	require.NoError(t, err)
	b, err := New(root, "sort")
	require.NoError(t, err)
	require.NotEqual(t, a.Path("part-0"), b.Path("part-0"))
	require.True(t, strings.HasPrefix(filepath.Base(filepath.Dir(a.Path("part-0"))), "sort-"))

	w, err := a.Create("part-0", column.List{"id"})
	require.NoError(t, err)
	require.NoError(t, w.Write(types.Row{"1"}))
	require.NoError(t, w.Close())

	rr, err := a.Open("part-0", column.List{"id"})
	require.NoError(t, err)
	row, err := rr.Next()
	require.NoError(t, err)
	require.Equal(t, types.Row{"1"}, row)
	require.NoError(t, rr.Close())

	_, err = a.Open("part-0", column.List{"key"})
	require.ErrorIs(t, err, customerrors.ErrSchemaMismatch)

	_, err = b.Open("part-0", column.List{"id"})
	require.Error(t, err)

	require.NoError(t, a.Remove())
	require.NoError(t, b.Remove())

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Empty(t, entries)
}
