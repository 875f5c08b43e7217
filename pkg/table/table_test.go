package table

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"go-flatdb/pkg/column"
	"go-flatdb/pkg/customerrors"
	"go-flatdb/pkg/types"

	"github.com/stretchr/testify/require"
)

func newUsers(t *testing.T) (string, *Table) {
	t.Helper()
	dir := t.TempDir()
	tbl, err := Create(dir, "users", []string{"id", "name", "age"})
	require.NoError(t, err)
	require.NoError(t, tbl.Append(
		types.Row{"1", "Alice", "30"},
		types.Row{"2", "Bob", "25"},
		types.Row{"3", "Carol", "40"},
	))
	return dir, tbl
}

func count(t *testing.T, tbl *Table) int {
	t.Helper()
	n := 0
	require.NoError(t, tbl.Scan(func(types.Row) error {
		n++
		return nil
	}))
	return n
}

func TestCreate(t *testing.T) {
	dir := t.TempDir()
	tbl, err := Create(dir, "users", []string{"id", "name"})
	require.NoError(t, err)
	require.Equal(t, column.List{"id", "name"}, tbl.Columns())
	require.Equal(t, filepath.Join(dir, "users.csv"), tbl.Path())

	blob, err := os.ReadFile(tbl.Path())
	require.NoError(t, err)
	require.Equal(t, "id,name\n", string(blob))

	_, err = Create(dir, "users", []string{"other"})
	require.ErrorIs(t, err, customerrors.ErrTableExists)
	blob, err = os.ReadFile(tbl.Path())
	require.NoError(t, err)
	require.Equal(t, "id,name\n", string(blob))

	_, err = Create(dir, "../escape", []string{"id"})
	require.ErrorIs(t, err, customerrors.ErrInvalidArgument)
	_, err = Create(dir, "dup", []string{"id", "id"})
	require.ErrorIs(t, err, customerrors.ErrInvalidArgument)
}

func TestOpen(t *testing.T) {
	dir, _ := newUsers(t)

	tbl, err := Open(dir, "users")
	require.NoError(t, err)
	require.Equal(t, "users", tbl.Name())
	require.Equal(t, column.List{"id", "name", "age"}, tbl.Columns())

	_, err = Open(dir, "missing")
	require.ErrorIs(t, err, customerrors.ErrTableNotFound)

	require.NoError(t, os.WriteFile(Path(dir, "empty"), nil, 0644))
	_, err = Open(dir, "empty")
	require.ErrorIs(t, err, customerrors.ErrSchemaMismatch)
}

func TestAppend(t *testing.T) {
	_, tbl := newUsers(t)

	err := tbl.Append(types.Row{"4", "Dave"})
	require.ErrorIs(t, err, customerrors.ErrSchemaMismatch)

	require.NoError(t, tbl.Append(types.Row{"4", "Smith, \"Dave\"", "51"}))

	var last types.Row
	require.NoError(t, tbl.Scan(func(row types.Row) error {
		last = row
		return nil
	}))
	require.Equal(t, types.Row{"4", "Smith, \"Dave\"", "51"}, last)

	require.Equal(t, 4, count(t, tbl))
}

func TestChunks(t *testing.T) {
	dir := t.TempDir()
	tbl, err := Create(dir, "numbers", []string{"id", "v"})
	require.NoError(t, err)

	rows := make([]types.Row, 0, 23)
	for i := 0; i < 23; i++ {
		rows = append(rows, types.Row{fmt.Sprint(i), fmt.Sprint(i * i)})
	}
	require.NoError(t, tbl.Append(rows...))

	for _, size := range []int{1, 5, 23, 100} {
		got := []types.Row{}
		sizes := []int{}
		require.NoError(t, tbl.Chunks(size, func(chunk types.Chunk) error {
			sizes = append(sizes, len(chunk))
			got = append(got, chunk...)
			return nil
		}))
		require.Equal(t, rows, got, "chunk size %d", size)
		for i, s := range sizes {
			require.LessOrEqual(t, s, size)
			if i < len(sizes)-1 {
				require.Equal(t, size, s)
			}
		}
	}

	err = tbl.Chunks(0, func(types.Chunk) error { return nil })
	require.ErrorIs(t, err, customerrors.ErrInvalidArgument)
}

func TestChunkReaderRestarts(t *testing.T) {
	_, tbl := newUsers(t)

	for pass := 0; pass < 2; pass++ {
		cr, err := tbl.Reader(2)
		require.NoError(t, err)

		first, err := cr.Next()
		require.NoError(t, err)
		require.Len(t, first, 2)
		require.Equal(t, "Alice", first[0][1])

		second, err := cr.Next()
		require.NoError(t, err)
		require.Len(t, second, 1)

		_, err = cr.Next()
		require.Equal(t, io.EOF, err)
		require.NoError(t, cr.Close())
	}
}

func TestReaderMissingTable(t *testing.T) {
	dir, tbl := newUsers(t)
	require.NoError(t, os.Remove(Path(dir, "users")))

	_, err := tbl.Reader(10)
	require.ErrorIs(t, err, customerrors.ErrTableNotFound)
}

func TestMalformedRow(t *testing.T) {
	dir, tbl := newUsers(t)
	f, err := os.OpenFile(Path(dir, "users"), os.O_APPEND|os.O_WRONLY, 0644)
	require.NoError(t, err)
	_, err = f.WriteString("4,Dave\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	err = tbl.Scan(func(types.Row) error { return nil })
	require.ErrorIs(t, err, customerrors.ErrSchemaMismatch)
}

func TestHasKey(t *testing.T) {
	dir, tbl := newUsers(t)

	ok, err := tbl.HasKey("id", "2")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = tbl.HasKey("id", "7")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = tbl.HasKey("email", "2")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, os.Remove(Path(dir, "users")))
	ok, err = tbl.HasKey("id", "2")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestStaging(t *testing.T) {
	dir, tbl := newUsers(t)
	before, err := os.ReadFile(tbl.Path())
	require.NoError(t, err)

	discarded, err := NewStaging(tbl.Path(), tbl.Columns())
	require.NoError(t, err)
	require.NoError(t, discarded.Write(types.Row{"9", "Zed", "1"}))
	require.NoError(t, discarded.Discard())
	require.NoError(t, discarded.Discard())

	after, err := os.ReadFile(tbl.Path())
	require.NoError(t, err)
	require.Equal(t, before, after)

	st, err := NewStaging(tbl.Path(), tbl.Columns())
	require.NoError(t, err)
	require.NoError(t, st.Write(types.Row{"9", "Zed", "1"}))
	require.Equal(t, 1, st.Rows())
	require.NoError(t, st.Commit())
	require.NoError(t, st.Discard())

	after, err = os.ReadFile(tbl.Path())
	require.NoError(t, err)
	require.Equal(t, "id,name,age\n9,Zed,1\n", string(after))

	fi, err := os.Stat(tbl.Path())
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0644), fi.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "part-0.csv")
	w, err := NewWriter(path, column.List{"k", "v"})
	require.NoError(t, err)
	require.NoError(t, w.WriteChunk(types.Chunk{{"a", "1"}, {"b", "2"}}))
	require.Equal(t, path, w.Path())
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	rr, header, err := ReadFile(path)
	require.NoError(t, err)
	defer rr.Close()
	require.Equal(t, column.List{"k", "v"}, header)

	row, err := rr.Next()
	require.NoError(t, err)
	require.Equal(t, types.Row{"a", "1"}, row)
}
