package index

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"go-flatdb/pkg/customerrors"

	"github.com/stretchr/testify/require"
)

func fill(keys ...string) func(emit func(string) error) error {
	return func(emit func(string) error) error {
		for _, k := range keys {
			if err := emit(k); err != nil {
				return err
			}
		}
		return nil
	}
}

func tableFile(t *testing.T, dir, content string) os.FileInfo {
	t.Helper()
	path := filepath.Join(dir, "users.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	fi, err := os.Stat(path)
	require.NoError(t, err)
	return fi
}

func TestRebuildAndHas(t *testing.T) {
	dir := t.TempDir()
	idx, err := Open(Dir(dir, "users"), Options{Column: "id", Buckets: 4})
	require.NoError(t, err)

	fi := tableFile(t, dir, "id\n1\n2\n3\n")
	require.False(t, idx.Fresh(fi))

	require.NoError(t, idx.Rebuild(fill("1", "2", "3")))
	require.False(t, idx.Fresh(fi))
	require.NoError(t, idx.Commit(fi))
	require.True(t, idx.Fresh(fi))

	for _, k := range []string{"1", "2", "3"} {
		ok, err := idx.Has(k)
		require.NoError(t, err)
		require.True(t, ok, k)
	}
	ok, err := idx.Has("4")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestReopenKeepsFreshness(t *testing.T) {
	dir := t.TempDir()
	opts := Options{Column: "id", Buckets: 3}
	idx, err := Open(Dir(dir, "users"), opts)
	require.NoError(t, err)

	fi := tableFile(t, dir, "id\n1\n")
	require.NoError(t, idx.Rebuild(fill("1")))
	require.NoError(t, idx.Commit(fi))

	again, err := Open(Dir(dir, "users"), opts)
	require.NoError(t, err)
	require.True(t, again.Fresh(fi))

	other, err := Open(Dir(dir, "users"), Options{Column: "id", Buckets: 5})
	require.NoError(t, err)
	require.False(t, other.Fresh(fi))

	changed := tableFile(t, dir, "id\n1\n22\n")
	require.False(t, again.Fresh(changed))
}

func TestAddRemove(t *testing.T) {
	dir := t.TempDir()
	idx, err := Open(Dir(dir, "users"), Options{Column: "id", Buckets: 2})
	require.NoError(t, err)
	require.NoError(t, idx.Rebuild(fill()))

	keys := []string{}
	for i := 0; i < 20; i++ {
		keys = append(keys, strconv.Itoa(i))
	}
	require.NoError(t, idx.Add(keys...))
	require.NoError(t, idx.Add("7"))

	require.NoError(t, idx.Remove("7", "12"))
	ok, err := idx.Has("7")
	require.NoError(t, err)
	require.True(t, ok, "one of two occurrences remains")

	ok, err = idx.Has("12")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, idx.Remove("7", "missing"))
	ok, err = idx.Has("7")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = idx.Has("19")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestInvalidateDrop(t *testing.T) {
	dir := t.TempDir()
	idx, err := Open(Dir(dir, "users"), Options{Column: "id", Buckets: 2})
	require.NoError(t, err)

	fi := tableFile(t, dir, "id\n1\n")
	require.NoError(t, idx.Rebuild(fill("1")))
	require.NoError(t, idx.Commit(fi))

	require.NoError(t, idx.Invalidate())
	require.False(t, idx.Fresh(fi))
	require.NoError(t, idx.Invalidate())

	require.NoError(t, idx.Drop())
	_, err = os.Stat(Dir(dir, "users"))
	require.True(t, os.IsNotExist(err))
}

func TestOptions(t *testing.T) {
	_, err := Open(t.TempDir(), Options{Column: "", Buckets: 2})
	require.ErrorIs(t, err, customerrors.ErrInvalidArgument)
	_, err = Open(t.TempDir(), Options{Column: "id", Buckets: 0})
	require.ErrorIs(t, err, customerrors.ErrInvalidArgument)
}
