package helpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinMax(t *testing.T) {
	require.Equal(t, 1, Min(3, 1, 2))
	require.Equal(t, 3, Max(3, 1, 2))
	require.Equal(t, "a", Min("b", "a"))
	require.Equal(t, int64(-5), Min(int64(0), int64(-5)))
}

func TestFileHelpers(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	require.NoError(t, CreateDir(dir))
	require.NoError(t, CreateDir(dir))

	fi, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, fi.IsDir())
}

func TestStrings(t *testing.T) {
	require.Equal(t, "users", TrimSuffix("users.csv", ".csv"))
	require.Equal(t, "users", TrimSuffix("users", ".csv"))
	require.Equal(t, []string{"id", "name", "age"}, SplitList("id, name ,age"))
}
