package table

import (
	"os"
	"path/filepath"

	"go-flatdb/pkg/column"
	"go-flatdb/pkg/customerrors"
)

// Staging is a Writer whose file replaces dst atomically on Commit. The
// staging file lives next to dst so the final rename never crosses devices.
// Until Commit, dst is untouched.
type Staging struct {
	*Writer
	dst  string
	done bool
}

func NewStaging(dst string, columns column.List) (*Staging, error) {
	f, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".*.tmp")
	if err != nil {
		return nil, customerrors.IOf(err, "failed to create staging file for '%s'", dst)
	}
	if err := f.Chmod(fileMode); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, customerrors.IOf(err, "failed to create staging file for '%s'", dst)
	}

	w, err := newWriter(f, columns)
	if err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, err
	}
	return &Staging{Writer: w, dst: dst}, nil
}

// Commit flushes the staging file and renames it over dst.
func (s *Staging) Commit() error {
	if s.done {
		return nil
	}
	s.done = true

	if err := s.Writer.Close(); err != nil {
		os.Remove(s.Path())
		return err
	}
	if err := os.Rename(s.Path(), s.dst); err != nil {
		os.Remove(s.Path())
		return customerrors.IOf(err, "failed to replace '%s'", s.dst)
	}
	return nil
}

// Discard drops the staging file. It is a no-op after Commit, so it can be
// deferred right after NewStaging.
func (s *Staging) Discard() error {
	if s.done {
		return nil
	}
	s.done = true

	s.Writer.Close()
	return customerrors.IOf(os.Remove(s.Path()), "failed to remove staging file")
}
