// Package workspace provides per-call scratch directories for operators that
// stage partition files. Every call gets its own directory, so concurrent or
// aborted calls never see each other's files.
package workspace

import (
	"os"
	"path/filepath"

	"go-flatdb/pkg/column"
	"go-flatdb/pkg/customerrors"
	"go-flatdb/pkg/table"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type Workspace struct {
	dir string
}

// New creates <root>/<op>-<uuid>.
func New(root, op string) (*Workspace, error) {
	dir := filepath.Join(root, op+"-"+uuid.NewString())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, customerrors.IOf(err, "failed to create workspace for %s", op)
	}
	return &Workspace{dir: dir}, nil
}

func (w *Workspace) Path(name string) string {
	return filepath.Join(w.dir, name+table.Ext)
}

// Create starts a new partition file named name inside the workspace.
func (w *Workspace) Create(name string, columns column.List) (*table.Writer, error) {
	return table.NewWriter(w.Path(name), columns)
}

// Open reads back a partition file written by Create. A file whose header is
// not columns fails with ErrSchemaMismatch.
func (w *Workspace) Open(name string, columns column.List) (*table.RowReader, error) {
	rr, header, err := table.ReadFile(w.Path(name))
	if err != nil {
		return nil, err
	}
	if !header.Equal(columns) {
		rr.Close()
		return nil, errors.Wrapf(customerrors.ErrSchemaMismatch, "partition '%s' has columns %s, want %s", name, header, columns)
	}
	return rr, nil
}

// Remove deletes the workspace with everything in it.
func (w *Workspace) Remove() error {
	return customerrors.IOf(os.RemoveAll(w.dir), "failed to remove workspace '%s'", w.dir)
}
