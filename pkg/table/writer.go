package table

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"go-flatdb/pkg/column"
	"go-flatdb/pkg/customerrors"
	"go-flatdb/pkg/types"
	"go-flatdb/util/helpers"

	"github.com/pkg/errors"
)

// Writer appends rows to a headered CSV file.
type Writer struct {
	f      *os.File
	w      *csv.Writer
	width  int
	rows   int
	closed bool
}

// NewWriter creates (or truncates) path and writes the header row.
func NewWriter(path string, columns column.List) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, customerrors.IOf(err, "failed to create '%s'", path)
	}

	w, err := newWriter(f, columns)
	if err != nil {
		f.Close()
		return nil, err
	}
	return w, nil
}

func newWriter(f *os.File, columns column.List) (*Writer, error) {
	w := &Writer{
		f:     f,
		w:     csv.NewWriter(f),
		width: len(columns),
	}
	if err := w.w.Write(columns); err != nil {
		return nil, customerrors.IOf(err, "failed to write header to '%s'", f.Name())
	}
	return w, nil
}

func openAppend(path string, width int) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, fileMode)
	if os.IsNotExist(err) {
		return nil, errors.Wrapf(customerrors.ErrTableNotFound, "'%s'", helpers.TrimSuffix(filepath.Base(path), Ext))
	} else if err != nil {
		return nil, customerrors.IOf(err, "failed to open '%s' for append", path)
	}
	return &Writer{f: f, w: csv.NewWriter(f), width: width}, nil
}

func (w *Writer) Write(row types.Row) error {
	if len(row) != w.width {
		return schemaWidthErr(len(row), w.width)
	}
	if err := w.w.Write(row); err != nil {
		return customerrors.IOf(err, "failed to write to '%s'", w.f.Name())
	}
	w.rows++
	return nil
}

func (w *Writer) WriteChunk(chunk types.Chunk) error {
	for _, row := range chunk {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Rows returns the number of data rows written so far.
func (w *Writer) Rows() int {
	return w.rows
}

func (w *Writer) Path() string {
	return w.f.Name()
}

// Close flushes buffered rows to disk. It is safe to call more than once.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	w.w.Flush()
	if err := w.w.Error(); err != nil {
		w.f.Close()
		return customerrors.IOf(err, "failed to flush '%s'", w.f.Name())
	}
	if err := w.f.Sync(); err != nil {
		w.f.Close()
		return customerrors.IOf(err, "failed to sync '%s'", w.f.Name())
	}
	return customerrors.IOf(w.f.Close(), "failed to close '%s'", w.f.Name())
}
