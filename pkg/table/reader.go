package table

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"

	"go-flatdb/pkg/column"
	"go-flatdb/pkg/customerrors"
	"go-flatdb/pkg/types"

	"github.com/pkg/errors"
)

// RowReader streams the rows of a table file one at a time, header skipped.
type RowReader struct {
	f    *os.File
	r    *csv.Reader
	path string
}

// Rows opens a fresh pass over t starting at its first row.
func (t *Table) Rows() (*RowReader, error) {
	return openRows(t.path, t.columns)
}

func openRows(path string, columns column.List) (*RowReader, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}

	r := csv.NewReader(bufio.NewReader(f))
	header, err := r.Read()
	if err == io.EOF {
		f.Close()
		return nil, errors.Wrap(customerrors.ErrSchemaMismatch, "missing header row")
	} else if err != nil {
		f.Close()
		return nil, wrapReadErr(err, path)
	}

	if columns != nil && !columns.Equal(header) {
		f.Close()
		return nil, errors.Wrapf(customerrors.ErrSchemaMismatch, "header changed: '%s' != '%s'", column.List(header), columns)
	}

	return &RowReader{f: f, r: r, path: path}, nil
}

// Next returns the next row or io.EOF.
func (rr *RowReader) Next() (types.Row, error) {
	rec, err := rr.r.Read()
	if err == io.EOF {
		return nil, io.EOF
	} else if err != nil {
		return nil, wrapReadErr(err, rr.path)
	}
	return types.Row(rec), nil
}

func (rr *RowReader) Close() error {
	return rr.f.Close()
}

// ChunkReader groups rows into chunks of at most size rows.
type ChunkReader struct {
	rows *RowReader
	size int
}

// Reader opens a chunked pass over t. Every call restarts from the first row.
func (t *Table) Reader(size int) (*ChunkReader, error) {
	if size <= 0 {
		return nil, errors.Wrapf(customerrors.ErrInvalidArgument, "chunk size must be positive, got %d", size)
	}

	rows, err := t.Rows()
	if err != nil {
		return nil, err
	}
	return &ChunkReader{rows: rows, size: size}, nil
}

// Next returns the next non-empty chunk or io.EOF.
func (cr *ChunkReader) Next() (types.Chunk, error) {
	chunk := make(types.Chunk, 0, cr.size)
	for len(chunk) < cr.size {
		row, err := cr.rows.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		chunk = append(chunk, row)
	}

	if len(chunk) == 0 {
		return nil, io.EOF
	}
	return chunk, nil
}

func (cr *ChunkReader) Close() error {
	return cr.rows.Close()
}

// Chunks calls fn with consecutive chunks covering every row of t exactly
// once, in file order.
func (t *Table) Chunks(size int, fn func(chunk types.Chunk) error) error {
	cr, err := t.Reader(size)
	if err != nil {
		return err
	}
	defer cr.Close()

	for {
		chunk, err := cr.Next()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		if err := fn(chunk); err != nil {
			return err
		}
	}
}

// Scan calls fn for every row of t in file order.
func (t *Table) Scan(fn func(row types.Row) error) error {
	rr, err := t.Rows()
	if err != nil {
		return err
	}
	defer rr.Close()

	for {
		row, err := rr.Next()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		if err := fn(row); err != nil {
			return err
		}
	}
}

// ReadFile opens a pass over any headered CSV file, such as a partition
// file, returning its header alongside the reader.
func ReadFile(path string) (*RowReader, column.List, error) {
	header, err := readHeader(path)
	if err != nil {
		return nil, nil, err
	}
	rr, err := openRows(path, header)
	if err != nil {
		return nil, nil, err
	}
	return rr, header, nil
}
