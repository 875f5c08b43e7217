package table

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go-flatdb/pkg/column"
	"go-flatdb/pkg/customerrors"
	"go-flatdb/util/helpers"

	"github.com/pkg/errors"
)

// Ext is the suffix of every table file.
const Ext = ".csv"

const fileMode os.FileMode = 0644

// Table is a headered CSV file. The header row is the only schema.
type Table struct {
	name    string
	path    string
	columns column.List
}

// Path returns the file backing table name inside dir.
func Path(dir, name string) string {
	return filepath.Join(dir, name+Ext)
}

func ValidateName(name string) error {
	switch {
	case name == "":
		return errors.Wrap(customerrors.ErrInvalidArgument, "empty table name")
	case strings.ContainsAny(name, `/\`+"\x00"):
		return errors.Wrapf(customerrors.ErrInvalidArgument, "table name '%s' contains a path separator", name)
	case strings.HasPrefix(name, "."):
		return errors.Wrapf(customerrors.ErrInvalidArgument, "table name '%s' starts with a dot", name)
	}
	return nil
}

// Create writes an empty table holding only the header row. It fails with
// ErrTableExists if the file is already present and leaves it untouched.
func Create(dir, name string, columns []string) (*Table, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	cols, err := column.New(columns)
	if err != nil {
		return nil, err
	}

	path := Path(dir, name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, fileMode)
	if os.IsExist(err) {
		return nil, errors.Wrapf(customerrors.ErrTableExists, "'%s'", name)
	} else if err != nil {
		return nil, customerrors.IOf(err, "failed to create table '%s'", name)
	}

	w, err := newWriter(f, cols)
	if err != nil {
		os.Remove(path)
		return nil, err
	}
	if err := w.Close(); err != nil {
		os.Remove(path)
		return nil, err
	}

	return &Table{name: name, path: path, columns: cols}, nil
}

// Open reads the header of an existing table.
func Open(dir, name string) (*Table, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	path := Path(dir, name)
	cols, err := readHeader(path)
	if err != nil {
		return nil, err
	}

	return &Table{name: name, path: path, columns: cols}, nil
}

func (t *Table) Name() string {
	return t.name
}

func (t *Table) Path() string {
	return t.path
}

func (t *Table) Columns() column.List {
	return t.columns
}

func (t *Table) Stat() (os.FileInfo, error) {
	fi, err := os.Stat(t.path)
	if os.IsNotExist(err) {
		return nil, errors.Wrapf(customerrors.ErrTableNotFound, "'%s'", t.name)
	}
	return fi, customerrors.IOf(err, "failed to stat table '%s'", t.name)
}

func readHeader(path string) (column.List, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	header, err := csv.NewReader(f).Read()
	if err == io.EOF {
		return nil, errors.Wrap(customerrors.ErrSchemaMismatch, "missing header row")
	} else if err != nil {
		return nil, wrapReadErr(err, path)
	}
	return column.List(header), nil
}

func openFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrapf(customerrors.ErrTableNotFound, "'%s'", helpers.TrimSuffix(filepath.Base(path), Ext))
	}
	return f, customerrors.IOf(err, "failed to open '%s'", path)
}

func wrapReadErr(err error, path string) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return errors.Wrapf(customerrors.ErrSchemaMismatch, "malformed row in '%s': %v", filepath.Base(path), pe)
	}
	return customerrors.IOf(err, "failed to read '%s'", path)
}
