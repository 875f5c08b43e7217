package table

import (
	"go-flatdb/pkg/customerrors"
	"go-flatdb/pkg/types"

	"github.com/pkg/errors"
)

var errStopScan = errors.New("stop scan")

// HasKey reports whether any row holds value in column. It scans the whole
// table on every call. A missing table or column never holds a duplicate.
func (t *Table) HasKey(column, value string) (bool, error) {
	pos := t.columns.Index(column)
	if pos == -1 {
		return false, nil
	}

	found := false
	err := t.Scan(func(row types.Row) error {
		if row[pos] == value {
			found = true
			return errStopScan
		}
		return nil
	})
	if err == errStopScan || errors.Is(err, customerrors.ErrTableNotFound) {
		return found, nil
	}
	return found, err
}

func schemaWidthErr(got, want int) error {
	return errors.Wrapf(customerrors.ErrSchemaMismatch, "row has %d values, table has %d columns", got, want)
}
