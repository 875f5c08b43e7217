package engine

import (
	"go-flatdb/pkg/customerrors"
	"go-flatdb/pkg/index"
	"go-flatdb/pkg/types"

	"github.com/pkg/errors"
)

// Insert appends one row. The value at the key column position must not
// already be a key of the table.
func (e *Engine) Insert(name string, values types.Row) (err error) {
	finish := e.track("insert", name)
	defer func() {
		if err != nil {
			finish(err, 0)
		} else {
			finish(nil, 1)
		}
	}()

	t, err := e.open(name)
	if err != nil {
		return err
	}

	cols := t.Columns()
	if len(values) != len(cols) {
		return errors.Wrapf(
			customerrors.ErrSchemaMismatch,
			"got %d values, table '%s' has columns %s", len(values), name, cols,
		)
	}

	var (
		idx   *index.Index
		added []string
	)
	if pos := cols.Index(e.cfg.KeyColumn); pos != -1 {
		key := values[pos]
		if idx, err = e.freshKeyIndex(t); err != nil {
			return err
		}

		dup, err := e.hasKey(t, idx, key)
		if err != nil {
			return err
		} else if dup {
			return errors.Wrapf(customerrors.ErrDuplicateKey, "%s '%s' already exists in '%s'", e.cfg.KeyColumn, key, name)
		}
		added = append(added, key)
	}

	if err := t.Append(values); err != nil {
		return err
	}
	e.keysChanged(t, idx, added, nil)
	return nil
}
