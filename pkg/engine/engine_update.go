package engine

import (
	"go-flatdb/pkg/customerrors"
	"go-flatdb/pkg/index"
	"go-flatdb/pkg/types"

	"github.com/pkg/errors"
)

// Update sets updateCol to updateVal on every row of table name whose condCol
// is exactly condVal, then replaces the table file atomically.
//
// When either column is the key column, updateVal must not already be a key.
// Setting the key column on more than one row is refused as well. A refused
// update leaves the table file byte-identical.
func (e *Engine) Update(name, condCol, condVal, updateCol, updateVal string) (res *RewriteResult, err error) {
	finish := e.track("update", name)
	defer func() { finish(err, res.rows()) }()

	t, err := e.open(name)
	if err != nil {
		return nil, err
	}
	pos, err := t.Columns().Positions(condCol, updateCol)
	if err != nil {
		return nil, err
	}
	condPos, updatePos := pos[0], pos[1]

	key := e.cfg.KeyColumn
	keyUpdate := updateCol == key

	var idx *index.Index
	if condCol == key || keyUpdate {
		if idx, err = e.freshKeyIndex(t); err != nil {
			return nil, err
		}

		dup, err := e.hasKey(t, idx, updateVal)
		if err != nil {
			return nil, err
		} else if dup {
			return nil, errors.Wrapf(customerrors.ErrDuplicateKey, "%s '%s' already exists in '%s'", key, updateVal, name)
		}
	} else {
		if idx, err = e.keyIndex(t); err != nil {
			return nil, err
		}
		if !e.isFresh(t, idx) {
			idx = nil
		}
	}

	res = &RewriteResult{}
	var removed []string
	res.Processed, err = e.rewrite(t, func(row types.Row) (types.Row, error) {
		if row[condPos] != condVal {
			return row, nil
		}

		res.Affected++
		if keyUpdate {
			if res.Affected > 1 {
				return nil, errors.Wrapf(customerrors.ErrDuplicateKey, "more than one row would get %s '%s'", key, updateVal)
			}
			removed = append(removed, row[updatePos])
		}
		row[updatePos] = updateVal
		return row, nil
	})
	if err != nil {
		return nil, err
	}

	var added []string
	if len(removed) > 0 {
		added = []string{updateVal}
	}
	e.keysChanged(t, idx, added, removed)
	return res, nil
}
