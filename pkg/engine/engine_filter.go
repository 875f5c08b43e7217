package engine

import (
	"go-flatdb/pkg/statement"
	"go-flatdb/pkg/table"
	"go-flatdb/pkg/types"

	"github.com/pkg/errors"
)

// Filter writes the rows of table name whose col compares to value as kind
// says to output. The source is not modified. kind is checked before any
// file is touched.
func (e *Engine) Filter(name, col, value, kind, output string) (res *OutputResult, err error) {
	finish := e.track("filter", name)
	defer func() { finish(err, res.rows()) }()

	k, err := statement.ParseKind(kind)
	if err != nil {
		return nil, err
	}
	if output, err = outputName(output, DefaultFilterOutput); err != nil {
		return nil, err
	}

	t, err := e.open(name)
	if err != nil {
		return nil, err
	}
	match, err := statement.FromKind(col, k, value).Bind(t.Columns())
	if err != nil {
		return nil, err
	}

	st, err := e.output(output, t.Columns())
	if err != nil {
		return nil, err
	}
	defer st.Discard()

	_, err = e.pipe(t, st, func(row types.Row) (types.Row, error) {
		if match(row) {
			return row, nil
		}
		return nil, nil
	})
	if err != nil {
		return nil, err
	}
	return e.commitOutput(output, st)
}

// Delete removes every row of table name matching pred, replacing the table
// file atomically.
func (e *Engine) Delete(name string, pred statement.Predicate) (res *RewriteResult, err error) {
	finish := e.track("delete", name)
	defer func() { finish(err, res.rows()) }()

	t, err := e.open(name)
	if err != nil {
		return nil, err
	}
	match, err := pred.Bind(t.Columns())
	if err != nil {
		return nil, err
	}

	idx, err := e.keyIndex(t)
	if err != nil {
		return nil, err
	}
	if !e.isFresh(t, idx) {
		idx = nil
	}
	keyPos := t.Columns().Index(e.cfg.KeyColumn)

	res = &RewriteResult{}
	removed := []string{}
	res.Processed, err = e.rewrite(t, func(row types.Row) (types.Row, error) {
		if !match(row) {
			return row, nil
		}
		res.Affected++
		// past the chunk size the index is invalidated anyway
		if idx != nil && len(removed) <= e.cfg.ChunkSize {
			removed = append(removed, row[keyPos])
		}
		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	e.keysChanged(t, idx, nil, removed)
	return res, nil
}

// Equals is the predicate of a point delete. It matches exactly the rows a
// filter with kind equalTo selects, so the two split a table between them.
func Equals(col, val string) *statement.Statement {
	return statement.FromKind(col, statement.EqualTo, val)
}

// pipe streams every row of t through fn into w. Rows for which fn returns
// nil are dropped. It returns the number of source rows read.
func (e *Engine) pipe(t *table.Table, w interface{ Write(types.Row) error }, fn func(row types.Row) (types.Row, error)) (int, error) {
	processed := 0
	err := t.Chunks(e.cfg.ChunkSize, func(chunk types.Chunk) error {
		for _, row := range chunk {
			processed++
			out, err := fn(row)
			if err != nil {
				return errors.WithMessagef(err, "row %d of '%s'", processed, t.Name())
			}
			if out == nil {
				continue
			}
			if err := w.Write(out); err != nil {
				return err
			}
		}
		return nil
	})
	return processed, err
}

// rewrite pipes t into a staging file that replaces t only if every row was
// processed. On failure t stays byte-identical.
func (e *Engine) rewrite(t *table.Table, fn func(row types.Row) (types.Row, error)) (int, error) {
	st, err := table.NewStaging(t.Path(), t.Columns())
	if err != nil {
		return 0, err
	}
	defer st.Discard()

	processed, err := e.pipe(t, st, fn)
	if err != nil {
		return processed, err
	}
	return processed, st.Commit()
}
