package engine

import (
	"os"

	"go-flatdb/pkg/index"
	"go-flatdb/pkg/table"
	"go-flatdb/pkg/types"
)

// keyIndex opens the key index of t. It returns nil when indexing is off or
// t has no key column.
func (e *Engine) keyIndex(t *table.Table) (*index.Index, error) {
	if !e.cfg.KeyIndex || !t.Columns().Has(e.cfg.KeyColumn) {
		return nil, nil
	}
	return index.Open(index.Dir(e.cfg.DataDir, t.Name()), index.Options{
		Column:  e.cfg.KeyColumn,
		Buckets: e.cfg.IndexBuckets,
	})
}

// freshKeyIndex is keyIndex, rebuilt by one full scan of t if stale.
func (e *Engine) freshKeyIndex(t *table.Table) (*index.Index, error) {
	idx, err := e.keyIndex(t)
	if err != nil || idx == nil {
		return idx, err
	}

	fi, err := t.Stat()
	if err != nil {
		return nil, err
	}
	if idx.Fresh(fi) {
		return idx, nil
	}

	e.log.WithField("table", t.Name()).Debug("rebuilding key index")
	pos := t.Columns().Index(e.cfg.KeyColumn)
	err = idx.Rebuild(func(emit func(string) error) error {
		return t.Scan(func(row types.Row) error {
			return emit(row[pos])
		})
	})
	if err != nil {
		return nil, err
	}
	return idx, idx.Commit(fi)
}

// hasKey reports whether value is already a key of t.
func (e *Engine) hasKey(t *table.Table, idx *index.Index, value string) (bool, error) {
	if idx != nil {
		return idx.Has(value)
	}
	return t.HasKey(e.cfg.KeyColumn, value)
}

// isFresh reports whether idx describes t as it is now.
func (e *Engine) isFresh(t *table.Table, idx *index.Index) bool {
	if idx == nil {
		return false
	}
	fi, err := t.Stat()
	return err == nil && idx.Fresh(fi)
}

// keysChanged brings a previously fresh idx in line with t after t was
// written. Large change sets only invalidate the index, the next lookup
// rebuilds it. Failures leave the index stale, never the table.
func (e *Engine) keysChanged(t *table.Table, idx *index.Index, added, removed []string) {
	if idx == nil {
		return
	}

	err := func() error {
		if len(added)+len(removed) > e.cfg.ChunkSize {
			return idx.Invalidate()
		}
		if err := idx.Remove(removed...); err != nil {
			return err
		}
		if err := idx.Add(added...); err != nil {
			return err
		}
		fi, err := t.Stat()
		if err != nil {
			return err
		}
		return idx.Commit(fi)
	}()
	if err != nil {
		e.log.WithError(err).WithField("table", t.Name()).Warn("key index left stale")
		idx.Invalidate()
	}
}

// dropKeyIndex deletes the key index of table name, if there is one. Used
// whenever a table file is replaced wholesale.
func (e *Engine) dropKeyIndex(name string) {
	dir := index.Dir(e.cfg.DataDir, name)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return
	}

	err := func() error {
		idx, err := index.Open(dir, index.Options{Column: e.cfg.KeyColumn, Buckets: e.cfg.IndexBuckets})
		if err != nil {
			return err
		}
		return idx.Drop()
	}()
	if err != nil {
		e.log.WithError(err).WithField("table", name).Warn("failed to drop key index")
	}
}
