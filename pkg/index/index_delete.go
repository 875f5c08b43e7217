package index

import (
	"go-flatdb/pkg/table"
	"go-flatdb/pkg/types"
)

// Remove drops one occurrence of every given key. Each touched bucket is
// rewritten once.
func (i *Index) Remove(keys ...string) error {
	for _, g := range i.groupByBucket(keys) {
		if err := i.removeFromBucket(g); err != nil {
			return err
		}
	}
	return nil
}

func (i *Index) removeFromBucket(g bucketKeys) error {
	pending := make(map[string]int, len(g.keys))
	for _, k := range g.keys {
		pending[k]++
	}

	b, err := i.openBucket(g.bucket)
	if err != nil {
		return err
	}

	st, err := table.NewStaging(b.Path(), bucketHeader)
	if err != nil {
		return err
	}
	defer st.Discard()

	err = b.Scan(func(row types.Row) error {
		if pending[row[0]] > 0 {
			pending[row[0]]--
			return nil
		}
		return st.Write(row)
	})
	if err != nil {
		return err
	}
	return st.Commit()
}
