package index

import (
	"go-flatdb/pkg/table"
	"go-flatdb/pkg/types"

	"github.com/pkg/errors"
)

var errFound = errors.New("key found")

// Has reports whether key is present. Only the key's bucket is read.
func (i *Index) Has(key string) (bool, error) {
	b, err := i.openBucket(i.bucket(key))
	if err != nil {
		return false, err
	}

	err = b.Scan(func(row types.Row) error {
		if row[0] == key {
			return errFound
		}
		return nil
	})
	if err == errFound {
		return true, nil
	}
	return false, err
}

// Rebuild replaces every bucket with the keys fill emits. The index stays
// stale until Commit is called with the state of the scanned table file.
func (i *Index) Rebuild(fill func(emit func(key string) error) error) error {
	if err := i.Invalidate(); err != nil {
		return err
	}

	buckets := make([]*table.Staging, i.opts.Buckets)
	defer func() {
		for _, b := range buckets {
			if b != nil {
				b.Discard()
			}
		}
	}()

	for n := range buckets {
		st, err := table.NewStaging(i.bucketPath(n), bucketHeader)
		if err != nil {
			return err
		}
		buckets[n] = st
	}

	err := fill(func(key string) error {
		return buckets[i.bucket(key)].Write(types.Row{key})
	})
	if err != nil {
		return errors.Wrap(err, "failed to rebuild index")
	}

	for _, b := range buckets {
		if err := b.Commit(); err != nil {
			return err
		}
	}
	return nil
}
