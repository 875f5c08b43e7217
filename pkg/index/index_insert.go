package index

import "go-flatdb/pkg/types"

// Add appends keys to their buckets.
func (i *Index) Add(keys ...string) error {
	for _, n := range i.groupByBucket(keys) {
		b, err := i.openBucket(n.bucket)
		if err != nil {
			return err
		}

		rows := make([]types.Row, 0, len(n.keys))
		for _, k := range n.keys {
			rows = append(rows, types.Row{k})
		}
		if err := b.Append(rows...); err != nil {
			return err
		}
	}
	return nil
}

type bucketKeys struct {
	bucket int
	keys   []string
}

func (i *Index) groupByBucket(keys []string) []bucketKeys {
	pos := map[int]int{}
	groups := []bucketKeys{}
	for _, k := range keys {
		n := i.bucket(k)
		p, ok := pos[n]
		if !ok {
			p = len(groups)
			pos[n] = p
			groups = append(groups, bucketKeys{bucket: n})
		}
		groups[p].keys = append(groups[p].keys, k)
	}
	return groups
}
