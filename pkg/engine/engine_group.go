package engine

import (
	"strconv"
	"strings"

	"go-flatdb/pkg/column"
	"go-flatdb/pkg/customerrors"
	"go-flatdb/pkg/table"
	"go-flatdb/pkg/types"
	"go-flatdb/pkg/workspace"
	"go-flatdb/util/stream"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
)

// GroupBy writes the rows of table name to output so that rows sharing the
// trimmed value of col are adjacent. The trimmed value replaces the
// original one.
//
// Rows are hashed on their group value into bucket files. Every group lives
// in exactly one bucket, so buckets are grouped one at a time in memory.
// Within a bucket groups appear in order of discovery and rows keep their
// source order.
func (e *Engine) GroupBy(name, col, output string) (res *OutputResult, err error) {
	finish := e.track("groupBy", name)
	defer func() { finish(err, res.rows()) }()

	if output, err = outputName(output, DefaultGroupOutput); err != nil {
		return nil, err
	}

	t, err := e.open(name)
	if err != nil {
		return nil, err
	}
	pos, err := t.Columns().Position(col)
	if err != nil {
		return nil, err
	}

	ws, cleanup, err := e.workspace("group")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	buckets := make([]*table.Writer, e.cfg.GroupBuckets)
	defer func() {
		for _, b := range buckets {
			if b != nil {
				b.Close()
			}
		}
	}()

	rows := 0
	err = t.Chunks(e.cfg.ChunkSize, func(chunk types.Chunk) error {
		for _, row := range chunk {
			row[pos] = strings.TrimSpace(row[pos])
			n := xxhash.Sum64String(row[pos]) % uint64(len(buckets))
			if buckets[n] == nil {
				w, err := ws.Create(bucketName(int(n)), t.Columns())
				if err != nil {
					return err
				}
				buckets[n] = w
			}
			if err := buckets[n].Write(row); err != nil {
				return err
			}
		}
		rows += len(chunk)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, errors.Wrapf(customerrors.ErrEmptyResult, "table '%s' has no rows to group", name)
	}

	st, err := e.output(output, t.Columns())
	if err != nil {
		return nil, err
	}
	defer st.Discard()

	for n, b := range buckets {
		if b == nil {
			continue
		}
		if err := b.Close(); err != nil {
			return nil, err
		}
		if err := groupBucket(ws, n, pos, t.Columns(), st); err != nil {
			return nil, err
		}
	}

	return e.commitOutput(output, st)
}

func groupBucket(ws *workspace.Workspace, n, pos int, columns column.List, st *table.Staging) error {
	rr, err := ws.Open(bucketName(n), columns)
	if err != nil {
		return err
	}
	defer rr.Close()

	order := []string{}
	groups := map[string]types.Chunk{}
	err = stream.Each[types.Row](rr, func(row types.Row) error {
		key := row[pos]
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], row)
		return nil
	})
	if err != nil {
		return err
	}

	for _, key := range order {
		if err := st.WriteChunk(groups[key]); err != nil {
			return err
		}
	}
	return nil
}

func bucketName(n int) string {
	return "bucket-" + strconv.Itoa(n)
}
