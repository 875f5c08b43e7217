package engine

import (
	"strconv"

	"go-flatdb/pkg/table"
	"go-flatdb/pkg/types"
	"go-flatdb/pkg/types/sorted"
	"go-flatdb/util/stream"

	"golang.org/x/exp/slices"
)

// OrderBy writes the rows of table name, ascending by col, to output.
//
// Each chunk is sorted in memory and spilled to its own partition file, then
// all partitions are merged through a heap holding one row per partition.
// Equal keys keep their source order.
func (e *Engine) OrderBy(name, col, output string) (res *OutputResult, err error) {
	finish := e.track("orderBy", name)
	defer func() { finish(err, res.rows()) }()

	if output, err = outputName(output, DefaultSortOutput); err != nil {
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

	ws, cleanup, err := e.workspace("sort")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	parts := 0
	err = t.Chunks(e.cfg.ChunkSize, func(chunk types.Chunk) error {
		slices.SortStableFunc(chunk, func(a, b types.Row) int {
			return types.Compare(a[pos], b[pos])
		})

		w, err := ws.Create(partName(parts), t.Columns())
		if err != nil {
			return err
		}
		parts++
		if err := w.WriteChunk(chunk); err != nil {
			w.Close()
			return err
		}
		return w.Close()
	})
	if err != nil {
		return nil, err
	}

	sources := make([]stream.Reader[types.Row], 0, parts)
	for i := 0; i < parts; i++ {
		rr, err := ws.Open(partName(i), t.Columns())
		if err != nil {
			return nil, err
		}
		defer rr.Close()
		sources = append(sources, rr)
	}

	st, err := e.output(output, t.Columns())
	if err != nil {
		return nil, err
	}
	defer st.Discard()

	merged := sorted.Merge(sources, func(a, b types.Row) bool {
		return types.Compare(a[pos], b[pos]) < 0
	})
	if err := stream.Each(merged, st.Write); err != nil {
		return nil, err
	}

	e.log.WithField("partitions", parts).Debug("merged sort partitions")
	return e.commitOutput(output, st)
}

func partName(n int) string {
	return "part-" + strconv.Itoa(n)
}

var _ stream.Reader[types.Row] = (*table.RowReader)(nil)
