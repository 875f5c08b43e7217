package executor

import (
	"io"

	"go-flatdb/services/parser/query"
	"go-flatdb/services/render"
)

func (es *ExecutorService) dmlSelect(q *query.QuerySelect, w io.Writer) (*render.Report, error) {
	sel, err := es.engine.Select(q.Table, q.Columns)
	if err != nil {
		return nil, err
	}

	tbl := render.NewTable(w, sel.Columns)
	if err := sel.Chunks(tbl.WriteChunk); err != nil {
		tbl.Flush()
		return nil, err
	}
	if err := tbl.Flush(); err != nil {
		return nil, err
	}
	return render.Successf("%d rows in '%s'", tbl.Rows(), q.Table), nil
}
