package executor

import (
	"go-flatdb/services/parser/query"
	"go-flatdb/services/render"
)

func (es *ExecutorService) ddlCreateTable(q *query.QueryCreateTable) (*render.Report, error) {
	t, err := es.engine.CreateTable(q.Table, q.Columns)
	if err != nil {
		return nil, err
	}
	return render.Successf("table '%s' created with columns %s", t.Name(), t.Columns()), nil
}
