package executor

import (
	"go-flatdb/pkg/types"
	"go-flatdb/services/parser/query"
	"go-flatdb/services/render"
)

func (es *ExecutorService) dmlInsert(q *query.QueryInsert) (*render.Report, error) {
	if err := es.engine.Insert(q.Table, types.Row(q.Values)); err != nil {
		return nil, err
	}
	return render.Successf("1 row added to '%s'", q.Table), nil
}
