package executor

import (
	"go-flatdb/services/parser/query"
	"go-flatdb/services/render"
)

func (es *ExecutorService) dmlUpdate(q *query.QueryUpdate) (*render.Report, error) {
	res, err := es.engine.Update(q.Table, q.CondCol, q.CondVal, q.UpdateCol, q.UpdateVal)
	if err != nil {
		return nil, err
	}
	return render.Successf("updated %d of %d rows in '%s'", res.Affected, res.Processed, q.Table), nil
}
