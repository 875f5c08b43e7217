package executor

import (
	"go-flatdb/pkg/engine"
	"go-flatdb/pkg/statement"
	"go-flatdb/services/parser/query"
	"go-flatdb/services/render"
)

func (es *ExecutorService) dmlDelete(q *query.QueryDelete) (*render.Report, error) {
	where := make([]*statement.Statement, 0, len(q.Where))
	for _, c := range q.Where {
		where = append(where, engine.Equals(c.Column, c.Value))
	}

	res, err := es.engine.Delete(q.Table, statement.And(where...))
	if err != nil {
		return nil, err
	}
	return render.Successf("deleted %d of %d rows from '%s'", res.Affected, res.Processed, q.Table), nil
}
