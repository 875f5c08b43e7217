package executor

import (
	"go-flatdb/services/parser/query"
	"go-flatdb/services/render"
)

func (es *ExecutorService) opSort(q *query.QuerySort) (*render.Report, error) {
	res, err := es.engine.OrderBy(q.Table, q.Column, q.Output)
	if err != nil {
		return nil, err
	}
	return render.Successf("sorted '%s' by '%s' into '%s' (%d rows)", q.Table, q.Column, res.Table, res.Rows), nil
}

func (es *ExecutorService) opGroup(q *query.QueryGroup) (*render.Report, error) {
	res, err := es.engine.GroupBy(q.Table, q.Column, q.Output)
	if err != nil {
		return nil, err
	}
	return render.Successf("grouped '%s' by '%s' into '%s' (%d rows)", q.Table, q.Column, res.Table, res.Rows), nil
}

func (es *ExecutorService) opFilter(q *query.QueryFilter) (*render.Report, error) {
	res, err := es.engine.Filter(q.Table, q.Column, q.Value, q.Kind, q.Output)
	if err != nil {
		return nil, err
	}
	return render.Successf("%d rows of '%s' written to '%s'", res.Rows, q.Table, res.Table), nil
}

func (es *ExecutorService) opJoin(q *query.QueryJoin) (*render.Report, error) {
	res, err := es.engine.Join(q.Left, q.Right, q.LeftCol, q.RightCol, q.Output)
	if err != nil {
		return nil, err
	}
	return render.Successf(
		"joined '%s' and '%s' into '%s' (%d rows, %d passes over '%s')",
		q.Left, q.Right, res.Table, res.Rows, res.InnerPasses, q.Right,
	), nil
}

func (es *ExecutorService) opAggregate(q *query.QueryAggregate) (*render.Report, error) {
	res, err := es.engine.Aggregate(q.Table, q.Column, q.Op)
	if err != nil {
		return nil, err
	}
	return render.Successf("%s of '%s' in '%s': %s", res.Op, res.Column, res.Table, res.Value), nil
}
