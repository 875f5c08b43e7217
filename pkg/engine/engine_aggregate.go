package engine

import (
	"go-flatdb/pkg/aggregator"
	"go-flatdb/pkg/customerrors"
	"go-flatdb/pkg/types"

	"github.com/pkg/errors"
)

// Aggregate folds col of table name with op in one pass. Every value must
// parse as an integer.
func (e *Engine) Aggregate(name, col, op string) (res *AggregateResult, err error) {
	finish := e.track("aggregate", name)
	defer func() {
		rows := 0
		if res != nil {
			rows = res.Rows
		}
		finish(err, rows)
	}()

	ag, err := aggregator.New(op)
	if err != nil {
		return nil, err
	}

	t, err := e.open(name)
	if err != nil {
		return nil, err
	}
	pos := t.Columns().Index(col)
	if pos == -1 {
		return nil, errors.Wrapf(customerrors.ErrEmptyResult, "no column '%s' in '%s'", col, name)
	}

	line := 0
	err = t.Chunks(e.cfg.ChunkSize, func(chunk types.Chunk) error {
		for _, row := range chunk {
			line++
			v, err := types.ParseInt(row[pos])
			if err != nil {
				return errors.WithMessagef(err, "row %d", line)
			}
			if err := ag.Apply(v); err != nil {
				return errors.WithMessagef(err, "row %d", line)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if ag.Count() == 0 {
		return nil, errors.Wrapf(customerrors.ErrEmptyResult, "table '%s' has no rows", name)
	}

	return &AggregateResult{
		Table:  name,
		Column: col,
		Op:     ag.Type(),
		Value:  ag.Value(),
		Rows:   ag.Count(),
	}, nil
}
