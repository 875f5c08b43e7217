package engine

import (
	"go-flatdb/pkg/column"
	"go-flatdb/pkg/types"
)

// Select projects columns of table name. No columns means all of them.
// Unknown columns fail here, before any row is read.
func (e *Engine) Select(name string, columns []string) (*Selection, error) {
	t, err := e.open(name)
	if err != nil {
		return nil, err
	}

	header := t.Columns()
	if len(columns) > 0 {
		header = column.List(columns)
	}
	positions, err := t.Columns().Positions(header...)
	if err != nil {
		return nil, err
	}

	return &Selection{
		Columns:   header,
		engine:    e,
		table:     t,
		positions: positions,
	}, nil
}

// Chunks calls fn with consecutive projected chunks of the selection.
func (s *Selection) Chunks(fn func(chunk types.Chunk) error) (err error) {
	rows := 0
	finish := s.engine.track("select", s.table.Name())
	defer func() { finish(err, rows) }()

	return s.table.Chunks(s.engine.cfg.ChunkSize, func(chunk types.Chunk) error {
		out := make(types.Chunk, len(chunk))
		for i, row := range chunk {
			out[i] = row.Project(s.positions)
		}
		rows += len(out)
		return fn(out)
	})
}
