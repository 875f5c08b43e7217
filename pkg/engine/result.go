package engine

import (
	"go-flatdb/pkg/aggregator"
	"go-flatdb/pkg/column"
	"go-flatdb/pkg/table"
)

// OutputResult describes a table produced by an operator.
type OutputResult struct {
	Table string
	Path  string
	Rows  int
}

func (r *OutputResult) rows() int {
	if r == nil {
		return 0
	}
	return r.Rows
}

// RewriteResult reports an in place rewrite of a table.
type RewriteResult struct {
	Processed int
	Affected  int
}

func (r *RewriteResult) rows() int {
	if r == nil {
		return 0
	}
	return r.Affected
}

type JoinResult struct {
	OutputResult
	// InnerPasses counts the full scans of the right table, one per chunk
	// of the left table.
	InnerPasses int
}

func (r *JoinResult) rows() int {
	if r == nil {
		return 0
	}
	return r.Rows
}

type AggregateResult struct {
	Table  string
	Column string
	Op     aggregator.AggregatorType
	Value  aggregator.Value
	Rows   int
}

// Selection is a projection of a table, resolved before any row is read.
type Selection struct {
	Columns column.List

	engine    *Engine
	table     *table.Table
	positions []int
}
