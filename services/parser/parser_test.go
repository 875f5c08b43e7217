package parser

import (
	"testing"

	"go-flatdb/pkg/customerrors"
	"go-flatdb/services/parser/query"

	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, line string) query.Querier {
	t.Helper()
	q, err := New().ParseQuery(line)
	require.NoError(t, err, line)
	return q
}

func TestParseQuery(t *testing.T) {
	cases := []struct {
		line string
		want query.Querier
	}{
		{"newTable|users|id, name ,age", &query.QueryCreateTable{
			Query: query.Query{Command: query.CREATE}, Table: "users", Columns: []string{"id", "name", "age"},
		}},
		{"addToTable|users|1,Alice,30", &query.QueryInsert{
			Query: query.Query{Command: query.INSERT}, Table: "users", Values: []string{"1", "Alice", "30"},
		}},
		{"showColumns|users|all", &query.QuerySelect{
			Query: query.Query{Command: query.SELECT}, Table: "users",
		}},
		{"showColumns|users", &query.QuerySelect{
			Query: query.Query{Command: query.SELECT}, Table: "users",
		}},
		{"showColumns|users|name,age", &query.QuerySelect{
			Query: query.Query{Command: query.SELECT}, Table: "users", Columns: []string{"name", "age"},
		}},
		{"sort|users|age", &query.QuerySort{
			Query: query.Query{Command: query.SORT}, Table: "users", Column: "age",
		}},
		{"SORT | users | age | byage", &query.QuerySort{
			Query: query.Query{Command: query.SORT}, Table: "users", Column: "age", Output: "byage",
		}},
		{"set|users|name|Bob|age|26", &query.QueryUpdate{
			Query: query.Query{Command: query.UPDATE}, Table: "users",
			CondCol: "name", CondVal: "Bob", UpdateCol: "age", UpdateVal: "26",
		}},
		{"remove|users|id|2", &query.QueryDelete{
			Query: query.Query{Command: query.DELETE}, Table: "users",
			Where: []query.Condition{{Column: "id", Value: "2"}},
		}},
		{"remove|users|name|Bob|age|", &query.QueryDelete{
			Query: query.Query{Command: query.DELETE}, Table: "users",
			Where: []query.Condition{{Column: "name", Value: "Bob"}, {Column: "age", Value: ""}},
		}},
		{"formGroups|users|age", &query.QueryGroup{
			Query: query.Query{Command: query.GROUP}, Table: "users", Column: "age",
		}},
		{"filter|users|age|30|biggerThan", &query.QueryFilter{
			Query: query.Query{Command: query.FILTER}, Table: "users", Column: "age", Value: "30", Kind: "biggerThan",
		}},
		{"getCommon|users|orders|id|user|both", &query.QueryJoin{
			Query: query.Query{Command: query.JOIN}, Left: "users", Right: "orders",
			LeftCol: "id", RightCol: "user", Output: "both",
		}},
		{"aggregate|users|age|average", &query.QueryAggregate{
			Query: query.Query{Command: query.AGGREGATE}, Table: "users", Column: "age", Op: "average",
		}},
		{" bye ", &query.QueryExit{Query: query.Query{Command: query.EXIT}}},
	}

	for _, c := range cases {
		require.Equal(t, c.want, parse(t, c.line), c.line)
	}
}

func TestParseQueryErrors(t *testing.T) {
	for _, line := range []string{
		"",
		"drop|users",
		"newTable|users",
		"sort|users|age|out|extra",
		"set|users|name|Bob|age",
		"bye|now",
		"remove||id|2",
		"remove|users|id|2|name",
		"remove|users|id|2||Bob",
	} {
		_, err := New().ParseQuery(line)
		require.ErrorIs(t, err, customerrors.ErrInvalidArgument, line)
	}

	_, err := New().ParseQuery("aggregate|users|age")
	require.ErrorContains(t, err, "aggregate|<table>|<column>|average|sum|minimum|maximum")
}
