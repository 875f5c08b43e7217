package query

type QueryCommandType string

const (
	CREATE    QueryCommandType = "newTable"
	INSERT    QueryCommandType = "addToTable"
	SELECT    QueryCommandType = "showColumns"
	SORT      QueryCommandType = "sort"
	UPDATE    QueryCommandType = "set"
	DELETE    QueryCommandType = "remove"
	GROUP     QueryCommandType = "formGroups"
	FILTER    QueryCommandType = "filter"
	JOIN      QueryCommandType = "getCommon"
	AGGREGATE QueryCommandType = "aggregate"
	EXIT      QueryCommandType = "bye"
)

type Querier interface {
	Type() QueryCommandType
	Parse(args []string) error
}

type Query struct {
	Command QueryCommandType `json:"command"`
}

func (q *Query) Type() QueryCommandType {
	return q.Command
}

// optional returns args[i] or "" when the argument was left out.
func optional(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
