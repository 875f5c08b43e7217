package query

import "go-flatdb/util/helpers"

type QueryCreateTable struct {
	Query
	Table   string   `json:"table"`
	Columns []string `json:"columns"`
}

func (q *QueryCreateTable) Parse(args []string) error {
	q.Table = args[0]
	q.Columns = helpers.SplitList(args[1])
	return nil
}
