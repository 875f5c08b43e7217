package query

type QuerySort struct {
	Query
	Table  string `json:"table"`
	Column string `json:"column"`
	Output string `json:"output"`
}

func (q *QuerySort) Parse(args []string) error {
	q.Table, q.Column, q.Output = args[0], args[1], optional(args, 2)
	return nil
}

type QueryGroup struct {
	Query
	Table  string `json:"table"`
	Column string `json:"column"`
	Output string `json:"output"`
}

func (q *QueryGroup) Parse(args []string) error {
	q.Table, q.Column, q.Output = args[0], args[1], optional(args, 2)
	return nil
}

type QueryFilter struct {
	Query
	Table  string `json:"table"`
	Column string `json:"column"`
	Value  string `json:"value"`
	Kind   string `json:"kind"`
	Output string `json:"output"`
}

func (q *QueryFilter) Parse(args []string) error {
	q.Table, q.Column, q.Value, q.Kind, q.Output = args[0], args[1], args[2], args[3], optional(args, 4)
	return nil
}

type QueryJoin struct {
	Query
	Left     string `json:"left"`
	Right    string `json:"right"`
	LeftCol  string `json:"left_col"`
	RightCol string `json:"right_col"`
	Output   string `json:"output"`
}

func (q *QueryJoin) Parse(args []string) error {
	q.Left, q.Right, q.LeftCol, q.RightCol, q.Output = args[0], args[1], args[2], args[3], optional(args, 4)
	return nil
}

type QueryAggregate struct {
	Query
	Table  string `json:"table"`
	Column string `json:"column"`
	Op     string `json:"op"`
}

func (q *QueryAggregate) Parse(args []string) error {
	q.Table, q.Column, q.Op = args[0], args[1], args[2]
	return nil
}

type QueryExit struct {
	Query
}

func (q *QueryExit) Parse([]string) error {
	return nil
}
