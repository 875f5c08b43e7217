package query

import (
	"strings"

	"go-flatdb/pkg/customerrors"
	"go-flatdb/util/helpers"

	"github.com/pkg/errors"
)

// AllColumns selects every column of a table.
const AllColumns = "all"

type QueryInsert struct {
	Query
	Table  string   `json:"table"`
	Values []string `json:"values"`
}

func (q *QueryInsert) Parse(args []string) error {
	q.Table = args[0]
	q.Values = helpers.SplitList(args[1])
	return nil
}

type QuerySelect struct {
	Query
	Table string `json:"table"`
	// Columns is empty when every column is selected.
	Columns []string `json:"columns"`
}

func (q *QuerySelect) Parse(args []string) error {
	q.Table = args[0]
	if cols := optional(args, 1); cols != "" && !strings.EqualFold(cols, AllColumns) {
		q.Columns = helpers.SplitList(cols)
	}
	return nil
}

type QueryUpdate struct {
	Query
	Table     string `json:"table"`
	CondCol   string `json:"cond_col"`
	CondVal   string `json:"cond_val"`
	UpdateCol string `json:"update_col"`
	UpdateVal string `json:"update_val"`
}

func (q *QueryUpdate) Parse(args []string) error {
	q.Table, q.CondCol, q.CondVal, q.UpdateCol, q.UpdateVal = args[0], args[1], args[2], args[3], args[4]
	return nil
}

// Condition asks for Column to equal Value.
type Condition struct {
	Column string `json:"column"`
	Value  string `json:"value"`
}

// QueryDelete removes the rows meeting every condition.
type QueryDelete struct {
	Query
	Table string      `json:"table"`
	Where []Condition `json:"where"`
}

func (q *QueryDelete) Parse(args []string) error {
	q.Table = args[0]
	pairs := args[1:]
	if len(pairs)%2 != 0 {
		return errors.Wrap(customerrors.ErrInvalidArgument, "every condition column needs a value")
	}
	for i := 0; i < len(pairs); i += 2 {
		if pairs[i] == "" {
			return errors.Wrapf(customerrors.ErrInvalidArgument, "empty column in condition %d", i/2+1)
		}
		q.Where = append(q.Where, Condition{Column: pairs[i], Value: pairs[i+1]})
	}
	return nil
}
