package statement

import (
	"strings"

	"go-flatdb/pkg/column"
	"go-flatdb/pkg/customerrors"
	"go-flatdb/pkg/types"

	"github.com/pkg/errors"
)

// Matcher tests one row of a table whose header was bound beforehand.
type Matcher func(row types.Row) bool

// Predicate is anything that can be bound to a header and evaluated per row.
// Bind fails with ErrSchemaMismatch when it references unknown columns.
type Predicate interface {
	Bind(columns column.List) (Matcher, error)
}

// Kind names a filter comparison as the command language spells it.
type Kind string

const (
	EqualTo     Kind = "equalTo"
	SmallerThan Kind = "smallerThan"
	BiggerThan  Kind = "biggerThan"
)

var kindOperators = map[Kind]types.Operator{
	EqualTo:     types.Equal,
	SmallerThan: types.Less,
	BiggerThan:  types.Greater,
}

// ParseKind accepts the recognized filter kinds case-insensitively.
func ParseKind(s string) (Kind, error) {
	for k := range kindOperators {
		if strings.EqualFold(string(k), strings.TrimSpace(s)) {
			return k, nil
		}
	}
	return "", errors.Wrapf(customerrors.ErrInvalidArgument, "invalid condition type: '%s'", s)
}

func (k Kind) Operator() types.Operator {
	return kindOperators[k]
}

// Statement compares one column against a constant.
type Statement struct {
	Col string
	Op  types.Operator
	Val string
}

func New(col string, op types.Operator, val string) *Statement {
	return &Statement{Col: col, Op: op, Val: val}
}

// FromKind builds the statement a filter kind stands for.
func FromKind(col string, kind Kind, val string) *Statement {
	return New(col, kind.Operator(), val)
}

func (s *Statement) Bind(columns column.List) (Matcher, error) {
	if !types.ValidOperator(s.Op) {
		return nil, errors.Wrapf(customerrors.ErrInvalidArgument, "invalid operator: '%s'", s.Op)
	}

	pos, err := columns.Position(s.Col)
	if err != nil {
		return nil, err
	}

	return func(row types.Row) bool {
		return types.CompareOp(row[pos], s.Op, s.Val)
	}, nil
}
