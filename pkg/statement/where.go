package statement

import (
	"go-flatdb/pkg/column"
	"go-flatdb/pkg/customerrors"
	"go-flatdb/pkg/types"

	"github.com/pkg/errors"
)

// WhereStatement is a conjunction of statements. Exactly one of And or
// Statement is set.
type WhereStatement struct {
	And       []*WhereStatement
	Statement *Statement
}

func (ws *WhereStatement) Bind(columns column.List) (Matcher, error) {
	if ws.Statement != nil {
		return ws.Statement.Bind(columns)
	}

	if len(ws.And) != 0 {
		matchers, err := bindAll(ws.And, columns)
		if err != nil {
			return nil, err
		}
		return func(row types.Row) bool {
			for _, m := range matchers {
				if !m(row) {
					return false
				}
			}
			return true
		}, nil
	}

	return nil, errors.Wrap(customerrors.ErrInvalidArgument, "invalid where statement")
}

func bindAll(list []*WhereStatement, columns column.List) ([]Matcher, error) {
	matchers := make([]Matcher, 0, len(list))
	for _, ws := range list {
		m, err := ws.Bind(columns)
		if err != nil {
			return nil, err
		}
		matchers = append(matchers, m)
	}
	return matchers, nil
}

func WhereS(s *Statement) *WhereStatement {
	return &WhereStatement{Statement: s}
}

func And(list ...*Statement) *WhereStatement {
	andList := make([]*WhereStatement, 0, len(list))
	for _, s := range list {
		andList = append(andList, WhereS(s))
	}

	return &WhereStatement{
		And: andList,
	}
}
