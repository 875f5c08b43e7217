package types

import (
	"fmt"
	"strconv"
	"strings"

	"go-flatdb/pkg/customerrors"

	"github.com/pkg/errors"
)

type Operator string

const (
	Identical      Operator = "==" // exact text equality, no numeric interpretation
	Equal          Operator = "="
	GreaterOrEqual Operator = ">="
	LessOrEqual    Operator = "<="
	Greater        Operator = ">"
	Less           Operator = "<"
	NotEqual       Operator = "!="
)

// Row is one record of a table, positional by header column.
type Row []string

// Chunk is a bounded batch of rows, the unit of in-memory processing.
type Chunk []Row

// Project returns the values of r at the given positions.
func (r Row) Project(positions []int) Row {
	out := make(Row, len(positions))
	for i, p := range positions {
		out[i] = r[p]
	}
	return out
}

// ParseInt interprets v as a base 10 integer, ignoring surrounding whitespace.
func ParseInt(v string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(customerrors.ErrValueConversion, "'%s' is not an integer", v)
	}
	return n, nil
}

// Compare orders two text values. When both parse as integers they are
// compared numerically, otherwise lexically.
func Compare(a, b string) int {
	ai, aErr := strconv.ParseInt(strings.TrimSpace(a), 10, 64)
	bi, bErr := strconv.ParseInt(strings.TrimSpace(b), 10, 64)
	if aErr == nil && bErr == nil {
		switch {
		case ai < bi:
			return -1
		case ai > bi:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a, b)
}

// CompareOp applies operator to a and b.
func CompareOp(a string, operator Operator, b string) bool {
	switch operator {
	case Identical:
		return a == b
	case Equal:
		return Compare(a, b) == 0
	case GreaterOrEqual:
		return Compare(a, b) >= 0
	case LessOrEqual:
		return Compare(a, b) <= 0
	case Greater:
		return Compare(a, b) > 0
	case Less:
		return Compare(a, b) < 0
	case NotEqual:
		return Compare(a, b) != 0
	}
	panic(fmt.Errorf("invalid operator:'%s'", operator))
}

// ValidOperator reports whether CompareOp accepts operator.
func ValidOperator(operator Operator) bool {
	switch operator {
	case Identical, Equal, GreaterOrEqual, LessOrEqual, Greater, Less, NotEqual:
		return true
	}
	return false
}
