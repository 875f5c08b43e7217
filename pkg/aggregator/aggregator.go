package aggregator

import (
	"math"
	"strconv"
	"strings"

	"go-flatdb/pkg/customerrors"

	"github.com/pkg/errors"
)

type AggregatorType string

const (
	SUM AggregatorType = "sum"
	AVG AggregatorType = "average"
	MIN AggregatorType = "minimum"
	MAX AggregatorType = "maximum"
)

// Aggregator folds integer values into one scalar.
type Aggregator interface {
	Apply(value int64) error
	Value() Value
	Count() int
	Type() AggregatorType
}

// Value is an aggregate result. Average is the only real valued reducer.
type Value struct {
	Int   int64
	Float float64
	Real  bool
}

func (v Value) String() string {
	if v.Real {
		return strconv.FormatFloat(v.Float, 'f', -1, 64)
	}
	return strconv.FormatInt(v.Int, 10)
}

func Parse(name string) (AggregatorType, error) {
	switch typ := AggregatorType(strings.ToLower(strings.TrimSpace(name))); typ {
	case SUM, AVG, MIN, MAX:
		return typ, nil
	}
	return "", errors.Wrapf(
		customerrors.ErrInvalidArgument,
		"invalid operation '%s', choose from 'average', 'sum', 'minimum', or 'maximum'",
		name,
	)
}

func New(name string) (Aggregator, error) {
	typ, err := Parse(name)
	if err != nil {
		return nil, err
	}

	base := AggregatorBase{Typ: typ}
	switch typ {
	case AVG:
		return &AggregationAVG{AggregationSUM{AggregatorBase: base}}, nil
	case MIN:
		return &AggregationMIN{AggregatorBase: base}, nil
	case MAX:
		return &AggregationMAX{AggregatorBase: base}, nil
	default:
		return &AggregationSUM{AggregatorBase: base}, nil
	}
}

type AggregatorBase struct {
	Typ  AggregatorType
	Rows int
}

func (ab *AggregatorBase) Count() int {
	return ab.Rows
}

func (ab *AggregatorBase) Type() AggregatorType {
	return ab.Typ
}

func addInt(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, errors.Wrapf(customerrors.ErrValueConversion, "sum overflows int64 adding %d", b)
	}
	return a + b, nil
}
