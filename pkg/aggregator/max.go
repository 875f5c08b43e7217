package aggregator

import "go-flatdb/util/helpers"

type AggregationMAX struct {
	AggregatorBase
	Val int64
}

func (as *AggregationMAX) Apply(value int64) error {
	if as.Rows == 0 {
		as.Val = value
	}
	as.Val = helpers.Max(as.Val, value)
	as.Rows++
	return nil
}

func (as *AggregationMAX) Value() Value {
	return Value{Int: as.Val}
}
