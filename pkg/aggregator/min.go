package aggregator

import "go-flatdb/util/helpers"

type AggregationMIN struct {
	AggregatorBase
	Val int64
}

func (as *AggregationMIN) Apply(value int64) error {
	if as.Rows == 0 {
		as.Val = value
	}
	as.Val = helpers.Min(as.Val, value)
	as.Rows++
	return nil
}

func (as *AggregationMIN) Value() Value {
	return Value{Int: as.Val}
}
