package aggregator

type AggregationAVG struct {
	AggregationSUM
}

// Value divides the running sum by the number of applied values.
func (as *AggregationAVG) Value() Value {
	var val float64
	if as.Rows != 0 {
		val = float64(as.Sum) / float64(as.Rows)
	}
	return Value{Float: val, Real: true}
}
