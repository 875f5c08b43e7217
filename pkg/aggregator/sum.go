package aggregator

type AggregationSUM struct {
	AggregatorBase
	Sum int64
}

func (as *AggregationSUM) Apply(value int64) error {
	sum, err := addInt(as.Sum, value)
	if err != nil {
		return err
	}
	as.Sum = sum
	as.Rows++
	return nil
}

func (as *AggregationSUM) Value() Value {
	return Value{Int: as.Sum}
}
