package stream

import "io"

// Reader yields items one at a time. Next returns io.EOF once exhausted.
type Reader[T any] interface {
	Next() (T, error)
}

// Each calls fn for every item of r until r is exhausted or fn fails.
func Each[T any](r Reader[T], fn func(T) error) error {
	for {
		itm, err := r.Next()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		if err := fn(itm); err != nil {
			return err
		}
	}
}
