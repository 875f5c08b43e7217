package index

import (
	"go-flatdb/pkg/customerrors"

	"github.com/pkg/errors"
)

type Options struct {
	// Column is the key column the index covers.
	Column string
	// Buckets is the number of bucket files keys are hashed into.
	Buckets int
}

func (o Options) validate() error {
	if o.Column == "" {
		return errors.Wrap(customerrors.ErrInvalidArgument, "index column must be set")
	}
	if o.Buckets <= 0 {
		return errors.Wrapf(customerrors.ErrInvalidArgument, "index buckets must be positive, got %d", o.Buckets)
	}
	return nil
}
