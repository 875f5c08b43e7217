package column

import (
	"strings"

	"go-flatdb/pkg/customerrors"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// List is the ordered header of a table. A column's position in the list is
// its position in every row.
type List []string

// New validates names as a table header: non-empty, unique, no surrounding
// whitespace.
func New(names []string) (List, error) {
	if len(names) == 0 {
		return nil, errors.Wrap(customerrors.ErrInvalidArgument, "table must have at least one column")
	}

	seen := make(map[string]struct{}, len(names))
	l := make(List, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			return nil, errors.Wrap(customerrors.ErrInvalidArgument, "empty column name")
		}
		if _, ok := seen[n]; ok {
			return nil, errors.Wrapf(customerrors.ErrInvalidArgument, "duplicate column name '%s'", n)
		}
		seen[n] = struct{}{}
		l = append(l, n)
	}
	return l, nil
}

// Index returns the position of name or -1.
func (l List) Index(name string) int {
	return slices.Index(l, name)
}

func (l List) Has(name string) bool {
	return l.Index(name) != -1
}

// Positions resolves names to row positions, failing with ErrSchemaMismatch
// on the first unknown name.
func (l List) Positions(names ...string) ([]int, error) {
	pos := make([]int, 0, len(names))
	for _, n := range names {
		i := l.Index(n)
		if i == -1 {
			return nil, errors.Wrapf(customerrors.ErrSchemaMismatch, "column not found: '%s'", n)
		}
		pos = append(pos, i)
	}
	return pos, nil
}

// Position is Positions for a single column.
func (l List) Position(name string) (int, error) {
	pos, err := l.Positions(name)
	if err != nil {
		return -1, err
	}
	return pos[0], nil
}

// Qualify returns a copy of l with every name prefixed.
func (l List) Qualify(prefix string) List {
	q := make(List, len(l))
	for i, n := range l {
		q[i] = prefix + n
	}
	return q
}

func (l List) Equal(o List) bool {
	return slices.Equal(l, o)
}

func (l List) String() string {
	return strings.Join(l, ",")
}
