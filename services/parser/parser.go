package parser

import (
	"sort"
	"strings"

	"go-flatdb/pkg/customerrors"
	"go-flatdb/services/parser/kwords"
	"go-flatdb/services/parser/query"

	"github.com/pkg/errors"
)

type ParserService interface {
	ParseQuery(line string) (query.Querier, error)
}

type ParserServiceT struct{}

func New() *ParserServiceT {
	return &ParserServiceT{}
}

// ParseQuery splits a pipe delimited command line into a query. Command
// names are case-insensitive, arguments are trimmed.
func (ps *ParserServiceT) ParseQuery(line string) (query.Querier, error) {
	parts := strings.Split(strings.TrimSpace(line), kwords.Separator)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	name := strings.ToLower(parts[0])
	form, ok := kwords.Commands[name]
	if !ok {
		return nil, errors.Wrapf(customerrors.ErrInvalidArgument, "unknown command '%s', expected one of: %s", parts[0], commandList())
	}

	args := parts[1:]
	if len(args) < form.Min || len(args) > form.Max {
		return nil, errors.Wrapf(customerrors.ErrInvalidArgument, "wrong number of arguments, expected '%s'", form.Usage)
	}
	for _, a := range args[:form.Min] {
		if a == "" {
			return nil, errors.Wrapf(customerrors.ErrInvalidArgument, "empty argument, expected '%s'", form.Usage)
		}
	}

	q := newQuery(name)
	return q, q.Parse(args)
}

func newQuery(name string) query.Querier {
	switch name {
	case "newtable":
		return &query.QueryCreateTable{Query: query.Query{Command: query.CREATE}}
	case "addtotable":
		return &query.QueryInsert{Query: query.Query{Command: query.INSERT}}
	case "showcolumns":
		return &query.QuerySelect{Query: query.Query{Command: query.SELECT}}
	case "sort":
		return &query.QuerySort{Query: query.Query{Command: query.SORT}}
	case "set":
		return &query.QueryUpdate{Query: query.Query{Command: query.UPDATE}}
	case "remove":
		return &query.QueryDelete{Query: query.Query{Command: query.DELETE}}
	case "formgroups":
		return &query.QueryGroup{Query: query.Query{Command: query.GROUP}}
	case "filter":
		return &query.QueryFilter{Query: query.Query{Command: query.FILTER}}
	case "getcommon":
		return &query.QueryJoin{Query: query.Query{Command: query.JOIN}}
	case "aggregate":
		return &query.QueryAggregate{Query: query.Query{Command: query.AGGREGATE}}
	default:
		return &query.QueryExit{Query: query.Query{Command: query.EXIT}}
	}
}

func commandList() string {
	names := make([]string, 0, len(kwords.Commands))
	for _, f := range kwords.Commands {
		names = append(names, strings.SplitN(f.Usage, kwords.Separator, 2)[0])
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
