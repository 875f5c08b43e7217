package executor

import (
	"fmt"
	"io"
	"sync"

	"go-flatdb/pkg/engine"
	"go-flatdb/services/parser"
	"go-flatdb/services/parser/query"
	"go-flatdb/services/render"

	"github.com/sirupsen/logrus"
)

// ExecutorService runs queries one at a time against an engine and renders
// their outcome. It is the only place operators are serialized.
type ExecutorService struct {
	mu     sync.Mutex
	engine *engine.Engine
	parser parser.ParserService
	log    logrus.FieldLogger
}

func New(e *engine.Engine, ps parser.ParserService, log logrus.FieldLogger) *ExecutorService {
	return &ExecutorService{engine: e, parser: ps, log: log}
}

// Exec runs q and writes its output and report to w. The operator error, if
// any, is rendered and also returned.
func (es *ExecutorService) Exec(q query.Querier, w io.Writer) error {
	es.mu.Lock()
	defer es.mu.Unlock()

	report, err := es.exec(q, w)
	if err != nil {
		es.log.WithError(err).WithField("command", q.Type()).Debug("command failed")
		report = render.FromError(err)
	}
	if _, werr := report.WriteTo(w); werr != nil {
		return werr
	}
	return err
}

// ExecLine parses and runs one command line. quit is true for the exit
// command.
func (es *ExecutorService) ExecLine(line string, w io.Writer) (quit bool, err error) {
	q, err := es.parser.ParseQuery(line)
	if err != nil {
		if _, werr := render.FromError(err).WriteTo(w); werr != nil {
			return false, werr
		}
		return false, err
	}
	return q.Type() == query.EXIT, es.Exec(q, w)
}

func (es *ExecutorService) exec(q query.Querier, w io.Writer) (*render.Report, error) {
	switch q.Type() {
	case query.CREATE:
		return es.ddlCreateTable(q.(*query.QueryCreateTable))
	case query.INSERT:
		return es.dmlInsert(q.(*query.QueryInsert))
	case query.SELECT:
		return es.dmlSelect(q.(*query.QuerySelect), w)
	case query.UPDATE:
		return es.dmlUpdate(q.(*query.QueryUpdate))
	case query.DELETE:
		return es.dmlDelete(q.(*query.QueryDelete))
	case query.SORT:
		return es.opSort(q.(*query.QuerySort))
	case query.GROUP:
		return es.opGroup(q.(*query.QueryGroup))
	case query.FILTER:
		return es.opFilter(q.(*query.QueryFilter))
	case query.JOIN:
		return es.opJoin(q.(*query.QueryJoin))
	case query.AGGREGATE:
		return es.opAggregate(q.(*query.QueryAggregate))
	case query.EXIT:
		return render.Successf("bye"), nil
	default:
		panic(fmt.Errorf("invalid query type: '%s'", q.Type()))
	}
}
