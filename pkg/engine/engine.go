// Package engine runs the relational operators over the tables of one data
// directory. Every operator holds at most one chunk of rows in memory, except
// grouping which holds one hash bucket.
//
// The engine does no locking. Callers must not run two operators on the same
// table at once.
package engine

import (
	"path/filepath"
	"time"

	"go-flatdb/config"
	"go-flatdb/pkg/column"
	"go-flatdb/pkg/customerrors"
	"go-flatdb/pkg/table"
	"go-flatdb/pkg/workspace"
	"go-flatdb/util/helpers"
	"go-flatdb/util/logger"
	"go-flatdb/util/timer"

	"github.com/sirupsen/logrus"
)

// Output names used when the caller does not pick one.
const (
	DefaultSortOutput   = "ordered"
	DefaultGroupOutput  = "grouped"
	DefaultFilterOutput = "filtered"
	DefaultJoinOutput   = "joined"
)

const tmpDir = ".tmp"

type Engine struct {
	cfg *config.EngineConfig
	log logrus.FieldLogger
	tmp string
}

func New(cfg *config.EngineConfig, log logrus.FieldLogger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.L
	}

	tmp := filepath.Join(cfg.DataDir, tmpDir)
	if err := helpers.CreateDir(tmp); err != nil {
		return nil, customerrors.IOf(err, "failed to create data dir '%s'", cfg.DataDir)
	}

	return &Engine{cfg: cfg, log: log, tmp: tmp}, nil
}

func (e *Engine) Config() *config.EngineConfig {
	return e.cfg
}

func (e *Engine) open(name string) (*table.Table, error) {
	return table.Open(e.cfg.DataDir, name)
}

// track logs the start of op and returns the function logging its end.
func (e *Engine) track(op, name string) func(err error, rows int) {
	l := e.log.WithFields(logrus.Fields{"op": op, "table": name})
	l.Debug("started")
	elapsed := timer.Start()

	return func(err error, rows int) {
		l := l.WithFields(logrus.Fields{
			"rows":    rows,
			"elapsed": elapsed().Round(time.Microsecond),
		})
		if err != nil {
			l.WithError(err).Debug("aborted")
			return
		}
		l.Debug("finished")
	}
}

// workspace creates a scratch directory for one call. The returned cleanup
// must run on every exit path.
func (e *Engine) workspace(op string) (*workspace.Workspace, func(), error) {
	ws, err := workspace.New(e.tmp, op)
	if err != nil {
		return nil, nil, err
	}

	return ws, func() {
		if err := ws.Remove(); err != nil {
			e.log.WithError(err).WithField("op", op).Warn("failed to remove workspace")
		}
	}, nil
}

func outputName(output, def string) (string, error) {
	if output == "" {
		output = def
	}
	return output, table.ValidateName(output)
}

// output stages a new table called name. Nothing becomes visible under name
// until commitOutput.
func (e *Engine) output(name string, columns column.List) (*table.Staging, error) {
	return table.NewStaging(table.Path(e.cfg.DataDir, name), columns)
}

// commitOutput publishes st as table name. Any key index of a table it
// replaces no longer applies and is dropped.
func (e *Engine) commitOutput(name string, st *table.Staging) (*OutputResult, error) {
	if err := st.Commit(); err != nil {
		return nil, err
	}
	e.dropKeyIndex(name)
	return &OutputResult{
		Table: name,
		Path:  table.Path(e.cfg.DataDir, name),
		Rows:  st.Rows(),
	}, nil
}
