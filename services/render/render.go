// Package render turns operator results into console output.
package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"go-flatdb/pkg/column"
	"go-flatdb/pkg/customerrors"
	"go-flatdb/pkg/types"

	"github.com/fatih/color"
)

type Status int

const (
	Success Status = iota
	Warning
	Failure
)

var statusColors = map[Status]*color.Color{
	Success: color.New(color.FgGreen),
	Warning: color.New(color.FgYellow),
	Failure: color.New(color.FgRed, color.Bold),
}

var statusLabels = map[Status]string{
	Success: "ok",
	Warning: "warning",
	Failure: "error",
}

func (s Status) String() string {
	return statusLabels[s]
}

// Report is the one line outcome of a command.
type Report struct {
	Status  Status
	Message string
}

func Successf(format string, args ...interface{}) *Report {
	return &Report{Status: Success, Message: fmt.Sprintf(format, args...)}
}

// FromError reports err as a warning when it left all tables as they were
// and nothing was produced, and as a failure otherwise.
func FromError(err error) *Report {
	if customerrors.IsRecoverable(err) {
		return &Report{Status: Warning, Message: err.Error()}
	}
	return &Report{Status: Failure, Message: err.Error()}
}

func (r *Report) WriteTo(w io.Writer) (int64, error) {
	n, err := statusColors[r.Status].Fprintf(w, "%s: %s\n", r.Status, r.Message)
	return int64(n), err
}

// Table lays rows out in aligned columns under a header. Each chunk is
// flushed as soon as it is written, so columns line up within a chunk and
// the header goes out with the first one.
type Table struct {
	tw   *tabwriter.Writer
	rows int
}

func NewTable(w io.Writer, header column.List) *Table {
	t := &Table{tw: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
	t.line(header)
	return t
}

func (t *Table) WriteChunk(chunk types.Chunk) error {
	for _, row := range chunk {
		if err := t.line(row); err != nil {
			return err
		}
		t.rows++
	}
	return t.tw.Flush()
}

func (t *Table) Rows() int {
	return t.rows
}

// Flush writes out whatever is still buffered, the header of an empty table
// included.
func (t *Table) Flush() error {
	return t.tw.Flush()
}

func (t *Table) line(values []string) error {
	_, err := fmt.Fprintln(t.tw, strings.Join(values, "\t"))
	return err
}
