package table

import (
	"go-flatdb/pkg/types"
)

// Append writes rows at the end of the table file. Every row is checked
// against the header width before anything is written.
func (t *Table) Append(rows ...types.Row) error {
	for _, row := range rows {
		if len(row) != len(t.columns) {
			return schemaWidthErr(len(row), len(t.columns))
		}
	}

	w, err := openAppend(t.path, len(t.columns))
	if err != nil {
		return err
	}

	for _, row := range rows {
		if err := w.Write(row); err != nil {
			w.Close()
			return err
		}
	}
	return w.Close()
}
