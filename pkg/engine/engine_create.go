package engine

import "go-flatdb/pkg/table"

// CreateTable writes an empty table with the given header. An existing table
// is left untouched and ErrTableExists returned.
func (e *Engine) CreateTable(name string, columns []string) (t *table.Table, err error) {
	finish := e.track("createTable", name)
	defer func() { finish(err, 0) }()

	t, err = table.Create(e.cfg.DataDir, name, columns)
	if err != nil {
		return nil, err
	}
	e.dropKeyIndex(name)
	return t, nil
}
