// Package index keeps a persistent set of key column values for one table so
// uniqueness checks read a single bucket instead of the whole table.
//
// Keys are hashed into a fixed number of headered CSV bucket files inside the
// index directory. meta.json records the size and modification time of the
// table file the buckets were built from; any other state of the table file
// makes the index stale and it must be rebuilt before use.
package index

import (
	"os"
	"path/filepath"
	"strconv"

	"go-flatdb/pkg/column"
	"go-flatdb/pkg/customerrors"
	"go-flatdb/pkg/table"
	"go-flatdb/util/helpers"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
)

// Ext is the suffix of an index directory, next to the table file.
const Ext = ".idx"

var bucketHeader = column.List{"key"}

type Index struct {
	dir  string
	opts Options
	meta *Meta
}

// Dir returns the index directory of table name inside dataDir.
func Dir(dataDir, name string) string {
	return filepath.Join(dataDir, name+Ext)
}

// Open loads the index stored in dir, creating the directory if needed.
// A newly created or mismatched index is stale until Rebuild and Commit.
func Open(dir string, opts Options) (*Index, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if err := helpers.CreateDir(dir); err != nil {
		return nil, customerrors.IOf(err, "failed to create index dir '%s'", dir)
	}

	meta, err := readMeta(dir)
	if err != nil {
		return nil, err
	}
	if meta != nil && (meta.Column != opts.Column || meta.Buckets != opts.Buckets) {
		meta = nil
	}

	return &Index{dir: dir, opts: opts, meta: meta}, nil
}

// Fresh reports whether the buckets describe the table file state fi.
func (i *Index) Fresh(fi os.FileInfo) bool {
	return i.meta != nil && i.meta.describes(fi)
}

// Commit records fi as the table file state the buckets now describe.
func (i *Index) Commit(fi os.FileInfo) error {
	m := &Meta{
		Column:  i.opts.Column,
		Buckets: i.opts.Buckets,
		Size:    fi.Size(),
		ModTime: fi.ModTime().UnixNano(),
	}
	if err := writeMeta(i.dir, m); err != nil {
		return err
	}
	i.meta = m
	return nil
}

// Invalidate marks the index stale without touching the buckets.
func (i *Index) Invalidate() error {
	i.meta = nil
	return removeMeta(i.dir)
}

// Drop deletes the index directory.
func (i *Index) Drop() error {
	i.meta = nil
	return customerrors.IOf(os.RemoveAll(i.dir), "failed to drop index '%s'", i.dir)
}

func (i *Index) bucket(key string) int {
	return int(xxhash.Sum64String(key) % uint64(i.opts.Buckets))
}

func (i *Index) bucketName(n int) string {
	return "bucket-" + strconv.Itoa(n)
}

func (i *Index) bucketPath(n int) string {
	return table.Path(i.dir, i.bucketName(n))
}

func (i *Index) openBucket(n int) (*table.Table, error) {
	b, err := table.Open(i.dir, i.bucketName(n))
	if err != nil {
		return nil, errors.WithMessagef(err, "index bucket %d", n)
	}
	return b, nil
}
