package index

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go-flatdb/pkg/customerrors"
)

const metaFile = "meta.json"

// Meta records which table file state the buckets describe.
type Meta struct {
	Column  string `json:"column"`
	Buckets int    `json:"buckets"`
	Size    int64  `json:"size"`
	ModTime int64  `json:"mod_time"`
}

func (m *Meta) describes(fi os.FileInfo) bool {
	return m.Size == fi.Size() && m.ModTime == fi.ModTime().UnixNano()
}

func readMeta(dir string) (*Meta, error) {
	blob, err := os.ReadFile(filepath.Join(dir, metaFile))
	if os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, customerrors.IOf(err, "failed to read index meta in '%s'", dir)
	}

	m := &Meta{}
	if err := json.Unmarshal(blob, m); err != nil {
		// unreadable meta is the same as none, the index gets rebuilt
		return nil, nil
	}
	return m, nil
}

func writeMeta(dir string, m *Meta) error {
	blob, err := json.Marshal(m)
	if err != nil {
		return err
	}

	tmp := filepath.Join(dir, metaFile+".tmp")
	if err := os.WriteFile(tmp, blob, 0644); err != nil {
		return customerrors.IOf(err, "failed to write index meta in '%s'", dir)
	}
	return customerrors.IOf(os.Rename(tmp, filepath.Join(dir, metaFile)), "failed to replace index meta in '%s'", dir)
}

func removeMeta(dir string) error {
	err := os.Remove(filepath.Join(dir, metaFile))
	if os.IsNotExist(err) {
		return nil
	}
	return customerrors.IOf(err, "failed to invalidate index in '%s'", dir)
}
