package config

import (
	"go-flatdb/pkg/customerrors"

	"github.com/pkg/errors"
)

type EngineConfig struct {
	// DataDir holds one <name>.csv file per table.
	DataDir string `yaml:"data_dir"`
	// ChunkSize caps the rows an operator keeps in memory at once.
	ChunkSize int `yaml:"chunk_size"`
	// KeyColumn must hold unique values, checked on insert and update.
	KeyColumn string `yaml:"key_column"`
	// KeyIndex enables the persistent key index instead of full scans.
	KeyIndex     bool `yaml:"key_index"`
	IndexBuckets int  `yaml:"index_buckets"`
	GroupBuckets int  `yaml:"group_buckets"`
}

func NewEngineConfig() *EngineConfig {
	return &EngineConfig{
		DataDir:      "./data",
		ChunkSize:    500,
		KeyColumn:    "id",
		KeyIndex:     true,
		IndexBuckets: 16,
		GroupBuckets: 16,
	}
}

func (c *EngineConfig) Validate() error {
	switch {
	case c.DataDir == "":
		return errors.Wrap(customerrors.ErrInvalidArgument, "data_dir must be set")
	case c.ChunkSize <= 0:
		return errors.Wrapf(customerrors.ErrInvalidArgument, "chunk_size must be positive, got %d", c.ChunkSize)
	case c.KeyColumn == "":
		return errors.Wrap(customerrors.ErrInvalidArgument, "key_column must be set")
	case c.IndexBuckets <= 0:
		return errors.Wrapf(customerrors.ErrInvalidArgument, "index_buckets must be positive, got %d", c.IndexBuckets)
	case c.GroupBuckets <= 0:
		return errors.Wrapf(customerrors.ErrInvalidArgument, "group_buckets must be positive, got %d", c.GroupBuckets)
	}
	return nil
}
