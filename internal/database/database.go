package database

import (
	"context"
	"time"

	"github.com/odvcencio/maestro/internal/catalog"
)

// DB defines the snapshot store interface. Implemented by the SQLite backend.
type DB interface {
	Close() error
	Migrate(ctx context.Context) error

	SaveDataset(ctx context.Context, ds catalog.Dataset, savedAt time.Time) error
	LoadDataset(ctx context.Context) (catalog.Dataset, error)
	SnapshotInfo(ctx context.Context) (SnapshotInfo, error)
}

// SnapshotInfo summarizes a stored snapshot for logs and the stats command.
type SnapshotInfo struct {
	SavedAt time.Time      `json:"saved_at"`
	Rows    map[string]int `json:"rows"`
}
