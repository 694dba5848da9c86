package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

func (s *SQLiteDB) SnapshotInfo(ctx context.Context) (SnapshotInfo, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT saved_at FROM snapshot_meta WHERE id = 1`).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return SnapshotInfo{}, ErrEmptySnapshot
	}
	if err != nil {
		return SnapshotInfo{}, fmt.Errorf("read snapshot meta: %w", err)
	}
	savedAt, err := parseTime(raw)
	if err != nil {
		return SnapshotInfo{}, err
	}

	info := SnapshotInfo{SavedAt: savedAt, Rows: make(map[string]int)}
	for _, table := range snapshotTables {
		if table == "snapshot_meta" {
			continue
		}
		var n int
		if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+table).Scan(&n); err != nil {
			return SnapshotInfo{}, fmt.Errorf("count %s: %w", table, err)
		}
		info.Rows[table] = n
	}
	return info, nil
}

func (s *SQLiteDB) DBStats() sql.DBStats {
	return s.db.Stats()
}
