package api

import (
	"database/sql"
	"net/http"
	"time"
)

type dbStatsProvider interface {
	DBStats() sql.DBStats
}

type healthResponse struct {
	Status     string          `json:"status"`
	Timestamp  time.Time       `json:"timestamp"`
	DataSource string          `json:"data_source"`
	Dataset    healthDataset   `json:"dataset"`
	Snapshot   *healthSnapshot `json:"snapshot,omitempty"`
	Database   *healthDatabase `json:"database,omitempty"`
	Errors     []string        `json:"errors,omitempty"`
}

type healthDataset struct {
	Users        int `json:"users"`
	Repos        int `json:"repos"`
	Commits      int `json:"commits"`
	Pipelines    int `json:"pipelines"`
	Integrations int `json:"integrations"`
}

type healthSnapshot struct {
	SavedAt time.Time      `json:"saved_at"`
	Rows    map[string]int `json:"rows"`
}

type healthDatabase struct {
	OpenConnections int   `json:"open_connections"`
	InUse           int   `json:"in_use"`
	Idle            int   `json:"idle"`
	WaitCount       int64 `json:"wait_count"`
	WaitDurationMS  int64 `json:"wait_duration_ms"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:     "ok",
		Timestamp:  time.Now().UTC(),
		DataSource: s.opts.DataSource,
		Dataset: healthDataset{
			Users:        len(s.catalog.Users()),
			Repos:        len(s.catalog.Repos()),
			Commits:      len(s.catalog.Commits()),
			Pipelines:    len(s.catalog.Pipelines()),
			Integrations: len(s.catalog.Integrations()),
		},
	}

	if s.opts.Store != nil {
		info, err := s.opts.Store.SnapshotInfo(r.Context())
		if err != nil {
			resp.Errors = append(resp.Errors, "snapshot_info")
		} else {
			resp.Snapshot = &healthSnapshot{SavedAt: info.SavedAt, Rows: info.Rows}
		}
		if pool, ok := s.opts.Store.(dbStatsProvider); ok {
			stats := pool.DBStats()
			resp.Database = &healthDatabase{
				OpenConnections: stats.OpenConnections,
				InUse:           stats.InUse,
				Idle:            stats.Idle,
				WaitCount:       stats.WaitCount,
				WaitDurationMS:  stats.WaitDuration.Milliseconds(),
			}
		}
	}

	if len(resp.Errors) > 0 {
		resp.Status = "degraded"
		jsonResponse(w, http.StatusServiceUnavailable, resp)
		return
	}
	jsonResponse(w, http.StatusOK, resp)
}
