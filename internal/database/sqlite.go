package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/odvcencio/maestro/internal/catalog"
	"github.com/odvcencio/maestro/internal/models"

	_ "modernc.org/sqlite"
)

// ErrEmptySnapshot is returned by LoadDataset when no snapshot has been saved.
var ErrEmptySnapshot = errors.New("snapshot is empty")

type SQLiteDB struct {
	db *sql.DB
}

func OpenSQLite(dsn string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// Pragmas below are per connection, so keep a single one.
	db.SetMaxOpenConns(1)
	// Enable WAL mode and foreign keys
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma %s: %w", pragma, err)
		}
	}
	return &SQLiteDB{db: db}, nil
}

func (s *SQLiteDB) Close() error { return s.db.Close() }

func (s *SQLiteDB) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS snapshot_meta (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	saved_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	avatar TEXT NOT NULL,
	role TEXT NOT NULL,
	created_at TEXT NOT NULL,
	last_active TEXT NOT NULL,
	teams TEXT NOT NULL,
	repo_access TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS roles (
	id TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	name TEXT NOT NULL,
	permissions TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS teams (
	id TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	name TEXT NOT NULL,
	members TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS repos (
	id TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	name TEXT NOT NULL,
	description TEXT NOT NULL,
	language TEXT NOT NULL,
	stars INTEGER NOT NULL,
	forks INTEGER NOT NULL,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL,
	owner TEXT NOT NULL REFERENCES users(id),
	contributors TEXT NOT NULL,
	private BOOLEAN NOT NULL,
	tags TEXT NOT NULL,
	url TEXT NOT NULL,
	connected BOOLEAN NOT NULL,
	issues INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS branches (
	id TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	repo_id TEXT NOT NULL REFERENCES repos(id),
	name TEXT NOT NULL,
	is_default BOOLEAN NOT NULL
);

CREATE TABLE IF NOT EXISTS commits (
	id TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	hash TEXT NOT NULL,
	message TEXT NOT NULL,
	author_id TEXT NOT NULL REFERENCES users(id),
	repo_id TEXT NOT NULL REFERENCES repos(id),
	branch_id TEXT NOT NULL REFERENCES branches(id),
	created_at TEXT NOT NULL,
	files_changed INTEGER NOT NULL,
	additions INTEGER NOT NULL,
	deletions INTEGER NOT NULL,
	status TEXT NOT NULL,
	pipeline_id TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS pipelines (
	id TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	name TEXT NOT NULL,
	repo_id TEXT NOT NULL REFERENCES repos(id),
	commit_id TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL,
	started_at TEXT NOT NULL,
	finished_at TEXT,
	duration INTEGER NOT NULL,
	triggered_by TEXT NOT NULL REFERENCES users(id),
	environment TEXT NOT NULL,
	stages TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS integrations (
	id TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	name TEXT NOT NULL,
	type TEXT NOT NULL,
	status TEXT NOT NULL,
	connected_at TEXT NOT NULL,
	last_sync_at TEXT NOT NULL,
	connection_strength INTEGER NOT NULL,
	logo TEXT NOT NULL,
	connected_repos TEXT NOT NULL,
	connected_by TEXT NOT NULL REFERENCES users(id),
	settings TEXT NOT NULL
);
`

// Child tables come first so deletes never trip a foreign key.
var snapshotTables = []string{
	"integrations", "pipelines", "commits", "branches", "repos", "teams", "roles", "users", "snapshot_meta",
}

// SaveDataset replaces the stored snapshot with ds in a single transaction.
func (s *SQLiteDB) SaveDataset(ctx context.Context, ds catalog.Dataset, savedAt time.Time) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot: %w", err)
	}
	defer tx.Rollback()

	for _, table := range snapshotTables {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO snapshot_meta (id, saved_at) VALUES (1, ?)`, formatTime(savedAt)); err != nil {
		return fmt.Errorf("save snapshot meta: %w", err)
	}
	steps := []struct {
		name string
		save func(context.Context, *sql.Tx, catalog.Dataset) error
	}{
		{"users", saveUsers},
		{"roles", saveRoles},
		{"teams", saveTeams},
		{"repos", saveRepos},
		{"branches", saveBranches},
		{"commits", saveCommits},
		{"pipelines", savePipelines},
		{"integrations", saveIntegrations},
	}
	for _, step := range steps {
		if err := step.save(ctx, tx, ds); err != nil {
			return fmt.Errorf("save %s: %w", step.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}
	return nil
}

// LoadDataset reads the stored snapshot in insertion order.
func (s *SQLiteDB) LoadDataset(ctx context.Context) (catalog.Dataset, error) {
	var ds catalog.Dataset
	var savedAt string
	err := s.db.QueryRowContext(ctx, `SELECT saved_at FROM snapshot_meta WHERE id = 1`).Scan(&savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ds, ErrEmptySnapshot
	}
	if err != nil {
		return ds, fmt.Errorf("read snapshot meta: %w", err)
	}

	steps := []struct {
		name string
		load func(context.Context, *sql.DB, *catalog.Dataset) error
	}{
		{"users", loadUsers},
		{"roles", loadRoles},
		{"teams", loadTeams},
		{"repos", loadRepos},
		{"branches", loadBranches},
		{"commits", loadCommits},
		{"pipelines", loadPipelines},
		{"integrations", loadIntegrations},
	}
	for _, step := range steps {
		if err := step.load(ctx, s.db, &ds); err != nil {
			return catalog.Dataset{}, fmt.Errorf("load %s: %w", step.name, err)
		}
	}
	return ds, nil
}

func saveUsers(ctx context.Context, tx *sql.Tx, ds catalog.Dataset) error {
	for i, u := range ds.Users {
		teams, err := encodeJSON(u.Teams)
		if err != nil {
			return err
		}
		access, err := encodeJSON(u.RepoAccess)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO users (id, position, name, email, avatar, role, created_at, last_active, teams, repo_access)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			u.ID, i, u.Name, u.Email, u.Avatar, u.Role, formatTime(u.CreatedAt), formatTime(u.LastActive), teams, access); err != nil {
			return err
		}
	}
	return nil
}

func saveRoles(ctx context.Context, tx *sql.Tx, ds catalog.Dataset) error {
	for i, r := range ds.Roles {
		perms, err := encodeJSON(r.Permissions)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO roles (id, position, name, permissions) VALUES (?, ?, ?, ?)`,
			r.ID, i, r.Name, perms); err != nil {
			return err
		}
	}
	return nil
}

func saveTeams(ctx context.Context, tx *sql.Tx, ds catalog.Dataset) error {
	for i, t := range ds.Teams {
		members, err := encodeJSON(t.Members)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO teams (id, position, name, members) VALUES (?, ?, ?, ?)`,
			t.ID, i, t.Name, members); err != nil {
			return err
		}
	}
	return nil
}

func saveRepos(ctx context.Context, tx *sql.Tx, ds catalog.Dataset) error {
	for i, r := range ds.Repos {
		contributors, err := encodeJSON(r.Contributors)
		if err != nil {
			return err
		}
		tags, err := encodeJSON(r.Tags)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO repos (id, position, name, description, language, stars, forks, created_at, updated_at,
			                    owner, contributors, private, tags, url, connected, issues)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.ID, i, r.Name, r.Description, r.Language, r.Stars, r.Forks, formatTime(r.CreatedAt), formatTime(r.UpdatedAt),
			r.Owner, contributors, r.Private, tags, r.URL, r.Connected, r.Issues); err != nil {
			return err
		}
	}
	return nil
}

func saveBranches(ctx context.Context, tx *sql.Tx, ds catalog.Dataset) error {
	for i, b := range ds.Branches {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO branches (id, position, repo_id, name, is_default) VALUES (?, ?, ?, ?, ?)`,
			b.ID, i, b.RepoID, b.Name, b.IsDefault); err != nil {
			return err
		}
	}
	return nil
}

func saveCommits(ctx context.Context, tx *sql.Tx, ds catalog.Dataset) error {
	for i, c := range ds.Commits {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO commits (id, position, hash, message, author_id, repo_id, branch_id, created_at,
			                      files_changed, additions, deletions, status, pipeline_id)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.ID, i, c.Hash, c.Message, c.AuthorID, c.RepoID, c.BranchID, formatTime(c.CreatedAt),
			c.FilesChanged, c.Additions, c.Deletions, c.Status, c.PipelineID); err != nil {
			return err
		}
	}
	return nil
}

func savePipelines(ctx context.Context, tx *sql.Tx, ds catalog.Dataset) error {
	for i, p := range ds.Pipelines {
		stages, err := encodeJSON(p.Stages)
		if err != nil {
			return err
		}
		var finished sql.NullString
		if p.FinishedAt != nil {
			finished = sql.NullString{String: formatTime(*p.FinishedAt), Valid: true}
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO pipelines (id, position, name, repo_id, commit_id, status, started_at, finished_at,
			                        duration, triggered_by, environment, stages)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, i, p.Name, p.RepoID, p.CommitID, p.Status, formatTime(p.StartedAt), finished,
			p.Duration, p.TriggeredBy, p.Environment, stages); err != nil {
			return err
		}
	}
	return nil
}

func saveIntegrations(ctx context.Context, tx *sql.Tx, ds catalog.Dataset) error {
	for i, in := range ds.Integrations {
		repos, err := encodeJSON(in.ConnectedRepos)
		if err != nil {
			return err
		}
		settings, err := encodeJSON(in.Settings)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO integrations (id, position, name, type, status, connected_at, last_sync_at,
			                           connection_strength, logo, connected_repos, connected_by, settings)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			in.ID, i, in.Name, in.Type, in.Status, formatTime(in.ConnectedAt), formatTime(in.LastSyncAt),
			in.ConnectionStrength, in.Logo, repos, in.ConnectedBy, settings); err != nil {
			return err
		}
	}
	return nil
}

func loadUsers(ctx context.Context, db *sql.DB, ds *catalog.Dataset) error {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, email, avatar, role, created_at, last_active, teams, repo_access FROM users ORDER BY position`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var u models.User
		var created, active, teams, access string
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Avatar, &u.Role, &created, &active, &teams, &access); err != nil {
			return err
		}
		if u.CreatedAt, err = parseTime(created); err != nil {
			return err
		}
		if u.LastActive, err = parseTime(active); err != nil {
			return err
		}
		if err := decodeJSON(teams, &u.Teams); err != nil {
			return err
		}
		if err := decodeJSON(access, &u.RepoAccess); err != nil {
			return err
		}
		ds.Users = append(ds.Users, u)
	}
	return rows.Err()
}

func loadRoles(ctx context.Context, db *sql.DB, ds *catalog.Dataset) error {
	rows, err := db.QueryContext(ctx, `SELECT id, name, permissions FROM roles ORDER BY position`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var r models.Role
		var perms string
		if err := rows.Scan(&r.ID, &r.Name, &perms); err != nil {
			return err
		}
		if err := decodeJSON(perms, &r.Permissions); err != nil {
			return err
		}
		ds.Roles = append(ds.Roles, r)
	}
	return rows.Err()
}

func loadTeams(ctx context.Context, db *sql.DB, ds *catalog.Dataset) error {
	rows, err := db.QueryContext(ctx, `SELECT id, name, members FROM teams ORDER BY position`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var t models.Team
		var members string
		if err := rows.Scan(&t.ID, &t.Name, &members); err != nil {
			return err
		}
		if err := decodeJSON(members, &t.Members); err != nil {
			return err
		}
		ds.Teams = append(ds.Teams, t)
	}
	return rows.Err()
}

func loadRepos(ctx context.Context, db *sql.DB, ds *catalog.Dataset) error {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, description, language, stars, forks, created_at, updated_at, owner,
		        contributors, private, tags, url, connected, issues
		 FROM repos ORDER BY position`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var r models.Repo
		var created, updated, contributors, tags string
		if err := rows.Scan(&r.ID, &r.Name, &r.Description, &r.Language, &r.Stars, &r.Forks, &created, &updated,
			&r.Owner, &contributors, &r.Private, &tags, &r.URL, &r.Connected, &r.Issues); err != nil {
			return err
		}
		if r.CreatedAt, err = parseTime(created); err != nil {
			return err
		}
		if r.UpdatedAt, err = parseTime(updated); err != nil {
			return err
		}
		if err := decodeJSON(contributors, &r.Contributors); err != nil {
			return err
		}
		if err := decodeJSON(tags, &r.Tags); err != nil {
			return err
		}
		ds.Repos = append(ds.Repos, r)
	}
	return rows.Err()
}

func loadBranches(ctx context.Context, db *sql.DB, ds *catalog.Dataset) error {
	rows, err := db.QueryContext(ctx, `SELECT id, repo_id, name, is_default FROM branches ORDER BY position`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var b models.Branch
		if err := rows.Scan(&b.ID, &b.RepoID, &b.Name, &b.IsDefault); err != nil {
			return err
		}
		ds.Branches = append(ds.Branches, b)
	}
	return rows.Err()
}

func loadCommits(ctx context.Context, db *sql.DB, ds *catalog.Dataset) error {
	rows, err := db.QueryContext(ctx,
		`SELECT id, hash, message, author_id, repo_id, branch_id, created_at, files_changed, additions,
		        deletions, status, pipeline_id
		 FROM commits ORDER BY position`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var c models.Commit
		var created string
		if err := rows.Scan(&c.ID, &c.Hash, &c.Message, &c.AuthorID, &c.RepoID, &c.BranchID, &created,
			&c.FilesChanged, &c.Additions, &c.Deletions, &c.Status, &c.PipelineID); err != nil {
			return err
		}
		if c.CreatedAt, err = parseTime(created); err != nil {
			return err
		}
		ds.Commits = append(ds.Commits, c)
	}
	return rows.Err()
}

func loadPipelines(ctx context.Context, db *sql.DB, ds *catalog.Dataset) error {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, repo_id, commit_id, status, started_at, finished_at, duration, triggered_by,
		        environment, stages
		 FROM pipelines ORDER BY position`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var p models.Pipeline
		var started, stages string
		var finished sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &p.RepoID, &p.CommitID, &p.Status, &started, &finished,
			&p.Duration, &p.TriggeredBy, &p.Environment, &stages); err != nil {
			return err
		}
		if p.StartedAt, err = parseTime(started); err != nil {
			return err
		}
		if finished.Valid {
			t, err := parseTime(finished.String)
			if err != nil {
				return err
			}
			p.FinishedAt = &t
		}
		if err := decodeJSON(stages, &p.Stages); err != nil {
			return err
		}
		ds.Pipelines = append(ds.Pipelines, p)
	}
	return rows.Err()
}

func loadIntegrations(ctx context.Context, db *sql.DB, ds *catalog.Dataset) error {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, type, status, connected_at, last_sync_at, connection_strength, logo,
		        connected_repos, connected_by, settings
		 FROM integrations ORDER BY position`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var in models.Integration
		var connected, synced, repos, settings string
		if err := rows.Scan(&in.ID, &in.Name, &in.Type, &in.Status, &connected, &synced,
			&in.ConnectionStrength, &in.Logo, &repos, &in.ConnectedBy, &settings); err != nil {
			return err
		}
		if in.ConnectedAt, err = parseTime(connected); err != nil {
			return err
		}
		if in.LastSyncAt, err = parseTime(synced); err != nil {
			return err
		}
		if err := decodeJSON(repos, &in.ConnectedRepos); err != nil {
			return err
		}
		if err := decodeJSON(settings, &in.Settings); err != nil {
			return err
		}
		ds.Integrations = append(ds.Integrations, in)
	}
	return rows.Err()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time %q: %w", raw, err)
	}
	return t, nil
}

func encodeJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeJSON(raw string, v any) error {
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("decode json column: %w", err)
	}
	return nil
}
