// Package catalog holds the validated, read-only dashboard dataset and its
// relationship indexes.
package catalog

import (
	"slices"
	"time"

	"github.com/odvcencio/maestro/internal/models"
)

// DefaultRecentLimit is used by the Recent* lookups when limit <= 0.
const DefaultRecentLimit = 5

// Catalog answers relationship lookups over a fixed Dataset. Group-by indexes
// are built once in New; every lookup returns a fresh slice in dataset order.
type Catalog struct {
	data Dataset

	users        map[string]int
	repos        map[string]int
	commits      map[string]int
	pipelines    map[string]int
	integrations map[string]int

	commitsByRepo        map[string][]int
	commitsByAuthor      map[string][]int
	pipelinesByRepo      map[string][]int
	pipelinesByTrigger   map[string][]int
	reposByUser          map[string][]int
	integrationsByRepo   map[string][]int
	integrationsByStatus map[string][]int
	branchesByRepo       map[string][]int
}

// New validates the dataset and indexes it. The catalog keeps its own copy.
func New(data Dataset) (*Catalog, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}
	data = cloneDataset(data)

	c := &Catalog{
		data:                 data,
		users:                positions(data.Users, func(u models.User) string { return u.ID }),
		repos:                positions(data.Repos, func(r models.Repo) string { return r.ID }),
		commits:              positions(data.Commits, func(c models.Commit) string { return c.ID }),
		pipelines:            positions(data.Pipelines, func(p models.Pipeline) string { return p.ID }),
		integrations:         positions(data.Integrations, func(i models.Integration) string { return i.ID }),
		commitsByRepo:        groupBy(data.Commits, func(c models.Commit) []string { return []string{c.RepoID} }),
		commitsByAuthor:      groupBy(data.Commits, func(c models.Commit) []string { return []string{c.AuthorID} }),
		pipelinesByRepo:      groupBy(data.Pipelines, func(p models.Pipeline) []string { return []string{p.RepoID} }),
		pipelinesByTrigger:   groupBy(data.Pipelines, func(p models.Pipeline) []string { return []string{p.TriggeredBy} }),
		integrationsByRepo:   groupBy(data.Integrations, func(i models.Integration) []string { return i.ConnectedRepos }),
		integrationsByStatus: groupBy(data.Integrations, func(i models.Integration) []string { return []string{i.Status} }),
		branchesByRepo:       groupBy(data.Branches, func(b models.Branch) []string { return []string{b.RepoID} }),
		reposByUser: groupBy(data.Repos, func(r models.Repo) []string {
			return append([]string{r.Owner}, r.Contributors...)
		}),
	}
	return c, nil
}

// Dataset returns a copy of the underlying dataset.
func (c *Catalog) Dataset() Dataset { return cloneDataset(c.data) }

func (c *Catalog) Users() []models.User { return cloneAll(c.data.Users, cloneUser) }

func (c *Catalog) Roles() []models.Role { return cloneAll(c.data.Roles, cloneRole) }

func (c *Catalog) Teams() []models.Team { return cloneAll(c.data.Teams, cloneTeam) }

func (c *Catalog) Repos() []models.Repo { return cloneAll(c.data.Repos, cloneRepo) }

func (c *Catalog) Branches() []models.Branch { return slices.Clone(c.data.Branches) }

func (c *Catalog) Commits() []models.Commit { return slices.Clone(c.data.Commits) }

func (c *Catalog) Pipelines() []models.Pipeline { return cloneAll(c.data.Pipelines, clonePipeline) }

func (c *Catalog) Integrations() []models.Integration {
	return cloneAll(c.data.Integrations, cloneIntegration)
}

func (c *Catalog) User(id string) (models.User, bool) {
	i, ok := c.users[id]
	if !ok {
		return models.User{}, false
	}
	return cloneUser(c.data.Users[i]), true
}

func (c *Catalog) Repo(id string) (models.Repo, bool) {
	i, ok := c.repos[id]
	if !ok {
		return models.Repo{}, false
	}
	return cloneRepo(c.data.Repos[i]), true
}

func (c *Catalog) Commit(id string) (models.Commit, bool) {
	i, ok := c.commits[id]
	if !ok {
		return models.Commit{}, false
	}
	return c.data.Commits[i], true
}

func (c *Catalog) Pipeline(id string) (models.Pipeline, bool) {
	i, ok := c.pipelines[id]
	if !ok {
		return models.Pipeline{}, false
	}
	return clonePipeline(c.data.Pipelines[i]), true
}

func (c *Catalog) Integration(id string) (models.Integration, bool) {
	i, ok := c.integrations[id]
	if !ok {
		return models.Integration{}, false
	}
	return cloneIntegration(c.data.Integrations[i]), true
}

func (c *Catalog) CommitsForRepo(repoID string) []models.Commit {
	return pick(c.data.Commits, c.commitsByRepo[repoID], identity[models.Commit])
}

func (c *Catalog) CommitsForUser(userID string) []models.Commit {
	return pick(c.data.Commits, c.commitsByAuthor[userID], identity[models.Commit])
}

func (c *Catalog) PipelinesForRepo(repoID string) []models.Pipeline {
	return pick(c.data.Pipelines, c.pipelinesByRepo[repoID], clonePipeline)
}

func (c *Catalog) PipelinesTriggeredByUser(userID string) []models.Pipeline {
	return pick(c.data.Pipelines, c.pipelinesByTrigger[userID], clonePipeline)
}

// ReposForUser returns repos the user owns or contributes to.
func (c *Catalog) ReposForUser(userID string) []models.Repo {
	return pick(c.data.Repos, c.reposByUser[userID], cloneRepo)
}

func (c *Catalog) IntegrationsForRepo(repoID string) []models.Integration {
	return pick(c.data.Integrations, c.integrationsByRepo[repoID], cloneIntegration)
}

func (c *Catalog) IntegrationsByStatus(status string) []models.Integration {
	return pick(c.data.Integrations, c.integrationsByStatus[status], cloneIntegration)
}

func (c *Catalog) BranchesForRepo(repoID string) []models.Branch {
	return pick(c.data.Branches, c.branchesByRepo[repoID], identity[models.Branch])
}

func (c *Catalog) ConnectedRepos() []models.Repo {
	return filter(c.data.Repos, func(r models.Repo) bool { return r.Connected }, cloneRepo)
}

func (c *Catalog) AvailableRepos() []models.Repo {
	return filter(c.data.Repos, func(r models.Repo) bool { return !r.Connected }, cloneRepo)
}

// RecentCommits returns up to limit commits, newest first. Equal timestamps
// keep dataset order.
func (c *Catalog) RecentCommits(limit int) []models.Commit {
	return recent(c.Commits(), limit, func(c models.Commit) time.Time { return c.CreatedAt })
}

// RecentPipelines returns up to limit pipelines, most recently started first.
func (c *Catalog) RecentPipelines(limit int) []models.Pipeline {
	return recent(c.Pipelines(), limit, func(p models.Pipeline) time.Time { return p.StartedAt })
}

func recent[T any](items []T, limit int, at func(T) time.Time) []T {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	slices.SortStableFunc(items, func(a, b T) int {
		return at(b).Compare(at(a))
	})
	if limit < len(items) {
		items = items[:limit]
	}
	return items
}

func positions[T any](items []T, key func(T) string) map[string]int {
	out := make(map[string]int, len(items))
	for i, item := range items {
		out[key(item)] = i
	}
	return out
}

// groupBy maps each key to the ascending indexes of the items carrying it.
// An item listing the same key twice is indexed once.
func groupBy[T any](items []T, keys func(T) []string) map[string][]int {
	out := make(map[string][]int)
	for i, item := range items {
		for _, key := range keys(item) {
			idx := out[key]
			if n := len(idx); n > 0 && idx[n-1] == i {
				continue
			}
			out[key] = append(idx, i)
		}
	}
	return out
}

func pick[T any](items []T, idx []int, clone func(T) T) []T {
	out := make([]T, 0, len(idx))
	for _, i := range idx {
		out = append(out, clone(items[i]))
	}
	return out
}

func filter[T any](items []T, keep func(T) bool, clone func(T) T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, clone(item))
		}
	}
	return out
}
