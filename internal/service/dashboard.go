package service

import (
	"slices"
	"time"

	"github.com/odvcencio/maestro/internal/format"
	"github.com/odvcencio/maestro/internal/models"
)

type PipelineSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	RepoID      string `json:"repo_id"`
	RepoName    string `json:"repo_name"`
	Status      string `json:"status"`
	Environment string `json:"environment"`
	StartedAt   string `json:"started_at"`
	Duration    string `json:"duration"`
	TriggeredBy string `json:"triggered_by"`
}

type IntegrationSummary struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Type               string `json:"type"`
	Logo               string `json:"logo"`
	ConnectionStrength int    `json:"connection_strength"`
	LastSync           string `json:"last_sync"`
	RepoCount          int    `json:"repo_count"`
}

type LanguageShare struct {
	Language string  `json:"language"`
	Repos    int     `json:"repos"`
	Percent  float64 `json:"percent"`
}

type Dashboard struct {
	Commits            CommitStatistics      `json:"commits"`
	Pipelines          PipelineStatistics    `json:"pipelines"`
	Repos              RepoStatistics        `json:"repos"`
	Integrations       IntegrationStatistics `json:"integrations"`
	TotalUsers         int                   `json:"total_users"`
	RecentPipelines    []PipelineSummary     `json:"recent_pipelines"`
	ActiveIntegrations []IntegrationSummary  `json:"active_integrations"`
	Languages          []LanguageShare       `json:"languages"`
	GeneratedAt        time.Time             `json:"generated_at"`
}

// Dashboard assembles the landing page payload. limit bounds the recent
// pipeline list; values below 1 fall back to the catalog default.
func (s *StatsService) Dashboard(limit int) Dashboard {
	now := s.clock()
	repos := s.RepoStatistics()
	d := Dashboard{
		Commits:      s.CommitStatistics(),
		Pipelines:    s.PipelineStatistics(),
		Repos:        repos,
		Integrations: s.IntegrationStatistics(),
		TotalUsers:   len(s.catalog.Users()),
		GeneratedAt:  now.UTC(),
	}

	recent := s.catalog.RecentPipelines(limit)
	d.RecentPipelines = make([]PipelineSummary, 0, len(recent))
	for _, p := range recent {
		d.RecentPipelines = append(d.RecentPipelines, s.summarizePipeline(p))
	}

	active := s.catalog.IntegrationsByStatus(models.IntegrationStatusActive)
	d.ActiveIntegrations = make([]IntegrationSummary, 0, len(active))
	for _, i := range active {
		d.ActiveIntegrations = append(d.ActiveIntegrations, summarizeIntegration(i, now))
	}

	d.Languages = languageShares(s.catalog.Repos(), repos.TotalRepos)
	return d
}

func (s *StatsService) summarizePipeline(p models.Pipeline) PipelineSummary {
	repoName := p.RepoID
	if repo, ok := s.catalog.Repo(p.RepoID); ok {
		repoName = repo.Name
	}
	triggeredBy := p.TriggeredBy
	if user, ok := s.catalog.User(p.TriggeredBy); ok {
		triggeredBy = user.Name
	}
	return PipelineSummary{
		ID:          p.ID,
		Name:        p.Name,
		RepoID:      p.RepoID,
		RepoName:    repoName,
		Status:      p.Status,
		Environment: p.Environment,
		StartedAt:   format.DateTime(p.StartedAt),
		Duration:    format.Duration(p.Duration),
		TriggeredBy: triggeredBy,
	}
}

func summarizeIntegration(i models.Integration, now time.Time) IntegrationSummary {
	return IntegrationSummary{
		ID:                 i.ID,
		Name:               i.Name,
		Type:               i.Type,
		Logo:               i.Logo,
		ConnectionStrength: i.ConnectionStrength,
		LastSync:           format.LastSync(i.LastSyncAt, now),
		RepoCount:          len(i.ConnectedRepos),
	}
}

// languageShares lists languages in first-seen repo order.
func languageShares(repos []models.Repo, total int) []LanguageShare {
	var order []string
	counts := make(map[string]int)
	for _, r := range repos {
		if _, ok := counts[r.Language]; !ok {
			order = append(order, r.Language)
		}
		counts[r.Language]++
	}
	out := make([]LanguageShare, 0, len(order))
	for _, lang := range order {
		out = append(out, LanguageShare{
			Language: lang,
			Repos:    counts[lang],
			Percent:  percent(counts[lang], total),
		})
	}
	slices.SortStableFunc(out, func(a, b LanguageShare) int { return b.Repos - a.Repos })
	return out
}

func (s *StatsService) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}
