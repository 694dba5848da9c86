package service

import (
	"time"

	"github.com/odvcencio/maestro/internal/catalog"
	"github.com/odvcencio/maestro/internal/models"
)

type CommitStatistics struct {
	TotalCommits      int            `json:"total_commits"`
	SuccessfulCommits int            `json:"successful_commits"`
	FailedCommits     int            `json:"failed_commits"`
	PendingCommits    int            `json:"pending_commits"`
	SuccessRate       float64        `json:"success_rate"`
	CommitsByRepo     map[string]int `json:"commits_by_repo"`
	CommitsByUser     map[string]int `json:"commits_by_user"`
	CommitsOverTime   map[string]int `json:"commits_over_time"` // keyed by UTC YYYY-MM-DD
}

type PipelineStatistics struct {
	TotalPipelines      int     `json:"total_pipelines"`
	SuccessfulPipelines int     `json:"successful_pipelines"`
	FailedPipelines     int     `json:"failed_pipelines"`
	RunningPipelines    int     `json:"running_pipelines"`
	CanceledPipelines   int     `json:"canceled_pipelines"`
	SuccessRate         float64 `json:"success_rate"`
	// AverageDuration includes in-flight pipelines, which report 0 seconds.
	AverageDuration float64 `json:"average_duration"`
	// AverageCompletedDuration only counts pipelines that have finished.
	AverageCompletedDuration float64        `json:"average_completed_duration"`
	PipelinesByRepo          map[string]int `json:"pipelines_by_repo"`
	PipelinesByEnvironment   map[string]int `json:"pipelines_by_environment"`
	PipelinesByStatus        map[string]int `json:"pipelines_by_status"`
}

type RepoStatistics struct {
	TotalRepos           int            `json:"total_repos"`
	TotalPublicRepos     int            `json:"total_public_repos"`
	TotalPrivateRepos    int            `json:"total_private_repos"`
	TotalConnectedRepos  int            `json:"total_connected_repos"`
	TotalStars           int            `json:"total_stars"`
	TotalOpenIssues      int            `json:"total_open_issues"`
	LanguageDistribution map[string]int `json:"language_distribution"`
	MostActiveRepo       *models.Repo   `json:"most_active_repo,omitempty"`
	MostPopularRepo      *models.Repo   `json:"most_popular_repo,omitempty"`
}

type IntegrationStatistics struct {
	TotalIntegrations    int            `json:"total_integrations"`
	ActiveIntegrations   int            `json:"active_integrations"`
	InactiveIntegrations int            `json:"inactive_integrations"`
	ErrorIntegrations    int            `json:"error_integrations"`
	IntegrationsByType   map[string]int `json:"integrations_by_type"`
	// AverageConnectionStrength counts inactive integrations at their 0 score.
	AverageConnectionStrength float64 `json:"average_connection_strength"`
	// AverageActiveConnectionStrength only counts active integrations.
	AverageActiveConnectionStrength float64 `json:"average_active_connection_strength"`
}

// StatsService derives summary statistics from a catalog. Every call
// recomputes over the full dataset.
type StatsService struct {
	catalog *catalog.Catalog
	now     func() time.Time
}

func NewStatsService(c *catalog.Catalog) *StatsService {
	return &StatsService{catalog: c}
}

func (s *StatsService) CommitStatistics() CommitStatistics {
	commits := s.catalog.Commits()
	stats := CommitStatistics{
		TotalCommits:    len(commits),
		CommitsByRepo:   make(map[string]int),
		CommitsByUser:   make(map[string]int),
		CommitsOverTime: make(map[string]int),
	}
	for _, c := range commits {
		switch c.Status {
		case models.CommitStatusSuccess:
			stats.SuccessfulCommits++
		case models.CommitStatusFailed:
			stats.FailedCommits++
		case models.CommitStatusPending:
			stats.PendingCommits++
		}
		stats.CommitsByRepo[c.RepoID]++
		stats.CommitsByUser[c.AuthorID]++
		stats.CommitsOverTime[c.CreatedAt.UTC().Format("2006-01-02")]++
	}
	stats.SuccessRate = percent(stats.SuccessfulCommits, stats.TotalCommits)
	return stats
}

func (s *StatsService) PipelineStatistics() PipelineStatistics {
	pipelines := s.catalog.Pipelines()
	stats := PipelineStatistics{
		TotalPipelines:         len(pipelines),
		PipelinesByRepo:        make(map[string]int),
		PipelinesByEnvironment: make(map[string]int),
		PipelinesByStatus:      make(map[string]int),
	}
	var total, completedTotal, completed int
	for _, p := range pipelines {
		switch p.Status {
		case models.PipelineStatusSuccess:
			stats.SuccessfulPipelines++
		case models.PipelineStatusFailed:
			stats.FailedPipelines++
		case models.PipelineStatusRunning:
			stats.RunningPipelines++
		case models.PipelineStatusCanceled:
			stats.CanceledPipelines++
		}
		total += p.Duration
		if p.FinishedAt != nil {
			completedTotal += p.Duration
			completed++
		}
		stats.PipelinesByRepo[p.RepoID]++
		stats.PipelinesByEnvironment[p.Environment]++
		stats.PipelinesByStatus[p.Status]++
	}
	stats.AverageDuration = mean(total, len(pipelines))
	stats.AverageCompletedDuration = mean(completedTotal, completed)
	stats.SuccessRate = percent(stats.SuccessfulPipelines, stats.TotalPipelines)
	return stats
}

func (s *StatsService) RepoStatistics() RepoStatistics {
	repos := s.catalog.Repos()
	stats := RepoStatistics{
		TotalRepos:           len(repos),
		LanguageDistribution: make(map[string]int),
	}
	for i, r := range repos {
		if r.Private {
			stats.TotalPrivateRepos++
		} else {
			stats.TotalPublicRepos++
		}
		if r.Connected {
			stats.TotalConnectedRepos++
		}
		stats.TotalStars += r.Stars
		stats.TotalOpenIssues += r.Issues
		stats.LanguageDistribution[r.Language]++

		// Replace only on strictly greater so the first maximum wins.
		if stats.MostActiveRepo == nil || r.UpdatedAt.After(stats.MostActiveRepo.UpdatedAt) {
			stats.MostActiveRepo = &repos[i]
		}
		if stats.MostPopularRepo == nil || r.Stars > stats.MostPopularRepo.Stars {
			stats.MostPopularRepo = &repos[i]
		}
	}
	return stats
}

func (s *StatsService) IntegrationStatistics() IntegrationStatistics {
	integrations := s.catalog.Integrations()
	stats := IntegrationStatistics{
		TotalIntegrations:  len(integrations),
		IntegrationsByType: make(map[string]int),
	}
	var strength, activeStrength int
	for _, i := range integrations {
		switch i.Status {
		case models.IntegrationStatusActive:
			stats.ActiveIntegrations++
			activeStrength += i.ConnectionStrength
		case models.IntegrationStatusInactive:
			stats.InactiveIntegrations++
		case models.IntegrationStatusError:
			stats.ErrorIntegrations++
		}
		strength += i.ConnectionStrength
		stats.IntegrationsByType[i.Type]++
	}
	stats.AverageConnectionStrength = mean(strength, len(integrations))
	stats.AverageActiveConnectionStrength = mean(activeStrength, stats.ActiveIntegrations)
	return stats
}

func mean(sum, n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) * 100 / float64(whole)
}
