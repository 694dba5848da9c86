package service

import (
	"slices"

	"github.com/odvcencio/maestro/internal/format"
	"github.com/odvcencio/maestro/internal/models"
)

type StageDetail struct {
	models.PipelineStage
	DurationLabel string `json:"duration_label"`
}

// PipelineDetail is what the pipeline drawer shows.
type PipelineDetail struct {
	PipelineSummary
	CommitID      string        `json:"commit_id,omitempty"`
	CommitHash    string        `json:"commit_hash,omitempty"`
	CommitMessage string        `json:"commit_message,omitempty"`
	FinishedAt    string        `json:"finished_at,omitempty"`
	Stages        []StageDetail `json:"stages"`
}

// RepoDetail is the repository modal: the repo plus its branches, pipelines
// and the integrations wired to it.
type RepoDetail struct {
	models.Repo
	OwnerName    string               `json:"owner_name"`
	UpdatedAgo   string               `json:"updated_ago"`
	Branches     []models.Branch      `json:"branches"`
	Pipelines    []PipelineSummary    `json:"pipelines"`
	Integrations []IntegrationSummary `json:"integrations"`
}

type UserProfile struct {
	models.User
	Initials      string `json:"initials"`
	LastActiveAgo string `json:"last_active_ago"`
	Commits       int    `json:"commits"`
	Pipelines     int    `json:"pipelines"`
	Repos         int    `json:"repos"`
	// Memberships resolves User.Teams in dataset team order.
	Memberships []models.Team `json:"memberships"`
}

func (s *StatsService) PipelineDetail(id string) (PipelineDetail, bool) {
	p, ok := s.catalog.Pipeline(id)
	if !ok {
		return PipelineDetail{}, false
	}
	d := PipelineDetail{
		PipelineSummary: s.summarizePipeline(p),
		CommitID:        p.CommitID,
		Stages:          make([]StageDetail, 0, len(p.Stages)),
	}
	if c, ok := s.catalog.Commit(p.CommitID); ok {
		d.CommitHash = c.Hash
		d.CommitMessage = c.Message
	}
	if p.FinishedAt != nil {
		d.FinishedAt = format.DateTime(*p.FinishedAt)
	}
	for _, st := range p.Stages {
		d.Stages = append(d.Stages, StageDetail{PipelineStage: st, DurationLabel: format.Duration(st.Duration)})
	}
	return d, true
}

// RepoDetail expands repo, which may already carry a session's connection
// toggle, with its related records.
func (s *StatsService) RepoDetail(repo models.Repo) RepoDetail {
	now := s.clock()
	d := RepoDetail{
		Repo:       repo,
		OwnerName:  repo.Owner,
		UpdatedAgo: format.Relative(repo.UpdatedAt, now),
		Branches:   s.catalog.BranchesForRepo(repo.ID),
	}
	if owner, ok := s.catalog.User(repo.Owner); ok {
		d.OwnerName = owner.Name
	}
	pipelines := s.catalog.PipelinesForRepo(repo.ID)
	d.Pipelines = make([]PipelineSummary, 0, len(pipelines))
	for _, p := range pipelines {
		d.Pipelines = append(d.Pipelines, s.summarizePipeline(p))
	}
	integrations := s.catalog.IntegrationsForRepo(repo.ID)
	d.Integrations = make([]IntegrationSummary, 0, len(integrations))
	for _, i := range integrations {
		d.Integrations = append(d.Integrations, summarizeIntegration(i, now))
	}
	return d
}

func (s *StatsService) UserProfile(id string) (UserProfile, bool) {
	u, ok := s.catalog.User(id)
	if !ok {
		return UserProfile{}, false
	}
	return UserProfile{
		User:          u,
		Initials:      format.Initials(u.Name),
		LastActiveAgo: format.Relative(u.LastActive, s.clock()),
		Commits:       len(s.catalog.CommitsForUser(id)),
		Pipelines:     len(s.catalog.PipelinesTriggeredByUser(id)),
		Repos:         len(s.catalog.ReposForUser(id)),
		Memberships:   s.memberships(u),
	}, true
}

func (s *StatsService) memberships(u models.User) []models.Team {
	out := make([]models.Team, 0, len(u.Teams))
	for _, t := range s.catalog.Teams() {
		if slices.Contains(u.Teams, t.ID) {
			out = append(out, t)
		}
	}
	return out
}
