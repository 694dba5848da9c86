package catalog

import (
	"maps"
	"slices"

	"github.com/odvcencio/maestro/internal/models"
)

func identity[T any](v T) T { return v }

func cloneAll[T any](items []T, clone func(T) T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = clone(item)
	}
	return out
}

func cloneUser(u models.User) models.User {
	u.Teams = slices.Clone(u.Teams)
	u.RepoAccess = slices.Clone(u.RepoAccess)
	return u
}

func cloneRole(r models.Role) models.Role {
	r.Permissions = slices.Clone(r.Permissions)
	return r
}

func cloneTeam(t models.Team) models.Team {
	t.Members = slices.Clone(t.Members)
	return t
}

func cloneRepo(r models.Repo) models.Repo {
	r.Contributors = slices.Clone(r.Contributors)
	r.Tags = slices.Clone(r.Tags)
	return r
}

func clonePipeline(p models.Pipeline) models.Pipeline {
	p.FinishedAt = cloneTime(p.FinishedAt)
	stages := make([]models.PipelineStage, len(p.Stages))
	for i, s := range p.Stages {
		s.FinishedAt = cloneTime(s.FinishedAt)
		stages[i] = s
	}
	p.Stages = stages
	return p
}

func cloneIntegration(i models.Integration) models.Integration {
	i.ConnectedRepos = slices.Clone(i.ConnectedRepos)
	if i.Settings != nil {
		i.Settings = maps.Clone(i.Settings)
	}
	return i
}

func cloneDataset(d Dataset) Dataset {
	return Dataset{
		Users:        cloneAll(d.Users, cloneUser),
		Roles:        cloneAll(d.Roles, cloneRole),
		Teams:        cloneAll(d.Teams, cloneTeam),
		Repos:        cloneAll(d.Repos, cloneRepo),
		Branches:     slices.Clone(d.Branches),
		Commits:      slices.Clone(d.Commits),
		Pipelines:    cloneAll(d.Pipelines, clonePipeline),
		Integrations: cloneAll(d.Integrations, cloneIntegration),
	}
}

func cloneTime[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
