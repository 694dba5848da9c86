package catalog

import (
	"errors"
	"fmt"

	"github.com/odvcencio/maestro/internal/models"
)

var ErrInvalidDataset = errors.New("invalid dataset")

// Dataset bundles the entity collections the dashboard is built from.
type Dataset struct {
	Users        []models.User        `json:"users"`
	Roles        []models.Role        `json:"roles"`
	Teams        []models.Team        `json:"teams"`
	Repos        []models.Repo        `json:"repos"`
	Branches     []models.Branch      `json:"branches"`
	Commits      []models.Commit      `json:"commits"`
	Pipelines    []models.Pipeline    `json:"pipelines"`
	Integrations []models.Integration `json:"integrations"`
}

// Validate checks referential integrity, closed enums and bounded scores.
// All violations are reported in a single error wrapping ErrInvalidDataset.
func (d Dataset) Validate() error {
	v := &validator{}

	users := v.ids("user", len(d.Users), func(i int) string { return d.Users[i].ID })
	roles := v.ids("role", len(d.Roles), func(i int) string { return d.Roles[i].ID })
	teams := v.ids("team", len(d.Teams), func(i int) string { return d.Teams[i].ID })
	repos := v.ids("repo", len(d.Repos), func(i int) string { return d.Repos[i].ID })
	branches := v.ids("branch", len(d.Branches), func(i int) string { return d.Branches[i].ID })
	commits := v.ids("commit", len(d.Commits), func(i int) string { return d.Commits[i].ID })
	pipelines := v.ids("pipeline", len(d.Pipelines), func(i int) string { return d.Pipelines[i].ID })
	v.ids("integration", len(d.Integrations), func(i int) string { return d.Integrations[i].ID })

	branchRepo := make(map[string]string, len(d.Branches))
	for _, b := range d.Branches {
		branchRepo[b.ID] = b.RepoID
	}

	for _, u := range d.Users {
		if !models.IsRole(u.Role) {
			v.addf("user %s: unknown role %q", u.ID, u.Role)
		}
		if len(roles) > 0 && !roles[u.Role] {
			v.addf("user %s: role %q has no role definition", u.ID, u.Role)
		}
		for _, id := range u.Teams {
			v.ref(teams, "user "+u.ID, "team", id)
		}
		for _, id := range u.RepoAccess {
			v.ref(repos, "user "+u.ID, "repo", id)
		}
	}
	for _, t := range d.Teams {
		for _, id := range t.Members {
			v.ref(users, "team "+t.ID, "user", id)
		}
	}
	for _, r := range d.Repos {
		v.ref(users, "repo "+r.ID, "owner", r.Owner)
		for _, id := range r.Contributors {
			v.ref(users, "repo "+r.ID, "contributor", id)
		}
	}
	for _, b := range d.Branches {
		v.ref(repos, "branch "+b.ID, "repo", b.RepoID)
	}
	for _, c := range d.Commits {
		scope := "commit " + c.ID
		v.ref(users, scope, "author", c.AuthorID)
		v.ref(repos, scope, "repo", c.RepoID)
		if v.ref(branches, scope, "branch", c.BranchID) && branchRepo[c.BranchID] != c.RepoID {
			v.addf("%s: branch %s belongs to repo %s, not %s", scope, c.BranchID, branchRepo[c.BranchID], c.RepoID)
		}
		if c.PipelineID != "" {
			v.ref(pipelines, scope, "pipeline", c.PipelineID)
		}
		if !models.IsCommitStatus(c.Status) {
			v.addf("%s: unknown status %q", scope, c.Status)
		}
	}
	for _, p := range d.Pipelines {
		scope := "pipeline " + p.ID
		v.ref(repos, scope, "repo", p.RepoID)
		v.ref(users, scope, "triggered_by", p.TriggeredBy)
		if p.CommitID != "" {
			v.ref(commits, scope, "commit", p.CommitID)
		}
		if !models.IsPipelineStatus(p.Status) {
			v.addf("%s: unknown status %q", scope, p.Status)
		}
		if !models.IsEnvironment(p.Environment) {
			v.addf("%s: unknown environment %q", scope, p.Environment)
		}
		if p.Duration < 0 {
			v.addf("%s: negative duration %d", scope, p.Duration)
		}
		for _, s := range p.Stages {
			if !models.IsPipelineStatus(s.Status) {
				v.addf("%s stage %s: unknown status %q", scope, s.ID, s.Status)
			}
		}
	}
	for _, i := range d.Integrations {
		scope := "integration " + i.ID
		v.ref(users, scope, "connected_by", i.ConnectedBy)
		for _, id := range i.ConnectedRepos {
			v.ref(repos, scope, "repo", id)
		}
		if !models.IsIntegrationStatus(i.Status) {
			v.addf("%s: unknown status %q", scope, i.Status)
		}
		if !models.IsIntegrationType(i.Type) {
			v.addf("%s: unknown type %q", scope, i.Type)
		}
		if i.ConnectionStrength < 0 || i.ConnectionStrength > 100 {
			v.addf("%s: connection strength %d out of range [0,100]", scope, i.ConnectionStrength)
		}
	}

	return v.err()
}

type validator struct {
	errs []error
}

func (v *validator) addf(format string, args ...any) {
	v.errs = append(v.errs, fmt.Errorf(format, args...))
}

func (v *validator) ids(kind string, n int, id func(int) string) map[string]bool {
	set := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		key := id(i)
		if key == "" {
			v.addf("%s at index %d: empty id", kind, i)
			continue
		}
		if set[key] {
			v.addf("%s %s: duplicate id", kind, key)
		}
		set[key] = true
	}
	return set
}

func (v *validator) ref(set map[string]bool, scope, field, id string) bool {
	if !set[id] {
		v.addf("%s: %s %q does not exist", scope, field, id)
		return false
	}
	return true
}

func (v *validator) err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidDataset, errors.Join(v.errs...))
}
