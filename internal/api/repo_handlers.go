package api

import (
	"net/http"

	"github.com/odvcencio/maestro/internal/models"
)

type connectionRequest struct {
	Connected *bool `json:"connected"`
}

func (s *Server) handleListRepos(w http.ResponseWriter, r *http.Request) {
	connected, ok := parseOptionalQueryBool(w, r, "connected")
	if !ok {
		return
	}
	session := sessionID(r)
	if !s.connections.Has(session) {
		switch {
		case connected == nil:
			jsonResponse(w, http.StatusOK, s.catalog.Repos())
		case *connected:
			jsonResponse(w, http.StatusOK, s.catalog.ConnectedRepos())
		default:
			jsonResponse(w, http.StatusOK, s.catalog.AvailableRepos())
		}
		return
	}
	repos := s.connections.Repos(session, s.catalog.Repos())
	if connected != nil {
		filtered := make([]models.Repo, 0, len(repos))
		for _, repo := range repos {
			if repo.Connected == *connected {
				filtered = append(filtered, repo)
			}
		}
		repos = filtered
	}
	jsonResponse(w, http.StatusOK, repos)
}

func (s *Server) handleGetRepo(w http.ResponseWriter, r *http.Request) {
	repo, ok := s.catalog.Repo(r.PathValue("id"))
	if !ok {
		jsonError(w, "repository not found", http.StatusNotFound)
		return
	}
	repo = s.connections.Repo(sessionID(r), repo)
	jsonResponse(w, http.StatusOK, s.statsSvc.RepoDetail(repo))
}

func (s *Server) handleRepoCommits(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, s.catalog.CommitsForRepo(r.PathValue("id")))
}

func (s *Server) handleRepoPipelines(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, s.catalog.PipelinesForRepo(r.PathValue("id")))
}

func (s *Server) handleRepoIntegrations(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, s.catalog.IntegrationsForRepo(r.PathValue("id")))
}

func (s *Server) handleRepoBranches(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, s.catalog.BranchesForRepo(r.PathValue("id")))
}

// handleSetRepoConnection toggles a repo for the caller's session only.
func (s *Server) handleSetRepoConnection(w http.ResponseWriter, r *http.Request) {
	repo, ok := s.catalog.Repo(r.PathValue("id"))
	if !ok {
		jsonError(w, "repository not found", http.StatusNotFound)
		return
	}
	var req connectionRequest
	if !decodeJSONBody(w, r, &req, false) {
		return
	}
	if req.Connected == nil {
		jsonError(w, "connected is required", http.StatusBadRequest)
		return
	}
	session := sessionID(r)
	s.connections.SetRepo(session, sessionExpiry(r), repo.ID, *req.Connected)
	s.metrics.toggle("repo", *req.Connected)
	jsonResponse(w, http.StatusOK, s.connections.Repo(session, repo))
}
