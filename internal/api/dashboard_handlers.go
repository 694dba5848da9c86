package api

import "net/http"

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseOptionalQueryPositiveInt(w, r, "limit", "limit", s.opts.RecentLimit)
	if !ok {
		return
	}
	jsonResponse(w, http.StatusOK, s.statsSvc.Dashboard(limit))
}

func (s *Server) handleCommitStats(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, s.statsSvc.CommitStatistics())
}

func (s *Server) handlePipelineStats(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, s.statsSvc.PipelineStatistics())
}

func (s *Server) handleRepoStats(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, s.statsSvc.RepoStatistics())
}

func (s *Server) handleIntegrationStats(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, s.statsSvc.IntegrationStatistics())
}
