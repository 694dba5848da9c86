package api

import "net/http"

func (s *Server) handleRecentCommits(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseOptionalQueryPositiveInt(w, r, "limit", "limit", s.opts.RecentLimit)
	if !ok {
		return
	}
	jsonResponse(w, http.StatusOK, s.catalog.RecentCommits(limit))
}

func (s *Server) handleRecentPipelines(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseOptionalQueryPositiveInt(w, r, "limit", "limit", s.opts.RecentLimit)
	if !ok {
		return
	}
	jsonResponse(w, http.StatusOK, s.catalog.RecentPipelines(limit))
}

func (s *Server) handleGetPipeline(w http.ResponseWriter, r *http.Request) {
	detail, ok := s.statsSvc.PipelineDetail(r.PathValue("id"))
	if !ok {
		jsonError(w, "pipeline not found", http.StatusNotFound)
		return
	}
	jsonResponse(w, http.StatusOK, detail)
}
