package api

import (
	"net/http"
	"strconv"
)

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	page, perPage, ok := parsePagination(w, r, 50, 200)
	if !ok {
		return
	}
	users := s.catalog.Users()
	w.Header().Set("X-Total-Count", strconv.Itoa(len(users)))
	jsonResponse(w, http.StatusOK, paginateSlice(users, page, perPage))
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	profile, ok := s.statsSvc.UserProfile(r.PathValue("id"))
	if !ok {
		jsonError(w, "user not found", http.StatusNotFound)
		return
	}
	jsonResponse(w, http.StatusOK, profile)
}

func (s *Server) handleUserCommits(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, s.catalog.CommitsForUser(r.PathValue("id")))
}

func (s *Server) handleUserPipelines(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, s.catalog.PipelinesTriggeredByUser(r.PathValue("id")))
}

func (s *Server) handleUserRepos(w http.ResponseWriter, r *http.Request) {
	repos := s.catalog.ReposForUser(r.PathValue("id"))
	jsonResponse(w, http.StatusOK, s.connections.Repos(sessionID(r), repos))
}
