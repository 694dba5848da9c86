package api

import (
	"errors"
	"net/http"

	"github.com/odvcencio/maestro/internal/service"
)

func (s *Server) handleListMembers(w http.ResponseWriter, r *http.Request) {
	page, ok := parseOptionalQueryPositiveInt(w, r, "page", "page", 1)
	if !ok {
		return
	}
	q := r.URL.Query()
	result, err := s.directory.Search(service.DirectoryQuery{
		Search: q.Get("q"),
		Role:   q.Get("role"),
		Status: q.Get("status"),
		Page:   page,
	})
	if errors.Is(err, service.ErrInvalidFilter) {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}
	jsonResponse(w, http.StatusOK, result)
}

func (s *Server) handleMemberRoles(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, s.directory.Roles())
}

func (s *Server) handleListWorkflows(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	workflows, err := s.workflows.List(service.WorkflowQuery{
		Search: q.Get("q"),
		Status: q.Get("status"),
		Type:   q.Get("type"),
	})
	if errors.Is(err, service.ErrInvalidFilter) {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}
	jsonResponse(w, http.StatusOK, workflows)
}

func (s *Server) handleWorkflowTypes(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, s.workflows.Types())
}

func (s *Server) handleGetWorkflow(w http.ResponseWriter, r *http.Request) {
	workflow, ok := s.workflows.Workflow(r.PathValue("id"))
	if !ok {
		jsonError(w, "workflow not found", http.StatusNotFound)
		return
	}
	jsonResponse(w, http.StatusOK, workflow)
}
