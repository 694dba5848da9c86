package service

import (
	"fmt"
	"strings"

	"github.com/odvcencio/maestro/internal/models"
)

type WorkflowQuery struct {
	Search string
	Status string
	Type   string
}

type WorkflowService struct {
	workflows []models.Workflow
}

func NewWorkflowService(workflows []models.Workflow) *WorkflowService {
	return &WorkflowService{workflows: workflows}
}

// Types returns the distinct workflow types in first-seen order.
func (s *WorkflowService) Types() []string {
	return uniqueLabels(s.workflows, func(w models.Workflow) string { return w.Type })
}

func (s *WorkflowService) Workflow(id string) (models.Workflow, bool) {
	for _, w := range s.workflows {
		if w.ID == id {
			return w, true
		}
	}
	return models.Workflow{}, false
}

func (s *WorkflowService) List(q WorkflowQuery) ([]models.Workflow, error) {
	status := normalizeFilter(q.Status)
	if status != "" && !models.IsWorkflowStatus(status) {
		return nil, fmt.Errorf("%w: unknown workflow status %q", ErrInvalidFilter, q.Status)
	}
	kind := normalizeFilter(q.Type)
	search := strings.ToLower(q.Search)

	out := make([]models.Workflow, 0, len(s.workflows))
	for _, w := range s.workflows {
		if search != "" && !containsFold(search, w.Name, w.ID, w.Description) {
			continue
		}
		if status != "" && w.Status != status {
			continue
		}
		if kind != "" && w.Type != kind {
			continue
		}
		out = append(out, w)
	}
	return out, nil
}
