package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/odvcencio/maestro/internal/models"
)

const DefaultPageSize = 5

// FilterAll matches every value of a filter.
const FilterAll = "all"

var ErrInvalidFilter = errors.New("invalid filter")

type DirectoryQuery struct {
	Search string
	Role   string
	Status string
	Page   int
}

// PageLink is one slot of the page number strip. Ellipsis slots carry no page.
type PageLink struct {
	Page     int  `json:"page,omitempty"`
	Current  bool `json:"current,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

type DirectoryPage struct {
	Members    []models.Member `json:"members"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	PerPage    int             `json:"per_page"`
	TotalPages int             `json:"total_pages"`
	From       int             `json:"from"`
	To         int             `json:"to"`
	Pages      []PageLink      `json:"pages"`
}

type DirectoryService struct {
	members  []models.Member
	pageSize int
}

func NewDirectoryService(members []models.Member, pageSize int) *DirectoryService {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &DirectoryService{members: members, pageSize: pageSize}
}

// Roles returns the distinct role labels in first-seen order.
func (s *DirectoryService) Roles() []string {
	return uniqueLabels(s.members, func(m models.Member) string { return m.Role })
}

func (s *DirectoryService) Search(q DirectoryQuery) (DirectoryPage, error) {
	status := normalizeFilter(q.Status)
	switch status {
	case "", models.MemberStatusActive, models.MemberStatusAway, models.MemberStatusInactive:
	default:
		return DirectoryPage{}, fmt.Errorf("%w: unknown member status %q", ErrInvalidFilter, q.Status)
	}
	role := normalizeFilter(q.Role)
	search := strings.ToLower(q.Search)

	filtered := make([]models.Member, 0, len(s.members))
	for _, m := range s.members {
		if search != "" && !containsFold(search, m.Name, m.Email, m.Department) {
			continue
		}
		if role != "" && m.Role != role {
			continue
		}
		if !matchesMemberStatus(status, m.Status) {
			continue
		}
		filtered = append(filtered, m)
	}

	total := len(filtered)
	totalPages := (total + s.pageSize - 1) / s.pageSize
	page := q.Page
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	result := DirectoryPage{
		Members:    []models.Member{},
		Total:      total,
		Page:       page,
		PerPage:    s.pageSize,
		TotalPages: totalPages,
		Pages:      pageLinks(page, totalPages),
	}
	if total == 0 {
		return result, nil
	}
	start := (page - 1) * s.pageSize
	end := min(start+s.pageSize, total)
	result.Members = filtered[start:end]
	result.From = start + 1
	result.To = end
	return result, nil
}

// "inactive" matches every member that is not active, away included.
func matchesMemberStatus(filter, status string) bool {
	switch filter {
	case "":
		return true
	case models.MemberStatusInactive:
		return status != models.MemberStatusActive
	default:
		return status == filter
	}
}

// pageLinks numbers the first and last page plus the neighbours of current.
// Pages two away from current collapse into an ellipsis.
func pageLinks(current, total int) []PageLink {
	links := make([]PageLink, 0, total)
	for p := 1; p <= total; p++ {
		switch {
		case p == 1 || p == total || (p >= current-1 && p <= current+1):
			links = append(links, PageLink{Page: p, Current: p == current})
		case p == current-2 || p == current+2:
			links = append(links, PageLink{Ellipsis: true})
		}
	}
	return links
}

func normalizeFilter(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, FilterAll) {
		return ""
	}
	return v
}

func containsFold(needle string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func uniqueLabels[T any](items []T, label func(T) string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		l := label(item)
		if seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}
