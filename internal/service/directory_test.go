package service

import (
	"errors"
	"reflect"
	"testing"

	"github.com/odvcencio/maestro/internal/fixtures"
	"github.com/odvcencio/maestro/internal/models"
)

func memberNames(items []models.Member) []string {
	out := make([]string, 0, len(items))
	for _, m := range items {
		out = append(out, m.Name)
	}
	return out
}

func TestDirectorySearch(t *testing.T) {
	dir := NewDirectoryService(fixtures.Members(), DefaultPageSize)

	tests := []struct {
		name  string
		query DirectoryQuery
		want  []string
	}{
		{
			name:  "substring matches several names",
			query: DirectoryQuery{Search: "ana"},
			want:  []string{"Ana Silva", "Mariana Costa", "Juliana Lima"},
		},
		{
			name:  "full name isolates one member",
			query: DirectoryQuery{Search: "Ana Silva"},
			want:  []string{"Ana Silva"},
		},
		{
			name:  "email prefix isolates one member",
			query: DirectoryQuery{Search: "ANA.SILVA@"},
			want:  []string{"Ana Silva"},
		},
		{
			name:  "whitespace in the term is matched as typed",
			query: DirectoryQuery{Search: "a "},
			want:  []string{"Ana Silva", "Mariana Costa", "Juliana Lima", "Fernanda Almeida"},
		},
		{
			name:  "inactive includes away",
			query: DirectoryQuery{Status: models.MemberStatusInactive},
			want:  []string{"Mariana Costa", "Roberto Santos", "Carlos Mendes"},
		},
		{
			name:  "away only",
			query: DirectoryQuery{Status: models.MemberStatusAway},
			want:  []string{"Mariana Costa"},
		},
		{
			name:  "role equality",
			query: DirectoryQuery{Role: "Desenvolvedor"},
			want:  []string{"Ana Silva", "Juliana Lima"},
		},
		{
			name:  "all filters",
			query: DirectoryQuery{Role: FilterAll, Status: FilterAll, Search: "zzz"},
			want:  []string{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			page, err := dir.Search(tc.query)
			if err != nil {
				t.Fatalf("Search(%+v): %v", tc.query, err)
			}
			if got := memberNames(page.Members); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Search(%+v) = %v, want %v", tc.query, got, tc.want)
			}
			if page.Total != len(tc.want) {
				t.Fatalf("Total = %d, want %d", page.Total, len(tc.want))
			}
		})
	}
}

func TestDirectoryPagination(t *testing.T) {
	dir := NewDirectoryService(fixtures.Members(), DefaultPageSize)

	first, err := dir.Search(DirectoryQuery{})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if first.Total != 8 || first.TotalPages != 2 || first.Page != 1 {
		t.Fatalf("first page = total %d pages %d page %d, want 8/2/1", first.Total, first.TotalPages, first.Page)
	}
	if len(first.Members) != 5 || first.From != 1 || first.To != 5 {
		t.Fatalf("first page = %d members from %d to %d, want 5 from 1 to 5", len(first.Members), first.From, first.To)
	}

	second, err := dir.Search(DirectoryQuery{Page: 2})
	if err != nil {
		t.Fatalf("Search(page 2): %v", err)
	}
	if got := memberNames(second.Members); !reflect.DeepEqual(got, []string{"Juliana Lima", "Carlos Mendes", "Fernanda Almeida"}) {
		t.Fatalf("page 2 = %v", got)
	}
	if second.From != 6 || second.To != 8 {
		t.Fatalf("page 2 from/to = %d/%d, want 6/8", second.From, second.To)
	}

	clamped, err := dir.Search(DirectoryQuery{Page: 40})
	if err != nil {
		t.Fatalf("Search(page 40): %v", err)
	}
	if clamped.Page != 2 {
		t.Fatalf("clamped page = %d, want 2", clamped.Page)
	}
	low, _ := dir.Search(DirectoryQuery{Page: -3})
	if low.Page != 1 {
		t.Fatalf("low page = %d, want 1", low.Page)
	}

	empty, _ := dir.Search(DirectoryQuery{Search: "nobody"})
	if empty.From != 0 || empty.To != 0 || empty.TotalPages != 0 || len(empty.Pages) != 0 || empty.Members == nil {
		t.Fatalf("empty page = %+v, want zero range and no links", empty)
	}
}

func TestDirectoryRejectsUnknownStatus(t *testing.T) {
	dir := NewDirectoryService(fixtures.Members(), DefaultPageSize)
	if _, err := dir.Search(DirectoryQuery{Status: "banned"}); !errors.Is(err, ErrInvalidFilter) {
		t.Fatalf("Search(status banned) error = %v, want ErrInvalidFilter", err)
	}
}

func TestDirectoryRoles(t *testing.T) {
	dir := NewDirectoryService(fixtures.Members(), 0)
	want := []string{"Admin", "Desenvolvedor", "DevOps", "Product Manager", "QA Analyst", "Arquiteto", "Tech Lead"}
	if got := dir.Roles(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Roles() = %v, want %v", got, want)
	}
}

func TestPageLinks(t *testing.T) {
	num := func(p int) PageLink { return PageLink{Page: p} }
	cur := func(p int) PageLink { return PageLink{Page: p, Current: true} }
	gap := PageLink{Ellipsis: true}

	tests := []struct {
		name    string
		current int
		total   int
		want    []PageLink
	}{
		{name: "single", current: 1, total: 1, want: []PageLink{cur(1)}},
		{name: "start of long strip", current: 1, total: 10, want: []PageLink{cur(1), num(2), gap, num(10)}},
		{name: "middle", current: 5, total: 10, want: []PageLink{num(1), gap, num(4), cur(5), num(6), gap, num(10)}},
		{name: "near end", current: 9, total: 10, want: []PageLink{num(1), gap, num(8), cur(9), num(10)}},
		{name: "neighbour of first", current: 3, total: 5, want: []PageLink{num(1), num(2), cur(3), num(4), num(5)}},
		{name: "none", current: 1, total: 0, want: []PageLink{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := pageLinks(tc.current, tc.total); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("pageLinks(%d, %d) = %+v, want %+v", tc.current, tc.total, got, tc.want)
			}
		})
	}
}
