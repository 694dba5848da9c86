package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
)

func TestParseOptionalQueryPositiveInt_DefaultAndValidValues(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	value, ok := parseOptionalQueryPositiveInt(rec, req, "limit", "limit", 25)
	if !ok {
		t.Fatal("expected default value parse to succeed")
	}
	if value != 25 {
		t.Fatalf("expected default value 25, got %d", value)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 when no query value is present, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/?limit=17", nil)
	rec = httptest.NewRecorder()
	value, ok = parseOptionalQueryPositiveInt(rec, req, "limit", "limit", 25)
	if !ok {
		t.Fatal("expected explicit positive query value to parse")
	}
	if value != 17 {
		t.Fatalf("expected parsed value 17, got %d", value)
	}

	maxInt := int(^uint(0) >> 1)
	req = httptest.NewRequest(http.MethodGet, "/?limit="+strconv.Itoa(maxInt), nil)
	rec = httptest.NewRecorder()
	value, ok = parseOptionalQueryPositiveInt(rec, req, "limit", "limit", 25)
	if !ok {
		t.Fatal("expected max int query value to parse")
	}
	if value != maxInt {
		t.Fatalf("expected parsed value %d, got %d", maxInt, value)
	}
}

func TestParseOptionalQueryPositiveInt_InvalidValues(t *testing.T) {
	tests := []string{
		"abc",
		"0",
		"-1",
		"9223372036854775808",
	}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/?limit="+raw, nil)
			rec := httptest.NewRecorder()
			if _, ok := parseOptionalQueryPositiveInt(rec, req, "limit", "limit", 25); ok {
				t.Fatalf("expected parse failure for %q", raw)
			}
			assertJSONError(t, rec, http.StatusBadRequest, "invalid limit query parameter")
		})
	}
}

func TestParseOptionalQueryBool(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	value, ok := parseOptionalQueryBool(rec, req, "connected")
	if !ok || value != nil {
		t.Fatalf("expected absent value to yield nil, got %v ok=%v", value, ok)
	}

	for raw, want := range map[string]bool{"true": true, "false": false, "1": true, "0": false} {
		req := httptest.NewRequest(http.MethodGet, "/?connected="+raw, nil)
		rec := httptest.NewRecorder()
		value, ok := parseOptionalQueryBool(rec, req, "connected")
		if !ok || value == nil || *value != want {
			t.Fatalf("expected %q to parse as %v, got %v ok=%v", raw, want, value, ok)
		}
	}

	req = httptest.NewRequest(http.MethodGet, "/?connected=maybe", nil)
	rec = httptest.NewRecorder()
	if _, ok := parseOptionalQueryBool(rec, req, "connected"); ok {
		t.Fatal("expected invalid bool to fail")
	}
	assertJSONError(t, rec, http.StatusBadRequest, "invalid connected query parameter")
}

func TestDecodeJSONBody(t *testing.T) {
	var dst connectionRequest
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"connected":false}`))
	rec := httptest.NewRecorder()
	if !decodeJSONBody(rec, req, &dst, false) {
		t.Fatal("expected valid body to decode")
	}
	if dst.Connected == nil || *dst.Connected {
		t.Fatalf("expected connected=false, got %v", dst.Connected)
	}

	req = httptest.NewRequest(http.MethodPut, "/", strings.NewReader(""))
	rec = httptest.NewRecorder()
	if !decodeJSONBody(rec, req, &loginRequest{}, true) {
		t.Fatal("expected empty body to be accepted when allowed")
	}

	for name, body := range map[string]string{
		"empty":   "",
		"garbage": "{not json",
		"unknown": `{"connected":true,"extra":1}`,
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
			rec := httptest.NewRecorder()
			if decodeJSONBody(rec, req, &connectionRequest{}, false) {
				t.Fatalf("expected body %q to be rejected", body)
			}
			assertJSONError(t, rec, http.StatusBadRequest, "invalid request body")
		})
	}
}

func TestPaginateSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	if got := paginateSlice(items, 2, 2); len(got) != 2 || got[0] != 3 {
		t.Fatalf("expected page 2 to be [3 4], got %v", got)
	}
	if got := paginateSlice(items, 3, 2); len(got) != 1 || got[0] != 5 {
		t.Fatalf("expected page 3 to be [5], got %v", got)
	}
	if got := paginateSlice(items, 4, 2); len(got) != 0 {
		t.Fatalf("expected page past the end to be empty, got %v", got)
	}
	maxInt := int(^uint(0) >> 1)
	for _, page := range []int{maxInt, maxInt/2 + 1, 0, -3} {
		if got := paginateSlice(items, page, 2); len(got) != 0 {
			t.Fatalf("expected page %d to be empty, got %v", page, got)
		}
	}
	if got := paginateSlice(items, maxInt, maxInt); len(got) != 0 {
		t.Fatalf("expected huge page and per_page to be empty, got %v", got)
	}
}

func TestParsePagination(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?page=2&per_page=500", nil)
	rec := httptest.NewRecorder()
	page, perPage, ok := parsePagination(rec, req, 50, 200)
	if !ok || page != 2 || perPage != 200 {
		t.Fatalf("expected page 2 per_page 200, got %d %d ok=%v", page, perPage, ok)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	page, perPage, ok = parsePagination(rec, req, 50, 200)
	if !ok || page != 1 || perPage != 50 {
		t.Fatalf("expected defaults 1 and 50, got %d %d ok=%v", page, perPage, ok)
	}

	for _, query := range []string{"page=abc", "page=0", "per_page=-1"} {
		t.Run(query, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
			rec := httptest.NewRecorder()
			if _, _, ok := parsePagination(rec, req, 50, 200); ok {
				t.Fatalf("expected %q to be rejected", query)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", rec.Code)
			}
		})
	}
}

func assertJSONError(t *testing.T, rec *httptest.ResponseRecorder, wantStatus int, wantError string) {
	t.Helper()
	if rec.Code != wantStatus {
		t.Fatalf("expected status %d, got %d", wantStatus, rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	if got := body["error"]; got != wantError {
		t.Fatalf("expected error %q, got %q", wantError, got)
	}
}
