package api

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/odvcencio/maestro/internal/auth"
	"github.com/odvcencio/maestro/internal/catalog"
	"github.com/odvcencio/maestro/internal/fixtures"
)

func newChainTestServer(t *testing.T, logs io.Writer) *Server {
	t.Helper()
	cat, err := catalog.New(fixtures.Dataset())
	if err != nil {
		t.Fatal(err)
	}
	return NewServerWithOptions(cat, auth.NewService("test-secret", time.Hour), ServerOptions{
		CORSAllowedOrigins: []string{"https://dashboard.test"},
		MetricsRegistry:    prometheus.NewRegistry(),
		Logger:             slog.New(slog.NewTextHandler(logs, nil)),
	})
}

func TestChainMiddlewareWrapsFirstOutermost(t *testing.T) {
	var trail strings.Builder
	mark := func(name string) middlewareFunc {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				trail.WriteString(name + ">")
				next.ServeHTTP(w, r)
				trail.WriteString("<" + name)
			})
		}
	}
	handler := chainMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		trail.WriteString("handler")
	}), mark("a"), mark("b"), mark("c"))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if got, want := trail.String(), "a>b>c>handler<c<b<a"; got != want {
		t.Fatalf("expected trail %q, got %q", want, got)
	}
}

// A rejected bearer token is answered by the innermost auth layer, so every
// outer layer still sees the request and its 401.
func TestServerObservesRequestsRejectedByAuth(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider()
	tp.RegisterSpanProcessor(recorder)
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(noop.NewTracerProvider())
		_ = tp.Shutdown(context.Background())
	})

	var logs bytes.Buffer
	s := newChainTestServer(t, &logs)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	req.Header.Set("Origin", "https://dashboard.test")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	assertJSONError(t, rec, http.StatusUnauthorized, "invalid token")
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://dashboard.test" {
		t.Fatalf("expected cors headers on the auth rejection, got %q", got)
	}
	if got := testutil.ToFloat64(s.metrics.requestErrors.WithLabelValues(http.MethodGet, "/api/v1/session", "401")); got != 1 {
		t.Fatalf("expected one 401 counted for /api/v1/session, got %v", got)
	}
	if !strings.Contains(logs.String(), "status=401") {
		t.Fatalf("expected the request log to record the 401, got %q", logs.String())
	}
	spans := recorder.Ended()
	if len(spans) != 1 || spans[0].Name() != "GET /api/v1/session" {
		t.Fatalf("expected one span named for the session route, got %d", len(spans))
	}
	if !containsIntAttribute(spans[0].Attributes(), "http.status_code", http.StatusUnauthorized) {
		t.Fatal("expected span attribute http.status_code=401")
	}
}

func TestServerSpansCarrySessionUser(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider()
	tp.RegisterSpanProcessor(recorder)
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(noop.NewTracerProvider())
		_ = tp.Shutdown(context.Background())
	})

	s := newChainTestServer(t, io.Discard)
	token, claims, err := s.authSvc.GenerateToken("u2", "Jamie Chen", "developer")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/u2", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected one span, got %d", len(spans))
	}
	attrs := spans[0].Attributes()
	if !containsStringAttribute(attrs, "enduser.id", "u2") {
		t.Fatal("expected span attribute enduser.id=u2")
	}
	if !containsStringAttribute(attrs, "maestro.session_id", claims.SessionID()) {
		t.Fatal("expected span attribute maestro.session_id")
	}
	if !containsStringAttribute(attrs, "maestro.data_source", "fixtures") {
		t.Fatal("expected span attribute maestro.data_source=fixtures")
	}
}

func TestServerAppliesBodyLimitBeforeAuth(t *testing.T) {
	s := newChainTestServer(t, io.Discard)

	body := strings.NewReader(`{"connected":true,"pad":"` + strings.Repeat("x", int(maxAPIBodyBytes)) + `"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/repos/r1/connection", body)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	assertJSONError(t, rec, http.StatusRequestEntityTooLarge, "request body too large")
}

func TestServerAnswersPreflightBeforeAuth(t *testing.T) {
	s := newChainTestServer(t, io.Discard)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/repos", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	req.Header.Set("Origin", "https://dashboard.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected preflight status 204, got %d", rec.Code)
	}
	if got := testutil.ToFloat64(s.metrics.requestTotal.WithLabelValues(http.MethodOptions, "/api/v1/*", "2xx")); got != 1 {
		t.Fatalf("expected the preflight to be counted once, got %v", got)
	}
}

func TestServerCompressesInsideObservability(t *testing.T) {
	s := newChainTestServer(t, io.Discard)
	token, _, err := s.authSvc.GenerateToken("u1", "Alex Morgan", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/repos", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || rec.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("expected gzipped 200, got %d %q", rec.Code, rec.Header().Get("Content-Encoding"))
	}
	if got := testutil.ToFloat64(s.metrics.requestTotal.WithLabelValues(http.MethodGet, "/api/v1/repos", "2xx")); got != 1 {
		t.Fatalf("expected the compressed response to be counted as 2xx, got %v", got)
	}
}
