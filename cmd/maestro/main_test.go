package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/odvcencio/maestro/internal/config"
	"github.com/odvcencio/maestro/internal/service"
)

func TestStatsPrintsFixtureDashboard(t *testing.T) {
	var out bytes.Buffer
	if err := cmdStats(context.Background(), []string{"-limit", "3"}, &out); err != nil {
		t.Fatalf("cmdStats: %v", err)
	}
	var dash service.Dashboard
	if err := json.Unmarshal(out.Bytes(), &dash); err != nil {
		t.Fatalf("decode stats output: %v", err)
	}
	if dash.Commits.TotalCommits != 10 {
		t.Fatalf("TotalCommits = %d, want 10", dash.Commits.TotalCommits)
	}
	if len(dash.RecentPipelines) != 3 {
		t.Fatalf("len(RecentPipelines) = %d, want 3", len(dash.RecentPipelines))
	}
}

func TestStatsTextFormat(t *testing.T) {
	var out bytes.Buffer
	if err := cmdStats(context.Background(), []string{"-format", "text"}, &out); err != nil {
		t.Fatalf("cmdStats: %v", err)
	}
	text := out.String()
	for _, want := range []string{"Commits       10", "178 stars", "Build and Test Frontend"} {
		if !strings.Contains(text, want) {
			t.Fatalf("text output missing %q:\n%s", want, text)
		}
	}

	if err := cmdStats(context.Background(), []string{"-format", "xml"}, &out); err == nil {
		t.Fatal("cmdStats(-format xml) error = nil, want error")
	}
}

func TestSeedThenStatsFromSnapshot(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "snapshot.db")
	ctx := context.Background()

	if err := cmdSeed(ctx, []string{"-dsn", dsn}); err != nil {
		t.Fatalf("cmdSeed: %v", err)
	}

	t.Setenv("MAESTRO_DATA_SOURCE", "sqlite")
	t.Setenv("MAESTRO_DATA_DSN", dsn)
	var out bytes.Buffer
	if err := cmdStats(ctx, nil, &out); err != nil {
		t.Fatalf("cmdStats(sqlite): %v", err)
	}
	var dash service.Dashboard
	if err := json.Unmarshal(out.Bytes(), &dash); err != nil {
		t.Fatalf("decode stats output: %v", err)
	}
	if dash.Pipelines.TotalPipelines != 9 || dash.Repos.TotalStars != 178 {
		t.Fatalf("snapshot dashboard = %d pipelines %d stars, want 9 and 178", dash.Pipelines.TotalPipelines, dash.Repos.TotalStars)
	}
}

func TestStatsFromEmptySnapshotFails(t *testing.T) {
	t.Setenv("MAESTRO_DATA_SOURCE", "sqlite")
	t.Setenv("MAESTRO_DATA_DSN", filepath.Join(t.TempDir(), "empty.db"))

	err := cmdStats(context.Background(), nil, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "maestro seed") {
		t.Fatalf("cmdStats(empty snapshot) error = %v, want hint to run seed", err)
	}
}

func TestEnvFileFlagIsApplied(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("MAESTRO_DASHBOARD_RECENT_LIMIT=2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("MAESTRO_DASHBOARD_RECENT_LIMIT") })

	var out bytes.Buffer
	if err := cmdStats(context.Background(), []string{"-env-file", envPath}, &out); err != nil {
		t.Fatalf("cmdStats: %v", err)
	}
	var dash service.Dashboard
	if err := json.Unmarshal(out.Bytes(), &dash); err != nil {
		t.Fatal(err)
	}
	if len(dash.RecentPipelines) != 2 {
		t.Fatalf("len(RecentPipelines) = %d, want 2 from the env file", len(dash.RecentPipelines))
	}
}

func TestServeRejectsDefaultSecret(t *testing.T) {
	t.Setenv("MAESTRO_JWT_SECRET", "")
	err := cmdServe(context.Background(), nil)
	if err == nil || !strings.Contains(err.Error(), "MAESTRO_JWT_SECRET") {
		t.Fatalf("cmdServe error = %v, want MAESTRO_JWT_SECRET validation error", err)
	}
}

func TestNewAuthServiceRejectsBadTokenDuration(t *testing.T) {
	cfg := config.Default()
	cfg.Auth.JWTSecret = "0123456789abcdef0123456789abcdef"

	for _, raw := range []string{"soon", "-1h"} {
		cfg.Auth.TokenDuration = raw
		if _, err := newAuthService(cfg); err == nil || !strings.Contains(err.Error(), "auth.token_duration") {
			t.Fatalf("newAuthService(%q) error = %v, want token_duration error", raw, err)
		}
	}

	cfg.Auth.TokenDuration = "2h"
	svc, err := newAuthService(cfg)
	if err != nil {
		t.Fatalf("newAuthService(2h): %v", err)
	}
	if svc.Duration().Hours() != 2 {
		t.Fatalf("Duration = %v, want 2h", svc.Duration())
	}
}

func TestTracingConfigFromEnv(t *testing.T) {
	t.Setenv("MAESTRO_OTEL_EXPORTER_OTLP_ENDPOINT", "http://collector:4318/v1/traces")
	t.Setenv("MAESTRO_OTEL_SAMPLE_RATIO", "0.25")

	cfg, err := tracingConfigFromEnv()
	if err != nil {
		t.Fatalf("tracingConfigFromEnv: %v", err)
	}
	if cfg.ServiceName != "maestro" || cfg.SampleRatio != 0.25 {
		t.Fatalf("cfg = %+v, want service maestro and ratio 0.25", cfg)
	}
	// endpoint, path and insecure
	if got := len(cfg.exporterOptions()); got != 3 {
		t.Fatalf("len(exporterOptions) = %d, want 3", got)
	}

	t.Setenv("MAESTRO_OTEL_SAMPLE_RATIO", "2")
	if _, err := tracingConfigFromEnv(); err == nil {
		t.Fatal("tracingConfigFromEnv(ratio 2) error = nil, want error")
	}
}

func TestInitTracingWithoutEndpointIsNoop(t *testing.T) {
	t.Setenv("MAESTRO_OTEL_EXPORTER_OTLP_ENDPOINT", "")
	shutdown, err := initTracing(context.Background())
	if err != nil {
		t.Fatalf("initTracing: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
