package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/odvcencio/maestro/internal/api"
	"github.com/odvcencio/maestro/internal/auth"
	"github.com/odvcencio/maestro/internal/catalog"
	"github.com/odvcencio/maestro/internal/config"
	"github.com/odvcencio/maestro/internal/database"
	"github.com/odvcencio/maestro/internal/fixtures"
	"github.com/odvcencio/maestro/internal/format"
	"github.com/odvcencio/maestro/internal/service"
)

const usage = `Usage: maestro <command> [flags]

Commands:
  serve    Start the dashboard API
  seed     Write the built-in fixtures to the SQLite snapshot
  stats    Print the dashboard summary
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch os.Args[1] {
	case "serve":
		err = cmdServe(ctx, os.Args[2:])
	case "seed":
		err = cmdSeed(ctx, os.Args[2:])
	case "stats":
		err = cmdStats(ctx, os.Args[2:], os.Stdout)
	case "help", "-h", "--help":
		fmt.Fprint(os.Stdout, usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n%s", os.Args[1], usage)
		os.Exit(1)
	}
	if err != nil {
		slog.Error(os.Args[1]+" failed", "error", err)
		os.Exit(1)
	}
}

// commonFlags registers -config and -env-file on fs and returns a loader
// that reads both once fs has been parsed.
func commonFlags(fs *flag.FlagSet) func() (*config.Config, error) {
	configPath := fs.String("config", "", "path to a YAML or TOML config file")
	envFile := fs.String("env-file", os.Getenv("MAESTRO_ENV_FILE"), "path to a .env file")
	return func() (*config.Config, error) {
		if err := config.LoadEnvFile(*envFile); err != nil {
			return nil, err
		}
		cfg, err := config.Load(*configPath)
		if err != nil {
			return nil, err
		}
		slog.SetDefault(newLogger(cfg, os.Stdout))
		return cfg, nil
	}
}

func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
}

func cmdServe(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	load := commonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := load()
	if err != nil {
		return err
	}
	if err := cfg.ValidateServe(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	traceShutdown, err := initTracing(ctx)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := traceShutdown(shutdownCtx); err != nil {
			slog.Error("shutdown tracing", "error", err)
		}
	}()

	cat, store, err := openCatalog(ctx, cfg)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	authSvc, err := newAuthService(cfg)
	if err != nil {
		return err
	}
	opts := api.ServerOptions{
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
		CookieSecure:       cfg.Auth.CookieSecure,
		DemoUserID:         cfg.Auth.DemoUserID,
		PageSize:           cfg.Directory.PageSize,
		RecentLimit:        cfg.Dashboard.RecentLimit,
		DataSource:         cfg.Data.Source,
		Store:              store,
		Logger:             slog.Default(),
	}
	if _, ok := cat.User(cfg.Auth.DemoUserID); !ok {
		return fmt.Errorf("demo user %q is not in the dataset", cfg.Auth.DemoUserID)
	}
	server := api.NewServerWithOptions(cat, authSvc, opts)

	httpServer := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("maestro listening", "addr", cfg.Addr(), "data_source", cfg.Data.Source)
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func cmdSeed(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	load := commonFlags(fs)
	dsn := fs.String("dsn", "", "snapshot path (defaults to data.dsn)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := load()
	if err != nil {
		return err
	}
	path := cfg.Data.DSN
	if *dsn != "" {
		path = *dsn
	}

	db, err := openStore(ctx, path)
	if err != nil {
		return err
	}
	defer db.Close()

	data := fixtures.Dataset()
	if err := data.Validate(); err != nil {
		return fmt.Errorf("fixtures: %w", err)
	}
	if err := db.SaveDataset(ctx, data, time.Now().UTC()); err != nil {
		return err
	}
	info, err := db.SnapshotInfo(ctx)
	if err != nil {
		return err
	}
	slog.Info("snapshot written", "dsn", path, "rows", info.Rows)
	return nil
}

func cmdStats(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	load := commonFlags(fs)
	output := fs.String("format", "json", "output format: json or text")
	limit := fs.Int("limit", 0, "recent pipelines to include (defaults to dashboard.recent_limit)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := load()
	if err != nil {
		return err
	}

	cat, store, err := openCatalog(ctx, cfg)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}
	n := *limit
	if n < 1 {
		n = cfg.Dashboard.RecentLimit
	}
	dash := service.NewStatsService(cat).Dashboard(n)

	switch *output {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(dash)
	case "text":
		return writeDashboardText(out, dash)
	default:
		return fmt.Errorf("unknown -format %q", *output)
	}
}

func writeDashboardText(w io.Writer, d service.Dashboard) error {
	lines := []string{
		fmt.Sprintf("Commits       %s (%.1f%% success)", humanize.Comma(int64(d.Commits.TotalCommits)), d.Commits.SuccessRate),
		fmt.Sprintf("Pipelines     %s (%.1f%% success, avg %s)", humanize.Comma(int64(d.Pipelines.TotalPipelines)), d.Pipelines.SuccessRate, format.Duration(int(d.Pipelines.AverageDuration))),
		fmt.Sprintf("Repositories  %s (%s stars, %s open issues)", humanize.Comma(int64(d.Repos.TotalRepos)), humanize.Comma(int64(d.Repos.TotalStars)), humanize.Comma(int64(d.Repos.TotalOpenIssues))),
		fmt.Sprintf("Integrations  %s (%d active)", humanize.Comma(int64(d.Integrations.TotalIntegrations)), d.Integrations.ActiveIntegrations),
		fmt.Sprintf("Users         %s", humanize.Comma(int64(d.TotalUsers))),
	}
	for _, p := range d.RecentPipelines {
		lines = append(lines, fmt.Sprintf("  %-8s %-28s %-8s %s", p.Status, p.Name, p.Duration, p.StartedAt))
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

// openCatalog builds the catalog from the configured source. The returned
// store is nil for fixtures and must be closed otherwise.
func newAuthService(cfg *config.Config) (*auth.Service, error) {
	ttl, err := cfg.TokenTTL()
	if err != nil {
		return nil, fmt.Errorf("auth token ttl: %w", err)
	}
	return auth.NewService(cfg.Auth.JWTSecret, ttl), nil
}

func openCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, database.DB, error) {
	switch cfg.Data.Source {
	case config.SourceFixtures:
		cat, err := catalog.New(fixtures.Dataset())
		if err != nil {
			return nil, nil, fmt.Errorf("fixtures: %w", err)
		}
		return cat, nil, nil
	case config.SourceSQLite:
		db, err := openStore(ctx, cfg.Data.DSN)
		if err != nil {
			return nil, nil, err
		}
		data, err := db.LoadDataset(ctx)
		if errors.Is(err, database.ErrEmptySnapshot) {
			db.Close()
			return nil, nil, fmt.Errorf("snapshot %s is empty; run `maestro seed` first", cfg.Data.DSN)
		}
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		cat, err := catalog.New(data)
		if err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("snapshot %s: %w", cfg.Data.DSN, err)
		}
		return cat, db, nil
	default:
		return nil, nil, fmt.Errorf("unsupported data source: %s", cfg.Data.Source)
	}
}

func openStore(ctx context.Context, dsn string) (*database.SQLiteDB, error) {
	db, err := database.OpenSQLite(dsn)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate snapshot: %w", err)
	}
	return db, nil
}
