package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/odvcencio/maestro/internal/auth"
	"github.com/odvcencio/maestro/internal/catalog"
	"github.com/odvcencio/maestro/internal/database"
	"github.com/odvcencio/maestro/internal/fixtures"
	"github.com/odvcencio/maestro/internal/models"
	"github.com/odvcencio/maestro/internal/service"
)

type ServerOptions struct {
	CORSAllowedOrigins []string
	CookieSecure       bool
	// DemoUserID is the user a login without a user_id signs in as.
	DemoUserID  string
	PageSize    int
	RecentLimit int
	DataSource  string
	// Store is reported on by /healthz when the dataset came from a snapshot.
	Store database.DB

	// Page catalogs default to the built-in fixtures when nil.
	Members    []models.Member
	Workflows  []models.Workflow
	Connectors []models.Connector

	// MetricsRegistry isolates metrics per server. Nil uses the default registry.
	MetricsRegistry *prometheus.Registry
	Logger          *slog.Logger
}

type Server struct {
	catalog     *catalog.Catalog
	authSvc     *auth.Service
	statsSvc    *service.StatsService
	directory   *service.DirectoryService
	workflows   *service.WorkflowService
	connections *service.ConnectionStore
	connectors  []models.Connector

	opts    ServerOptions
	logger  *slog.Logger
	metrics *httpMetrics
	mux     *http.ServeMux
	handler http.Handler
}

func NewServerWithOptions(cat *catalog.Catalog, authSvc *auth.Service, opts ServerOptions) *Server {
	if opts.DemoUserID == "" {
		opts.DemoUserID = "u1"
	}
	if opts.PageSize < 1 {
		opts.PageSize = service.DefaultPageSize
	}
	if opts.RecentLimit < 1 {
		opts.RecentLimit = catalog.DefaultRecentLimit
	}
	if opts.DataSource == "" {
		opts.DataSource = "fixtures"
	}
	if opts.Members == nil {
		opts.Members = fixtures.Members()
	}
	if opts.Workflows == nil {
		opts.Workflows = fixtures.Workflows()
	}
	if opts.Connectors == nil {
		opts.Connectors = fixtures.Connectors()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		catalog:     cat,
		authSvc:     authSvc,
		statsSvc:    service.NewStatsService(cat),
		directory:   service.NewDirectoryService(opts.Members, opts.PageSize),
		workflows:   service.NewWorkflowService(opts.Workflows),
		connections: service.NewConnectionStore(),
		connectors:  opts.Connectors,
		opts:        opts,
		logger:      logger,
		mux:         http.NewServeMux(),
	}
	if opts.MetricsRegistry != nil {
		s.metrics = newHTTPMetrics(opts.MetricsRegistry)
	} else {
		s.metrics = getDefaultHTTPMetrics()
	}
	s.routes()
	resolve := muxRouteResolver(s.mux)
	s.handler = chainMiddleware(s.mux,
		func(next http.Handler) http.Handler { return requestTracingMiddleware(opts.DataSource, resolve, next) },
		func(next http.Handler) http.Handler { return requestMetricsMiddleware(s.metrics, resolve, next) },
		func(next http.Handler) http.Handler { return requestLoggingMiddleware(s.logger, next) },
		corsMiddleware(opts.CORSAllowedOrigins),
		compressionMiddleware,
		requestBodyLimitMiddleware,
		auth.Middleware(authSvc),
	)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	if s.opts.MetricsRegistry != nil {
		s.mux.Handle("GET /metrics", metricsHandler(s.opts.MetricsRegistry))
	} else {
		s.mux.Handle("GET /metrics", metricsHandler(nil))
	}

	// Session
	s.mux.HandleFunc("POST /api/v1/auth/login", s.handleLogin)
	s.mux.HandleFunc("POST /api/v1/auth/logout", s.requireAuth(s.handleLogout))
	s.mux.HandleFunc("GET /api/v1/session", s.requireAuth(s.handleSession))

	// Dashboard and statistics
	s.mux.HandleFunc("GET /api/v1/dashboard", s.requireAuth(s.handleDashboard))
	s.mux.HandleFunc("GET /api/v1/stats/commits", s.requireAuth(s.handleCommitStats))
	s.mux.HandleFunc("GET /api/v1/stats/pipelines", s.requireAuth(s.handlePipelineStats))
	s.mux.HandleFunc("GET /api/v1/stats/repos", s.requireAuth(s.handleRepoStats))
	s.mux.HandleFunc("GET /api/v1/stats/integrations", s.requireAuth(s.handleIntegrationStats))

	// Repositories
	s.mux.HandleFunc("GET /api/v1/repos", s.requireAuth(s.handleListRepos))
	s.mux.HandleFunc("GET /api/v1/repos/{id}", s.requireAuth(s.handleGetRepo))
	s.mux.HandleFunc("GET /api/v1/repos/{id}/commits", s.requireAuth(s.handleRepoCommits))
	s.mux.HandleFunc("GET /api/v1/repos/{id}/pipelines", s.requireAuth(s.handleRepoPipelines))
	s.mux.HandleFunc("GET /api/v1/repos/{id}/integrations", s.requireAuth(s.handleRepoIntegrations))
	s.mux.HandleFunc("GET /api/v1/repos/{id}/branches", s.requireAuth(s.handleRepoBranches))
	s.mux.HandleFunc("PUT /api/v1/repos/{id}/connection", s.requireAuth(s.handleSetRepoConnection))

	// Commits and pipelines
	s.mux.HandleFunc("GET /api/v1/commits/recent", s.requireAuth(s.handleRecentCommits))
	s.mux.HandleFunc("GET /api/v1/pipelines/recent", s.requireAuth(s.handleRecentPipelines))
	s.mux.HandleFunc("GET /api/v1/pipelines/{id}", s.requireAuth(s.handleGetPipeline))

	// Users
	s.mux.HandleFunc("GET /api/v1/users", s.requireAuth(s.handleListUsers))
	s.mux.HandleFunc("GET /api/v1/users/{id}", s.requireAuth(s.handleGetUser))
	s.mux.HandleFunc("GET /api/v1/users/{id}/commits", s.requireAuth(s.handleUserCommits))
	s.mux.HandleFunc("GET /api/v1/users/{id}/pipelines", s.requireAuth(s.handleUserPipelines))
	s.mux.HandleFunc("GET /api/v1/users/{id}/repos", s.requireAuth(s.handleUserRepos))

	// Integrations and connectors
	s.mux.HandleFunc("GET /api/v1/integrations", s.requireAuth(s.handleListIntegrations))
	s.mux.HandleFunc("GET /api/v1/connectors", s.requireAuth(s.handleListConnectors))
	s.mux.HandleFunc("PUT /api/v1/connectors/{id}/connection", s.requireAuth(s.handleSetConnectorConnection))

	// Directory
	s.mux.HandleFunc("GET /api/v1/members", s.requireAuth(s.handleListMembers))
	s.mux.HandleFunc("GET /api/v1/members/roles", s.requireAuth(s.handleMemberRoles))

	// Workflow catalog
	s.mux.HandleFunc("GET /api/v1/workflows", s.requireAuth(s.handleListWorkflows))
	s.mux.HandleFunc("GET /api/v1/workflows/types", s.requireAuth(s.handleWorkflowTypes))
	s.mux.HandleFunc("GET /api/v1/workflows/{id}", s.requireAuth(s.handleGetWorkflow))
}

func (s *Server) requireAuth(fn http.HandlerFunc) http.HandlerFunc {
	return auth.RequireAuth(fn).ServeHTTP
}

type middlewareFunc func(http.Handler) http.Handler

// chainMiddleware wraps h so the first middleware is outermost.
func chainMiddleware(h http.Handler, middleware ...middlewareFunc) http.Handler {
	for i := len(middleware) - 1; i >= 0; i-- {
		h = middleware[i](h)
	}
	return h
}

func shouldSkipRequestInstrumentation(r *http.Request) bool {
	if r == nil || r.URL == nil {
		return false
	}
	path := r.URL.Path
	return path == "/metrics" || strings.HasPrefix(path, "/debug/pprof")
}
