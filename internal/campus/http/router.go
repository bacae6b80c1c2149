package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/campus/internal/campus/metrics"
	"github.com/aussiebroadwan/campus/internal/campus/service"
	"github.com/aussiebroadwan/campus/internal/campus/store"
	"github.com/aussiebroadwan/campus/pkg/httpx"
	"github.com/aussiebroadwan/campus/pkg/jwtx"
	"github.com/aussiebroadwan/campus/pkg/slogx"

	_ "github.com/aussiebroadwan/campus/api/campus" // Swagger docs
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// maxBodyBytes caps every JSON request body.
const maxBodyBytes = 64 << 10

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store            store.Store
	AccountService   *service.AccountService
	QueryService     *service.QueryService
	CommentService   *service.CommentService
	RetentionService *service.RetentionService

	// CronSecret guards POST /cleanup when non-empty.
	CronSecret string

	// ModerationState reports the toxicity backend for /readyz. Optional.
	ModerationState func() string
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// metrics must wrap the mux directly so r.Pattern is populated
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		metrics.Middleware,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerQueries()
	r.registerComments()
	r.registerMaintenance()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Campus Q&A API
//	@version		0.1.0
//	@description	Anonymous question and answer board for verified college students.
//	@description
//	@description				Accounts are tied to an institutional email but every query and comment is published under a random anonymous name.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/campus
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token from /auth/login or /auth/signup. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AccountService: r.AccountService}

	r.Mux.HandleFunc("POST /auth/signup", h.HandleSignup)
	r.Mux.HandleFunc("POST /auth/login", h.HandleLogin)
}

func (r *Router) registerQueries() {
	h := &QueriesHandler{QueryService: r.QueryService}

	r.Mux.HandleFunc("GET /queries", h.HandleList)

	// Anonymous readers see is_owner=false
	r.Mux.Handle("GET /queries/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.OptionalAuthn(r.verifier),
		),
	)

	r.Mux.Handle("POST /queries",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
		),
	)
	r.Mux.Handle("DELETE /queries/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			httpx.AuthnMiddleware(r.verifier),
		),
	)
}

func (r *Router) registerComments() {
	h := &CommentsHandler{CommentService: r.CommentService}

	r.Mux.Handle("POST /comments",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
		),
	)
}

func (r *Router) registerMaintenance() {
	r.Mux.Handle("POST /cleanup", &CleanupHandler{
		RetentionService: r.RetentionService,
		Secret:           r.CronSecret,
	})
	r.Mux.Handle("GET /sections", SectionsHandler())
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.ModerationState))
	r.Mux.Handle("GET /metrics", promhttp.Handler())
}
