package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/lockboxhq/lockbox/internal/vault/service"
	"github.com/lockboxhq/lockbox/internal/vault/store"
	"github.com/lockboxhq/lockbox/pkg/httpx"
	"github.com/lockboxhq/lockbox/pkg/jwtx"
	"github.com/lockboxhq/lockbox/pkg/slogx"

	_ "github.com/lockboxhq/lockbox/api/vault" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	UserService       *service.UserService
	TokenService      *service.TokenService
	FederationService *service.FederationService
	EntryService      *service.EntryService
	Providers         []Provider
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

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerOAuth()
	r.registerUserInfo()
	r.registerEntries()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Lockbox Vault Service API
//	@version		0.1.0
//	@description	Personal password vault: authenticated users store, list, and delete named website credentials.
//	@description
//	@description				Sessions are HS256-signed bearer tokens issued by login or a federated callback.
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
//	@description				Session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	registerHandler := &RegisterHandler{UserService: r.UserService}
	loginHandler := &LoginHandler{
		UserService:  r.UserService,
		TokenService: r.TokenService,
	}
	providersHandler := &ProvidersHandler{Providers: r.Providers}

	r.Mux.Handle("POST /v1/auth/register", registerHandler)
	r.Mux.Handle("POST /v1/auth/login", loginHandler)
	r.Mux.Handle("GET /v1/auth/providers", providersHandler)
}

func (r *Router) registerOAuth() {
	h := &OAuthHandler{
		Providers:         r.Providers,
		FederationService: r.FederationService,
		TokenService:      r.TokenService,
	}

	r.Mux.Handle("GET /v1/oauth/{provider}/authorize", http.HandlerFunc(h.HandleAuthorize))
	r.Mux.Handle("GET /v1/oauth/{provider}/callback", http.HandlerFunc(h.HandleCallback))
}

func (r *Router) registerUserInfo() {
	h := &UserInfoHandler{UserService: r.UserService}

	secured := httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier), // verify session token (sig/iss/exp)
	)

	r.Mux.Handle("GET /v1/userinfo", secured)
}

func (r *Router) registerEntries() {
	h := &EntriesHandler{EntryService: r.EntryService}

	authn := httpx.AuthnMiddleware(r.verifier)

	r.Mux.Handle("GET /v1/entries",
		httpx.Chain(http.HandlerFunc(h.HandleList), authn))
	r.Mux.Handle("POST /v1/entries",
		httpx.Chain(http.HandlerFunc(h.HandleCreate), authn))
	r.Mux.Handle("DELETE /v1/entries/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete), authn))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
