package http

import (
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/roster/internal/account/service"
	"github.com/aussiebroadwan/roster/internal/account/store"
	"github.com/aussiebroadwan/roster/pkg/httpx"
	"github.com/aussiebroadwan/roster/pkg/otelx"
	"github.com/aussiebroadwan/roster/pkg/slogx"

	_ "github.com/aussiebroadwan/roster/api/account" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	store  store.Store
	logger *slog.Logger

	AccountService *service.AccountService
	AuthService    *service.AuthService
	CompanyService *service.CompanyService
	UserService    *service.UserService
}

func NewRouter(st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:    http.NewServeMux(),
		store:  st,
		logger: logger,
	}

	// otelx must sit directly on the mux to see the matched pattern
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		otelx.HTTPMiddleware(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerCompanies()
	r.registerUsers()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Roster Account Service API
//	@version		0.1.0
//	@description	Registration, password login and company membership management.
//	@description
//	@description				Tokens are HS256 signed JWTs valid for seven days.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/roster
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
//	@description				JWT bearer token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) requireAuth() httpx.Middleware {
	return RequireAuth(r.AuthService)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AccountService: r.AccountService}

	r.Mux.Handle("POST /v1/auth/register", http.HandlerFunc(h.HandleRegister))
	r.Mux.Handle("POST /v1/auth/login", http.HandlerFunc(h.HandleLogin))
}

func (r *Router) registerCompanies() {
	h := &CompaniesHandler{CompanyService: r.CompanyService}

	r.Mux.Handle("POST /v1/companies",
		httpx.Chain(http.HandlerFunc(h.HandleCreate), r.requireAuth()),
	)
	r.Mux.Handle("GET /v1/companies",
		httpx.Chain(http.HandlerFunc(h.HandleList), r.requireAuth()),
	)
	r.Mux.Handle("POST /v1/companies/members",
		httpx.Chain(http.HandlerFunc(h.HandleAddMember), r.requireAuth()),
	)
	r.Mux.Handle("GET /v1/companies/{id}/members",
		httpx.Chain(http.HandlerFunc(h.HandleListMembers), r.requireAuth()),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	r.Mux.Handle("GET /v1/users/me",
		httpx.Chain(http.HandlerFunc(h.HandleMe), r.requireAuth()),
	)
	r.Mux.Handle("GET /v1/users",
		httpx.Chain(http.HandlerFunc(h.HandleList), r.requireAuth()),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler())
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.store))
}
