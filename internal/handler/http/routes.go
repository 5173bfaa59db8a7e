package http

import (
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Access declares whether a route needs a bearer token.
type Access int

const (
	Public Access = iota
	Authenticated
)

func (a Access) String() string {
	switch a {
	case Public:
		return "public"
	case Authenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Route is one entry of the route policy table.
type Route struct {
	Method  string
	Pattern string
	Access  Access

	handle func(h *Handler, w http.ResponseWriter, r *http.Request)
}

// routes is the route policy table. Registration reads the access level
// from here only, so the table is the complete list of protected routes.
//
// The uneven gating (GET /movies is protected while the account and
// favorite deletions are not) is how the API has always behaved, and
// clients rely on it.
var routes = []Route{
	{http.MethodGet, "/", Public, (*Handler).home},
	{http.MethodPost, "/login", Public, (*Handler).login},

	{http.MethodGet, "/movies", Authenticated, (*Handler).listMovies},
	{http.MethodGet, "/movies/{title}", Public, (*Handler).getMovie},
	{http.MethodPost, "/movies", Public, (*Handler).createMovie},
	{http.MethodGet, "/genres/{name}", Public, (*Handler).getGenre},
	{http.MethodGet, "/directors/{name}", Public, (*Handler).getDirector},

	{http.MethodPost, "/users", Public, (*Handler).registerUser},
	{http.MethodGet, "/users/{username}", Authenticated, (*Handler).getUser},
	{http.MethodPut, "/users/{username}", Authenticated, (*Handler).updateUser},
	{http.MethodDelete, "/users/{username}", Public, (*Handler).deleteUser},

	{http.MethodPost, "/users/{username}/movies/{movieID}", Authenticated, (*Handler).addFavorite},
	{http.MethodDelete, "/users/{username}/movies/{movieID}", Public, (*Handler).removeFavorite},
}

// Routes returns a copy of the route policy table.
func Routes() []Route {
	return slices.Clone(routes)
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withRecover, h.withTraceID, h.withLogging, h.withCORS())
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	for _, route := range routes {
		router.Method(route.Method, route.Pattern, h.bind(route))
	}

	if h.metrics != nil && !h.cfg.MetricsDisabled {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	// files of the static dir are served for paths no route matched
	if h.cfg.StaticDir != "" {
		router.NotFound(http.FileServer(http.Dir(h.cfg.StaticDir)).ServeHTTP)
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// bind turns a table entry into a handler, putting authenticated routes
// behind the auth middleware.
func (h *Handler) bind(route Route) http.Handler {
	var handler http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route.handle(h, w, r)
	})

	if route.Access == Authenticated {
		handler = h.auth(handler)
	}
	return handler
}
