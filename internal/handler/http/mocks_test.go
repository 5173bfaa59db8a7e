package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/movie-api/internal/config"
	"github.com/MKhiriev/movie-api/internal/logger"
	"github.com/MKhiriev/movie-api/internal/service"
	"github.com/MKhiriev/movie-api/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	loginFn        func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
	authenticateFn func(ctx context.Context, tokenString string) (models.User, error)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	return m.authenticateFn(ctx, tokenString)
}

type mockMovieService struct {
	listMoviesFn  func(ctx context.Context) ([]models.Movie, error)
	getMovieFn    func(ctx context.Context, title string) (models.Movie, error)
	getGenreFn    func(ctx context.Context, name string) (models.Genre, error)
	getDirectorFn func(ctx context.Context, name string) (models.Director, error)
	createMovieFn func(ctx context.Context, movie models.Movie) (models.Movie, error)
}

func (m *mockMovieService) ListMovies(ctx context.Context) ([]models.Movie, error) {
	return m.listMoviesFn(ctx)
}

func (m *mockMovieService) GetMovie(ctx context.Context, title string) (models.Movie, error) {
	return m.getMovieFn(ctx, title)
}

func (m *mockMovieService) GetGenre(ctx context.Context, name string) (models.Genre, error) {
	return m.getGenreFn(ctx, name)
}

func (m *mockMovieService) GetDirector(ctx context.Context, name string) (models.Director, error) {
	return m.getDirectorFn(ctx, name)
}

func (m *mockMovieService) CreateMovie(ctx context.Context, movie models.Movie) (models.Movie, error) {
	return m.createMovieFn(ctx, movie)
}

type mockUserService struct {
	registerUserFn   func(ctx context.Context, req models.UserRequest) (models.User, error)
	getUserFn        func(ctx context.Context, username string) (models.User, error)
	updateUserFn     func(ctx context.Context, identity models.User, username string, req models.UserRequest) (models.User, error)
	addFavoriteFn    func(ctx context.Context, username, movieID string) (models.User, error)
	removeFavoriteFn func(ctx context.Context, username, movieID string) (models.User, error)
	deleteUserFn     func(ctx context.Context, username string) (*models.User, error)
}

func (m *mockUserService) RegisterUser(ctx context.Context, req models.UserRequest) (models.User, error) {
	return m.registerUserFn(ctx, req)
}

func (m *mockUserService) GetUser(ctx context.Context, username string) (models.User, error) {
	return m.getUserFn(ctx, username)
}

func (m *mockUserService) UpdateUser(ctx context.Context, identity models.User, username string, req models.UserRequest) (models.User, error) {
	return m.updateUserFn(ctx, identity, username, req)
}

func (m *mockUserService) AddFavorite(ctx context.Context, username, movieID string) (models.User, error) {
	return m.addFavoriteFn(ctx, username, movieID)
}

func (m *mockUserService) RemoveFavorite(ctx context.Context, username, movieID string) (models.User, error) {
	return m.removeFavoriteFn(ctx, username, movieID)
}

func (m *mockUserService) DeleteUser(ctx context.Context, username string) (*models.User, error) {
	return m.deleteUserFn(ctx, username)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const validToken = "valid-token"

// alice is the identity every valid token resolves to.
var alice = models.User{
	ID:             primitive.NewObjectID(),
	Username:       "alice1",
	Password:       "$2a$10$hash",
	Email:          "a@example.com",
	FavoriteMovies: []primitive.ObjectID{},
}

// testServerConfig allows one origin and keeps metrics and static files off.
var testServerConfig = config.Server{
	AllowedOrigins:  []string{"http://localhost:8080"},
	MetricsDisabled: true,
}

// authAccepting returns an AuthService whose Authenticate accepts only
// validToken.
func authAccepting() *mockAuthService {
	return &mockAuthService{
		authenticateFn: func(_ context.Context, tokenString string) (models.User, error) {
			if tokenString == validToken {
				return alice, nil
			}
			return models.User{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
}

// newTestHandler builds a Handler around the given services. Nil services
// are replaced by empty mocks, whose methods panic when called.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()

	if svcs.AuthService == nil {
		svcs.AuthService = authAccepting()
	}
	if svcs.MovieService == nil {
		svcs.MovieService = &mockMovieService{}
	}
	if svcs.UserService == nil {
		svcs.UserService = &mockUserService{}
	}

	return NewHandler(svcs, nil, testServerConfig, logger.Nop())
}

// injectNopLogger puts a nop logger in the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

// serve runs one request through the full router.
func serve(t *testing.T, h *Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func bearer() map[string]string {
	return map[string]string{"Authorization": "Bearer " + validToken}
}

// textBody returns the response body without the newline http.Error adds.
func textBody(rec *httptest.ResponseRecorder) string {
	return strings.TrimSpace(rec.Body.String())
}

// serveRouter runs a bodiless request through an already built router.
func serveRouter(router http.Handler, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func newJSONRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func newRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
