package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/movie-api/internal/logger"
	"github.com/MKhiriev/movie-api/internal/utils"
	"github.com/MKhiriev/movie-api/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter] talking to the API at address. A non-positive timeout keeps
// the client default.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(address string, timeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register POSTs the account to POST /users.
func (h *httpServerAdapter) Register(ctx context.Context, req models.UserRequest) (models.UserCreatedResponse, error) {
	var created models.UserCreatedResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&created).
		Post("/users")
	if err != nil {
		return models.UserCreatedResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserCreatedResponse{}, err
	}

	return created, nil
}

// Login POSTs the credentials to POST /login. The token is taken from the
// Authorization response header and falls back to the body field.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	var loggedIn models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&loggedIn).
		Post("/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		if loggedIn.Token == "" {
			return models.User{}, fmt.Errorf("login parse bearer token: %w", err)
		}
		token = loggedIn.Token
	}

	h.SetToken(token)
	h.logger.Debug().Str("username", loggedIn.User.Username).Msg("logged in")
	return loggedIn.User, nil
}

func (h *httpServerAdapter) Movies(ctx context.Context) ([]models.Movie, error) {
	var movies []models.Movie

	resp, err := h.authedRequest(ctx).
		SetResult(&movies).
		Get("/movies")
	if err != nil {
		return nil, fmt.Errorf("list movies request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return movies, nil
}

func (h *httpServerAdapter) Movie(ctx context.Context, title string) (models.Movie, error) {
	var movie models.Movie

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("title", title).
		SetResult(&movie).
		Get("/movies/{title}")
	if err != nil {
		return models.Movie{}, fmt.Errorf("get movie request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Movie{}, err
	}

	return movie, nil
}

func (h *httpServerAdapter) User(ctx context.Context, username string) (models.User, error) {
	return h.userCall(ctx, resty.MethodGet, "/users/{username}", username, "", nil)
}

func (h *httpServerAdapter) UpdateUser(ctx context.Context, username string, req models.UserRequest) (models.User, error) {
	return h.userCall(ctx, resty.MethodPut, "/users/{username}", username, "", req)
}

func (h *httpServerAdapter) DeleteUser(ctx context.Context, username string) (models.UserDeletedResponse, error) {
	var deleted models.UserDeletedResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("username", username).
		SetResult(&deleted).
		Delete("/users/{username}")
	if err != nil {
		return models.UserDeletedResponse{}, fmt.Errorf("delete user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserDeletedResponse{}, err
	}

	return deleted, nil
}

func (h *httpServerAdapter) AddFavorite(ctx context.Context, username, movieID string) (models.User, error) {
	return h.userCall(ctx, resty.MethodPost, "/users/{username}/movies/{movieID}", username, movieID, nil)
}

func (h *httpServerAdapter) RemoveFavorite(ctx context.Context, username, movieID string) (models.User, error) {
	return h.userCall(ctx, resty.MethodDelete, "/users/{username}/movies/{movieID}", username, movieID, nil)
}

// userCall sends an authenticated request to one of the /users endpoints
// that answer a full account document.
func (h *httpServerAdapter) userCall(ctx context.Context, method, path, username, movieID string, body any) (models.User, error) {
	var user models.User

	req := h.authedRequest(ctx).
		SetPathParam("username", username).
		SetResult(&user)
	if movieID != "" {
		req.SetPathParam("movieID", movieID)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return models.User{}, fmt.Errorf("%s %s request: %w", method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
