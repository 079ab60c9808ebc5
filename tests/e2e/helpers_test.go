//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/nuestra-historia/backend/internal/adapter/postgres"
	memoryrepo "github.com/nuestra-historia/backend/internal/adapter/postgres/memory"
	messagerepo "github.com/nuestra-historia/backend/internal/adapter/postgres/message"
	songrepo "github.com/nuestra-historia/backend/internal/adapter/postgres/song"
	"github.com/nuestra-historia/backend/internal/adapter/postgres/testhelper"
	timelinerepo "github.com/nuestra-historia/backend/internal/adapter/postgres/timeline"
	userrepo "github.com/nuestra-historia/backend/internal/adapter/postgres/user"
	authpkg "github.com/nuestra-historia/backend/internal/auth"
	"github.com/nuestra-historia/backend/internal/config"
	authsvc "github.com/nuestra-historia/backend/internal/service/auth"
	memorysvc "github.com/nuestra-historia/backend/internal/service/memory"
	messagesvc "github.com/nuestra-historia/backend/internal/service/message"
	songsvc "github.com/nuestra-historia/backend/internal/service/song"
	timelinesvc "github.com/nuestra-historia/backend/internal/service/timeline"
	"github.com/nuestra-historia/backend/internal/storage"
	"github.com/nuestra-historia/backend/internal/transport/middleware"
	"github.com/nuestra-historia/backend/internal/transport/rest"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper) and local image storage in a
// temporary directory.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	store, err := storage.NewLocal(t.TempDir(), "/uploads")
	require.NoError(t, err)

	authCfg := config.AuthConfig{
		JWTSecret:        "e2e-test-secret-key-of-sufficient-length",
		JWTIssuer:        "nuestra-historia-e2e",
		TokenTTL:         time.Hour,
		PasswordHashCost: 4,
	}
	jwt := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.TokenTTL)

	router := rest.NewRouter(rest.Deps{
		Logger:      logger,
		CORS:        config.CORSConfig{AllowedOrigins: "*"},
		Auth:        rest.NewAuthHandler(authsvc.NewService(logger, userrepo.New(pool), jwt, authCfg), logger),
		Memories:    rest.NewMemoryHandler(memorysvc.NewService(logger, memoryrepo.New(pool), store, postgres.NewTxManager(pool), 5<<20), logger),
		Timeline:    rest.NewTimelineHandler(timelinesvc.NewService(logger, timelinerepo.New(pool)), logger),
		Songs:       rest.NewSongHandler(songsvc.NewService(logger, songrepo.New(pool)), logger),
		Messages:    rest.NewMessageHandler(messagesvc.NewService(logger, messagerepo.New(pool)), logger),
		Health:      rest.NewHealthHandler(pool, "e2e"),
		RequireAuth: middleware.RequireAuth(jwt),
		UploadsDir:  store.Dir(),
		Version:     "e2e",
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// doJSON sends a request with an optional JSON body and optional bearer token
// and returns the status code and decoded body.
func (ts *testServer) doJSON(t *testing.T, method, path string, payload any, token string) (int, map[string]any) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, body)
	require.NoError(t, err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}

	return resp.StatusCode, decoded
}

// doJSONList is doJSON for endpoints that return a JSON array.
func (ts *testServer) doJSONList(t *testing.T, method, path, token string) (int, []map[string]any) {
	t.Helper()

	req, err := http.NewRequest(method, ts.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded []map[string]any
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}

	return resp.StatusCode, decoded
}

// registerAndLogin creates a fresh user with a unique username and returns
// the session token plus the username.
func registerAndLogin(t *testing.T, ts *testServer) (token, username string) {
	t.Helper()

	username = fmt.Sprintf("pareja-%s", uuid.New().String()[:8])

	status, _ := ts.doJSON(t, http.MethodPost, "/api/auth/register", map[string]string{
		"username": username,
		"name":     "María",
		"password": "secreto123",
	}, "")
	require.Equal(t, http.StatusCreated, status)

	status, body := ts.doJSON(t, http.MethodPost, "/api/auth/login", map[string]string{
		"username": username,
		"password": "secreto123",
	}, "")
	require.Equal(t, http.StatusOK, status)

	token, ok := body["token"].(string)
	require.True(t, ok, "expected token in login response")
	require.NotEmpty(t, token)

	return token, username
}
