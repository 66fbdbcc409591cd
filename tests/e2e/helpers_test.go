//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/realty-crm/internal/adapter/kafka"
	"github.com/heartmarshall/realty-crm/internal/adapter/postgres"
	activityrepo "github.com/heartmarshall/realty-crm/internal/adapter/postgres/activity"
	"github.com/heartmarshall/realty-crm/internal/adapter/postgres/confirmation"
	contactrepo "github.com/heartmarshall/realty-crm/internal/adapter/postgres/contact"
	propertyrepo "github.com/heartmarshall/realty-crm/internal/adapter/postgres/property"
	taskrepo "github.com/heartmarshall/realty-crm/internal/adapter/postgres/task"
	"github.com/heartmarshall/realty-crm/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/realty-crm/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/realty-crm/internal/adapter/postgres/user"
	authpkg "github.com/heartmarshall/realty-crm/internal/auth"
	"github.com/heartmarshall/realty-crm/internal/config"
	"github.com/heartmarshall/realty-crm/internal/domain"
	"github.com/heartmarshall/realty-crm/internal/navigation"
	"github.com/heartmarshall/realty-crm/internal/service/activity"
	authsvc "github.com/heartmarshall/realty-crm/internal/service/auth"
	"github.com/heartmarshall/realty-crm/internal/service/contact"
	"github.com/heartmarshall/realty-crm/internal/service/insight"
	"github.com/heartmarshall/realty-crm/internal/service/property"
	"github.com/heartmarshall/realty-crm/internal/service/task"
	"github.com/heartmarshall/realty-crm/internal/session"
	"github.com/heartmarshall/realty-crm/internal/transport/dataloader"
	"github.com/heartmarshall/realty-crm/internal/transport/middleware"
	"github.com/heartmarshall/realty-crm/internal/transport/rest"
)

const testPassword = "secret-password"

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	mail   *captureMailer
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// captureMailer keeps the last confirmation token sent to each address.
type captureMailer struct {
	mu     sync.Mutex
	tokens map[string]string
}

func (m *captureMailer) SendConfirmation(_ context.Context, to, _, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[to] = token
	return nil
}

func (m *captureMailer) token(email string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tokens[email]
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	contacts := contactrepo.New(pool)
	properties := propertyrepo.New(pool)
	tasks := taskrepo.New(pool)

	mail := &captureMailer{tokens: make(map[string]string)}
	authCfg := config.AuthConfig{
		JWTSecret:           "test-secret-at-least-32-chars-long!!",
		JWTIssuer:           "test-issuer",
		AccessTokenTTL:      15 * time.Minute,
		RefreshTokenTTL:     720 * time.Hour,
		PasswordHashCost:    4,
		DefaultRole:         string(domain.RoleClient),
		RequireConfirmation: true,
		ConfirmationTTL:     time.Hour,
	}

	activities := activity.NewService(logger, activityrepo.New(pool), kafka.Discard{})
	authService := authsvc.NewService(
		logger, users, token.New(pool), confirmation.New(pool), txm,
		authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL),
		mail, authCfg,
	)
	sessions := session.NewProvider(logger, authService, users, config.SessionConfig{
		RoleCacheSize:    100,
		RoleCacheTTL:     time.Minute,
		SubscriberBuffer: 8,
	})
	t.Cleanup(func() { sessions.Close() })

	handlers := rest.Handlers{
		Health:     rest.NewHealthHandler("e2e", rest.PostgresProbe(pool)),
		Auth:       rest.NewAuthHandler(authService, sessions, logger),
		Pages:      rest.NewPageHandler(insight.NewService(logger, contacts, properties, tasks, activities), logger),
		Leads:      rest.NewLeadHandler(contact.NewService(logger, contacts, activities, txm), logger),
		Properties: rest.NewPropertyHandler(property.NewService(logger, properties, activities, txm), logger),
		Tasks:      rest.NewTaskHandler(task.NewService(logger, tasks, activities, txm), time.Now, logger),
		Admin:      rest.NewAdminHandler(authService, sessions, logger),
	}
	mws := rest.Middlewares{
		RequestID: middleware.RequestID(),
		Recovery:  middleware.Recovery(logger),
		Session:   middleware.Session(sessions),
		Logger:    middleware.Logger(logger),
		CORS: middleware.CORS(config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         60,
		}),
		Guard: middleware.Guard(navigation.NewGuard(), nil),
		Loaders: dataloader.Middleware(&dataloader.Repos{
			Contacts:   contacts,
			Properties: properties,
		}),
	}

	ts := httptest.NewServer(rest.NewRouter(handlers, mws))
	t.Cleanup(ts.Close)

	client := ts.Client()
	// Guard redirects are asserted, not followed.
	client.CheckRedirect = func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }

	return &testServer{URL: ts.URL, Client: client, Pool: pool, mail: mail}
}

// do sends a request with an optional JSON body and bearer token.
func (ts *testServer) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.URL+path, r)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

// doJSON sends a request and decodes a JSON object response.
func (ts *testServer) doJSON(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	resp := ts.do(t, method, path, token, body)
	var out map[string]any
	if resp.StatusCode != http.StatusNoContent && resp.Header.Get("Content-Type") == "application/json" {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	}
	return resp.StatusCode, out
}

type account struct {
	ID           uuid.UUID
	Email        string
	AccessToken  string
	RefreshToken string
}

// signUp registers and confirms a fresh identity and signs it in. Roles
// other than the sign-up default are applied directly in the database
// before sign-in.
func signUp(t *testing.T, ts *testServer, role domain.Role) account {
	t.Helper()

	email := "agent-" + uuid.NewString()[:8] + "@example.com"
	status, body := ts.doJSON(t, http.MethodPost, "/auth/sign-up", "", map[string]any{
		"email":     email,
		"password":  testPassword,
		"full_name": "E2E Agent",
	})
	require.Equal(t, http.StatusCreated, status, body)

	status, body = ts.doJSON(t, http.MethodPost, "/auth/confirm", "", map[string]any{"token": ts.mail.token(email)})
	require.Equal(t, http.StatusOK, status, body)

	if role != domain.RoleClient {
		_, err := ts.Pool.Exec(context.Background(), `UPDATE users SET role = $1 WHERE email = $2`, string(role), email)
		require.NoError(t, err)
	}

	return signIn(t, ts, email)
}

func signIn(t *testing.T, ts *testServer, email string) account {
	t.Helper()

	status, body := ts.doJSON(t, http.MethodPost, "/auth/sign-in", "", map[string]any{
		"email":    email,
		"password": testPassword,
	})
	require.Equal(t, http.StatusOK, status, body)

	user := body["user"].(map[string]any)
	return account{
		ID:           uuid.MustParse(user["id"].(string)),
		Email:        email,
		AccessToken:  body["access_token"].(string),
		RefreshToken: body["refresh_token"].(string),
	}
}

// items extracts the items array of a list response.
func items(t *testing.T, body map[string]any) []map[string]any {
	t.Helper()

	raw, ok := body["items"].([]any)
	require.True(t, ok, "expected items array, got %v", body)
	out := make([]map[string]any, len(raw))
	for i, it := range raw {
		out[i] = it.(map[string]any)
	}
	return out
}
