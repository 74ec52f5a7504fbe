package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/df-fix-backend/internal/adapter/handler"
	pgRepo "github.com/marcos-nsantos/df-fix-backend/internal/adapter/repository/postgres"
	"github.com/marcos-nsantos/df-fix-backend/internal/infrastructure/auth"
	"github.com/marcos-nsantos/df-fix-backend/internal/infrastructure/database"
	"github.com/marcos-nsantos/df-fix-backend/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/df-fix-backend/internal/infrastructure/observability"
	"github.com/marcos-nsantos/df-fix-backend/internal/infrastructure/server"
	authUC "github.com/marcos-nsantos/df-fix-backend/internal/usecase/auth"
	"github.com/marcos-nsantos/df-fix-backend/internal/usecase/caller"
	"github.com/marcos-nsantos/df-fix-backend/internal/usecase/convert"
	"github.com/marcos-nsantos/df-fix-backend/internal/usecase/export"
	"github.com/marcos-nsantos/df-fix-backend/internal/usecase/fix"
	"github.com/marcos-nsantos/df-fix-backend/internal/usecase/ingest"
	"github.com/marcos-nsantos/df-fix-backend/internal/usecase/station"
)

const (
	testDBUser       = "testuser"
	testDBPassword   = "testpass"
	testDBName       = "testdb"
	testJWTSecret    = "test-secret-key-for-e2e-tests"
	testOperatorPass = "watch-password"
	apiBasePath      = "/api/v1"
)

type TestApp struct {
	Server     *httptest.Server
	Pool       *pgxpool.Pool
	Container  testcontainers.Container
	BaseURL    string
	Ingest     *ingest.Service
	Archive    *memoryArchive
	httpClient *http.Client
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping e2e test in short mode")
	}

	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgis/postgis:18-3.6-alpine",
		postgres.WithDatabase(testDBName),
		postgres.WithUsername(testDBUser),
		postgres.WithPassword(testDBPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	require.NoError(t, database.RunMigrations(ctx, pool, getMigrationsPath()))

	logger := zap.NewNop()
	metrics, err := observability.NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	stationRepo := pgRepo.NewStationRepo(pool)
	callerRepo := pgRepo.NewCallerRepo(pool)

	jwtSvc := auth.NewJWTService(testJWTSecret, 15*time.Minute)
	passwordHasher := auth.NewPasswordHasher(4) // Lower cost for faster tests
	operatorHash, err := passwordHasher.Hash(testOperatorPass)
	require.NoError(t, err)

	archive := newMemoryArchive()

	fixSvc := fix.NewService(stationRepo, fix.Config{LineLength: 50_000}, metrics)
	callerSvc := caller.NewService(callerRepo, fixSvc)
	authSvc := authUC.NewService(jwtSvc, passwordHasher, operatorHash)

	router := server.NewRouter(server.RouterConfig{
		AuthHandler:    handler.NewAuthHandler(authSvc),
		StationHandler: handler.NewStationHandler(station.NewService(stationRepo)),
		CallerHandler:  handler.NewCallerHandler(callerSvc),
		FixHandler:     handler.NewFixHandler(fixSvc),
		ConvertHandler: handler.NewConvertHandler(convert.NewService()),
		ExportHandler:  handler.NewExportHandler(export.NewService(callerRepo, archive, time.Hour)),
		AuthMiddleware: middleware.NewAuthMiddleware(jwtSvc),
		Metrics:        metrics,
		Logger:         logger,
		Environment:    "test",
		AllowedOrigins: []string{"*"},
	})

	ts := httptest.NewServer(router.Engine())

	return &TestApp{
		Server:    ts,
		Pool:      pool,
		Container: pgContainer,
		BaseURL:   ts.URL,
		Ingest:    ingest.NewService(callerSvc, metrics, logger),
		Archive:   archive,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (app *TestApp) cleanup(t *testing.T) {
	t.Helper()

	app.Server.Close()
	app.Pool.Close()

	if err := app.Container.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

func (app *TestApp) request(method, path string, body any, headers map[string]string) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, app.BaseURL+apiBasePath+path, bodyReader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return app.httpClient.Do(req)
}

func (app *TestApp) get(path string, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodGet, path, nil, headers)
}

func (app *TestApp) post(path string, body any, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodPost, path, body, headers)
}

func (app *TestApp) put(path string, body any, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodPut, path, body, headers)
}

func (app *TestApp) delete(path string, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodDelete, path, nil, headers)
}

// login returns an auth header for the shared operator account.
func (app *TestApp) login(t *testing.T) map[string]string {
	t.Helper()

	resp, err := app.post("/auth/login", map[string]string{
		"operator": "watch-1",
		"password": testOperatorPass,
	}, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	parseResponse(t, resp, &body)
	return authHeader(body["access_token"].(string))
}

func (app *TestApp) createStation(t *testing.T, headers map[string]string, name string, lat, lng float64) {
	t.Helper()

	resp, err := app.post("/stations", map[string]any{
		"name":      name,
		"latitude":  lat,
		"longitude": lng,
	}, headers)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
}

func parseResponse(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if dest != nil {
		require.NoError(t, json.Unmarshal(body, dest), "response body: %s", string(body))
	}
}

func authHeader(token string) map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + token,
	}
}

// memoryArchive keeps exports in memory so e2e runs need no object store.
type memoryArchive struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newMemoryArchive() *memoryArchive {
	return &memoryArchive{objects: make(map[string][]byte)}
}

func (a *memoryArchive) Upload(_ context.Context, key string, reader io.Reader, _ string, _ int64) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.objects[key] = data
	return nil
}

func (a *memoryArchive) GetSignedURL(_ context.Context, key string, expiry time.Duration) (string, error) {
	return fmt.Sprintf("https://archive.test/%s?expires=%d", key, int(expiry.Seconds())), nil
}

func (a *memoryArchive) Delete(_ context.Context, key string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.objects, key)
	return nil
}

func (a *memoryArchive) object(key string) []byte {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.objects[key]
}

func getMigrationsPath() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "..", "..", "migrations")
}
