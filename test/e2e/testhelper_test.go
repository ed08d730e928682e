package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/image-scaler/internal/adapter/handler"
	"github.com/marcos-nsantos/image-scaler/internal/adapter/queue"
	"github.com/marcos-nsantos/image-scaler/internal/adapter/repository"
	pgRepo "github.com/marcos-nsantos/image-scaler/internal/adapter/repository/postgres"
	"github.com/marcos-nsantos/image-scaler/internal/domain"
	"github.com/marcos-nsantos/image-scaler/internal/infrastructure/auth"
	"github.com/marcos-nsantos/image-scaler/internal/infrastructure/config"
	"github.com/marcos-nsantos/image-scaler/internal/infrastructure/database"
	"github.com/marcos-nsantos/image-scaler/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/image-scaler/internal/infrastructure/server"
	"github.com/marcos-nsantos/image-scaler/internal/infrastructure/storage"
	"github.com/marcos-nsantos/image-scaler/internal/usecase/scale"
)

const (
	testDBUser     = "testuser"
	testDBPassword = "testpass"
	testDBName     = "testdb"
	testJWTSecret  = "test-secret-key-for-e2e-tests"
	testBucket     = "images"
	apiBasePath    = "/api/v1"
)

type appOptions struct {
	catalog bool
	stream  bool
}

type TestApp struct {
	Server     *httptest.Server
	Store      *memoryStore
	Pool       *pgxpool.Pool
	Container  testcontainers.Container
	BaseURL    string
	Token      string
	httpClient *http.Client
	stopWorker func()
}

func setupTestApp(t *testing.T, opts appOptions) *TestApp {
	t.Helper()

	if opts.catalog && testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	gin.SetMode(gin.TestMode)
	ctx := context.Background()
	app := &TestApp{
		Store:      newMemoryStore(),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		stopWorker: func() {},
	}

	var catalog repository.VariantRepository
	if opts.catalog {
		pgContainer, err := postgres.Run(ctx,
			"postgres:17-alpine",
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
		app.Container = pgContainer

		connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err)

		pool, err := pgxpool.New(ctx, connStr)
		require.NoError(t, err)
		app.Pool = pool

		_, err = database.RunMigrations(ctx, pool, getMigrationsPath())
		require.NoError(t, err)

		catalog = pgRepo.NewVariantRepo(pool)
	}

	logger := zap.NewNop()
	scaleSvc := scale.NewService(app.Store, storage.NewImageProcessor(90), catalog, logger, scale.Config{
		Prefix:  "scaled",
		Targets: []int{200, 400, 800},
		Workers: 2,
	})

	var jobQueue handler.JobQueue
	if opts.stream {
		srv := miniredis.RunT(t)
		rc := redis.NewClient(&redis.Options{Addr: srv.Addr()})

		streamCfg := config.StreamConfig{
			Name:         "scaler:jobs",
			Group:        "scaler",
			Consumer:     "e2e",
			Workers:      2,
			MaxAttempts:  3,
			MaxLen:       1000,
			BackoffBase:  10 * time.Millisecond,
			BlockTimeout: 50 * time.Millisecond,
		}
		worker := queue.NewWorker(rc, streamCfg, scaleSvc, logger)

		workerCtx, cancel := context.WithCancel(ctx)
		done := make(chan struct{})
		go func() {
			defer close(done)
			_ = worker.Start(workerCtx)
		}()
		app.stopWorker = func() {
			cancel()
			<-done
			_ = rc.Close()
		}

		jobQueue = queue.NewProducer(rc, streamCfg.Name, streamCfg.MaxLen)
	}

	jwtSvc := auth.NewJWTService(testJWTSecret, "image-scaler", time.Hour)
	token, _, err := jwtSvc.GenerateToken("e2e")
	require.NoError(t, err)
	app.Token = token

	router := server.NewRouter(server.RouterConfig{
		EventHandler:   handler.NewEventHandler(scaleSvc, jobQueue),
		VariantHandler: handler.NewVariantHandler(scaleSvc),
		AuthMiddleware: middleware.NewAuthMiddleware(jwtSvc),
		Logger:         logger,
		Environment:    "test",
	})

	app.Server = httptest.NewServer(router.Engine())
	app.BaseURL = app.Server.URL

	return app
}

func (app *TestApp) cleanup(t *testing.T) {
	t.Helper()

	app.Server.Close()
	app.stopWorker()

	if app.Pool != nil {
		app.Pool.Close()
	}
	if app.Container != nil {
		if err := app.Container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
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

func (app *TestApp) auth() map[string]string {
	return authHeader(app.Token)
}

func parseResponse(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if dest != nil {
		err = json.Unmarshal(body, dest)
		require.NoError(t, err, "response body: %s", string(body))
	}
}

func authHeader(token string) map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + token,
	}
}

// s3Event builds a bucket notification the way S3 and MinIO send it, with
// the key form-encoded.
func s3Event(bucket string, encodedKeys ...string) map[string]any {
	records := make([]map[string]any, len(encodedKeys))
	for i, key := range encodedKeys {
		records[i] = map[string]any{
			"eventName": "s3:ObjectCreated:Put",
			"s3": map[string]any{
				"bucket": map[string]any{"name": bucket},
				"object": map[string]any{"key": key},
			},
		}
	}
	return map[string]any{"Records": records}
}

func pngImage(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 255 / w), G: uint8(y * 255 / h), B: 90, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

type memoryObject struct {
	data        []byte
	contentType string
}

// memoryStore stands in for S3 so the suite needs no object store.
type memoryStore struct {
	mu      sync.Mutex
	objects map[string]memoryObject
}

func newMemoryStore() *memoryStore {
	return &memoryStore{objects: make(map[string]memoryObject)}
}

func (s *memoryStore) Get(_ context.Context, bucket, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, ok := s.objects[bucket+"/"+key]
	if !ok {
		return nil, domain.ErrObjectNotFound
	}
	return obj.data, nil
}

func (s *memoryStore) Put(_ context.Context, bucket, key string, body io.Reader, contentType string, _ int64) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[bucket+"/"+key] = memoryObject{data: data, contentType: contentType}
	return nil
}

func (s *memoryStore) ListKeys(_ context.Context, bucket string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var keys []string
	for k := range s.objects {
		if rest, ok := strings.CutPrefix(k, bucket+"/"); ok {
			keys = append(keys, rest)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *memoryStore) put(bucket, key string, data []byte, contentType string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[bucket+"/"+key] = memoryObject{data: data, contentType: contentType}
}

func (s *memoryStore) object(bucket, key string) (memoryObject, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, ok := s.objects[bucket+"/"+key]
	return obj, ok
}

func (s *memoryStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

func getMigrationsPath() string {
	_, filename, _, _ := runtime.Caller(0)
	testDir := filepath.Dir(filename)
	return filepath.Join(testDir, "..", "..", "migrations")
}
