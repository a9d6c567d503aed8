package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/giarts/atelie-api/internal/auth"
	"github.com/giarts/atelie-api/internal/config"
	"github.com/giarts/atelie-api/internal/handler"
	"github.com/giarts/atelie-api/internal/middleware"
	"github.com/giarts/atelie-api/internal/router"
	"github.com/giarts/atelie-api/internal/service"
	"github.com/giarts/atelie-api/internal/storage"
)

const testBaseURL = "http://localhost:8080"

type testServer struct {
	e             *echo.Echo
	users         *memUserStore
	products      *memProductStore
	events        *memEventStore
	productImages *memProductImageStore
	eventImages   *memEventImageStore
	tokens        *auth.TokenService
	storageRoot   string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	users := newMemUserStore()
	productImages := newMemProductImageStore()
	eventImages := newMemEventImageStore()
	products := newMemProductStore(productImages)
	events := newMemEventStore(eventImages)

	root := t.TempDir()
	files, err := storage.NewFileStore(root)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	tokens := auth.NewTokenService("test-secret")

	e := echo.New()
	e.HTTPErrorHandler = handler.NewHTTPErrorHandler(e)
	router.Register(e, router.Handlers{
		Auth:     handler.NewAuthHandler(users, tokens, bcrypt.MinCost),
		Users:    handler.NewUserHandler(users, bcrypt.MinCost),
		Products: handler.NewProductHandler(products),
		Events:   handler.NewEventHandler(events),
		ProductImages: handler.NewProductImageHandler(
			service.NewProductImageService(products, productImages, files, testBaseURL, nil)),
		EventImages: handler.NewEventImageHandler(
			service.NewEventImageService(events, eventImages, files, testBaseURL, nil)),
	}, router.Middleware{
		Authenticate: middleware.Authenticate(tokens, users),
		RateLimit:    middleware.NewTokenBucket(config.RateLimitConfig{}, nil),
		Cache:        middleware.NewResponseCache(config.CacheConfig{}, nil),
	})

	return &testServer{
		e: e, users: users, products: products, events: events,
		productImages: productImages, eventImages: eventImages,
		tokens: tokens, storageRoot: root,
	}
}

// seedUser inserts a user directly into the store and returns a bearer token.
func (s *testServer) seedUser(t *testing.T, name, email, password, role string) (uint64, string) {
	t.Helper()
	id, err := s.users.Create(context.Background(), name, email, password, role, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	tok, err := s.tokens.Issue(email)
	if err != nil {
		t.Fatalf("issue token for %s: %v", email, err)
	}
	return id, tok
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

// doMultipart posts a multipart form with a single file field plus extras.
func (s *testServer) doMultipart(t *testing.T, path, token, fileName, content string, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("write file part: %v", err)
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("WriteField %s: %v", k, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}
