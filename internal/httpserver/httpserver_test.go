package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"campus-task-assistant/pkg/log"
)

type stubHandler struct{}

func (stubHandler) Parse(c *gin.Context)     { c.Status(http.StatusOK) }
func (stubHandler) ParseDate(c *gin.Context) { c.Status(http.StatusOK) }
func (stubHandler) Create(c *gin.Context)    { c.Status(http.StatusOK) }
func (stubHandler) List(c *gin.Context)      { c.Status(http.StatusOK) }
func (stubHandler) Detail(c *gin.Context)    { c.Status(http.StatusOK) }

type stubPinger struct{ err error }

func (p stubPinger) PingContext(ctx context.Context) error { return p.err }

func newTestServer(t *testing.T, checks map[string]Pinger) *HTTPServer {
	t.Helper()
	srv, err := New(log.NewNop(), Config{
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: "development",
		Checks:      checks,
		TaskHandler: stubHandler{},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return srv
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "missing mode", cfg: Config{Port: 1, TaskHandler: stubHandler{}}},
		{name: "missing port", cfg: Config{Mode: gin.TestMode, TaskHandler: stubHandler{}}},
		{name: "missing handler", cfg: Config{Port: 1, Mode: gin.TestMode}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(log.NewNop(), tt.cfg); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRoutes(t *testing.T) {
	srv := newTestServer(t, nil)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/live", http.StatusOK},
		{http.MethodGet, "/ready", http.StatusOK},
		{http.MethodPost, "/api/v1/tasks/parse", http.StatusOK},
		{http.MethodPost, "/api/v1/dates/parse", http.StatusOK},
		{http.MethodGet, "/api/v1/tasks/abc", http.StatusOK},
		{http.MethodGet, "/api/v1/nope", http.StatusNotFound},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
		if w.Code != tt.want {
			t.Errorf("%s %s = %d, want %d", tt.method, tt.path, w.Code, tt.want)
		}
		if w.Header().Get("X-Request-ID") == "" {
			t.Errorf("%s %s: missing X-Request-ID", tt.method, tt.path)
		}
	}
}

func TestReadyCheck_DependencyDown(t *testing.T) {
	srv := newTestServer(t, map[string]Pinger{
		"sqlite": stubPinger{},
		"redis":  stubPinger{err: errors.New("connection refused")},
	})

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	srv := newTestServer(t, nil)
	srv.port = 0

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()
	cancel()

	if err := <-done; err != nil {
		t.Errorf("Run() error = %v", err)
	}
}
