package application

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/nkarpenko/cargohold/internal/config"
	"github.com/nkarpenko/cargohold/internal/storage"
)

func TestNewInitializesDependencies(t *testing.T) {
	cfg := baseTestConfig(":8085")
	cfg.Container = storage.ContainerSpec{Length: 6.06, Width: 2.35, Height: 2.39}
	logger := zaptest.NewLogger(t)

	app, err := New(cfg, logger)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	spec, err := app.storage.GetContainerSpec()
	if err != nil {
		t.Fatalf("GetContainerSpec returned error: %v", err)
	}
	if spec != cfg.Container {
		t.Fatalf("expected container spec %+v, got %+v", cfg.Container, spec)
	}
	if app.server == nil || app.router == nil || app.handler == nil {
		t.Fatalf("expected server, router, and handler to be initialized")
	}
	if app.Server() != app.server {
		t.Fatalf("Server accessor did not return underlying instance")
	}
}

func TestNewReturnsErrorForInvalidContainer(t *testing.T) {
	cfg := baseTestConfig(":0")
	cfg.Container = storage.ContainerSpec{}

	if _, err := New(cfg, zaptest.NewLogger(t)); err == nil {
		t.Fatalf("expected error for invalid container spec")
	}
}

func TestNewServerAppliesConfig(t *testing.T) {
	cfg := baseTestConfig("9090")
	handler := http.NewServeMux()

	server := NewServer(cfg, handler)
	if server.Addr != ":9090" {
		t.Fatalf("expected address :9090, got %s", server.Addr)
	}
	if server.Handler != handler {
		t.Fatalf("expected handler to be applied")
	}
	if server.ReadHeaderTimeout != cfg.ReadHeaderTimeout ||
		server.WriteTimeout != cfg.WriteTimeout ||
		server.IdleTimeout != cfg.IdleTimeout {
		t.Fatalf("server timeouts do not match configuration")
	}
}

func TestBuildRootHandler(t *testing.T) {
	apiInvoked := false
	apiHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiInvoked = true
		w.WriteHeader(http.StatusNoContent)
	})

	handler := BuildRootHandler(apiHandler)

	t.Run("redirects root to report", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusTemporaryRedirect {
			t.Fatalf("expected status 307, got %d", rec.Code)
		}
		if got := rec.Header().Get("Location"); got != "/api/report" {
			t.Fatalf("expected redirect to /api/report, got %q", got)
		}
	})

	t.Run("returns not found for unknown paths", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/unknown", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", rec.Code)
		}
	})

	t.Run("forwards api traffic", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected status 204, got %d", rec.Code)
		}
		if !apiInvoked {
			t.Fatalf("expected API handler to be invoked")
		}
	})
}

func baseTestConfig(port string) config.Config {
	return config.Config{
		Port:                 port,
		Container:            storage.DefaultContainerSpec(),
		ShutdownGracePeriod:  50 * time.Millisecond,
		ReadHeaderTimeout:    20 * time.Millisecond,
		WriteTimeout:         30 * time.Millisecond,
		IdleTimeout:          40 * time.Millisecond,
		EnableRequestLogging: false,
		RateLimitRPS:         0,
		RateLimitBurst:       0,
	}
}
