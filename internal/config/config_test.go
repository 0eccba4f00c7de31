package config

import (
	"testing"
	"time"

	"github.com/nkarpenko/cargohold/internal/storage"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CONTAINER_DIMS", "")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Container != storage.DefaultContainerSpec() {
		t.Fatalf("expected default container spec, got %+v", cfg.Container)
	}
	if cfg.ShutdownGracePeriod != 10*time.Second {
		t.Fatalf("unexpected shutdown grace period: %s", cfg.ShutdownGracePeriod)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("CONTAINER_DIMS", "12.03x2.35x2.39")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "9000" {
		t.Fatalf("expected overridden port, got %s", cfg.Port)
	}
	want := storage.ContainerSpec{Length: 12.03, Width: 2.35, Height: 2.39}
	if cfg.Container != want {
		t.Fatalf("expected container %+v, got %+v", want, cfg.Container)
	}
}

func TestLoadCLIOverridesBeatEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("CONTAINER_DIMS", "10x2x2")

	port := "7070"
	containerStr := "11.9x2.34x2.67"
	cfg, err := Load(&CLIOverrides{Port: &port, ContainerStr: &containerStr})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "7070" {
		t.Fatalf("expected CLI port to win, got %s", cfg.Port)
	}
	want := storage.ContainerSpec{Length: 11.9, Width: 2.34, Height: 2.67}
	if cfg.Container != want {
		t.Fatalf("expected CLI container to win, got %+v", cfg.Container)
	}
}

func TestLoadRejectsInvalidContainerOverride(t *testing.T) {
	t.Setenv("CONTAINER_DIMS", "")

	containerStr := "0x2x2"
	if _, err := Load(&CLIOverrides{ContainerStr: &containerStr}); err == nil {
		t.Fatalf("expected error for non-positive container dimension")
	}
}

func TestParseContainerSpec(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		tests := map[string]storage.ContainerSpec{
			"11.9x2.34x2.67":  {Length: 11.9, Width: 2.34, Height: 2.67},
			"12 X 2.35 X 2.7": {Length: 12, Width: 2.35, Height: 2.7},
			"2*2*2":           {Length: 2, Width: 2, Height: 2},
			"2×1×1":           {Length: 2, Width: 1, Height: 1},
		}
		for raw, want := range tests {
			got, err := parseContainerSpec(raw)
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", raw, err)
			}
			if got != want {
				t.Fatalf("parseContainerSpec(%q) = %+v, want %+v", raw, got, want)
			}
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, raw := range []string{"", "2x2", "2x2x2x2", "ax2x2", "2x-1x2", "0x2x2"} {
			if _, err := parseContainerSpec(raw); err == nil {
				t.Fatalf("expected error for %q", raw)
			}
		}
	})
}
