package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Pagination.PageSize != 5 || cfg.Pagination.EnrollmentPageSize != 6 {
		t.Errorf("unexpected page sizes: %+v", cfg.Pagination)
	}
	if cfg.BackendTimeout() != 15*time.Second {
		t.Errorf("BackendTimeout() = %v", cfg.BackendTimeout())
	}
	if cfg.Location() != time.Local {
		t.Errorf("Location() = %v, want Local", cfg.Location())
	}
}

func TestLoadConfigFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, "config.yaml")
	yml := []byte("backend:\n  base_url: http://api.example.test\n  timeout: 3s\npagination:\n  page_size: 20\nfilters:\n  timezone: UTC\n")
	if err := os.WriteFile(path, yml, 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("COURSEADMIN_PAGE_SIZE", "8")
	t.Setenv("COURSEADMIN_BACKEND_ONLY_VISIBLE_COURSES", "true")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Backend.BaseURL != "http://api.example.test" {
		t.Errorf("BaseURL = %q", cfg.Backend.BaseURL)
	}
	if cfg.Pagination.PageSize != 8 {
		t.Errorf("PageSize = %d, want env override 8", cfg.Pagination.PageSize)
	}
	if !cfg.Backend.OnlyVisibleCourses {
		t.Error("OnlyVisibleCourses should be set from env")
	}
	if cfg.BackendTimeout() != 3*time.Second {
		t.Errorf("BackendTimeout() = %v", cfg.BackendTimeout())
	}
	if cfg.Location() != time.UTC {
		t.Errorf("Location() = %v", cfg.Location())
	}
}

func TestLoadConfigDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("COURSEADMIN_LOG_LEVEL=debug\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("COURSEADMIN_LOG_LEVEL") })

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("Logging.Level = %q, want debug from .env", cfg.Logging.Level)
	}
}

func TestLoadConfigValidation(t *testing.T) {
	chdir(t, t.TempDir())

	tests := []struct {
		name string
		env  map[string]string
	}{
		{"relative base url", map[string]string{"COURSEADMIN_BACKEND_BASE_URL": "localhost"}},
		{"bad timeout", map[string]string{"COURSEADMIN_BACKEND_TIMEOUT": "soon"}},
		{"zero page size", map[string]string{"COURSEADMIN_PAGE_SIZE": "0"}},
		{"bad timezone", map[string]string{"COURSEADMIN_FILTER_TIMEZONE": "Mars/Olympus"}},
		{"bad int", map[string]string{"COURSEADMIN_ENROLLMENT_PAGE_SIZE": "six"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := LoadConfig(""); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestOrigins(t *testing.T) {
	cfg := &Config{}
	cfg.Console.AllowedOrigins = " http://a.test, ,http://b.test"
	got := cfg.Origins()
	if len(got) != 2 || got[0] != "http://a.test" || got[1] != "http://b.test" {
		t.Fatalf("Origins() = %v", got)
	}
}
