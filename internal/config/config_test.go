package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "LISTEN_HOST", "DATA_DIR", "LOG_LEVEL", "SEED_DEMO_DATA", "CORS_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Addr() != "127.0.0.1:3000" {
		t.Errorf("addr = %q, want 127.0.0.1:3000", cfg.Addr())
	}

	if cfg.DataDir != "data" {
		t.Errorf("dataDir = %q, want data", cfg.DataDir)
	}

	if cfg.SeedDemoData {
		t.Error("seeding must be off by default")
	}

	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "http://localhost:3000" {
		t.Errorf("corsOrigins = %v", cfg.CORSOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "4100")
	t.Setenv("LISTEN_HOST", "localhost")
	t.Setenv("DATA_DIR", "/var/lib/rentdesk")
	t.Setenv("SEED_DEMO_DATA", "true")
	t.Setenv("CORS_ORIGINS", "http://localhost:4100, http://localhost:5173")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Addr() != "localhost:4100" {
		t.Errorf("addr = %q", cfg.Addr())
	}

	if !cfg.SeedDemoData {
		t.Error("expected seeding enabled")
	}

	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://localhost:5173" {
		t.Errorf("corsOrigins = %v, want trimmed pair", cfg.CORSOrigins)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric port", "PORT", "abc"},
		{"port out of range", "PORT", "70000"},
		{"non-loopback host", "LISTEN_HOST", "0.0.0.0"},
		{"wildcard cors", "CORS_ORIGINS", "*"},
		{"schemeless cors", "CORS_ORIGINS", "localhost:3000"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			if _, err := Load(); err == nil {
				t.Errorf("%s=%q: expected validation error", tc.key, tc.value)
			}
		})
	}
}
