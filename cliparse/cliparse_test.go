// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable ParseFlags reads for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "DATABASE_URL", "DATABASE_TYPE", "SESSION_SECRET", "APP_ENV", "NODE_ENV"} {
		t.Setenv(k, "")
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("SESSION_SECRET", "s3cret")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	assert.Equal(t, "postgres", cfg.DatabaseType)
	assert.Equal(t, "s3cret", cfg.SessionSecret)
	assert.Equal(t, EnvDevelopment, cfg.Environment)
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("SESSION_SECRET", "from-env")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-session-secret", "from-flag"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	assert.Equal(t, "from-flag", cfg.SessionSecret)
	assert.Equal(t, "sqlite", cfg.DatabaseType)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"missing database url", nil, nil},
		{"invalid port", map[string]string{"PORT": "abc", "DATABASE_URL": "x"}, nil},
		{"unknown database type", nil, []string{"-d", "x", "-t", "mysql"}},
		{"production without secret", map[string]string{"APP_ENV": "production"}, []string{"-d", "x"}},
		{"unknown flag", nil, []string{"-nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := ParseFlags(tt.args)
			assert.Error(t, err)
		})
	}
}

func TestParseFlags_DevelopmentSecretDefault(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{"-d", "file:test.db"})
	require.NoError(t, err)

	assert.Equal(t, DevSessionSecret, cfg.SessionSecret)
	assert.False(t, cfg.IsProduction())
}

func TestParseFlags_Environment(t *testing.T) {
	tests := []struct {
		name    string
		appEnv  string
		nodeEnv string
		args    []string
		want    string
	}{
		{"default", "", "", nil, EnvDevelopment},
		{"APP_ENV", "production", "", nil, EnvProduction},
		{"NODE_ENV fallback", "", "production", nil, EnvProduction},
		{"APP_ENV wins", "development", "production", nil, EnvDevelopment},
		{"flag wins", "development", "", []string{"-env", "production"}, EnvProduction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("APP_ENV", tt.appEnv)
			t.Setenv("NODE_ENV", tt.nodeEnv)
			t.Setenv("SESSION_SECRET", "s")

			cfg, err := ParseFlags(append([]string{"-d", "x"}, tt.args...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Environment)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "7000")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DATABASE_URL=file:dotenv.db\nPORT=1234\n"), 0o600))

	// godotenv sets variables outside t.Setenv's bookkeeping.
	t.Cleanup(func() { os.Unsetenv("DATABASE_URL") })
	os.Unsetenv("DATABASE_URL")

	LoadDotEnv(path, filepath.Join(t.TempDir(), "missing.env"))

	cfg, err := ParseFlags(nil)
	require.NoError(t, err)

	assert.Equal(t, "file:dotenv.db", cfg.DatabaseURL)
	assert.Equal(t, 7000, cfg.Port, ".env must not override existing env")
}
