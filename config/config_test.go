package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opendatahub-io/caikit-nlp-client-go/client"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "caikit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
base_url: https://caikit.example.com:8080
timeout: 90s
tls:
  ca_cert_path: /etc/caikit/ca.pem
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://caikit.example.com:8080", cfg.BaseURL)
	assert.Equal(t, Duration(90*time.Second), cfg.Timeout)
	assert.Equal(t, "/etc/caikit/ca.pem", cfg.TLS.CACertPath)
	assert.False(t, cfg.TLS.Insecure)
}

func TestLoadDefaultsTimeout(t *testing.T) {
	path := writeConfig(t, `base_url: http://localhost:8080`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Duration(client.DefaultTimeout), cfg.Timeout)
}

func TestLoadNumericTimeout(t *testing.T) {
	path := writeConfig(t, `
base_url: http://localhost:8080
timeout: 42
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Duration(42*time.Second), cfg.Timeout)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.ErrorIs(t, cfg.Validate(), client.ErrMissingBaseURL)

	cfg.BaseURL = "https://localhost:8080"
	assert.NoError(t, cfg.Validate())

	cfg.TLS.Insecure = true
	cfg.TLS.CACertPath = "/etc/caikit/ca.pem"
	assert.ErrorIs(t, cfg.Validate(), client.ErrInsecureWithCACert)

	cfg.TLS = TLS{ClientCertPath: "/etc/caikit/client.pem"}
	assert.ErrorIs(t, cfg.Validate(), client.ErrIncompleteMTLSPair)

	cfg.TLS = TLS{ClientKeyPath: "/etc/caikit/client.key"}
	assert.ErrorIs(t, cfg.Validate(), client.ErrIncompleteMTLSPair)
}

func TestNewClient(t *testing.T) {
	cfg := Default()
	cfg.BaseURL = "http://localhost:8080"
	cfg.Timeout = Duration(5 * time.Second)

	c, err := cfg.NewClient()
	require.NoError(t, err)
	assert.NoError(t, c.Close())
}

func TestNewClientOverride(t *testing.T) {
	cfg := Default()
	cfg.BaseURL = "http://localhost:8080"

	var seen time.Duration
	c, err := cfg.NewClient(func(o *client.Options) {
		seen = o.Timeout
		o.Timeout = time.Second
	})
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, client.DefaultTimeout, seen, "config timeout applies before overrides")
}
