// Package config provides a declarative, YAML-loadable configuration surface
// for the caikit client, for deployments that keep endpoint and TLS settings
// in files rather than code.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/opendatahub-io/caikit-nlp-client-go/client"
)

// Duration is a time.Duration that unmarshals from either a Go duration
// string ("90s", "2m") or a plain number of seconds.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}
	var seconds float64
	if err := value.Decode(&seconds); err != nil {
		return fmt.Errorf("invalid duration value %q", value.Value)
	}
	*d = Duration(time.Duration(seconds * float64(time.Second)))
	return nil
}

// TLS holds the certificate-related settings. Semantics match the client
// options: insecure and a CA bundle are mutually exclusive, and the client
// certificate pair must be complete or absent.
type TLS struct {
	CACertPath     string `yaml:"ca_cert_path"`
	ClientCertPath string `yaml:"client_cert_path"`
	ClientKeyPath  string `yaml:"client_key_path"`
	Insecure       bool   `yaml:"insecure"`
}

// Config describes one caikit runtime connection.
type Config struct {
	BaseURL string   `yaml:"base_url"`
	Timeout Duration `yaml:"timeout"`
	TLS     TLS      `yaml:"tls"`
}

// Default returns a Config with the client's default timeout. The base URL
// has no default and must be supplied.
func Default() *Config {
	return &Config{Timeout: Duration(client.DefaultTimeout)}
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate applies the same construction rules as client.New so a bad file
// is rejected before a client is built from it.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return client.ErrMissingBaseURL
	}
	if c.TLS.Insecure && c.TLS.CACertPath != "" {
		return client.ErrInsecureWithCACert
	}
	if (c.TLS.ClientCertPath == "") != (c.TLS.ClientKeyPath == "") {
		return client.ErrIncompleteMTLSPair
	}
	return nil
}

// NewClient builds a client from the config. Additional option functions run
// after the config is applied and may override it.
func (c *Config) NewClient(optFns ...func(o *client.Options)) (*client.Client, error) {
	fns := append([]func(o *client.Options){func(o *client.Options) {
		if c.Timeout > 0 {
			o.Timeout = time.Duration(c.Timeout)
		}
		o.CACertPath = c.TLS.CACertPath
		o.ClientCertPath = c.TLS.ClientCertPath
		o.ClientKeyPath = c.TLS.ClientKeyPath
		o.Insecure = c.TLS.Insecure
	}}, optFns...)
	return client.New(c.BaseURL, fns...)
}
