// Package client implements an HTTP(S) client for a caikit NLP inference
// runtime. It covers the text generation task (synchronous and streaming),
// the embedding family of tasks (embedding, sentence similarity, rerank and
// their batch variants) and runtime introspection (loaded models, supported
// generation parameters).
//
// The client is synchronous and stateless: every call issues one HTTP request
// and blocks until the response (or, for streaming, each successive frame)
// arrives. There are no retries and no caching; service-reported errors are
// normalized into *ServiceError and transport failures propagate unchanged.
// A Client is safe for concurrent use because it holds no per-call state.
package client

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"resty.dev/v3"

	"github.com/opendatahub-io/caikit-nlp-client-go/logging"
)

// Endpoint paths exposed by the caikit runtime.
const (
	textGenerationEndpoint          = "/api/v1/task/text-generation"
	streamingTextGenerationEndpoint = "/api/v1/task/server-streaming-text-generation"
	embeddingEndpoint               = "/api/v1/task/embedding"
	embeddingTasksEndpoint          = "/api/v1/task/embedding-tasks"
	sentenceSimilarityEndpoint      = "/api/v1/task/sentence-similarity"
	sentenceSimilarityTasksEndpoint = "/api/v1/task/sentence-similarity-tasks"
	rerankEndpoint                  = "/api/v1/task/rerank"
	rerankTasksEndpoint             = "/api/v1/task/rerank-tasks"
	modelsInfoEndpoint              = "/info/models"
	openAPIEndpoint                 = "/openapi.json"
)

// DefaultTimeout bounds the wait for a response when the caller's context
// carries no deadline of its own.
const DefaultTimeout = 60 * time.Second

// Options configure the Client.
type Options struct {
	// Timeout bounds each non-streaming request. Defaults to DefaultTimeout.
	// Streaming responses live as long as the caller keeps consuming them;
	// they are bounded only by the caller's context.
	Timeout time.Duration

	// CACertPath points at a PEM bundle used to verify the server
	// certificate. Mutually exclusive with Insecure.
	CACertPath string

	// ClientCertPath and ClientKeyPath form the client certificate pair for
	// mutual TLS. Both or neither must be set.
	ClientCertPath string
	ClientKeyPath  string

	// Insecure disables server certificate verification.
	Insecure bool

	// Logger receives request-scoped debug logging. Defaults to a no-op.
	Logger logging.Logger

	// HTTPClient overrides the underlying resty client. Intended for tests;
	// TLS options are still applied on top of it.
	HTTPClient *resty.Client
}

// Client talks to a single caikit runtime instance.
type Client struct {
	http    *resty.Client
	timeout time.Duration
	logger  logging.Logger
}

// New creates a Client for the runtime at baseURL. Configuration problems
// (empty base URL, conflicting or incomplete TLS options, unreadable
// certificate material) are reported immediately, before any network I/O.
func New(baseURL string, optFns ...func(o *Options)) (*Client, error) {
	opts := Options{
		Timeout: DefaultTimeout,
		Logger:  logging.NewNoOpLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	if baseURL == "" {
		return nil, ErrMissingBaseURL
	}
	if opts.Insecure && opts.CACertPath != "" {
		return nil, ErrInsecureWithCACert
	}
	if (opts.ClientCertPath == "") != (opts.ClientKeyPath == "") {
		return nil, ErrIncompleteMTLSPair
	}

	tlsConfig, err := buildTLSConfig(&opts)
	if err != nil {
		return nil, err
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = resty.New()
	}
	httpClient.SetBaseURL(baseURL)
	if tlsConfig != nil {
		httpClient.SetTLSClientConfig(tlsConfig)
	}

	// The timeout is applied per request rather than on the client, so the
	// streaming endpoint can opt out: a deadline over the whole exchange
	// would kill a healthy stream that outlives it.
	return &Client{http: httpClient, timeout: opts.Timeout, logger: opts.Logger}, nil
}

// buildTLSConfig translates the TLS options into a tls.Config. Returns nil
// when no TLS option is set so plain HTTP clients keep the transport default.
func buildTLSConfig(opts *Options) (*tls.Config, error) {
	if opts.CACertPath == "" && opts.ClientCertPath == "" && !opts.Insecure {
		return nil, nil
	}

	cfg := &tls.Config{}

	if opts.Insecure {
		cfg.InsecureSkipVerify = true
	}
	if opts.CACertPath != "" {
		pem, err := os.ReadFile(opts.CACertPath)
		if err != nil {
			return nil, fmt.Errorf("read CA certificate: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("no certificates found in %s", opts.CACertPath)
		}
		cfg.RootCAs = pool
	}
	if opts.ClientCertPath != "" {
		cert, err := tls.LoadX509KeyPair(opts.ClientCertPath, opts.ClientKeyPath)
		if err != nil {
			return nil, fmt.Errorf("load client certificate pair: %w", err)
		}
		cfg.Certificates = []tls.Certificate{cert}
	}

	return cfg, nil
}

// Close releases idle connections held by the underlying transport.
func (c *Client) Close() error {
	return c.http.Close()
}

// postTask sends a task request and decodes the 2xx response body into out.
// Non-2xx responses become a *ServiceError carrying the service detail text.
func (c *Client) postTask(ctx context.Context, endpoint string, req *taskRequest, out any) error {
	if err := req.validate(); err != nil {
		return err
	}

	log := logging.WithRequest(c.logger, uuid.NewString(), endpoint, req.ModelID)
	log.Debug("sending task request")

	resp, err := c.http.R().
		SetContext(ctx).
		SetTimeout(c.timeout).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(endpoint)
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		svcErr := newServiceError(resp.StatusCode(), resp.Bytes())
		log.Debug("task request failed", "status_code", svcErr.StatusCode)
		return svcErr
	}
	if err := json.Unmarshal(resp.Bytes(), out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	log.Debug("task request completed")
	return nil
}

// getJSON issues a GET and decodes the 2xx response body into out.
func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	resp, err := c.http.R().SetContext(ctx).SetTimeout(c.timeout).Get(endpoint)
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		return newServiceError(resp.StatusCode(), resp.Bytes())
	}
	if err := json.Unmarshal(resp.Bytes(), out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
