// Package caikitnlp provides a high-level façade over the client package for
// talking to a caikit NLP inference runtime over HTTP(S). Most applications
// interact with this package by:
//  1. Creating a client via New() (optionally with TLS and timeout options)
//  2. Calling GenerateText / GenerateTextStream for text generation
//  3. Calling the embedding, similarity and rerank task methods as needed
//
// The façade re-exports the client types so simple callers import a single
// package; the client, config and logging packages remain available for
// finer control (YAML configuration files, custom structured loggers).
package caikitnlp

import (
	"github.com/opendatahub-io/caikit-nlp-client-go/client"
)

// Re-exported client types.
type (
	// Client talks to a single caikit runtime instance.
	Client = client.Client
	// Options configure the Client.
	Options = client.Options
	// GenerationParams are the optional decoding tuning fields.
	GenerationParams = client.GenerationParams
	// GenerationParam sets a single generation parameter on a request.
	GenerationParam = client.GenerationParam
	// Stream is a lazy sequence of generated text chunks.
	Stream = client.Stream
	// ServiceError is an error reported by the runtime.
	ServiceError = client.ServiceError
	// ModelInfo describes one model loaded into the runtime.
	ModelInfo = client.ModelInfo
)

// Re-exported configuration errors.
var (
	ErrMissingBaseURL     = client.ErrMissingBaseURL
	ErrMissingModelID     = client.ErrMissingModelID
	ErrInsecureWithCACert = client.ErrInsecureWithCACert
	ErrIncompleteMTLSPair = client.ErrIncompleteMTLSPair
)

// New creates a client for the runtime at baseURL.
func New(baseURL string, optFns ...func(o *Options)) (*Client, error) {
	return client.New(baseURL, optFns...)
}
