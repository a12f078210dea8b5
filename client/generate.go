package client

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/opendatahub-io/caikit-nlp-client-go/logging"
)

type generatedTextResponse struct {
	GeneratedText string `json:"generated_text"`
}

// GenerateText runs the text generation task against modelID and returns the
// generated text.
func (c *Client) GenerateText(ctx context.Context, modelID, text string, params ...GenerationParam) (string, error) {
	req := newTaskRequest(modelID, text, params)

	var result generatedTextResponse
	if err := c.postTask(ctx, textGenerationEndpoint, req, &result); err != nil {
		return "", err
	}
	return result.GeneratedText, nil
}

// GenerateTextStream runs the server-streaming text generation task. The
// returned Stream yields one text chunk per frame as the runtime produces
// them; the caller may stop consuming at any point and must Close the stream
// when done with it. The client timeout does not apply here, a stream lives
// until it is exhausted, closed, or ctx is done.
func (c *Client) GenerateTextStream(ctx context.Context, modelID, text string, params ...GenerationParam) (*Stream, error) {
	req := newTaskRequest(modelID, text, params)
	if err := req.validate(); err != nil {
		return nil, err
	}

	log := logging.WithRequest(c.logger, uuid.NewString(), streamingTextGenerationEndpoint, modelID)
	log.Debug("opening generation stream")

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetDoNotParseResponse(true).
		SetBody(req).
		Post(streamingTextGenerationEndpoint)
	if err != nil {
		return nil, err
	}

	body := resp.RawResponse.Body
	if !resp.IsSuccess() {
		raw, _ := io.ReadAll(body)
		_ = body.Close()
		svcErr := newServiceError(resp.StatusCode(), raw)
		log.Debug("stream request failed", "status_code", svcErr.StatusCode)
		return nil, svcErr
	}
	return newStream(body), nil
}
