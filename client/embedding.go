package client

import "context"

// The embedding family of tasks returns result shapes owned by the runtime
// (vectors, scores, rerank documents), so responses are handed back as
// decoded JSON objects rather than typed structs.

// Embedding embeds a single text.
func (c *Client) Embedding(ctx context.Context, modelID, text string) (map[string]any, error) {
	return c.task(ctx, embeddingEndpoint, modelID, text)
}

// EmbeddingTasks embeds a batch of texts in one call.
func (c *Client) EmbeddingTasks(ctx context.Context, modelID string, texts []string) (map[string]any, error) {
	return c.task(ctx, embeddingTasksEndpoint, modelID, texts)
}

// SentenceSimilarity scores each sentence against the source sentence.
func (c *Client) SentenceSimilarity(ctx context.Context, modelID, sourceSentence string, sentences []string) (map[string]any, error) {
	return c.task(ctx, sentenceSimilarityEndpoint, modelID, map[string]any{
		"source_sentence": sourceSentence,
		"sentences":       sentences,
	})
}

// SentenceSimilarityTasks scores each sentence against every source sentence.
func (c *Client) SentenceSimilarityTasks(ctx context.Context, modelID string, sourceSentences, sentences []string) (map[string]any, error) {
	return c.task(ctx, sentenceSimilarityTasksEndpoint, modelID, map[string]any{
		"source_sentences": sourceSentences,
		"sentences":        sentences,
	})
}

// Rerank scores the documents against the query.
func (c *Client) Rerank(ctx context.Context, modelID string, documents []map[string]any, query string) (map[string]any, error) {
	return c.task(ctx, rerankEndpoint, modelID, map[string]any{
		"documents": documents,
		"query":     query,
	})
}

// RerankTasks scores the documents against every query.
func (c *Client) RerankTasks(ctx context.Context, modelID string, documents []map[string]any, queries []string) (map[string]any, error) {
	return c.task(ctx, rerankTasksEndpoint, modelID, map[string]any{
		"documents": documents,
		"queries":   queries,
	})
}

func (c *Client) task(ctx context.Context, endpoint, modelID string, inputs any) (map[string]any, error) {
	req := newTaskRequest(modelID, inputs, nil)

	var result map[string]any
	if err := c.postTask(ctx, endpoint, req, &result); err != nil {
		return nil, err
	}
	return result, nil
}
