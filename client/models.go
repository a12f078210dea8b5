package client

import "context"

// ModelInfo describes one model loaded into the runtime.
type ModelInfo struct {
	Name           string         `json:"name"`
	ModuleID       string         `json:"module_id"`
	ModuleMetadata map[string]any `json:"module_metadata"`
	ModelPath      string         `json:"model_path"`
	Metadata       map[string]any `json:"metadata"`
	Size           int64          `json:"size"`
	Loaded         bool           `json:"loaded"`
}

// ModelsInfo lists the models currently known to the runtime.
func (c *Client) ModelsInfo(ctx context.Context) ([]ModelInfo, error) {
	var result struct {
		Models []ModelInfo `json:"models"`
	}
	if err := c.getJSON(ctx, modelsInfoEndpoint, &result); err != nil {
		return nil, err
	}
	return result.Models, nil
}
