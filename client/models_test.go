package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const modelsInfoFixture = `{
  "models": [
    {
      "name": "flan-t5-small-caikit",
      "module_id": "text-generation",
      "module_metadata": {"module_name": "caikit_nlp.text_generation"},
      "model_path": "/models/flan-t5-small-caikit",
      "metadata": {},
      "size": 307111936,
      "loaded": true
    },
    {
      "name": "mini-embedding",
      "module_id": "embedding",
      "module_metadata": {"module_name": "caikit_nlp.embedding"},
      "model_path": "/models/mini-embedding",
      "metadata": {},
      "size": 90314496,
      "loaded": false
    }
  ]
}`

func TestModelsInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, modelsInfoEndpoint, r.URL.Path)
		_, _ = w.Write([]byte(modelsInfoFixture))
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	models, err := c.ModelsInfo(context.Background())
	require.NoError(t, err)
	require.Len(t, models, 2)

	assert.Equal(t, "flan-t5-small-caikit", models[0].Name)
	assert.Equal(t, "text-generation", models[0].ModuleID)
	assert.Equal(t, "/models/flan-t5-small-caikit", models[0].ModelPath)
	assert.Equal(t, int64(307111936), models[0].Size)
	assert.True(t, models[0].Loaded)
	assert.False(t, models[1].Loaded)
}

func TestModelsInfoServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"details":"runtime starting"}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	_, err = c.ModelsInfo(context.Background())
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, http.StatusServiceUnavailable, svcErr.StatusCode)
	assert.Equal(t, "runtime starting", svcErr.Detail)
}
