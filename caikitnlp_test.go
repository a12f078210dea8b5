package caikitnlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacadeConstruction(t *testing.T) {
	_, err := New("")
	assert.ErrorIs(t, err, ErrMissingBaseURL)

	_, err = New("http://localhost:8080", func(o *Options) {
		o.Insecure = true
		o.CACertPath = "ca.pem"
	})
	assert.ErrorIs(t, err, ErrInsecureWithCACert)

	c, err := New("http://localhost:8080")
	require.NoError(t, err)
	assert.NoError(t, c.Close())
}
