package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseConfig(t *testing.T) {
	want := Server{
		API:    Api{HTTPAddr: "0.0.0.0:3000"},
		Upload: Upload{Endpoint: "https://cdn.example.com/upload"},
	}

	got, err := Parse("config.yml")

	assert.NoError(t, got.Validate())
	assert.Equal(t, nil, err)
	assert.Equal(t, want, got)
}

func TestParseConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("UPLOAD_ENDPOINT", "https://cdn.other.example/upload")
	t.Setenv("PRODUCTION", "true")

	got, err := Parse("config.yml")

	assert.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8080", got.API.HTTPAddr)
	assert.Equal(t, "https://cdn.other.example/upload", got.Upload.Endpoint)
	assert.True(t, got.Production)
}

func TestValidateMissingEndpoint(t *testing.T) {
	cfg := Server{API: Api{HTTPAddr: "0.0.0.0:3000"}}

	assert.Error(t, cfg.Validate())
}
