package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
)

func TestBootstrap_MemoryBackend(t *testing.T) {
	settings := domain.DefaultAppSettings()
	settings.Search.Backend = domain.SearchBackendMemory
	settings.Recognizer.Backend = domain.RecognizerGazetteer
	settings.Storage.Disabled = true
	settings.Cache.RedisAddr = ""

	services, cleanup, err := bootstrap(context.Background(), settings)
	require.NoError(t, err)
	defer func() { assert.NoError(t, cleanup()) }()

	assert.NotNil(t, services.Search)
	assert.NotNil(t, services.Ingest)
	assert.NotNil(t, services.Analytics)
	assert.NotNil(t, services.Metrics)
	assert.Equal(t, "memory", services.Health.Name())
	assert.NoError(t, services.EnsureIndex(context.Background(), false))
}

func TestBootstrap_InvalidBackend(t *testing.T) {
	settings := domain.DefaultAppSettings()
	settings.Search.Backend = "solr"

	_, _, err := bootstrap(context.Background(), settings)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
