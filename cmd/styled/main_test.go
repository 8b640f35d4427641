package main

import (
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTracingSelectsLevel(t *testing.T) {
	require.NoError(t, setupTracing("debug"))
	for _, key := range tracerKeys {
		assert.Equal(t, tracing.LevelDebug, tracing.Select(key).GetTraceLevel(), key)
	}
	require.NoError(t, setupTracing("INFO"))
	assert.Equal(t, tracing.LevelInfo, tracing.Select("styled.classify").GetTraceLevel())
}

func TestSetupTracingUnknownLevel(t *testing.T) {
	assert.Error(t, setupTracing("verbose"))
}
