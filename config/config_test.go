// SPDX-License-Identifier: MIT
package config_test

import (
	"testing"

	"github.com/arcmesh/qemsimplify/config"
	"github.com/arcmesh/qemsimplify/quadric"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	opts, err := config.Load([]byte(``))
	require.NoError(t, err)
	require.Equal(t, quadric.DefaultEpsilon, opts.Epsilon)
	require.True(t, opts.Telemetry)
}

func TestLoadOverrides(t *testing.T) {
	opts, err := config.Load([]byte("epsilon: 0.01\ntelemetry: false\n"))
	require.NoError(t, err)
	require.InDelta(t, 0.01, opts.Epsilon, 1e-12)
	require.False(t, opts.Telemetry)
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := config.Load([]byte("epsilon: [this is not a float\n"))
	require.Error(t, err)
}
