package main

import (
	"os"
	"testing"

	"github.com/mielpeeters/whister/agent"
	"github.com/mielpeeters/whister/model"
	"github.com/stretchr/testify/require"
)

func TestShippedModelArtifact(t *testing.T) {
	data, err := os.ReadFile(modelPath)
	require.NoError(t, err, "repo should ship a usable model artifact")

	weights, err := model.Load(data)
	require.NoError(t, err)
	require.Equal(t, agent.FeatureDim, weights.FeatureDim, "artifact width should match the feature extractor")
	require.Equal(t, agent.FeatureDim, weights.Len())
}
