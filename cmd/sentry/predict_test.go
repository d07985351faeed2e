package main

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictRejectsUnknownModel(t *testing.T) {
	viper.Set("predict.model", "GBT")
	defer viper.Set("predict.model", "RF")

	err := runPredict(predictCmd(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown model")
}

func TestPredictModelIsCaseInsensitive(t *testing.T) {
	viper.Set("predict.model", "xgb")
	viper.Set("api.url", "")
	defer func() {
		viper.Set("predict.model", "RF")
		viper.Set("api.url", "http://127.0.0.1:8000")
	}()

	// With a valid model the command proceeds to backend construction,
	// which fails on the empty URL rather than on model validation.
	err := runPredict(predictCmd(), nil)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "unknown model")
}
