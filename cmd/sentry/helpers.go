package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/fraudsentry/sentry/internal/common"
	"github.com/fraudsentry/sentry/internal/scoring"
	"github.com/fraudsentry/sentry/internal/service"
)

// newBackend builds the FraudSentry API client from configuration.
func newBackend() (service.Backend, error) {
	baseURL := viper.GetString("api.url")
	if baseURL == "" {
		return nil, fmt.Errorf("%w: api.url is required", common.ErrMissingConfig)
	}
	return scoring.NewClient(baseURL), nil
}
