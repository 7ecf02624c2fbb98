package config_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/opus10/footing-hooks/pkg/cli/config"
)

func TestSentryFlags(t *testing.T) {
	sentryConfig := &config.Sentry{}
	flags := sentryConfig.Flags()

	gt.V(t, len(flags)).Equal(2)

	flagNames := make(map[string]bool)
	for _, flag := range flags {
		flagNames[flag.Names()[0]] = true
	}

	gt.True(t, flagNames["sentry-dsn"])
	gt.True(t, flagNames["sentry-env"])
}

func TestSentryConfigureWithoutDSN(t *testing.T) {
	sentryConfig := &config.Sentry{}
	gt.NoError(t, sentryConfig.Configure(context.Background()))
}
