package logging_test

import (
	"bytes"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/opus10/footing-hooks/pkg/domain/types"
	"github.com/opus10/footing-hooks/pkg/utils/logging"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(func() {
		gt.NoError(t, logging.Configure("text", "warn", "stderr"))
	})

	t.Run("configure with json format to stdout", func(t *testing.T) {
		gt.NoError(t, logging.Configure("json", "info", "stdout"))
	})

	t.Run("configure with text format", func(t *testing.T) {
		gt.NoError(t, logging.Configure("text", "debug", "stderr"))
	})

	t.Run("configure with log file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "setup.log")
		gt.NoError(t, logging.Configure("json", "info", path))
	})

	t.Run("configure with invalid format returns error", func(t *testing.T) {
		err := logging.Configure("invalid", "info", "stdout")
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("configure with invalid level returns error", func(t *testing.T) {
		err := logging.Configure("json", "invalid", "stdout")
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}

func TestNewMasksCredentials(t *testing.T) {
	var buf bytes.Buffer
	logger := gt.R1(logging.New("json", "debug", &buf)).NoError(t)

	logger.Info("credentials",
		slog.Any("github_token", types.GitHubToken("ghp_secret_value")),
		slog.Any("circleci_token", types.CircleCIToken("circle_secret_value")),
	)

	out := buf.String()
	gt.S(t, out).Contains("credentials")
	gt.False(t, strings.Contains(out, "ghp_secret_value"))
	gt.False(t, strings.Contains(out, "circle_secret_value"))
}

func TestNewLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := gt.R1(logging.New("json", "warn", &buf)).NoError(t)

	logger.Info("hidden")
	gt.V(t, buf.Len()).Equal(0)

	logger.Warn("shown")
	gt.S(t, buf.String()).Contains("shown")
}
