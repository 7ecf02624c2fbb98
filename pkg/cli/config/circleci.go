package config

import (
	"log/slog"

	"github.com/opus10/footing-hooks/pkg/domain/model"
	"github.com/opus10/footing-hooks/pkg/domain/types"
	"github.com/opus10/footing-hooks/pkg/infra/circleci"
	"github.com/urfave/cli/v3"
)

type CircleCI struct {
	token   types.CircleCIToken `masq:"secret"`
	baseURL string
}

func (x *CircleCI) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "circleci-token",
			Usage:       "CircleCI personal API token",
			Category:    "CircleCI",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars(model.EnvCircleCIToken),
		},
		&cli.StringFlag{
			Name:        "circleci-api-url",
			Usage:       "CircleCI v1.1 API endpoint",
			Category:    "CircleCI",
			Value:       circleci.DefaultBaseURL,
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("FOOTING_CIRCLECI_API_URL"),
		},
	}
}

func (x *CircleCI) Token() types.CircleCIToken {
	return x.token
}

// NewClient returns nil without error when the token is not set.
func (x *CircleCI) NewClient() (*circleci.Client, error) {
	if x.token == "" {
		return nil, nil
	}
	return circleci.New(x.token, circleci.WithBaseURL(x.baseURL))
}

func (x CircleCI) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("token.len", len(x.token)),
		slog.String("BaseURL", x.baseURL),
	)
}
