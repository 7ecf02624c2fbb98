package config

import (
	"log/slog"

	"github.com/opus10/footing-hooks/pkg/domain/model"
	"github.com/opus10/footing-hooks/pkg/domain/types"
	"github.com/opus10/footing-hooks/pkg/infra/gh"
	"github.com/urfave/cli/v3"
)

// GitHub holds GitHub API access. A personal access token is the usual
// setup; GitHub App installation credentials replace it when all three App
// values are set.
type GitHub struct {
	token      types.GitHubToken `masq:"secret"`
	baseURL    string
	appID      types.GitHubAppID
	installID  types.GitHubAppInstallID
	privateKey types.GitHubAppPrivateKey `masq:"secret"`
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token with repo creation permissions",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars(model.EnvGitHubToken),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub REST API endpoint",
			Category:    "GitHub",
			Value:       gh.DefaultBaseURL,
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("FOOTING_GITHUB_API_URL"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Category:    "GitHub",
			Destination: (*int64)(&x.appID),
			Sources:     cli.EnvVars("FOOTING_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-app-install-id",
			Usage:       "GitHub App installation ID",
			Category:    "GitHub",
			Destination: (*int64)(&x.installID),
			Sources:     cli.EnvVars("FOOTING_GITHUB_APP_INSTALL_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App private key (PEM)",
			Category:    "GitHub",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("FOOTING_GITHUB_APP_PRIVATE_KEY"),
		},
	}
}

func (x *GitHub) Token() types.GitHubToken {
	return x.token
}

// App returns the App credentials, or nil when they are not fully set.
func (x *GitHub) App() *model.GitHubAppCredentials {
	app := &model.GitHubAppCredentials{
		AppID:      x.appID,
		InstallID:  x.installID,
		PrivateKey: x.privateKey,
	}
	if !app.Enabled() {
		return nil
	}
	return app
}

// NewClient returns nil without error when no credentials are configured so
// the credential check can report the missing token.
func (x *GitHub) NewClient() (*gh.Client, error) {
	if app := x.App(); app != nil {
		return gh.NewWithApp(app, gh.WithBaseURL(x.baseURL))
	}
	if x.token == "" {
		return nil, nil
	}
	return gh.New(x.token, gh.WithBaseURL(x.baseURL))
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("token.len", len(x.token)),
		slog.String("BaseURL", x.baseURL),
		slog.Int64("AppID", int64(x.appID)),
		slog.Int64("InstallID", int64(x.installID)),
		slog.Int("privateKey.len", len(x.privateKey)),
	)
}
