package model

import (
	"fmt"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/opus10/footing-hooks/pkg/domain/types"
)

const (
	EnvGitHubToken   = "GITHUB_API_TOKEN"
	EnvCircleCIToken = "CIRCLECI_API_TOKEN"

	GitHubTokenURL   = "https://github.com/settings/tokens"
	CircleCITokenURL = "https://circleci.com/account/api"
)

// Credentials are read once from the environment and held for the lifetime
// of the process.
type Credentials struct {
	GitHubToken   types.GitHubToken
	GitHubApp     *GitHubAppCredentials
	CircleCIToken types.CircleCIToken
}

type GitHubAppCredentials struct {
	AppID      types.GitHubAppID
	InstallID  types.GitHubAppInstallID
	PrivateKey types.GitHubAppPrivateKey
}

func (x *GitHubAppCredentials) Enabled() bool {
	return x != nil && x.AppID != 0 && x.InstallID != 0 && x.PrivateKey != ""
}

// Check fails with ErrCredentials naming the first missing token and where
// to obtain it.
func (x *Credentials) Check() error {
	if x.GitHubToken == "" && !x.GitHubApp.Enabled() {
		return goerr.Wrap(types.ErrCredentials, fmt.Sprintf(
			`You must set a "%s" environment variable with repo creation permissions in order to spin up a public library project. Create a personal access token at %s`,
			EnvGitHubToken, GitHubTokenURL),
			goerr.V("env", EnvGitHubToken),
		)
	}

	if x.CircleCIToken == "" {
		return goerr.Wrap(types.ErrCredentials, fmt.Sprintf(
			`You must set a "%s" environment variable in order for public library creation to work. Create a token at %s`,
			EnvCircleCIToken, CircleCITokenURL),
			goerr.V("env", EnvCircleCIToken),
		)
	}

	return nil
}

func (x *Credentials) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("GitHubToken.len", len(x.GitHubToken)),
		slog.Bool("GitHubApp", x.GitHubApp.Enabled()),
		slog.Int("CircleCIToken.len", len(x.CircleCIToken)),
	)
}
