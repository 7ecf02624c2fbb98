package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/opus10/footing-hooks/pkg/domain/model"
	"github.com/opus10/footing-hooks/pkg/domain/types"
)

func TestCredentialsCheck(t *testing.T) {
	t.Run("both tokens present", func(t *testing.T) {
		creds := &model.Credentials{GitHubToken: "gh", CircleCIToken: "cci"}
		gt.NoError(t, creds.Check())
	})

	t.Run("missing GitHub token names the variable", func(t *testing.T) {
		creds := &model.Credentials{CircleCIToken: "cci"}
		err := creds.Check()
		gt.True(t, errors.Is(err, types.ErrCredentials))
		gt.S(t, err.Error()).Contains(model.EnvGitHubToken)
		gt.S(t, err.Error()).Contains(model.GitHubTokenURL)
	})

	t.Run("missing CircleCI token names the variable", func(t *testing.T) {
		creds := &model.Credentials{GitHubToken: "gh"}
		err := creds.Check()
		gt.True(t, errors.Is(err, types.ErrCredentials))
		gt.S(t, err.Error()).Contains(model.EnvCircleCIToken)
		gt.S(t, err.Error()).Contains(model.CircleCITokenURL)
	})

	t.Run("GitHub App replaces the token", func(t *testing.T) {
		creds := &model.Credentials{
			GitHubApp: &model.GitHubAppCredentials{
				AppID:      1,
				InstallID:  2,
				PrivateKey: "pem",
			},
			CircleCIToken: "cci",
		}
		gt.NoError(t, creds.Check())
	})

	t.Run("incomplete GitHub App does not count", func(t *testing.T) {
		creds := &model.Credentials{
			GitHubApp:     &model.GitHubAppCredentials{AppID: 1},
			CircleCIToken: "cci",
		}
		gt.True(t, errors.Is(creds.Check(), types.ErrCredentials))
	})
}
