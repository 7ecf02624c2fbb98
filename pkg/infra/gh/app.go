package gh

import (
	"net/http"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/m-mizutani/goerr/v2"
	"github.com/opus10/footing-hooks/pkg/domain/model"
	"github.com/opus10/footing-hooks/pkg/domain/types"
)

// NewWithApp creates a client authenticated as a GitHub App installation.
func NewWithApp(app *model.GitHubAppCredentials, options ...Option) (*Client, error) {
	if app == nil || app.AppID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if app.InstallID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "installID is empty")
	}
	if app.PrivateKey == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
	}

	cfg := newConfig(options)
	itr, err := ghinstallation.New(cfg.transport, int64(app.AppID), int64(app.InstallID), []byte(app.PrivateKey))
	if err != nil {
		return nil, goerr.Wrap(err, "Failed to create github app transport")
	}
	itr.BaseURL = strings.TrimSuffix(cfg.baseURL, "/")

	return newClient(&http.Client{Transport: itr}, cfg.baseURL)
}
