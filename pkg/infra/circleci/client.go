package circleci

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/opus10/footing-hooks/pkg/domain/interfaces"
	"github.com/opus10/footing-hooks/pkg/domain/model"
	"github.com/opus10/footing-hooks/pkg/domain/types"
	"github.com/opus10/footing-hooks/pkg/infra"
	"github.com/opus10/footing-hooks/pkg/utils/logging"
	"github.com/opus10/footing-hooks/pkg/utils/safe"
)

const DefaultBaseURL = "https://circleci.com/api/v1.1/"

// Client calls the CircleCI v1.1 project API. The token is sent as basic
// auth user name with an empty password.
type Client struct {
	token      types.CircleCIToken
	baseURL    string
	httpClient infra.HTTPClient
}

var _ interfaces.CircleCI = (*Client)(nil)

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(x *Client) {
		x.baseURL = baseURL
	}
}

func WithHTTPClient(client infra.HTTPClient) Option {
	return func(x *Client) {
		x.httpClient = client
	}
}

func New(token types.CircleCIToken, options ...Option) (*Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "CircleCI token is empty")
	}

	client := &Client{
		token:      token,
		baseURL:    DefaultBaseURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range options {
		opt(client)
	}
	if !strings.HasSuffix(client.baseURL, "/") {
		client.baseURL += "/"
	}

	return client, nil
}

func (x *Client) projectURL(org types.GitHubOrg, repo types.GitHubRepoName) string {
	return fmt.Sprintf("%sproject/github/%s/%s", x.baseURL, org, repo)
}

// Follow makes the token owner follow the project so that builds start.
func (x *Client) Follow(ctx context.Context, org types.GitHubOrg, repo types.GitHubRepoName) error {
	return x.send(ctx, http.MethodPost, x.projectURL(org, repo)+"/follow", nil)
}

func (x *Client) UpdateSettings(ctx context.Context, org types.GitHubOrg, repo types.GitHubRepoName, settings *model.CircleCISettings) error {
	return x.send(ctx, http.MethodPut, x.projectURL(org, repo)+"/settings", settings)
}

func (x *Client) send(ctx context.Context, method, url string, body any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return goerr.Wrap(err, "failed to marshal CircleCI request body", goerr.V("url", url))
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return goerr.Wrap(err, "failed to create CircleCI request", goerr.V("url", url))
	}
	req.SetBasicAuth(string(x.token), "")
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logging.From(ctx).Debug("Sending CircleCI API request",
		slog.String("method", method),
		slog.String("url", url),
	)

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to send CircleCI request", goerr.V("url", url))
	}
	defer safe.Close(resp.Body)

	if resp.StatusCode < 200 || 300 <= resp.StatusCode {
		respBody, _ := io.ReadAll(resp.Body)
		return goerr.Wrap(types.ErrUnexpectedStatus, "CircleCI API returned error",
			goerr.V("method", method),
			goerr.V("url", url),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(respBody)),
		)
	}

	return nil
}
