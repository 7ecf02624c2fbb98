package gh

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/opus10/footing-hooks/pkg/domain/interfaces"
	"github.com/opus10/footing-hooks/pkg/domain/model"
	"github.com/opus10/footing-hooks/pkg/domain/types"
	"github.com/opus10/footing-hooks/pkg/utils/logging"
)

const (
	DefaultBaseURL = "https://api.github.com/"

	// branch protection was released behind this preview media type
	acceptLokiPreview = "application/vnd.github.loki-preview+json"

	msgRepositoryCreationFailed = "Repository creation failed."
)

// Client is a thin authenticated wrapper of the GitHub REST API.
type Client struct {
	client *github.Client
}

var _ interfaces.GitHub = (*Client)(nil)

type config struct {
	baseURL   string
	transport http.RoundTripper
}

type Option func(*config)

// WithBaseURL replaces https://api.github.com/ as API endpoint.
func WithBaseURL(baseURL string) Option {
	return func(cfg *config) {
		cfg.baseURL = baseURL
	}
}

// WithTransport replaces http.DefaultTransport under the auth transport.
func WithTransport(tr http.RoundTripper) Option {
	return func(cfg *config) {
		cfg.transport = tr
	}
}

func newConfig(options []Option) *config {
	cfg := &config{
		baseURL:   DefaultBaseURL,
		transport: http.DefaultTransport,
	}
	for _, opt := range options {
		opt(cfg)
	}
	if !strings.HasSuffix(cfg.baseURL, "/") {
		cfg.baseURL += "/"
	}
	return cfg
}

// New creates a client authenticated by personal access token.
func New(token types.GitHubToken, options ...Option) (*Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub token is empty")
	}

	cfg := newConfig(options)
	httpClient := &http.Client{
		Transport: &tokenTransport{token: token, base: cfg.transport},
	}
	return newClient(httpClient, cfg.baseURL)
}

func newClient(httpClient *http.Client, baseURL string) (*Client, error) {
	client := github.NewClient(httpClient)

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse GitHub API URL", goerr.V("url", baseURL))
	}
	client.BaseURL = u

	return &Client{client: client}, nil
}

type tokenTransport struct {
	token types.GitHubToken
	base  http.RoundTripper
}

func (x *tokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.Header.Set("Authorization", "token "+string(x.token))
	return x.base.RoundTrip(r)
}

// Response is the part of an API response callers inspect when a call is
// made WithoutCheck.
type Response struct {
	StatusCode int
	Message    string
	Errors     []ErrorDetail
}

type ErrorDetail struct {
	Resource string `json:"resource,omitempty"`
	Field    string `json:"field,omitempty"`
	Code     string `json:"code,omitempty"`
	Message  string `json:"message,omitempty"`
}

// Body renders the decoded error body for diagnostics.
func (x *Response) Body() string {
	raw, err := json.Marshal(struct {
		Message string        `json:"message,omitempty"`
		Errors  []ErrorDetail `json:"errors,omitempty"`
	}{x.Message, x.Errors})
	if err != nil {
		return x.Message
	}
	return string(raw)
}

func (x *Response) Success() bool {
	return 200 <= x.StatusCode && x.StatusCode < 300
}

type callConfig struct {
	headers map[string]string
	check   bool
}

type CallOption func(*callConfig)

func WithHeader(key, value string) CallOption {
	return func(cfg *callConfig) {
		cfg.headers[key] = value
	}
}

// WithoutCheck returns non-2xx responses instead of an error.
func WithoutCheck() CallOption {
	return func(cfg *callConfig) {
		cfg.check = false
	}
}

func (x *Client) Get(ctx context.Context, path string, options ...CallOption) (*Response, error) {
	return x.call(ctx, http.MethodGet, path, nil, options...)
}

func (x *Client) Post(ctx context.Context, path string, body any, options ...CallOption) (*Response, error) {
	return x.call(ctx, http.MethodPost, path, body, options...)
}

func (x *Client) Put(ctx context.Context, path string, body any, options ...CallOption) (*Response, error) {
	return x.call(ctx, http.MethodPut, path, body, options...)
}

func (x *Client) Patch(ctx context.Context, path string, body any, options ...CallOption) (*Response, error) {
	return x.call(ctx, http.MethodPatch, path, body, options...)
}

func (x *Client) call(ctx context.Context, method, path string, body any, options ...CallOption) (*Response, error) {
	cfg := &callConfig{
		headers: map[string]string{},
		check:   true,
	}
	for _, opt := range options {
		opt(cfg)
	}

	req, err := x.client.NewRequest(method, strings.TrimPrefix(path, "/"), body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build GitHub API request",
			goerr.V("method", method),
			goerr.V("path", path),
		)
	}
	for k, v := range cfg.headers {
		req.Header.Set(k, v)
	}

	logging.From(ctx).Debug("Sending GitHub API request",
		slog.String("method", method),
		slog.String("path", path),
	)

	resp, err := x.client.Do(ctx, req, nil)
	if err == nil {
		return &Response{StatusCode: resp.StatusCode}, nil
	}

	var accepted *github.AcceptedError
	if errors.As(err, &accepted) {
		return &Response{StatusCode: http.StatusAccepted}, nil
	}

	result := toResponse(err)
	if result == nil {
		return nil, goerr.Wrap(err, "failed to send GitHub API request",
			goerr.V("method", method),
			goerr.V("path", path),
		)
	}

	if !cfg.check {
		return result, nil
	}

	return result, goerr.Wrap(err, "GitHub API returned error",
		goerr.V("method", method),
		goerr.V("path", path),
		goerr.V("status", result.StatusCode),
		goerr.V("body", result.Body()),
	)
}

// toResponse extracts the HTTP response from go-github's error types. nil
// means the request never got a response.
func toResponse(err error) *Response {
	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		resp := &Response{
			StatusCode: errResp.Response.StatusCode,
			Message:    errResp.Message,
		}
		for _, e := range errResp.Errors {
			resp.Errors = append(resp.Errors, ErrorDetail{
				Resource: e.Resource,
				Field:    e.Field,
				Code:     e.Code,
				Message:  e.Message,
			})
		}
		return resp
	}

	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) && rateErr.Response != nil {
		return &Response{StatusCode: rateErr.Response.StatusCode, Message: rateErr.Message}
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) && abuseErr.Response != nil {
		return &Response{StatusCode: abuseErr.Response.StatusCode, Message: abuseErr.Message}
	}

	return nil
}

// repoAlreadyExists recognizes the validation failure GitHub returns when
// the name is taken, by summary message or by the name field error.
func repoAlreadyExists(resp *Response) bool {
	if resp.StatusCode != http.StatusUnprocessableEntity {
		return false
	}
	if resp.Message == msgRepositoryCreationFailed {
		return true
	}
	for _, e := range resp.Errors {
		if e.Field == "name" && strings.Contains(e.Message, "already exists") {
			return true
		}
	}
	return false
}

func (x *Client) CreateRepository(ctx context.Context, input *model.CreateRepoInput) (*model.CreateRepoResult, error) {
	path := fmt.Sprintf("orgs/%s/repos", input.Org)
	resp, err := x.Post(ctx, path, input, WithoutCheck())
	if err != nil {
		return nil, err
	}

	result := &model.CreateRepoResult{
		StatusCode: resp.StatusCode,
		Message:    resp.Message,
	}

	switch {
	case resp.Success():
		result.Outcome = model.RepoCreated

	case repoAlreadyExists(resp):
		result.Outcome = model.RepoAlreadyExists

	default:
		result.Outcome = model.RepoCreationFailed
		result.Message = resp.Body()
		result.Err = goerr.Wrap(types.ErrUnexpectedStatus, "failed to create repository",
			goerr.V("org", input.Org),
			goerr.V("repo", input.Name),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", resp.Body()),
		)
	}

	logging.From(ctx).Debug("CreateRepository response",
		slog.String("outcome", result.Outcome.String()),
		slog.Int("status", resp.StatusCode),
	)

	return result, nil
}

func (x *Client) AddTeamRepository(ctx context.Context, org types.GitHubOrg, repo types.GitHubRepoName, team model.Team) error {
	path := fmt.Sprintf("teams/%d/repos/%s/%s", team.ID, org, repo)
	body := map[string]types.Permission{"permission": team.Permission}

	if _, err := x.Put(ctx, path, body); err != nil {
		return goerr.Wrap(err, "failed to add team to repository",
			goerr.V("team", team.Name),
			goerr.V("repo", repo),
		)
	}
	return nil
}

func (x *Client) UpdateBranchProtection(ctx context.Context, org types.GitHubOrg, repo types.GitHubRepoName, branch types.BranchName, protection *model.BranchProtection) error {
	path := fmt.Sprintf("repos/%s/%s/branches/%s/protection", org, repo, branch)

	if _, err := x.Put(ctx, path, protection, WithHeader("Accept", acceptLokiPreview)); err != nil {
		return goerr.Wrap(err, "failed to update branch protection",
			goerr.V("repo", repo),
			goerr.V("branch", branch),
		)
	}
	return nil
}
