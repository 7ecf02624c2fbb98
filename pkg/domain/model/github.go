package model

import (
	"github.com/opus10/footing-hooks/pkg/domain/types"
)

// CreateRepoInput is the body of the organization repository creation call.
type CreateRepoInput struct {
	Org              types.GitHubOrg      `json:"-"`
	Name             types.GitHubRepoName `json:"name"`
	Description      string               `json:"description"`
	Private          bool                 `json:"private"`
	HasWiki          bool                 `json:"has_wiki"`
	AllowSquashMerge bool                 `json:"allow_squash_merge"`
	AllowMergeCommit bool                 `json:"allow_merge_commit"`
	AllowRebaseMerge bool                 `json:"allow_rebase_merge"`
}

// NewCreateRepoInput returns a public repository that only allows merge
// commits and has no wiki.
func NewCreateRepoInput(project *Project) *CreateRepoInput {
	return &CreateRepoInput{
		Org:              project.Org,
		Name:             project.RepoName,
		Description:      project.Description,
		Private:          false,
		HasWiki:          false,
		AllowSquashMerge: false,
		AllowMergeCommit: true,
		AllowRebaseMerge: false,
	}
}

type CreateRepoOutcome int

const (
	RepoCreated CreateRepoOutcome = iota + 1
	RepoAlreadyExists
	RepoCreationFailed
)

func (x CreateRepoOutcome) String() string {
	switch x {
	case RepoCreated:
		return "created"
	case RepoAlreadyExists:
		return "already_exists"
	case RepoCreationFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// CreateRepoResult is the classified response of a repository creation call.
// Err is set only for RepoCreationFailed.
type CreateRepoResult struct {
	Outcome    CreateRepoOutcome
	StatusCode int
	Message    string
	Err        error
}

// BranchProtection is the request body of the branch protection API.
type BranchProtection struct {
	RequiredStatusChecks       *RequiredStatusChecks `json:"required_status_checks"`
	EnforceAdmins              bool                  `json:"enforce_admins"`
	RequiredPullRequestReviews *PullRequestReviews   `json:"required_pull_request_reviews"`
	Restrictions               *BranchRestrictions   `json:"restrictions"`
}

type RequiredStatusChecks struct {
	Strict   bool     `json:"strict"`
	Contexts []string `json:"contexts"`
}

type PullRequestReviews struct {
	RequiredApprovingReviewCount int `json:"required_approving_review_count"`
}

type BranchRestrictions struct {
	Users []string `json:"users"`
	Teams []string `json:"teams"`
}

var DefaultRequiredChecks = []string{
	"ci/circleci: check_changelog",
	"ci/circleci: lint",
	"ci/circleci: test",
}

// DefaultBranchProtection requires the given checks to pass on an up to date
// branch. No review is required and admins are not enforced. nil contexts
// means DefaultRequiredChecks; an empty list requires no check.
func DefaultBranchProtection(contexts []string) *BranchProtection {
	if contexts == nil {
		contexts = DefaultRequiredChecks
	}
	return &BranchProtection{
		RequiredStatusChecks: &RequiredStatusChecks{
			Strict:   true,
			Contexts: append([]string{}, contexts...),
		},
		EnforceAdmins: false,
	}
}

// LocalRepoState is what is already present in the working directory.
type LocalRepoState struct {
	Initialized bool
	HasCommits  bool
	Remotes     map[string]string
}
