package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHub CircleCI LocalRepo Prompter

import (
	"context"

	"github.com/opus10/footing-hooks/pkg/domain/model"
	"github.com/opus10/footing-hooks/pkg/domain/types"
)

type GitHub interface {
	CreateRepository(ctx context.Context, input *model.CreateRepoInput) (*model.CreateRepoResult, error)
	AddTeamRepository(ctx context.Context, org types.GitHubOrg, repo types.GitHubRepoName, team model.Team) error
	UpdateBranchProtection(ctx context.Context, org types.GitHubOrg, repo types.GitHubRepoName, branch types.BranchName, protection *model.BranchProtection) error
}

type CircleCI interface {
	Follow(ctx context.Context, org types.GitHubOrg, repo types.GitHubRepoName) error
	UpdateSettings(ctx context.Context, org types.GitHubOrg, repo types.GitHubRepoName, settings *model.CircleCISettings) error
}

// LocalRepo is the version control working copy the project was rendered into.
type LocalRepo interface {
	State(ctx context.Context) (*model.LocalRepoState, error)
	Init(ctx context.Context, branch types.BranchName) error
	AddAll(ctx context.Context) error
	Commit(ctx context.Context, messages []string) error
	AddRemote(ctx context.Context, name, url string) error
	Push(ctx context.Context, remote string, branch types.BranchName) error
}

// Prompter asks the operator questions. ConfirmedDefault returns true iff the
// resolved answer equals def; an empty answer always resolves to def.
type Prompter interface {
	ConfirmedDefault(ctx context.Context, question string, def types.Answer) (bool, error)
	WaitForReturn(ctx context.Context, message string) error
}
