package usecase_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/opus10/footing-hooks/pkg/domain/mock"
	"github.com/opus10/footing-hooks/pkg/domain/model"
	"github.com/opus10/footing-hooks/pkg/domain/types"
	"github.com/opus10/footing-hooks/pkg/infra"
	"github.com/opus10/footing-hooks/pkg/usecase"
)

type testEnv struct {
	uc       *usecase.UseCase
	github   *mock.GitHubMock
	circleCI *mock.CircleCIMock
	repo     *mock.LocalRepoMock
	prompter *mock.PrompterMock
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
}

// newTestEnv returns mocks that succeed by default and a prompter that
// always picks the default answer.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		github: &mock.GitHubMock{
			CreateRepositoryFunc: func(ctx context.Context, input *model.CreateRepoInput) (*model.CreateRepoResult, error) {
				return &model.CreateRepoResult{Outcome: model.RepoCreated, StatusCode: 201}, nil
			},
			AddTeamRepositoryFunc: func(ctx context.Context, org types.GitHubOrg, repo types.GitHubRepoName, team model.Team) error {
				return nil
			},
			UpdateBranchProtectionFunc: func(ctx context.Context, org types.GitHubOrg, repo types.GitHubRepoName, branch types.BranchName, protection *model.BranchProtection) error {
				return nil
			},
		},
		circleCI: &mock.CircleCIMock{
			FollowFunc: func(ctx context.Context, org types.GitHubOrg, repo types.GitHubRepoName) error {
				return nil
			},
			UpdateSettingsFunc: func(ctx context.Context, org types.GitHubOrg, repo types.GitHubRepoName, settings *model.CircleCISettings) error {
				return nil
			},
		},
		repo: &mock.LocalRepoMock{
			StateFunc: func(ctx context.Context) (*model.LocalRepoState, error) {
				return &model.LocalRepoState{Remotes: map[string]string{}}, nil
			},
			InitFunc: func(ctx context.Context, branch types.BranchName) error {
				return nil
			},
			AddAllFunc: func(ctx context.Context) error {
				return nil
			},
			CommitFunc: func(ctx context.Context, messages []string) error {
				return nil
			},
			AddRemoteFunc: func(ctx context.Context, name string, url string) error {
				return nil
			},
			PushFunc: func(ctx context.Context, remote string, branch types.BranchName) error {
				return nil
			},
		},
		prompter: &mock.PrompterMock{
			ConfirmedDefaultFunc: func(ctx context.Context, question string, def types.Answer) (bool, error) {
				return true, nil
			},
			WaitForReturnFunc: func(ctx context.Context, message string) error {
				return nil
			},
		},
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}

	env.uc = usecase.New(infra.New(
		infra.WithGitHub(env.github),
		infra.WithCircleCI(env.circleCI),
		infra.WithLocalRepo(env.repo),
		infra.WithPrompter(env.prompter),
	), usecase.WithOutput(env.stdout, env.stderr))

	return env
}

func newTestProject() *model.Project {
	return model.NewProject("my-app", "my_app", "An app")
}
