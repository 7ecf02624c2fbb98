package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/opus10/footing-hooks/pkg/domain/model"
	"github.com/opus10/footing-hooks/pkg/domain/types"
)

func validCredentials() *model.Credentials {
	return &model.Credentials{
		GitHubToken:   "gh-token",
		CircleCIToken: "ci-token",
	}
}

// recordSteps replaces every remote and local call of env with one that
// appends its name to the returned slice.
func recordSteps(env *testEnv) *[]string {
	var steps []string
	env.prompter.ConfirmedDefaultFunc = func(ctx context.Context, question string, def types.Answer) (bool, error) {
		steps = append(steps, "prompt")
		return true, nil
	}
	env.github.CreateRepositoryFunc = func(ctx context.Context, input *model.CreateRepoInput) (*model.CreateRepoResult, error) {
		steps = append(steps, "create")
		return &model.CreateRepoResult{Outcome: model.RepoCreated, StatusCode: 201}, nil
	}
	env.repo.CommitFunc = func(ctx context.Context, messages []string) error {
		steps = append(steps, "commit")
		return nil
	}
	env.repo.PushFunc = func(ctx context.Context, remote string, branch types.BranchName) error {
		steps = append(steps, "push")
		return nil
	}
	env.github.UpdateBranchProtectionFunc = func(ctx context.Context, org types.GitHubOrg, repo types.GitHubRepoName, branch types.BranchName, protection *model.BranchProtection) error {
		steps = append(steps, "protect")
		return nil
	}
	env.github.AddTeamRepositoryFunc = func(ctx context.Context, org types.GitHubOrg, repo types.GitHubRepoName, team model.Team) error {
		steps = append(steps, "team")
		return nil
	}
	env.circleCI.FollowFunc = func(ctx context.Context, org types.GitHubOrg, repo types.GitHubRepoName) error {
		steps = append(steps, "follow")
		return nil
	}
	env.circleCI.UpdateSettingsFunc = func(ctx context.Context, org types.GitHubOrg, repo types.GitHubRepoName, settings *model.CircleCISettings) error {
		steps = append(steps, "settings")
		return nil
	}
	env.prompter.WaitForReturnFunc = func(ctx context.Context, message string) error {
		steps = append(steps, "return")
		return nil
	}
	return &steps
}

func TestSetupProject(t *testing.T) {
	ctx := context.Background()

	t.Run("runs every step in order", func(t *testing.T) {
		env := newTestEnv(t)
		steps := recordSteps(env)

		gt.NoError(t, env.uc.SetupProject(ctx, newTestProject(), validCredentials()))
		gt.V(t, *steps).Equal([]string{
			"prompt", "create", "commit", "push", "protect", "follow", "settings", "return",
		})

		protection := env.github.UpdateBranchProtectionCalls()
		gt.A(t, protection).Length(1)
		gt.V(t, protection[0].Branch).Equal(types.BranchName("master"))
		gt.V(t, protection[0].Protection.RequiredStatusChecks.Contexts).Equal(model.DefaultRequiredChecks)

		settings := env.circleCI.UpdateSettingsCalls()
		gt.A(t, settings).Length(1)
		gt.V(t, settings[0].Settings).Equal(model.DefaultCircleCISettings())

		gt.V(t, env.repo.CommitCalls()[0].Messages).Equal([]string{"Initial scaffolding [skip ci]", "Type: trivial"})

		waits := env.prompter.WaitForReturnCalls()
		gt.A(t, waits).Length(1)
		gt.S(t, waits[0].Message).Contains("Final step! Go to " + model.DefaultDocsURL)

		out := env.stdout.String()
		gt.S(t, out).Contains("Checking credentials.")
		gt.S(t, out).Contains("Creating the github repository at https://github.com/Opus10/my-app")
		gt.S(t, out).Contains("Creating initial repository and pushing to master.")
		gt.S(t, out).Contains("Setting up default branch protection.")
		gt.S(t, out).Contains(`Setup complete! cd into "my-app"`)
	})

	t.Run("team grants run after branch protection", func(t *testing.T) {
		env := newTestEnv(t)
		steps := recordSteps(env)
		project := newTestProject()
		project.Teams = []model.Team{
			{ID: 1, Name: "core", Permission: types.PermissionAdmin},
			{ID: 2, Name: "docs", Permission: types.PermissionPull},
		}

		gt.NoError(t, env.uc.SetupProject(ctx, project, validCredentials()))
		gt.V(t, *steps).Equal([]string{
			"prompt", "create", "commit", "push", "protect",
			"prompt", "team", "prompt", "team",
			"follow", "settings", "return",
		})
	})

	t.Run("missing credentials stop before any remote call", func(t *testing.T) {
		env := newTestEnv(t)
		creds := validCredentials()
		creds.CircleCIToken = ""

		err := env.uc.SetupProject(ctx, newTestProject(), creds)
		gt.True(t, errors.Is(err, types.ErrCredentials))
		gt.S(t, err.Error()).Contains(model.EnvCircleCIToken)
		gt.A(t, env.github.CreateRepositoryCalls()).Length(0)
		gt.A(t, env.repo.StateCalls()).Length(0)
		gt.A(t, env.circleCI.FollowCalls()).Length(0)
	})

	t.Run("operator rejects the names", func(t *testing.T) {
		env := newTestEnv(t)
		env.prompter.ConfirmedDefaultFunc = func(ctx context.Context, question string, def types.Answer) (bool, error) {
			return false, nil
		}

		err := env.uc.SetupProject(ctx, newTestProject(), validCredentials())
		gt.True(t, errors.Is(err, types.ErrSetupAborted))
		gt.A(t, env.github.CreateRepositoryCalls()).Length(0)
	})

	t.Run("existing repository aborts before local git work", func(t *testing.T) {
		env := newTestEnv(t)
		env.github.CreateRepositoryFunc = func(ctx context.Context, input *model.CreateRepoInput) (*model.CreateRepoResult, error) {
			return &model.CreateRepoResult{Outcome: model.RepoAlreadyExists, StatusCode: 422}, nil
		}
		err := env.uc.SetupProject(ctx, newTestProject(), validCredentials())
		gt.True(t, errors.Is(err, types.ErrRemoteRepoExists))
		gt.A(t, env.repo.StateCalls()).Length(0)
		gt.A(t, env.github.UpdateBranchProtectionCalls()).Length(0)
	})

	t.Run("failed push aborts before branch protection", func(t *testing.T) {
		env := newTestEnv(t)
		env.repo.PushFunc = func(ctx context.Context, remote string, branch types.BranchName) error {
			return errPush
		}

		err := env.uc.SetupProject(ctx, newTestProject(), validCredentials())
		gt.True(t, errors.Is(err, types.ErrGitHubPush))
		gt.A(t, env.github.UpdateBranchProtectionCalls()).Length(0)
		gt.A(t, env.circleCI.FollowCalls()).Length(0)
	})

	t.Run("CircleCI failure stops before final step", func(t *testing.T) {
		env := newTestEnv(t)
		env.circleCI.FollowFunc = func(ctx context.Context, org types.GitHubOrg, repo types.GitHubRepoName) error {
			return errors.New("401 Unauthorized")
		}

		gt.Error(t, env.uc.SetupProject(ctx, newTestProject(), validCredentials()))
		gt.A(t, env.circleCI.UpdateSettingsCalls()).Length(0)
		gt.A(t, env.prompter.WaitForReturnCalls()).Length(0)
		gt.False(t, strings.Contains(env.stdout.String(), "Setup complete!"))
	})

	t.Run("invalid project is rejected", func(t *testing.T) {
		env := newTestEnv(t)
		project := model.NewProject("my_app", "my_app", "")

		err := env.uc.SetupProject(ctx, project, validCredentials())
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
		gt.A(t, env.prompter.ConfirmedDefaultCalls()).Length(0)
	})
}
