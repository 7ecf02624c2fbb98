package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/opus10/footing-hooks/pkg/domain/model"
	"github.com/opus10/footing-hooks/pkg/domain/types"
	"github.com/opus10/footing-hooks/pkg/utils/logging"
)

// CreateRemoteRepo creates the public repository under the organization. An
// existing repository is accepted silently without prompt; with prompt the
// operator chooses between continuing and ErrRemoteRepoExists.
func (x *UseCase) CreateRemoteRepo(ctx context.Context, project *model.Project, prompt bool) error {
	result, err := x.clients.GitHub().CreateRepository(ctx, model.NewCreateRepoInput(project))
	if err != nil {
		return goerr.Wrap(err, "failed to create remote repository")
	}

	logging.From(ctx).Debug("remote repository creation",
		slog.String("outcome", result.Outcome.String()),
		slog.Int("status", result.StatusCode),
	)

	switch result.Outcome {
	case model.RepoCreated:
		return nil

	case model.RepoAlreadyExists:
		msg := fmt.Sprintf("Remote github repo already exists at %s.git.", project.HTMLURL())
		if !prompt {
			return nil
		}

		question := msg + " This can be from a previously failed setup run or" +
			" because someone else already created the repository." +
			" Continue without creating (y) or abort (n)?"
		abort, err := x.clients.Prompter().ConfirmedDefault(ctx, question, types.AnswerNo)
		if err != nil {
			return err
		}
		if abort {
			return goerr.Wrap(types.ErrRemoteRepoExists, msg, goerr.V("repo", project.RepoName))
		}
		return nil

	default:
		fmt.Fprintf(x.stderr, "An error happened during git repo creation - %s\n", result.Message)
		if result.Err != nil {
			return result.Err
		}
		return goerr.Wrap(types.ErrUnexpectedStatus, "failed to create remote repository",
			goerr.V("status", result.StatusCode),
		)
	}
}
