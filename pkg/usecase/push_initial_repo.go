package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/opus10/footing-hooks/pkg/domain/model"
	"github.com/opus10/footing-hooks/pkg/domain/types"
	"github.com/opus10/footing-hooks/pkg/utils/logging"
)

const originRemote = "origin"

// PushInitialRepo commits the rendered tree and pushes it to the remote
// repository. Steps already done by an earlier run are skipped. A failed push
// is accepted silently without prompt; with prompt the operator chooses
// between continuing and ErrGitHubPush.
func (x *UseCase) PushInitialRepo(ctx context.Context, project *model.Project, messages []string, prompt bool) error {
	repo := x.clients.LocalRepo()
	logger := logging.From(ctx)

	state, err := repo.State(ctx)
	if err != nil {
		return err
	}

	if !state.Initialized {
		if err := repo.Init(ctx, project.DefaultBranch); err != nil {
			return goerr.Wrap(err, "failed to initialize local repository")
		}
	}

	if !state.HasCommits {
		if err := repo.AddAll(ctx); err != nil {
			return goerr.Wrap(err, "failed to stage files")
		}
		if err := repo.Commit(ctx, messages); err != nil {
			return goerr.Wrap(err, "failed to create initial commit")
		}
	} else {
		logger.Info("local repository already has commits, skip initial commit")
	}

	remoteURL := project.RemoteURL()
	if current, ok := state.Remotes[originRemote]; !ok {
		if err := repo.AddRemote(ctx, originRemote, remoteURL); err != nil {
			return goerr.Wrap(err, "failed to add remote", goerr.V("url", remoteURL))
		}
	} else if current != remoteURL {
		logger.Info("origin points to another URL, keep it",
			slog.String("origin", current),
			slog.String("expected", remoteURL),
		)
	}

	pushErr := repo.Push(ctx, originRemote, project.DefaultBranch)
	if pushErr == nil {
		return nil
	}
	logger.Info("failed to push initial repository", slog.Any("error", pushErr))

	if !prompt {
		return nil
	}

	msg := "There was an error when pushing the initial repository."
	question := msg + " This could be because the initial repository has already" +
		" been set up or because the repository previously existed." +
		" Continue without pushing (y) or abort (n)?"
	abort, err := x.clients.Prompter().ConfirmedDefault(ctx, question, types.AnswerNo)
	if err != nil {
		return err
	}
	if abort {
		return goerr.Wrap(types.ErrGitHubPush, msg, goerr.V("cause", pushErr.Error()))
	}
	return nil
}
