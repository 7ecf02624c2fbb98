package git

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/m-mizutani/goerr/v2"
	"github.com/opus10/footing-hooks/pkg/domain/interfaces"
	"github.com/opus10/footing-hooks/pkg/domain/model"
	"github.com/opus10/footing-hooks/pkg/domain/types"
	"github.com/opus10/footing-hooks/pkg/utils/logging"
)

// Repo is the working copy the template was rendered into. Changes go
// through the git binary so that the operator's SSH setup is used for push;
// state is read with go-git.
type Repo struct {
	dir    string
	gitBin string
	runner Runner
}

var _ interfaces.LocalRepo = (*Repo)(nil)

type Option func(*Repo)

func WithGitBinary(path string) Option {
	return func(x *Repo) {
		x.gitBin = path
	}
}

func WithRunner(runner Runner) Option {
	return func(x *Repo) {
		x.runner = runner
	}
}

func New(dir string, options ...Option) *Repo {
	repo := &Repo{
		dir:    dir,
		gitBin: "git",
		runner: NewExecRunner(nil, nil),
	}
	for _, opt := range options {
		opt(repo)
	}
	return repo
}

func (x *Repo) State(ctx context.Context) (*model.LocalRepoState, error) {
	state := &model.LocalRepoState{Remotes: map[string]string{}}

	repo, err := gogit.PlainOpen(x.dir)
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		return state, nil
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open git repository", goerr.V("dir", x.dir))
	}
	state.Initialized = true

	if _, err := repo.Head(); err == nil {
		state.HasCommits = true
	} else if !errors.Is(err, plumbing.ErrReferenceNotFound) {
		return nil, goerr.Wrap(err, "failed to get HEAD", goerr.V("dir", x.dir))
	}

	remotes, err := repo.Remotes()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list remotes", goerr.V("dir", x.dir))
	}
	for _, remote := range remotes {
		cfg := remote.Config()
		if len(cfg.URLs) > 0 {
			state.Remotes[cfg.Name] = cfg.URLs[0]
		} else {
			state.Remotes[cfg.Name] = ""
		}
	}

	logging.From(ctx).Debug("local repository state",
		slog.Bool("initialized", state.Initialized),
		slog.Bool("has_commits", state.HasCommits),
		slog.Any("remotes", state.Remotes),
	)

	return state, nil
}

func (x *Repo) Init(ctx context.Context, branch types.BranchName) error {
	return x.git(ctx, "init", "-b", string(branch))
}

func (x *Repo) AddAll(ctx context.Context) error {
	return x.git(ctx, "add", ".")
}

// Commit records one commit; every message becomes its own paragraph.
func (x *Repo) Commit(ctx context.Context, messages []string) error {
	if len(messages) == 0 {
		return goerr.Wrap(types.ErrInvalidOption, "commit message is empty")
	}

	args := []string{"commit"}
	for _, msg := range messages {
		args = append(args, "-m", msg)
	}
	return x.git(ctx, args...)
}

func (x *Repo) AddRemote(ctx context.Context, name, url string) error {
	return x.git(ctx, "remote", "add", name, url)
}

func (x *Repo) Push(ctx context.Context, remote string, branch types.BranchName) error {
	return x.git(ctx, "push", remote, string(branch))
}

func (x *Repo) git(ctx context.Context, args ...string) error {
	logging.From(ctx).Debug("running git", slog.String("args", strings.Join(args, " ")))

	code, err := x.runner.Run(ctx, x.dir, x.gitBin, args...)
	if err != nil {
		return goerr.Wrap(err, "failed to run git", goerr.V("args", args))
	}
	if code != 0 {
		return goerr.New("git exited with non-zero status",
			goerr.V("args", args),
			goerr.V("exit_code", code),
		)
	}
	return nil
}
