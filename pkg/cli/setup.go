package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/opus10/footing-hooks/pkg/cli/config"
	"github.com/opus10/footing-hooks/pkg/domain/model"
	"github.com/opus10/footing-hooks/pkg/domain/types"
	"github.com/opus10/footing-hooks/pkg/infra"
	"github.com/opus10/footing-hooks/pkg/infra/git"
	"github.com/opus10/footing-hooks/pkg/infra/prompt"
	"github.com/opus10/footing-hooks/pkg/usecase"
	"github.com/opus10/footing-hooks/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

const footingGuidance = "This template can only be used with footing for project spin up." +
	" Consult the footing docs at https://github.com/Opus10/footing"

func setupCommand(x *CLI) *cli.Command {
	var (
		phase   string
		dir     string
		gitPath string

		project  config.Project
		github   config.GitHub
		circleCI config.CircleCI
		sentry   config.Sentry
	)

	setupFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "phase",
			Usage:       "Lifecycle phase set by footing; setup runs only in the setup phase",
			Sources:     cli.EnvVars("_FOOTING"),
			Destination: &phase,
		},
		&cli.StringFlag{
			Name:        "dir",
			Aliases:     []string{"d"},
			Usage:       "Path to the rendered project",
			Value:       ".",
			Destination: &dir,
		},
		&cli.StringFlag{
			Name:        "git-path",
			Usage:       "Path to git binary",
			Value:       "git",
			Sources:     cli.EnvVars("FOOTING_GIT_PATH"),
			Destination: &gitPath,
		},
	}

	return &cli.Command{
		Name:  "setup",
		Usage: "Create and configure the remote repository of a rendered project",
		Flags: slice.Flatten(
			setupFlags,
			project.Flags(),
			github.Flags(),
			circleCI.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			switch types.Phase(phase) {
			case "":
				return goerr.Wrap(types.ErrMissingPhase, footingGuidance)
			case types.PhaseSetup:
			default:
				logging.From(ctx).Info("not in setup phase, skip", slog.String("phase", phase))
				return nil
			}

			logging.From(ctx).Debug("starting setup",
				slog.String("Dir", dir),
				slog.Any("Project", project),
				slog.Any("GitHub", github),
				slog.Any("CircleCI", circleCI),
				slog.Any("Sentry", sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			p, err := project.Build()
			if err != nil {
				return err
			}

			creds := &model.Credentials{
				GitHubToken:   github.Token(),
				GitHubApp:     github.App(),
				CircleCIToken: circleCI.Token(),
			}

			runner := x.gitRunner
			if runner == nil {
				runner = git.NewExecRunner(x.stdout, x.stderr)
			}

			infraOptions := []infra.Option{
				infra.WithLocalRepo(git.New(dir, git.WithGitBinary(gitPath), git.WithRunner(runner))),
				infra.WithPrompter(prompt.New(x.stdin, x.stdout)),
			}

			ghClient, err := github.NewClient()
			if err != nil {
				return err
			}
			if ghClient != nil {
				infraOptions = append(infraOptions, infra.WithGitHub(ghClient))
			}

			ciClient, err := circleCI.NewClient()
			if err != nil {
				return err
			}
			if ciClient != nil {
				infraOptions = append(infraOptions, infra.WithCircleCI(ciClient))
			}

			uc := usecase.New(infra.New(infraOptions...), usecase.WithOutput(x.stdout, x.stderr))
			return uc.SetupProject(ctx, p, creds)
		},
	}
}
