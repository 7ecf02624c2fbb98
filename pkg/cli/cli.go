package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/opus10/footing-hooks/pkg/domain/types"
	"github.com/opus10/footing-hooks/pkg/infra/git"
	"github.com/opus10/footing-hooks/pkg/utils/errutil"
	"github.com/opus10/footing-hooks/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// ConfigureLogging is exported for testing purposes
var ConfigureLogging = logging.Configure

type CLI struct {
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
	gitRunner git.Runner
}

type Option func(*CLI)

func WithStdin(r io.Reader) Option {
	return func(x *CLI) {
		x.stdin = r
	}
}

func WithStdout(w io.Writer) Option {
	return func(x *CLI) {
		x.stdout = w
	}
}

func WithStderr(w io.Writer) Option {
	return func(x *CLI) {
		x.stderr = w
	}
}

// WithGitRunner replaces the runner executing git commands.
func WithGitRunner(runner git.Runner) Option {
	return func(x *CLI) {
		x.gitRunner = runner
	}
}

func New(options ...Option) *CLI {
	x := &CLI{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}

func (x *CLI) Run(argv []string) error {
	var (
		logLevel  string
		logFormat string
		logOutput string
	)
	runCtx := context.Background()

	app := &cli.Command{
		Name:      "footing-hooks",
		Usage:     "Validate and provision projects rendered by footing",
		Reader:    x.stdin,
		Writer:    x.stdout,
		ErrWriter: x.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Log level [debug|info|warn|error]",
				Aliases:     []string{"l"},
				Sources:     cli.EnvVars("FOOTING_LOG_LEVEL"),
				Destination: &logLevel,
				Value:       "warn",
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "Log format [text|json]",
				Aliases:     []string{"f"},
				Sources:     cli.EnvVars("FOOTING_LOG_FORMAT"),
				Destination: &logFormat,
				Value:       "text",
			},
			&cli.StringFlag{
				Name:        "log-output",
				Usage:       "Log output [-|stdout|stderr|<file>]",
				Aliases:     []string{"o"},
				Sources:     cli.EnvVars("FOOTING_LOG_OUTPUT"),
				Destination: &logOutput,
				Value:       "stderr",
			},
		},
		Commands: []*cli.Command{
			validateCommand(x),
			setupCommand(x),
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := ConfigureLogging(logFormat, logLevel, logOutput); err != nil {
				return ctx, err
			}
			runCtx = logging.WithRun(ctx)
			return runCtx, nil
		},
	}

	if err := app.Run(runCtx, argv); err != nil {
		x.report(runCtx, err)
		return err
	}

	return nil
}

// operatorErrors are expected outcomes of a run. Their message is meant for
// the operator and is printed as is, without an error report.
var operatorErrors = []error{
	types.ErrValidationFailed,
	types.ErrMissingPhase,
	types.ErrSetupAborted,
	types.ErrCredentials,
	types.ErrRemoteRepoExists,
	types.ErrGitHubPush,
}

func (x *CLI) report(ctx context.Context, err error) {
	for _, sentinel := range operatorErrors {
		if !errors.Is(err, sentinel) {
			continue
		}

		msg := operatorMessage(err, sentinel)
		if errors.Is(err, types.ErrValidationFailed) {
			msg = "ERROR: " + msg
		}
		fmt.Fprintln(x.stdout, msg)
		logging.From(ctx).Info("run stopped", "error", err)
		return
	}

	fmt.Fprintln(x.stderr, "ERROR: "+err.Error())
	errutil.HandleError(ctx, "fatal error", err)
}

// operatorMessage drops the sentinel text that goerr.Wrap appends.
func operatorMessage(err, sentinel error) string {
	return strings.TrimSuffix(err.Error(), ": "+sentinel.Error())
}
