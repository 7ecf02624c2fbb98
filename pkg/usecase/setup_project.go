package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/opus10/footing-hooks/pkg/domain/model"
	"github.com/opus10/footing-hooks/pkg/domain/types"
	"github.com/opus10/footing-hooks/pkg/infra/prompt"
	"github.com/opus10/footing-hooks/pkg/utils/logging"
)

// SetupProject provisions the remote side of a freshly rendered project:
// GitHub repository, initial push, branch protection, team access and
// CircleCI. Every step runs only after the previous one succeeded.
func (x *UseCase) SetupProject(ctx context.Context, project *model.Project, creds *model.Credentials) error {
	if err := project.Validate(); err != nil {
		return err
	}
	logger := logging.From(ctx)

	question := fmt.Sprintf(`Your %s Github repo name will be "%s" and packages will be installed with "pip install %s".`+
		` Imports will happen as "import %s".`+
		` It is very difficult to change these names after the project is started, so please be sure these are the names you want!`+
		` Continue (y) or change parameters (n)?`,
		project.Org, project.RepoName, project.RepoName, project.ModuleName)
	ok, err := prompt.Affirmed(ctx, x.clients.Prompter(), question)
	if err != nil {
		return err
	}
	if !ok {
		return goerr.Wrap(types.ErrSetupAborted, "Setup aborted. Please try again with new parameters.")
	}

	x.println("Checking credentials.")
	if err := creds.Check(); err != nil {
		return err
	}
	logger.Debug("credentials are available", slog.Any("credentials", creds))

	x.println("Creating the github repository at " + project.HTMLURL())
	if err := x.CreateRemoteRepo(ctx, project, true); err != nil {
		return err
	}

	x.println(fmt.Sprintf("Creating initial repository and pushing to %s.", project.DefaultBranch))
	if err := x.PushInitialRepo(ctx, project, project.InitialCommit, true); err != nil {
		return err
	}

	x.println("Setting up default branch protection.")
	protection := model.DefaultBranchProtection(project.RequiredChecks)
	if err := x.SetupBranchProtection(ctx, project, project.DefaultBranch, protection); err != nil {
		return err
	}

	for _, team := range project.Teams {
		added, err := x.AddCollaborators(ctx, project, team, true)
		if err != nil {
			return err
		}
		logger.Info("team access", slog.String("team", team.Name), slog.Bool("added", added))
	}

	x.println("Following the project on CircleCI.")
	if err := x.FollowCircleCIProject(ctx, project); err != nil {
		return err
	}

	x.println("Configuring CircleCI project settings.")
	if err := x.ConfigureCircleCIProject(ctx, project); err != nil {
		return err
	}

	finalStep := fmt.Sprintf("Final step! Go to %s and read the instructions for ReadTheDocs integration."+
		` If you bypass this step, your docs will not build properly. Hit "return" after you have done this.`,
		project.DocsURL)
	if err := x.clients.Prompter().WaitForReturn(ctx, finalStep); err != nil {
		return err
	}

	x.println(fmt.Sprintf(`Setup complete! cd into "%s", make a new branch, and type "make docker-setup" to set up your development environment.`,
		project.RepoName))
	return nil
}

func (x *UseCase) println(msg string) {
	fmt.Fprintln(x.stdout, msg)
}
