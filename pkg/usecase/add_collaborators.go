package usecase

import (
	"context"
	"fmt"

	"github.com/opus10/footing-hooks/pkg/domain/model"
	"github.com/opus10/footing-hooks/pkg/infra/prompt"
)

// AddCollaborators grants a team access to the repository. It returns false
// when the operator declined and no grant was sent.
func (x *UseCase) AddCollaborators(ctx context.Context, project *model.Project, team model.Team, withPrompt bool) (bool, error) {
	if withPrompt {
		question := fmt.Sprintf(`Add %s access for the "%s" team on %s (if not, permissions will need to be configured later)?`,
			team.Permission, team.Name, project.RepoName)
		ok, err := prompt.Affirmed(ctx, x.clients.Prompter(), question)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	if err := x.clients.GitHub().AddTeamRepository(ctx, project.Org, project.RepoName, team); err != nil {
		return false, err
	}
	return true, nil
}
