package usecase

import (
	"context"

	"github.com/opus10/footing-hooks/pkg/domain/model"
	"github.com/opus10/footing-hooks/pkg/domain/types"
)

func (x *UseCase) SetupBranchProtection(ctx context.Context, project *model.Project, branch types.BranchName, protection *model.BranchProtection) error {
	return x.clients.GitHub().UpdateBranchProtection(ctx, project.Org, project.RepoName, branch, protection)
}
