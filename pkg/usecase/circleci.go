package usecase

import (
	"context"

	"github.com/opus10/footing-hooks/pkg/domain/model"
)

func (x *UseCase) FollowCircleCIProject(ctx context.Context, project *model.Project) error {
	return x.clients.CircleCI().Follow(ctx, project.Org, project.RepoName)
}

// ConfigureCircleCIProject applies project settings, DefaultCircleCISettings
// when the project has none.
func (x *UseCase) ConfigureCircleCIProject(ctx context.Context, project *model.Project) error {
	settings := project.CircleCISettings
	if settings == nil {
		settings = model.DefaultCircleCISettings()
	}
	return x.clients.CircleCI().UpdateSettings(ctx, project.Org, project.RepoName, settings)
}
