package interfaces

import (
	"context"

	"github.com/opus10/footing-hooks/pkg/domain/model"
)

type UseCase interface {
	ValidateNames(ctx context.Context, moduleName, packageName string) error
	SetupProject(ctx context.Context, project *model.Project, creds *model.Credentials) error
}
