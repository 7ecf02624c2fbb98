package usecase

import (
	"context"

	"github.com/opus10/footing-hooks/pkg/domain/model"
	"github.com/opus10/footing-hooks/pkg/utils/logging"
)

// ValidateNames checks the module and package identifiers before any file is
// rendered. The module name is checked first.
func (x *UseCase) ValidateNames(ctx context.Context, moduleName, packageName string) error {
	if err := model.ValidateModuleName(moduleName); err != nil {
		return err
	}
	if err := model.ValidatePackageName(packageName); err != nil {
		return err
	}

	logging.From(ctx).Debug("names are valid", "module", moduleName, "package", packageName)
	return nil
}
