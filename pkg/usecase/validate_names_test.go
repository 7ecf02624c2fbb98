package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/opus10/footing-hooks/pkg/domain/types"
	"github.com/opus10/footing-hooks/pkg/infra"
	"github.com/opus10/footing-hooks/pkg/usecase"
)

func TestValidateNames(t *testing.T) {
	uc := usecase.New(infra.New())
	ctx := context.Background()

	t.Run("valid names", func(t *testing.T) {
		gt.NoError(t, uc.ValidateNames(ctx, "my_app", "my-app"))
	})

	t.Run("invalid module name is reported first", func(t *testing.T) {
		err := uc.ValidateNames(ctx, "my-app", "my_app")
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
		gt.S(t, err.Error()).Contains("my-app is not a valid module name!")
	})

	t.Run("package name with underscore", func(t *testing.T) {
		err := uc.ValidateNames(ctx, "my_app", "my_pkg")
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
		gt.S(t, err.Error()).Contains("my_pkg is not a valid package name!")
	})
}
