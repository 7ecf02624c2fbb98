package cli

import (
	"context"

	"github.com/opus10/footing-hooks/pkg/infra"
	"github.com/opus10/footing-hooks/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func validateCommand(x *CLI) *cli.Command {
	var (
		moduleName  string
		packageName string
	)

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Check module and package names before the project is rendered",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "module-name",
				Usage:       "Importable module name (letters, digits and underscores)",
				Sources:     cli.EnvVars("FOOTING_MODULE_NAME"),
				Destination: &moduleName,
			},
			&cli.StringFlag{
				Name:        "package-name",
				Usage:       "Package and repository name (letters, digits and hyphens)",
				Sources:     cli.EnvVars("FOOTING_REPO_NAME"),
				Destination: &packageName,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			uc := usecase.New(infra.New(), usecase.WithOutput(x.stdout, x.stderr))
			return uc.ValidateNames(ctx, moduleName, packageName)
		},
	}
}
