package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/opus10/footing-hooks/pkg/domain/model"
	"github.com/opus10/footing-hooks/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Project holds the parameters rendered by the template engine. Flag values
// override the plan file, which overrides the defaults.
type Project struct {
	repoName      string
	moduleName    string
	description   string
	org           string
	defaultBranch string
	planFile      string
}

func (x *Project) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "repo-name",
			Usage:       "Repository and package name",
			Category:    "Project",
			Destination: &x.repoName,
			Sources:     cli.EnvVars("FOOTING_REPO_NAME"),
		},
		&cli.StringFlag{
			Name:        "module-name",
			Usage:       "Importable module name",
			Category:    "Project",
			Destination: &x.moduleName,
			Sources:     cli.EnvVars("FOOTING_MODULE_NAME"),
		},
		&cli.StringFlag{
			Name:        "description",
			Usage:       "Short description of the repository",
			Category:    "Project",
			Destination: &x.description,
			Sources:     cli.EnvVars("FOOTING_SHORT_DESCRIPTION"),
		},
		&cli.StringFlag{
			Name:        "org",
			Usage:       "GitHub organization owning the repository (default: " + string(model.DefaultOrg) + ")",
			Category:    "Project",
			Destination: &x.org,
			Sources:     cli.EnvVars("FOOTING_GITHUB_ORG"),
		},
		&cli.StringFlag{
			Name:        "default-branch",
			Usage:       "Branch to push and protect (default: " + string(model.DefaultBranch) + ")",
			Category:    "Project",
			Destination: &x.defaultBranch,
			Sources:     cli.EnvVars("FOOTING_DEFAULT_BRANCH"),
		},
		&cli.StringFlag{
			Name:        "plan",
			Usage:       "Path to YAML plan file",
			Category:    "Project",
			Destination: &x.planFile,
			Sources:     cli.EnvVars("FOOTING_PLAN_FILE"),
		},
	}
}

// Build returns the project to provision.
func (x *Project) Build() (*model.Project, error) {
	if x.repoName == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "--repo-name is required")
	}
	if x.moduleName == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "--module-name is required")
	}

	project := model.NewProject(types.GitHubRepoName(x.repoName), x.moduleName, x.description)

	if x.planFile != "" {
		plan, err := LoadPlan(x.planFile)
		if err != nil {
			return nil, err
		}
		plan.Apply(project)
	}

	if x.org != "" {
		project.Org = types.GitHubOrg(x.org)
	}
	if x.defaultBranch != "" {
		project.DefaultBranch = types.BranchName(x.defaultBranch)
	}

	return project, nil
}

func (x Project) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("RepoName", x.repoName),
		slog.String("ModuleName", x.moduleName),
		slog.String("Org", x.org),
		slog.String("DefaultBranch", x.defaultBranch),
		slog.String("PlanFile", x.planFile),
	)
}
