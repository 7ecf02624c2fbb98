package config

import (
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/opus10/footing-hooks/pkg/domain/model"
	"github.com/opus10/footing-hooks/pkg/domain/types"
	"gopkg.in/yaml.v3"
)

// Plan is the optional YAML file that tunes how a project is provisioned.
// Unset fields keep the defaults.
//
//	org: Opus10
//	default_branch: main
//	initial_commit:
//	  - "Initial scaffolding [skip ci]"
//	  - "Type: trivial"
//	required_checks:
//	  - "ci/circleci: test"
//	circleci:
//	  build_prs_only: true
//	  build_fork_prs: false
//	  autocancel_builds: true
//	teams:
//	  - id: 1234
//	    name: core
//	    permission: push
type Plan struct {
	Org            types.GitHubOrg  `yaml:"org"`
	DefaultBranch  types.BranchName `yaml:"default_branch"`
	InitialCommit  []string         `yaml:"initial_commit"`
	DocsURL        string           `yaml:"docs_url"`
	RequiredChecks []string         `yaml:"required_checks"`
	CircleCI       *PlanCircleCI    `yaml:"circleci"`
	Teams          []model.Team     `yaml:"teams"`
}

// PlanCircleCI lists the CircleCI feature flags to change. Omitted flags keep
// their current value.
type PlanCircleCI struct {
	BuildPRsOnly     *bool `yaml:"build_prs_only"`
	BuildForkPRs     *bool `yaml:"build_fork_prs"`
	AutoCancelBuilds *bool `yaml:"autocancel_builds"`
}

func (x *PlanCircleCI) apply(flags *model.CircleCIFeatureFlags) {
	if x.BuildPRsOnly != nil {
		flags.BuildPRsOnly = *x.BuildPRsOnly
	}
	if x.BuildForkPRs != nil {
		flags.BuildForkPRs = *x.BuildForkPRs
	}
	if x.AutoCancelBuilds != nil {
		flags.AutoCancelBuilds = *x.AutoCancelBuilds
	}
}

func LoadPlan(path string) (*Plan, error) {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read plan file", goerr.V("path", path))
	}

	var plan Plan
	if err := yaml.Unmarshal(raw, &plan); err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "failed to parse plan file",
			goerr.V("path", path),
			goerr.V("error", err.Error()),
		)
	}

	return &plan, nil
}

// Apply overrides project fields with the values set in the plan.
func (x *Plan) Apply(project *model.Project) {
	if x.Org != "" {
		project.Org = x.Org
	}
	if x.DefaultBranch != "" {
		project.DefaultBranch = x.DefaultBranch
	}
	if len(x.InitialCommit) > 0 {
		project.InitialCommit = append([]string{}, x.InitialCommit...)
	}
	if x.DocsURL != "" {
		project.DocsURL = x.DocsURL
	}
	if x.RequiredChecks != nil {
		project.RequiredChecks = append([]string{}, x.RequiredChecks...)
	}
	if x.CircleCI != nil {
		settings := model.DefaultCircleCISettings()
		if project.CircleCISettings != nil {
			copied := *project.CircleCISettings
			settings = &copied
		}
		x.CircleCI.apply(&settings.FeatureFlags)
		project.CircleCISettings = settings
	}
	project.Teams = append(project.Teams, x.Teams...)
}
