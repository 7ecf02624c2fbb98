package model

import (
	"fmt"
	"regexp"

	"github.com/m-mizutani/goerr/v2"
	"github.com/opus10/footing-hooks/pkg/domain/types"
)

const (
	DefaultOrg           types.GitHubOrg  = "Opus10"
	DefaultBranch        types.BranchName = "master"
	DefaultDocsURL                        = "https://github.com/Opus10/public-django-app-template#readthedocs-setup"
	DefaultGitHubHost                     = "github.com"
	CommitTitleSkipCI                     = "Initial scaffolding [skip ci]"
	CommitTrailerTrivial                  = "Type: trivial"
)

var (
	ptnModuleName  = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]+$`)
	ptnPackageName = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9-]+$`)
)

// ValidateModuleName checks an import-style identifier: a letter followed by
// at least one letter, digit or underscore.
func ValidateModuleName(name string) error {
	if !ptnModuleName.MatchString(name) {
		return goerr.Wrap(types.ErrValidationFailed,
			fmt.Sprintf("%s is not a valid module name!", name),
			goerr.V("module_name", name),
		)
	}
	return nil
}

// ValidatePackageName checks a distribution-style identifier: a letter
// followed by at least one letter, digit or hyphen.
func ValidatePackageName(name string) error {
	if !ptnPackageName.MatchString(name) {
		return goerr.Wrap(types.ErrValidationFailed,
			fmt.Sprintf("%s is not a valid package name! Note: we require package names to use hyphens instead of underscores", name),
			goerr.V("package_name", name),
		)
	}
	return nil
}

// Project holds the invocation parameters rendered by the template engine.
type Project struct {
	Org           types.GitHubOrg
	RepoName      types.GitHubRepoName
	ModuleName    string
	Description   string
	DefaultBranch types.BranchName
	InitialCommit []string
	DocsURL       string
	Teams         []Team

	RequiredChecks   []string
	CircleCISettings *CircleCISettings
}

// NewProject returns a Project with defaults applied for the organization,
// branch, commit message and documentation URL.
func NewProject(repoName types.GitHubRepoName, moduleName, description string) *Project {
	return &Project{
		Org:           DefaultOrg,
		RepoName:      repoName,
		ModuleName:    moduleName,
		Description:   description,
		DefaultBranch: DefaultBranch,
		InitialCommit: []string{CommitTitleSkipCI, CommitTrailerTrivial},
		DocsURL:       DefaultDocsURL,

		RequiredChecks:   append([]string{}, DefaultRequiredChecks...),
		CircleCISettings: DefaultCircleCISettings(),
	}
}

func (x *Project) Validate() error {
	if x.Org == "" {
		return goerr.Wrap(types.ErrInvalidOption, "organization is empty")
	}
	if x.RepoName == "" {
		return goerr.Wrap(types.ErrInvalidOption, "repository name is empty")
	}
	if x.DefaultBranch == "" {
		return goerr.Wrap(types.ErrInvalidOption, "default branch is empty")
	}
	if len(x.InitialCommit) == 0 {
		return goerr.Wrap(types.ErrInvalidOption, "initial commit message is empty")
	}
	if err := ValidatePackageName(string(x.RepoName)); err != nil {
		return err
	}
	if err := ValidateModuleName(x.ModuleName); err != nil {
		return err
	}
	for _, team := range x.Teams {
		if err := team.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// HTMLURL is the browser URL of the remote repository.
func (x *Project) HTMLURL() string {
	return fmt.Sprintf("https://%s/%s/%s", DefaultGitHubHost, x.Org, x.RepoName)
}

// RemoteURL is the SSH push URL of the remote repository.
func (x *Project) RemoteURL() string {
	return fmt.Sprintf("git@%s:%s/%s.git", DefaultGitHubHost, x.Org, x.RepoName)
}

// Team is a GitHub team granted access to the new repository.
type Team struct {
	ID         types.GitHubTeamID `yaml:"id"`
	Name       string             `yaml:"name"`
	Permission types.Permission   `yaml:"permission"`
}

func (x Team) Validate() error {
	if x.ID == 0 {
		return goerr.Wrap(types.ErrInvalidOption, "team ID is empty", goerr.V("team", x.Name))
	}
	if !x.Permission.Valid() {
		return goerr.Wrap(types.ErrInvalidOption, "invalid team permission",
			goerr.V("team", x.Name),
			goerr.V("permission", x.Permission),
		)
	}
	return nil
}
