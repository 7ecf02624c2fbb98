package types

import "log/slog"

type (
	GitHubOrg           string
	GitHubRepoName      string
	GitHubTeamID        int64
	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubToken         string
	GitHubAppPrivateKey string
	CircleCIToken       string
	BranchName          string
	Permission          string
)

const (
	PermissionPull     Permission = "pull"
	PermissionTriage   Permission = "triage"
	PermissionPush     Permission = "push"
	PermissionMaintain Permission = "maintain"
	PermissionAdmin    Permission = "admin"
)

func (x Permission) Valid() bool {
	switch x {
	case PermissionPull, PermissionTriage, PermissionPush, PermissionMaintain, PermissionAdmin:
		return true
	}
	return false
}

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x CircleCIToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x CircleCIToken) String() string {
	return "***********"
}

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}
