package model

// CircleCISettings is the body of the project settings update.
type CircleCISettings struct {
	FeatureFlags CircleCIFeatureFlags `json:"feature_flags"`
}

type CircleCIFeatureFlags struct {
	BuildPRsOnly     bool `json:"build-prs-only"`
	BuildForkPRs     bool `json:"build-fork-prs"`
	AutoCancelBuilds bool `json:"autocancel-builds"`
}

// DefaultCircleCISettings builds pull requests only, including forks, and
// cancels redundant builds.
func DefaultCircleCISettings() *CircleCISettings {
	return &CircleCISettings{
		FeatureFlags: CircleCIFeatureFlags{
			BuildPRsOnly:     true,
			BuildForkPRs:     true,
			AutoCancelBuilds: true,
		},
	}
}
