package types

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrCredentials is returned when a required access token is not configured.
	ErrCredentials = goerr.New("credentials error")
	// ErrRemoteRepoExists is returned when the remote repository already exists and the operator chose to abort.
	ErrRemoteRepoExists = goerr.New("remote repository already exists")
	// ErrGitHubPush is returned when the initial push failed and the operator chose to abort.
	ErrGitHubPush = goerr.New("failed to push initial repository")
	// ErrSetupAborted is returned when the operator rejects the project parameters.
	ErrSetupAborted = goerr.New("setup aborted")
	// ErrMissingPhase is returned when the command is not invoked by footing.
	ErrMissingPhase = goerr.New("lifecycle phase is not set")

	ErrValidationFailed = goerr.New("validation failed")
	ErrInvalidOption    = goerr.New("invalid option")
	ErrPromptClosed     = goerr.New("prompt input closed")
	ErrUnexpectedStatus = goerr.New("unexpected status code")
)
