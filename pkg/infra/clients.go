package infra

import (
	"net/http"

	"github.com/opus10/footing-hooks/pkg/domain/interfaces"
)

type Clients struct {
	github    interfaces.GitHub
	circleCI  interfaces.CircleCI
	localRepo interfaces.LocalRepo
	prompter  interfaces.Prompter
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}
func (x *Clients) CircleCI() interfaces.CircleCI {
	return x.circleCI
}
func (x *Clients) LocalRepo() interfaces.LocalRepo {
	return x.localRepo
}
func (x *Clients) Prompter() interfaces.Prompter {
	return x.prompter
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithCircleCI(client interfaces.CircleCI) Option {
	return func(x *Clients) {
		x.circleCI = client
	}
}

func WithLocalRepo(repo interfaces.LocalRepo) Option {
	return func(x *Clients) {
		x.localRepo = repo
	}
}

func WithPrompter(prompter interfaces.Prompter) Option {
	return func(x *Clients) {
		x.prompter = prompter
	}
}
