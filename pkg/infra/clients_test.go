package infra_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/opus10/footing-hooks/pkg/domain/mock"
	"github.com/opus10/footing-hooks/pkg/infra"
)

func TestNew(t *testing.T) {
	t.Run("create new clients without options", func(t *testing.T) {
		clients := infra.New()
		gt.V(t, clients.GitHub()).Equal(nil)
		gt.V(t, clients.CircleCI()).Equal(nil)
		gt.V(t, clients.LocalRepo()).Equal(nil)
		gt.V(t, clients.Prompter()).Equal(nil)
	})

	t.Run("WithGitHub option sets GitHub client", func(t *testing.T) {
		mockGH := &mock.GitHubMock{}
		clients := infra.New(infra.WithGitHub(mockGH))
		gt.V(t, clients.GitHub()).Equal(mockGH)
	})

	t.Run("WithCircleCI option sets CircleCI client", func(t *testing.T) {
		mockCI := &mock.CircleCIMock{}
		clients := infra.New(infra.WithCircleCI(mockCI))
		gt.V(t, clients.CircleCI()).Equal(mockCI)
	})

	t.Run("multiple options can be combined", func(t *testing.T) {
		mockGH := &mock.GitHubMock{}
		mockRepo := &mock.LocalRepoMock{}
		mockPrompt := &mock.PrompterMock{}

		clients := infra.New(
			infra.WithGitHub(mockGH),
			infra.WithLocalRepo(mockRepo),
			infra.WithPrompter(mockPrompt),
		)

		gt.V(t, clients.GitHub()).Equal(mockGH)
		gt.V(t, clients.LocalRepo()).Equal(mockRepo)
		gt.V(t, clients.Prompter()).Equal(mockPrompt)
		gt.V(t, clients.CircleCI()).Equal(nil)
	})
}
