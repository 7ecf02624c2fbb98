package usecase

import (
	"io"
	"os"

	"github.com/opus10/footing-hooks/pkg/domain/interfaces"
	"github.com/opus10/footing-hooks/pkg/infra"
)

type UseCase struct {
	clients *infra.Clients
	stdout  io.Writer
	stderr  io.Writer
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithOutput sets where operator-facing messages are written.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(x *UseCase) {
		x.stdout = stdout
		x.stderr = stderr
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients: clients,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
	for _, opt := range options {
		opt(uc)
	}
	return uc
}
