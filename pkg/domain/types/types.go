package types

import (
	"strings"

	"github.com/google/uuid"
)

type RunID string

func NewRunID() RunID {
	return RunID(uuid.NewString())
}

// Phase is the lifecycle phase footing passes through the _FOOTING variable.
type Phase string

const (
	PhaseSetup  Phase = "setup"
	PhaseUpdate Phase = "update"
)

// Answer is the default answer of a yes/no prompt.
type Answer string

const (
	AnswerYes Answer = "yes"
	AnswerNo  Answer = "no"
)

func (x Answer) Valid() bool {
	return x == AnswerYes || x == AnswerNo
}

// ParseAnswer resolves operator input. Empty input is not an answer and
// yields ok=false.
func ParseAnswer(input string) (Answer, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return AnswerYes, true
	case "n", "no":
		return AnswerNo, true
	}
	return "", false
}
