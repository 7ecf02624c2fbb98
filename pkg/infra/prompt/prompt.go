package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/opus10/footing-hooks/pkg/domain/interfaces"
	"github.com/opus10/footing-hooks/pkg/domain/types"
)

// Prompter asks the operator questions on a terminal.
type Prompter struct {
	r      *bufio.Reader
	w      io.Writer
	suffix string
}

var _ interfaces.Prompter = (*Prompter)(nil)

var questionColor = color.New(color.FgHiWhite, color.Bold)

func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{
		r:      bufio.NewReader(r),
		w:      w,
		suffix: " ",
	}
}

func (x *Prompter) readLine() (string, error) {
	line, err := x.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", goerr.Wrap(types.ErrPromptClosed, "no answer on input")
		}
		return "", goerr.Wrap(err, "failed to read answer")
	}
	return strings.TrimSpace(line), nil
}

// ConfirmedDefault asks a yes/no question until it gets an answer. It returns
// true iff the answer equals def, so an empty answer is always true. Callers
// that need an explicit "yes" to go on pass AnswerYes; callers guarding an
// abort pass AnswerNo and abort on true.
func (x *Prompter) ConfirmedDefault(ctx context.Context, question string, def types.Answer) (bool, error) {
	var choices string
	switch def {
	case types.AnswerYes:
		choices = "[Y/n]"
	case types.AnswerNo:
		choices = "[y/N]"
	default:
		return false, goerr.Wrap(types.ErrInvalidOption, "default must be 'yes' or 'no'", goerr.V("default", def))
	}

	text := choices + x.suffix
	if question != "" {
		text = questionColor.Sprint(question) + " " + text
	}

	for {
		if err := ctx.Err(); err != nil {
			return false, goerr.Wrap(err, "prompt canceled")
		}

		fmt.Fprint(x.w, text)
		input, err := x.readLine()
		if err != nil {
			return false, err
		}

		if input == "" {
			return true, nil
		}
		if answer, ok := types.ParseAnswer(input); ok {
			return answer == def, nil
		}
	}
}

// Affirmed asks a question whose default is "yes" and returns true when the
// operator accepts it.
func (x *Prompter) Affirmed(ctx context.Context, question string) (bool, error) {
	return Affirmed(ctx, x, question)
}

// WaitForReturn prints message and blocks until a line is entered.
func (x *Prompter) WaitForReturn(ctx context.Context, message string) error {
	fmt.Fprint(x.w, questionColor.Sprint(message)+x.suffix)
	_, err := x.readLine()
	return err
}

// Affirmed is ConfirmedDefault with AnswerYes for any Prompter.
func Affirmed(ctx context.Context, p interfaces.Prompter, question string) (bool, error) {
	return p.ConfirmedDefault(ctx, question, types.AnswerYes)
}
