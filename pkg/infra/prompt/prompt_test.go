package prompt_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/m-mizutani/gt"
	"github.com/opus10/footing-hooks/pkg/domain/types"
	"github.com/opus10/footing-hooks/pkg/infra/prompt"
)

func init() {
	color.NoColor = true
}

func TestConfirmedDefault(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		title  string
		input  string
		def    types.Answer
		expect bool
	}{
		{"empty input with default yes", "\n", types.AnswerYes, true},
		{"empty input with default no", "\n", types.AnswerNo, true},
		{"y with default no", "y\n", types.AnswerNo, false},
		{"n with default no", "n\n", types.AnswerNo, true},
		{"yes with default yes", "yes\n", types.AnswerYes, true},
		{"NO with default yes", "NO\n", types.AnswerYes, false},
		{"Y with default yes", "Y\n", types.AnswerYes, true},
		{"whitespace only counts as empty", "   \n", types.AnswerNo, true},
		{"last line without newline", "n", types.AnswerNo, true},
	}

	for _, tc := range testCases {
		t.Run(tc.title, func(t *testing.T) {
			var out bytes.Buffer
			p := prompt.New(strings.NewReader(tc.input), &out)
			ok := gt.R1(p.ConfirmedDefault(ctx, "Continue?", tc.def)).NoError(t)
			gt.V(t, ok).Equal(tc.expect)
		})
	}
}

func TestConfirmedDefaultRendering(t *testing.T) {
	ctx := context.Background()

	t.Run("default yes", func(t *testing.T) {
		var out bytes.Buffer
		p := prompt.New(strings.NewReader("\n"), &out)
		gt.R1(p.ConfirmedDefault(ctx, "Continue?", types.AnswerYes)).NoError(t)
		gt.V(t, out.String()).Equal("Continue? [Y/n] ")
	})

	t.Run("default no", func(t *testing.T) {
		var out bytes.Buffer
		p := prompt.New(strings.NewReader("\n"), &out)
		gt.R1(p.ConfirmedDefault(ctx, "Continue?", types.AnswerNo)).NoError(t)
		gt.V(t, out.String()).Equal("Continue? [y/N] ")
	})

	t.Run("empty question", func(t *testing.T) {
		var out bytes.Buffer
		p := prompt.New(strings.NewReader("\n"), &out)
		gt.R1(p.ConfirmedDefault(ctx, "", types.AnswerNo)).NoError(t)
		gt.V(t, out.String()).Equal("[y/N] ")
	})
}

func TestConfirmedDefaultReprompts(t *testing.T) {
	var out bytes.Buffer
	p := prompt.New(strings.NewReader("maybe\nsure\nn\n"), &out)

	ok := gt.R1(p.ConfirmedDefault(context.Background(), "Abort?", types.AnswerNo)).NoError(t)
	gt.V(t, ok).Equal(true)
	gt.V(t, strings.Count(out.String(), "Abort? [y/N] ")).Equal(3)
}

func TestConfirmedDefaultErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("closed input never guesses", func(t *testing.T) {
		var out bytes.Buffer
		p := prompt.New(strings.NewReader("what\n"), &out)
		_, err := p.ConfirmedDefault(ctx, "Abort?", types.AnswerNo)
		gt.True(t, errors.Is(err, types.ErrPromptClosed))
	})

	t.Run("invalid default", func(t *testing.T) {
		p := prompt.New(strings.NewReader("y\n"), &bytes.Buffer{})
		_, err := p.ConfirmedDefault(ctx, "Abort?", types.Answer("maybe"))
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		p := prompt.New(strings.NewReader("y\n"), &bytes.Buffer{})
		_, err := p.ConfirmedDefault(ctx, "Abort?", types.AnswerNo)
		gt.Error(t, err)
	})
}

func TestAffirmed(t *testing.T) {
	ctx := context.Background()

	t.Run("empty accepts", func(t *testing.T) {
		p := prompt.New(strings.NewReader("\n"), &bytes.Buffer{})
		gt.V(t, gt.R1(p.Affirmed(ctx, "Add team?")).NoError(t)).Equal(true)
	})

	t.Run("no declines", func(t *testing.T) {
		p := prompt.New(strings.NewReader("no\n"), &bytes.Buffer{})
		gt.V(t, gt.R1(p.Affirmed(ctx, "Add team?")).NoError(t)).Equal(false)
	})
}

func TestWaitForReturn(t *testing.T) {
	var out bytes.Buffer
	p := prompt.New(strings.NewReader("\nn\n"), &out)

	gt.NoError(t, p.WaitForReturn(context.Background(), "Hit return."))
	gt.V(t, out.String()).Equal("Hit return. ")

	// the next prompt reads the following line
	ok := gt.R1(p.ConfirmedDefault(context.Background(), "", types.AnswerNo)).NoError(t)
	gt.V(t, ok).Equal(true)

	t.Run("closed input is an error", func(t *testing.T) {
		p := prompt.New(strings.NewReader(""), &bytes.Buffer{})
		gt.True(t, errors.Is(p.WaitForReturn(context.Background(), "Hit return."), types.ErrPromptClosed))
	})
}
