// Package terminal runs the quiz as an interactive console session.
package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ironwater12/japanese-learning-app/internal/domain/entities"
	"github.com/ironwater12/japanese-learning-app/internal/service"
)

type QuizService interface {
	Start(ctx context.Context, id string) (*service.View, error)
	Submit(ctx context.Context, id string, sub service.Submission) (*service.View, error)
	Next(ctx context.Context, id string) (*service.View, error)
	SwitchVocabulary(ctx context.Context, id string, reversed, words bool) (*service.View, error)
	ToggleFreeText(ctx context.Context, id string, enabled bool) (*service.View, error)
	ToggleNoMistake(ctx context.Context, id string, enabled bool) (*service.View, error)
	ResetScore(ctx context.Context, id string) (*service.View, error)
	End(ctx context.Context, id string) error
}

const helpText = `Commands:
  1-N         pick an option
  <text>      answer in free-text mode
  (empty)     next question once answered
  :free       toggle typed answers
  :words      toggle full words
  :reverse    toggle language direction
  :nomistake  toggle no-mistake mode
  :reset      reset the score
  :next       skip to the next question
  :quit       leave`

// Player drives one quiz session from an input stream.
type Player struct {
	quiz QuizService
	in   *bufio.Scanner
	out  io.Writer
}

func NewPlayer(quiz QuizService, in io.Reader, out io.Writer) *Player {
	return &Player{
		quiz: quiz,
		in:   bufio.NewScanner(in),
		out:  out,
	}
}

// Play runs until the input ends, ":quit" is typed or ctx is done.
func (p *Player) Play(ctx context.Context) error {
	view, err := p.quiz.Start(ctx, "")
	if err != nil {
		return err
	}
	defer func() { _ = p.quiz.End(context.WithoutCancel(ctx), view.SessionID) }()

	fmt.Fprintln(p.out, "🏯 Japanese Quiz 🏯  (:help for commands)")
	p.printQuestion(view)

	for p.in.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(p.in.Text())
		if line == ":quit" {
			break
		}

		next, err := p.handleLine(ctx, view, line)
		if err != nil {
			return err
		}
		if next != nil {
			view = next
		}
	}

	fmt.Fprintln(p.out, view.ScoreText)
	return p.in.Err()
}

func (p *Player) handleLine(ctx context.Context, view *service.View, line string) (*service.View, error) {
	id := view.SessionID
	modes := view.Modes

	var (
		next *service.View
		err  error
	)

	switch line {
	case ":help":
		fmt.Fprintln(p.out, helpText)
		return nil, nil
	case ":free":
		next, err = p.quiz.ToggleFreeText(ctx, id, !modes.FreeText)
		if err == nil && next.Phase == entities.PhaseAwaitingAnswer {
			p.printQuestion(next)
		}
		return next, err
	case ":words":
		next, err = p.quiz.SwitchVocabulary(ctx, id, modes.Reversed, !modes.Words)
	case ":reverse":
		next, err = p.quiz.SwitchVocabulary(ctx, id, !modes.Reversed, modes.Words)
	case ":nomistake":
		next, err = p.quiz.ToggleNoMistake(ctx, id, !modes.NoMistake)
		if err == nil {
			p.printScore(next)
		}
		return next, err
	case ":reset":
		next, err = p.quiz.ResetScore(ctx, id)
		if err == nil {
			p.printScore(next)
		}
		return next, err
	case ":next":
		next, err = p.quiz.Next(ctx, id)
	default:
		if view.Phase == entities.PhaseAnswered && line == "" {
			next, err = p.quiz.Next(ctx, id)
			break
		}
		next, err = p.quiz.Submit(ctx, id, p.submission(view, line))
		if err == nil {
			p.printResult(next)
		}
		return next, err
	}

	if err != nil {
		return nil, err
	}
	p.printQuestion(next)
	return next, nil
}

// submission maps an input line to an option or free text.
// In option mode anything other than a valid option number is an empty pick.
func (p *Player) submission(view *service.View, line string) service.Submission {
	if view.ShowTextInput {
		return service.Submission{Text: line}
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > len(view.Options) {
		return service.Submission{}
	}
	return service.Submission{Option: view.Options[n-1]}
}

func (p *Player) printQuestion(v *service.View) {
	fmt.Fprintln(p.out)
	if v.Prompt != "" {
		fmt.Fprintln(p.out, v.Prompt)
	}
	fmt.Fprintf(p.out, "  %s\n", v.Term)
	if v.ShowOptions {
		for i, opt := range v.Options {
			fmt.Fprintf(p.out, "  %d) %s\n", i+1, opt)
		}
	}
	p.printScore(v)
}

func (p *Player) printResult(v *service.View) {
	fmt.Fprintln(p.out, v.Feedback.Message)
	if v.Phase == entities.PhaseAnswered {
		p.printScore(v)
		fmt.Fprintln(p.out, "(press Enter for the next question)")
	}
}

func (p *Player) printScore(v *service.View) {
	fmt.Fprintln(p.out, v.ScoreText)
	if v.MaxScoreVisible {
		fmt.Fprintln(p.out, v.MaxScoreText)
	}
}
