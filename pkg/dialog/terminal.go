package dialog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"

	"tableflip.dev/planner/pkg/logging"
)

// Terminal asks on a terminal with promptui. Each prompt runs on its own
// goroutine; a prompt abandoned through its context keeps reading until the
// user answers.
type Terminal struct {
	In  io.Reader
	Out io.Writer
	Log *slog.Logger
}

// NewTerminal prompts on stdin and stderr.
func NewTerminal() *Terminal {
	return &Terminal{In: os.Stdin, Out: os.Stderr, Log: logging.For(logging.ComponentDialog)}
}

// Interactive reports whether f is a terminal a person can answer on.
func Interactive(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Prompt implements Prompter.
func (t *Terminal) Prompt(ctx context.Context, r Request) <-chan Response {
	out := make(chan Response, 1)
	go func() {
		defer close(out)
		if ctx.Err() != nil {
			out <- Response{Err: ctx.Err()}
			return
		}
		res := t.run(r)
		if res.Err != nil && t.Log != nil {
			t.Log.Debug("prompt ended", "label", r.Label, "error", res.Err)
		}
		out <- res
	}()
	return out
}

func (t *Terminal) run(r Request) Response {
	in := io.NopCloser(t.In)
	w := nopWriteCloser{t.Out}

	if r.Kind == Select {
		p := promptui.Select{
			Label:    r.Label,
			Items:    r.Items,
			Size:     10,
			HideHelp: true,
			Stdin:    in,
			Stdout:   w,
		}
		i, v, err := p.Run()
		return Response{Value: v, Index: i, Err: mapErr(err)}
	}

	p := promptui.Prompt{
		Label:     r.Label,
		Default:   r.Default,
		IsConfirm: r.Kind == Confirm,
		Stdin:     in,
		Stdout:    w,
	}
	if r.Validate != nil {
		p.Validate = promptui.ValidateFunc(r.Validate)
	}
	v, err := p.Run()
	if r.Kind == Confirm {
		// promptui reports "no" as ErrAbort.
		if errors.Is(err, promptui.ErrAbort) {
			return Response{Value: v}
		}
		return Response{Value: v, Confirmed: err == nil, Err: mapErr(err)}
	}
	return Response{Value: v, Err: mapErr(err)}
}

func mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, promptui.ErrInterrupt), errors.Is(err, promptui.ErrEOF), errors.Is(err, promptui.ErrAbort):
		return ErrCancelled
	}
	return err
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
