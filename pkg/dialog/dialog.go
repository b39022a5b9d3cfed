// Package dialog asks the user questions without blocking the caller. A
// Prompter answers on a channel; Ask waits for that answer or the context.
package dialog

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"tableflip.dev/planner/pkg/fold"
)

// Kind is the shape of a question.
type Kind int

const (
	// Input asks for free text.
	Input Kind = iota
	// Confirm asks yes or no.
	Confirm
	// Select picks one of Items.
	Select
)

// Request is one question.
type Request struct {
	Kind    Kind
	Label   string
	Default string
	Items   []string
	// Validate rejects an Input answer. The prompt is asked again.
	Validate func(string) error
}

// Response is the answer to a Request.
type Response struct {
	Value     string
	Index     int
	Confirmed bool
	Err       error
}

var (
	// ErrCancelled is returned when the user backs out of a prompt.
	ErrCancelled = errors.New("dialog: cancelled")
	// ErrNoAnswer is returned by Scripted once its answers run out.
	ErrNoAnswer = errors.New("dialog: no scripted answer left")
)

// Prompter delivers exactly one Response on the returned channel.
type Prompter interface {
	Prompt(ctx context.Context, r Request) <-chan Response
}

// Ask sends r to p and waits for the answer.
func Ask(ctx context.Context, p Prompter, r Request) (Response, error) {
	select {
	case res, ok := <-p.Prompt(ctx, r):
		if !ok {
			return Response{}, ErrCancelled
		}
		return res, res.Err
	case <-ctx.Done():
		return Response{}, ctx.Err()
	}
}

// AskConfirm asks a yes or no question.
func AskConfirm(ctx context.Context, p Prompter, label string) (bool, error) {
	res, err := Ask(ctx, p, Request{Kind: Confirm, Label: label})
	if errors.Is(err, ErrCancelled) {
		return false, nil
	}
	return res.Confirmed, err
}

// AskText asks for free text, offering def.
func AskText(ctx context.Context, p Prompter, label, def string) (string, error) {
	res, err := Ask(ctx, p, Request{Kind: Input, Label: label, Default: def})
	return res.Value, err
}

// Scripted answers requests from a fixed list, in order. It is safe for
// concurrent use.
type Scripted struct {
	mu      sync.Mutex
	answers []string
	// Asked records every request received.
	Asked []Request
}

// NewScripted answers with answers in order.
func NewScripted(answers ...string) *Scripted {
	return &Scripted{answers: answers}
}

// Prompt implements Prompter.
func (s *Scripted) Prompt(_ context.Context, r Request) <-chan Response {
	out := make(chan Response, 1)
	defer close(out)

	s.mu.Lock()
	s.Asked = append(s.Asked, r)
	if len(s.answers) == 0 {
		s.mu.Unlock()
		out <- Response{Err: ErrNoAnswer}
		return out
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	s.mu.Unlock()

	out <- resolve(r, answer)
	return out
}

// resolve interprets a typed answer for r.
func resolve(r Request, answer string) Response {
	switch r.Kind {
	case Confirm:
		switch fold.Key(answer) {
		case "y", "yes", "o", "oui":
			return Response{Value: answer, Confirmed: true}
		}
		return Response{Value: answer}
	case Select:
		for i, item := range r.Items {
			if fold.Equal(item, answer) {
				return Response{Value: item, Index: i}
			}
		}
		if n, err := strconv.Atoi(strings.TrimSpace(answer)); err == nil && n >= 1 && n <= len(r.Items) {
			return Response{Value: r.Items[n-1], Index: n - 1}
		}
		return Response{Err: fmt.Errorf("dialog: %q is not one of %s", answer, strings.Join(r.Items, ", "))}
	}
	if answer == "" {
		answer = r.Default
	}
	if r.Validate != nil {
		if err := r.Validate(answer); err != nil {
			return Response{Value: answer, Err: err}
		}
	}
	return Response{Value: answer}
}
