// Package runner sends a command line prompt to a language model and prints
// the answer.
package runner

import (
	"errors"
	"fmt"
	"io"

	"github.com/birmacher/ai-agent/llm"
	"github.com/birmacher/ai-agent/logger"
	"github.com/birmacher/ai-agent/prompt"
)

// ErrNoPrompt is returned when the run is started without any arguments.
var ErrNoPrompt = errors.New("no prompt given")

const usageHint = `Please enter a prompt
Example: ai-agent "Enter your prompt here"`

// Runner issues the prompt and formats the model output.
type Runner struct {
	client llm.LLM
	out    io.Writer

	// reuseVerboseResponse prints the verbose call's response as the final
	// line instead of asking the model a second time.
	reuseVerboseResponse bool
}

// Option configures a Runner
type Option func(*Runner)

// WithReuseVerboseResponse skips the second model call in verbose mode.
func WithReuseVerboseResponse(reuse bool) Option {
	return func(r *Runner) {
		r.reuseVerboseResponse = reuse
	}
}

// New creates a Runner that prints to out.
func New(client llm.LLM, out io.Writer, opts ...Option) *Runner {
	r := &Runner{
		client: client,
		out:    out,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// CheckArgs prints the usage hint to out and returns ErrNoPrompt when args
// is empty.
func CheckArgs(out io.Writer, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(out, usageHint)
		return ErrNoPrompt
	}
	return nil
}

// Run builds the prompt from args, asks the model and prints the result.
func (r *Runner) Run(args []string) error {
	if err := CheckArgs(r.out, args); err != nil {
		return err
	}

	userPrompt := prompt.Build(args)
	req := llm.Request{
		Messages: prompt.Conversation(userPrompt),
	}

	var verboseResp *llm.Response
	if prompt.IsVerbose(userPrompt) {
		resp, err := r.generateVerbose(req, userPrompt)
		if err != nil {
			return err
		}
		verboseResp = &resp
	}

	if verboseResp != nil && r.reuseVerboseResponse {
		logger.Debug("Reusing verbose response")
		fmt.Fprintf(r.out, "Response: %s\n", verboseResp.Content)
		return nil
	}

	return r.generate(req)
}

func (r *Runner) generate(req llm.Request) error {
	resp := r.client.Prompt(req)
	if resp.Error != nil {
		return fmt.Errorf("generate content: %w", resp.Error)
	}

	fmt.Fprintf(r.out, "Response: %s\n", resp.Content)
	return nil
}

func (r *Runner) generateVerbose(req llm.Request, userPrompt string) (llm.Response, error) {
	resp := r.client.Prompt(req)
	if resp.Error != nil {
		return resp, fmt.Errorf("generate verbose content: %w", resp.Error)
	}

	fmt.Fprintf(r.out, "User prompt: %s\n", userPrompt)
	fmt.Fprintf(r.out, "Prompt tokens: %d\n", resp.Usage.PromptTokenCount)
	fmt.Fprintf(r.out, "Response tokens: %d\n", resp.Usage.CandidatesTokenCount)
	fmt.Fprintf(r.out, "\nResponse: %s\n", resp.Content)
	return resp, nil
}
