package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent runs an interactive chat with an Expert.
type Agent struct {
	w      io.Writer
	r      *bufio.Reader
	Expert *Expert
	// Print writes an answer of the expert, it defaults to plain text.
	Print func(w io.Writer, markdown string)
}

// New creates a new Agent chatting with e. It reads the user's input from r
// and writes the conversation to w.
func New(w io.Writer, r io.Reader, e *Expert) *Agent {
	return &Agent{
		w:      w,
		r:      bufio.NewReader(r),
		Expert: e,
		Print: func(w io.Writer, markdown string) {
			fmt.Fprintln(w, markdown)
		},
	}
}

const prompt = "assist> "

// Run starts the interactive REPL session. prompts are sent first, as if typed.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.Expert.chat == nil {
		if err := a.Expert.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to bflow assist. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask for the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "bye" {
			return nil
		}

		answer, err := a.Expert.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		a.Print(a.w, answer)
	}
}
