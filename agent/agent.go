// Package agent provides an interactive AI analyst that discusses a
// backtest report with the user.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

const systemPrompt = `
You are an investment analyst discussing the result of a portfolio backtest
with its owner. The full report is provided below in markdown. Ground every
figure you quote in the report; when asked something the report cannot
answer, say so instead of guessing. Keep in mind the limits of the
methodology: fixed weights, no transaction costs or taxes, and a projection
that assumes i.i.d. normal daily returns. Be concise.

The report:

`

// Analyst is a chat session bound to one backtest report.
type Analyst struct {
	report string
	chat   *genai.Chat
}

// NewAnalyst returns an analyst primed with the rendered report.
func NewAnalyst(report string) *Analyst {
	return &Analyst{report: report}
}

// Start creates the underlying chat session.
func (a *Analyst) Start(ctx context.Context, client *genai.Client) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemPrompt + a.report}}},
	}
	chat, err := client.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask sends one question and returns the analyst's answer.
func (a *Analyst) Ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the analyst")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

const prompt = "analyst> "

// Run starts the interactive REPL session, optionally preloaded with
// initial prompts. It returns on "bye" or end of input.
func Run(ctx context.Context, client *genai.Client, a *Analyst, w io.Writer, r io.Reader, prompts ...string) error {
	if a.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(w, "Ask the analyst about your backtest. Type 'bye' to exit.")
	reader := bufio.NewReader(r)
	for {
		fmt.Fprint(w, prompt)
		var input string

		// flush preloaded prompts first, then read from the user
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			if strings.TrimSpace(input) == "" {
				continue
			}
			fmt.Fprintln(w, input)
		} else {
			var err error
			input, err = reader.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		answer, err := a.Ask(ctx, strings.TrimSpace(input))
		if err != nil {
			return err
		}
		fmt.Fprintln(w, answer)
	}
}
