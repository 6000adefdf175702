// Package assist answers questions about a rendered position report through
// a generative chat session.
package assist

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const systemInstruction = `
You explain a brokerage position report to its owner.
The report shows, per symbol, the position and profit under four accounting
conventions (cash flow, average cost, FIFO and LIFO), the daily profit
against the previous close, the "made up ground" (profit realized on a day
the price declined) and the option contracts rolled up into their underlying
stock. Answer strictly from the report figures, briefly and in plain
language. Never give trading advice.
`

// Explainer is a chat session primed with a position report. The model sees
// the rendered markdown once and answers follow up questions about it.
type Explainer struct {
	Model  string
	Config *genai.GenerateContentConfig
	chat   *genai.Chat
}

// NewExplainer creates an explainer for the given model name.
func NewExplainer(model string) *Explainer {
	return &Explainer{
		Model: model,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
		},
	}
}

// Start opens the chat session and primes it with the rendered report.
func (e *Explainer) Start(ctx context.Context, client *genai.Client, report string) error {
	chat, err := client.Chats.Create(ctx, e.Model, e.Config, nil)
	if err != nil {
		return err
	}
	e.chat = chat
	_, err = e.Ask(ctx, "Here is the current report:\n\n"+report+"\n\nAcknowledge in one line.")
	return err
}

// Ask sends one question and returns the model's text answer.
func (e *Explainer) Ask(ctx context.Context, question string) (string, error) {
	if e.chat == nil {
		return "", fmt.Errorf("explainer session not started")
	}
	resp, err := e.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from model %s", e.Model)
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
