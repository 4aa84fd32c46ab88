package summary

import (
	"context"
	"fmt"
	"os"

	"github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"
)

// OpenAISummarizer implements Summarizer using chat completion.
type OpenAISummarizer struct {
	client *openai.Client
	model  string
}

// NewOpenAISummarizer creates the OpenAI-backed summarizer. Without an
// API key the service is returned disabled rather than failing app
// startup.
func NewOpenAISummarizer(apiKey, model string) *OpenAISummarizer {
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		log.Warn("OpenAI API key not provided. Decision summaries will be disabled.")
		return &OpenAISummarizer{client: nil}
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAISummarizer{client: openai.NewClient(apiKey), model: model}
}

func (s *OpenAISummarizer) Summarize(ctx context.Context, decision *Decision) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("openai summarizer is not initialized (missing API key)")
	}
	payload, err := decision.prompt()
	if err != nil {
		return "", err
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: summaryInstruction},
			{Role: openai.ChatMessageRoleUser, Content: payload},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no completion choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}

var _ Summarizer = (*OpenAISummarizer)(nil)
