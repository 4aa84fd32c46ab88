package summary

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

// GeminiSummarizer implements Summarizer via the Gemini API.
type GeminiSummarizer struct {
	client *genai.Client
	model  string
}

// NewGeminiSummarizer creates the Gemini-backed summarizer. A missing
// API key disables the service; a client construction failure is a
// real error.
func NewGeminiSummarizer(apiKey, model string) (*GeminiSummarizer, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		log.Warn("Gemini API key not provided. Decision summaries will be disabled.")
		return &GeminiSummarizer{client: nil}, nil
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiSummarizer{client: client, model: model}, nil
}

func (s *GeminiSummarizer) Summarize(ctx context.Context, decision *Decision) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("gemini summarizer is not initialized (missing API key)")
	}
	payload, err := decision.prompt()
	if err != nil {
		return "", err
	}

	gm := s.client.GenerativeModel(s.model)
	resp, err := gm.GenerateContent(ctx, genai.Text(summaryInstruction), genai.Text(payload))
	if err != nil {
		return "", fmt.Errorf("gemini completion: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no completion candidates returned")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return strings.TrimSpace(b.String()), nil
}

func (s *GeminiSummarizer) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}

var _ Summarizer = (*GeminiSummarizer)(nil)
