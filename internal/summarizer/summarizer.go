package summarizer

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const summaryPrompt = `You are an expert at analyzing educational content. Based on the transcript below, write a DETAILED summary.

Requirements:
- Start with a one-sentence title describing the topic
- List ALL the main steps / topics in order of appearance
- Explain each step in detail, including important notes, tips, and warnings
- Keep domain-specific terminology unchanged
- Use markdown: headings, bullet points, bold for key terms
- End with an "Important notes" section if anything needs emphasis

Transcript:
---
%s
---`

func (s *implSummarizer) Enabled() bool {
	return len(s.apiKeys) > 0
}

// Summarize sends the text to Gemini and returns the markdown summary.
// Rotates API keys on 429 / quota errors.
func (s *implSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf(summaryPrompt, text)

	attempts := len(s.apiKeys)
	var lastErr error

	for range attempts {
		key := s.apiKeys[s.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			s.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				s.logger.Warn(ctx, "Key %d rate limited, rotating...", s.currentKey+1)
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var summary string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					summary += part.Text
				}
			}
			return summary, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (s *implSummarizer) rotateKey() {
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}
