package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiClient(apiKey string) (*GeminiClient, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-1.5-pro")
	model.SetTemperature(0.7)

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiClient) Close() {
	c.client.Close()
}

// GenerateMatchExplanation writes a short friendly note on why the top
// candidate fits, from the score breakdown. Falls back to a canned
// sentence when the API is unavailable so matching never degrades.
func (c *GeminiClient) GenerateMatchExplanation(ctx context.Context, requesterName, candidateName string, score float64, breakdown map[string]float64) (string, error) {
	prompt := fmt.Sprintf(`
		Two students were matched as potential roommates with a compatibility score of %.0f/100.
		Requester: %s
		Candidate: %s
		Per-dimension contribution points: %v

		Task: Write a short, friendly explanation (1-2 sentences) of why they could be good roommates.
		Mention the one or two strongest dimensions by name. Do not mention the raw numbers.
		Output: Just the explanation text.
	`, score, requesterName, candidateName, breakdown)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return c.fallbackExplanation(candidateName, breakdown), nil
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return c.fallbackExplanation(candidateName, breakdown), nil
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return strings.TrimSpace(sb.String()), nil
}

func (c *GeminiClient) fallbackExplanation(candidateName string, breakdown map[string]float64) string {
	best := ""
	var bestPoints float64
	for dim, points := range breakdown {
		if points > bestPoints {
			best, bestPoints = dim, points
		}
	}
	if best == "" {
		return fmt.Sprintf("You and %s look like a promising roommate match.", candidateName)
	}
	label := strings.ReplaceAll(best, "_", " ")
	return fmt.Sprintf("You and %s line up especially well on %s, which makes day-to-day living together a lot easier.", candidateName, label)
}
