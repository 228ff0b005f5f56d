// Package judge implements the language-model activation judge using the
// Google Gen AI API. The judge answers a single yes/no question: given an
// action's judge prompt and an incoming message, should the action be
// considered for use.
package judge

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"google.golang.org/genai"

	"github.com/maibot-go/pluginkit/pkg/plugin"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.0-flash"

// GenAIJudge asks a Gemini model whether an action should activate.
type GenAIJudge struct {
	client *genai.Client
	model  string
	logger hclog.Logger
}

// New creates a judge backed by the Gemini API. The API key is read from
// GOOGLE_API_KEY. model may be empty to use DefaultModel.
func New(ctx context.Context, model string, logger hclog.Logger) (*GenAIJudge, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if model == "" {
		model = DefaultModel
	}

	clientConfig := &genai.ClientConfig{Backend: genai.BackendGeminiAPI}
	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GOOGLE_API_KEY environment variable is required\nGet one at: https://aistudio.google.com/api-keys")
	}
	clientConfig.APIKey = apiKey

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gen AI client: %w", err)
	}

	return &GenAIJudge{client: client, model: model, logger: logger}, nil
}

// Judge asks the model whether the action described by prompt should
// activate for msg. An unparseable answer counts as no.
func (j *GenAIJudge) Judge(ctx context.Context, prompt string, msg plugin.Message) (bool, error) {
	question := BuildPrompt(prompt, msg)

	genConfig := &genai.GenerateContentConfig{}
	response, err := j.client.Models.GenerateContent(ctx, j.model, genai.Text(question), genConfig)
	if err != nil {
		return false, fmt.Errorf("activation judgement failed: %w", err)
	}

	if len(response.Candidates) == 0 || response.Candidates[0].Content == nil {
		return false, fmt.Errorf("no candidates in judgement response")
	}

	var answer strings.Builder
	for _, part := range response.Candidates[0].Content.Parts {
		if part.Text != "" {
			answer.WriteString(part.Text)
		}
	}

	verdict, ok := ParseVerdict(answer.String())
	if !ok {
		j.logger.Warn("unparseable judgement answer, treating as no", "answer", answer.String())
		return false, nil
	}
	return verdict, nil
}

// BuildPrompt composes the yes/no question sent to the model.
func BuildPrompt(judgePrompt string, msg plugin.Message) string {
	var b strings.Builder
	b.WriteString("You decide whether a chatbot action should activate for a message.\n")
	b.WriteString("Activation condition: ")
	b.WriteString(judgePrompt)
	b.WriteString("\nMessage: ")
	b.WriteString(msg.Text)
	b.WriteString("\nAnswer with a single word: yes or no.")
	return b.String()
}

// ParseVerdict extracts a yes/no decision from a model answer. The second
// return value reports whether a decision was found at all.
func ParseVerdict(answer string) (verdict, ok bool) {
	cleaned := strings.ToLower(strings.TrimSpace(answer))
	cleaned = strings.Trim(cleaned, ".!\"'")

	switch {
	case cleaned == "yes" || cleaned == "y" || cleaned == "是":
		return true, true
	case cleaned == "no" || cleaned == "n" || cleaned == "否":
		return false, true
	case strings.HasPrefix(cleaned, "yes"):
		return true, true
	case strings.HasPrefix(cleaned, "no"):
		return false, true
	}
	return false, false
}
