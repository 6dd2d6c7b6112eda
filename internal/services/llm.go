package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"sialabs/recruiting-agent/internal/models"
	"sialabs/recruiting-agent/internal/prompts"
)

// PromptRequest references a stored prompt template plus the variable
// bindings for one call. It carries no validation: absent variables travel
// downstream as empty strings.
type PromptRequest struct {
	TemplateID string
	Version    string
	Variables  map[string]string
}

// ContentBlock is one block of model output text.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// OutputItem is one typed item in a provider response envelope.
type OutputItem struct {
	Type    string         `json:"type"`
	Content []ContentBlock `json:"content"`
}

// ResponseEnvelope is the provider-neutral response shape: a sequence of
// typed output items, of which at most one is the message payload.
type ResponseEnvelope struct {
	Output []OutputItem `json:"output"`
}

// ChatOptions tune one chat completion call.
type ChatOptions struct {
	Temperature     float32
	MaxOutputTokens int32
}

// LLM is the completion capability every service depends on. Respond issues
// a stored-template call and returns the raw envelope; Complete runs a plain
// chat completion under a system prompt.
type LLM interface {
	Respond(ctx context.Context, req PromptRequest) (*ResponseEnvelope, error)
	Complete(ctx context.Context, system string, turns []models.ConversationTurn, opts ChatOptions) (string, error)
}

type geminiLLM struct {
	client    *genai.Client
	registry  *prompts.Registry
	modelName string
}

// NewGeminiLLM builds the Gemini-backed LLM used in production.
func NewGeminiLLM(apiKey, modelName string, registry *prompts.Registry) (LLM, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiLLM{
		client:    client,
		registry:  registry,
		modelName: modelName,
	}, nil
}

// Respond implements LLM.
func (g *geminiLLM) Respond(ctx context.Context, req PromptRequest) (*ResponseEnvelope, error) {
	prompt, err := g.registry.Render(req.TemplateID, req.Variables)
	if err != nil {
		return nil, fmt.Errorf("failed to render prompt %q: %w", req.TemplateID, err)
	}

	temperature := float32(0.7)
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 4096,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return nil, fmt.Errorf("prompt call %q failed: %w", req.TemplateID, err)
	}
	if resp == nil {
		return nil, fmt.Errorf("prompt call %q returned nil response", req.TemplateID)
	}

	text := resp.Text()
	if text == "" {
		// An empty envelope; the extractor resolves this to a nil payload.
		return &ResponseEnvelope{}, nil
	}

	return NewTextEnvelope(text), nil
}

// NewTextEnvelope wraps model text in the canonical single-message envelope.
func NewTextEnvelope(text string) *ResponseEnvelope {
	return &ResponseEnvelope{
		Output: []OutputItem{
			{
				Type:    "message",
				Content: []ContentBlock{{Type: "output_text", Text: text}},
			},
		},
	}
}

// Complete implements LLM.
func (g *geminiLLM) Complete(ctx context.Context, system string, turns []models.ConversationTurn, opts ChatOptions) (string, error) {
	contents := make([]*genai.Content, 0, len(turns))
	for _, turn := range turns {
		role := genai.Role(genai.RoleUser)
		if turn.Role == models.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Content, role))
	}

	temperature := opts.Temperature
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: opts.MaxOutputTokens,
	}
	if system != "" {
		config.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, config)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("chat completion returned nil response")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in chat completion")
	}
	return text, nil
}
