package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/jackzampolin/pdf2latex/internal/encode"
)

const (
	ClaudeName = "claude"

	// DefaultModel is used when no model override is configured.
	DefaultModel = "claude-3-sonnet-20240229"

	claudeMaxTokens   = 4000
	claudeTemperature = 0.2
)

const systemPrompt = "You are an expert translator and LaTeX formatter specialized in academic papers."

// userPrompt returns the fixed instruction set for one page. pageNum is
// 1-based, matching how a reader refers to pages.
func userPrompt(pageNum int) string {
	return fmt.Sprintf(`You are looking at page %d of a French academic paper.

Your task:
1. Analyze the image and extract all text content, including any tables and mathematical formulas.
2. Translate the French text to English.
3. Convert the entire content to proper LaTeX format.
4. Preserve the document structure (headings, paragraphs, etc.).
5. Convert tables to LaTeX table environments.
6. Ensure mathematical formulas are properly formatted in LaTeX math environments.
7. Return ONLY the LaTeX code without explanations.
8. Don't put \begin{document} and \end{document} in your response.
9. filled or unfilled square box in the end of the paragraph means \end{proof}.`, pageNum)
}

// ClaudeConfig configures the Claude transcription client.
type ClaudeConfig struct {
	APIKey string
	Model  string // empty means DefaultModel
}

// Claude implements Transcriber against the Anthropic messages API.
type Claude struct {
	client anthropic.Client
	model  string
}

// NewClaude constructs a client. The caller provides the credential
// explicitly; there is no ambient environment lookup here, so tests and
// callers control exactly which client is in play.
func NewClaude(cfg ClaudeConfig) *Claude {
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	return &Claude{
		client: anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:  model,
	}
}

// Name returns the client identifier.
func (c *Claude) Name() string { return ClaudeName }

// Model returns the model identifier in use.
func (c *Claude) Model() string { return c.model }

// Transcribe sends one page image with the fixed transcription prompt and
// returns the first text block of the response verbatim. No validation of
// LaTeX well-formedness is performed, and exactly one attempt is made.
func (c *Claude) Transcribe(ctx context.Context, page encode.EncodedPage, pageIndex int) (string, error) {
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   claudeMaxTokens,
		Temperature: anthropic.Float(claudeTemperature),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewImageBlockBase64(page.MediaType, page.Data),
				anthropic.NewTextBlock(userPrompt(pageIndex+1)),
			),
		},
	})
	if err != nil {
		return "", fmt.Errorf("messages API call failed: %w", err)
	}

	for _, block := range resp.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("no text content in model response")
}

// Probe sends a minimal request to verify the credential and model are
// usable before a long run burns pages against a broken setup.
func (c *Claude) Probe(ctx context.Context) error {
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: 16,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock("ping")),
		},
	})
	if err != nil {
		return fmt.Errorf("model probe failed: %w", err)
	}
	for _, block := range resp.Content {
		if block.Type == "text" && strings.TrimSpace(block.Text) != "" {
			return nil
		}
	}
	return fmt.Errorf("model probe returned no text")
}
