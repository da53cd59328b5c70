package llmprovider

import "context"

// TextGenerator is a prompt-in, text-out view of a Manager with fixed
// generation settings.
type TextGenerator struct {
	manager     *Manager
	system      string
	temperature float64
	maxTokens   int
}

// NewTextGenerator binds generation settings to m.
func NewTextGenerator(m *Manager, system string, temperature float64, maxTokens int) *TextGenerator {
	return &TextGenerator{
		manager:     m,
		system:      system,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

// Generate sends prompt through the provider chain and returns the text.
func (g *TextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.manager.GenerateContent(ctx, &Request{
		SystemInstruction: g.system,
		Prompt:            prompt,
		Temperature:       g.temperature,
		MaxTokens:         g.maxTokens,
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}
