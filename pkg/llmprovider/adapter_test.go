package llmprovider

import (
	"context"
	"errors"
	"testing"

	"ai-planning-service/pkg/deepseek"
	"ai-planning-service/pkg/gemini"
	"ai-planning-service/pkg/qwen"
)

type fakeGemini struct {
	got *gemini.Request
}

func (f *fakeGemini) GenerateText(ctx context.Context, req *gemini.Request) (*gemini.Response, error) {
	f.got = req
	return &gemini.Response{Text: "gemini text", Usage: gemini.Usage{InputTokens: 3, OutputTokens: 4, TotalTokens: 7}}, nil
}

func (f *fakeGemini) Model() string { return "gemini-test" }

type fakeQwen struct {
	err error
}

func (f *fakeQwen) GenerateText(ctx context.Context, req *qwen.Request) (*qwen.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &qwen.Response{Text: "qwen text"}, nil
}

func (f *fakeQwen) Model() string { return "qwen-test" }

type fakeDeepSeek struct {
	got     *deepseek.Request
	choices []deepseek.Choice
}

func (f *fakeDeepSeek) GenerateContent(ctx context.Context, req *deepseek.Request) (*deepseek.Response, error) {
	f.got = req
	return &deepseek.Response{
		Model:   "deepseek-test",
		Choices: f.choices,
		Usage:   deepseek.Usage{PromptTokens: 5, CompletionTokens: 6, TotalTokens: 11},
	}, nil
}

func (f *fakeDeepSeek) Model() string { return "deepseek-test" }

func TestGeminiAdapter(t *testing.T) {
	client := &fakeGemini{}
	a := NewGeminiAdapter(client)

	resp, err := a.GenerateContent(context.Background(), &Request{SystemInstruction: "sys", Prompt: "p", Temperature: 0.2, MaxTokens: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "gemini text" || resp.ProviderName != "gemini" || resp.ModelName != "gemini-test" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if resp.Usage.TotalTokens != 7 {
		t.Errorf("expected 7 total tokens, got %d", resp.Usage.TotalTokens)
	}
	if client.got.SystemInstruction != "sys" || client.got.Temperature != 0.2 || client.got.MaxTokens != 50 {
		t.Errorf("request not forwarded: %+v", client.got)
	}
}

func TestQwenAdapter_Error(t *testing.T) {
	a := NewQwenAdapter(&fakeQwen{err: errors.New("429")})
	if _, err := a.GenerateContent(context.Background(), &Request{Prompt: "p"}); err == nil {
		t.Fatal("expected error")
	}
	if a.Name() != "qwen" || a.Model() != "qwen-test" {
		t.Errorf("unexpected identity %s/%s", a.Name(), a.Model())
	}
}

func TestDeepSeekAdapter(t *testing.T) {
	client := &fakeDeepSeek{choices: []deepseek.Choice{{Message: deepseek.Message{Role: "assistant", Content: "ds text"}}}}
	a := NewDeepSeekAdapter(client)

	resp, err := a.GenerateContent(context.Background(), &Request{SystemInstruction: "sys", Prompt: "p"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "ds text" || resp.Usage.InputTokens != 5 {
		t.Errorf("unexpected response: %+v", resp)
	}
	if len(client.got.Messages) != 2 || client.got.Messages[0].Role != "system" || client.got.Messages[1].Content != "p" {
		t.Errorf("unexpected messages: %+v", client.got.Messages)
	}

	empty := NewDeepSeekAdapter(&fakeDeepSeek{})
	resp, err = empty.GenerateContent(context.Background(), &Request{Prompt: "p"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "" {
		t.Errorf("expected empty text without choices, got %q", resp.Text)
	}
}
