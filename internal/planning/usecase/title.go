package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"ai-planning-service/internal/planning"
	pkgLog "ai-planning-service/pkg/log"
)

const (
	maxTitleRunes      = 60
	fallbackTitleWords = 5
	titleTrimChars     = "\"'.,;:"
)

// TitleShortener compresses a description into a short title.
type TitleShortener interface {
	Shorten(ctx context.Context, description string) string
}

// TitleSummarizer asks the model for a 2-5 word title. It never fails: any
// unusable answer falls back to the first words of the description.
type TitleSummarizer struct {
	l   pkgLog.Logger
	gen planning.Generator
}

// NewTitleSummarizer creates a TitleSummarizer. A nil gen makes every call
// take the local fallback.
func NewTitleSummarizer(l pkgLog.Logger, gen planning.Generator) *TitleSummarizer {
	return &TitleSummarizer{l: l, gen: gen}
}

// Shorten returns a title of at most 60 runes for description, unless the
// fallback words themselves are longer.
func (s *TitleSummarizer) Shorten(ctx context.Context, description string) string {
	if s.gen == nil {
		return fallbackTitle(description)
	}

	out, err := s.gen.Generate(ctx, BuildTitlePrompt(description))
	if err != nil {
		s.l.Warnf(ctx, "internal.planning.usecase.TitleSummarizer.Shorten: generator failed, using fallback: %v", err)
		return fallbackTitle(description)
	}

	title := cleanTitle(out)
	if title == "" || utf8.RuneCountInString(title) > maxTitleRunes {
		s.l.Debugf(ctx, "internal.planning.usecase.TitleSummarizer.Shorten: unusable title %q, using fallback", out)
		return fallbackTitle(description)
	}
	return title
}

// cleanTitle strips quotes and punctuation from both ends and cuts titles
// over the limit back to the last word boundary.
func cleanTitle(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, titleTrimChars)
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= maxTitleRunes {
		return s
	}
	s = string([]rune(s)[:maxTitleRunes])
	if i := strings.LastIndex(s, " "); i >= 0 {
		s = s[:i]
	}
	return s
}

func fallbackTitle(description string) string {
	words := strings.Fields(description)
	if len(words) > fallbackTitleWords {
		words = words[:fallbackTitleWords]
	}
	return strings.Join(words, " ")
}
