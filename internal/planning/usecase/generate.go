package usecase

import (
	"context"
	"fmt"

	"ai-planning-service/internal/planning"
	"ai-planning-service/pkg/extract"
)

const responsePreviewRunes = 500

// generateRecords calls the model and runs the extraction cascade over its answer.
func (uc *implUseCase) generateRecords(ctx context.Context, method, prompt string) ([]extract.Record, error) {
	raw, err := uc.gen.Generate(ctx, prompt)
	if err != nil {
		uc.l.Errorf(ctx, "internal.planning.usecase.%s: generator failed: %v", method, err)
		return nil, fmt.Errorf("%w: %w", planning.ErrGeneratorFailed, err)
	}
	uc.l.Debugf(ctx, "internal.planning.usecase.%s: response preview: %s", method, preview(raw))

	records, strategy := extract.ExtractWithStrategy(raw)
	uc.l.Infof(ctx, "internal.planning.usecase.%s: extracted %d records strategy=%s", method, len(records), strategy)
	return records, nil
}

func preview(s string) string {
	r := []rune(s)
	if len(r) <= responsePreviewRunes {
		return s
	}
	return string(r[:responsePreviewRunes]) + "..."
}
