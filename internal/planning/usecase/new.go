package usecase

import (
	"time"

	"ai-planning-service/internal/planning"
	pkgLog "ai-planning-service/pkg/log"
)

// DateResolver rewrites relative event dates ("next friday") as absolute
// dates and returns anything else unchanged. *datemath.Parser satisfies it.
type DateResolver interface {
	ResolveDate(expr string, base time.Time) string
}

type implUseCase struct {
	l         pkgLog.Logger
	gen       planning.Generator
	titles    TitleShortener
	assembler *Assembler
	calendar  planning.CalendarExporter
	dates     DateResolver
	now       func() time.Time
}

// New creates a new planning UseCase instance.
// titleGen may differ from gen to use a different temperature for titles.
// calendar may be nil, in which case schedule export is skipped; dates may be
// nil, in which case event dates reach the prompt verbatim.
func New(
	l pkgLog.Logger,
	gen planning.Generator,
	titleGen planning.Generator,
	calendar planning.CalendarExporter,
	dates DateResolver,
) *implUseCase {
	titles := NewTitleSummarizer(l, titleGen)
	return &implUseCase{
		l:         l,
		gen:       gen,
		titles:    titles,
		assembler: NewAssembler(l, titles),
		calendar:  calendar,
		dates:     dates,
		now:       time.Now,
	}
}
