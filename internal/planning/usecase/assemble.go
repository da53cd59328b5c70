package usecase

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"unicode/utf8"

	"ai-planning-service/internal/model"
	"ai-planning-service/internal/planning"
	"ai-planning-service/pkg/extract"
	pkgLog "ai-planning-service/pkg/log"
)

const (
	fieldTaskTitle     = "task_title"
	fieldDuration      = "duration"
	fieldOwners        = "owners"
	fieldStartDateTime = "start_date_time"
	fieldEndDateTime   = "end_date_time"
	fieldOrder         = "order"

	maxTitleWords = 8
)

// Per-record rejections. They are logged and the record is skipped.
var (
	errEmptyRecord    = errors.New("record is empty")
	errSentinelRecord = errors.New("record is a parsing error placeholder")
	errEmptyTitle     = errors.New("record has no title")
	errFieldType      = errors.New("unexpected field type")
)

var defaultScheduleDuration = model.Duration{Quantity: 1, Unit: model.UnitHours}

// Assembler validates extracted records into domain entities.
type Assembler struct {
	l      pkgLog.Logger
	titles TitleShortener
}

// NewAssembler creates an Assembler that shortens overlong titles with titles.
func NewAssembler(l pkgLog.Logger, titles TitleShortener) *Assembler {
	return &Assembler{l: l, titles: titles}
}

// AssembleTasks validates records into task descriptors, keeping input
// order. Invalid records are skipped; if none survive the result is an
// *planning.ExtractionFailure.
func (a *Assembler) AssembleTasks(ctx context.Context, records []extract.Record) ([]model.TaskDescriptor, error) {
	tasks := make([]model.TaskDescriptor, 0, len(records))
	for i, rec := range records {
		t, err := a.assembleTask(ctx, rec)
		if err != nil {
			a.logSkip(ctx, "AssembleTasks", i, err)
			continue
		}
		tasks = append(tasks, t)
	}
	if len(tasks) == 0 {
		return nil, &planning.ExtractionFailure{Kind: planning.KindTasks, Records: len(records)}
	}
	return tasks, nil
}

// AssembleSchedule validates records into scheduled tasks sorted by order.
// Tasks sharing an order keep their input order.
func (a *Assembler) AssembleSchedule(ctx context.Context, records []extract.Record) ([]model.ScheduledTask, error) {
	scheduled := make([]model.ScheduledTask, 0, len(records))
	for i, rec := range records {
		t, err := assembleScheduledTask(rec, i+1)
		if err != nil {
			a.logSkip(ctx, "AssembleSchedule", i, err)
			continue
		}
		scheduled = append(scheduled, t)
	}
	if len(scheduled) == 0 {
		return nil, &planning.ExtractionFailure{Kind: planning.KindSchedule, Records: len(records)}
	}

	slices.SortStableFunc(scheduled, func(x, y model.ScheduledTask) int {
		return cmp.Compare(x.Order, y.Order)
	})
	return scheduled, nil
}

func (a *Assembler) logSkip(ctx context.Context, method string, index int, err error) {
	if errors.Is(err, errSentinelRecord) {
		a.l.Debugf(ctx, "internal.planning.usecase.%s: skip record %d: %v", method, index+1, err)
		return
	}
	a.l.Warnf(ctx, "internal.planning.usecase.%s: skip record %d: %v", method, index+1, err)
}

func (a *Assembler) assembleTask(ctx context.Context, rec extract.Record) (model.TaskDescriptor, error) {
	if len(rec) == 0 {
		return model.TaskDescriptor{}, errEmptyRecord
	}

	title, err := stringField(rec, extract.FieldTask)
	if err != nil {
		return model.TaskDescriptor{}, err
	}
	description, err := stringField(rec, extract.FieldDescription)
	if err != nil {
		return model.TaskDescriptor{}, err
	}

	if title == "" {
		title = description
	}
	if description == "" {
		description = title
	}
	if err := checkTitle(title); err != nil {
		return model.TaskDescriptor{}, err
	}

	if needsShortening(title, description) {
		title = truncateTitle(a.titles.Shorten(ctx, description))
		if title == "" {
			return model.TaskDescriptor{}, errEmptyTitle
		}
	}
	if description == "" {
		description = title
	}

	priority, err := priorityField(rec)
	if err != nil {
		return model.TaskDescriptor{}, err
	}

	return model.TaskDescriptor{
		Task:              title,
		Description:       description,
		Priority:          priority,
		EstimatedDuration: NormalizeDuration(rec[extract.FieldEstimatedDuration]),
	}, nil
}

func assembleScheduledTask(rec extract.Record, position int) (model.ScheduledTask, error) {
	if len(rec) == 0 {
		return model.ScheduledTask{}, errEmptyRecord
	}

	title, err := stringField(rec, fieldTaskTitle)
	if err != nil {
		return model.ScheduledTask{}, err
	}
	if title == "" {
		if title, err = stringField(rec, extract.FieldTask); err != nil {
			return model.ScheduledTask{}, err
		}
	}
	if err := checkTitle(title); err != nil {
		return model.ScheduledTask{}, err
	}

	priority, err := priorityField(rec)
	if err != nil {
		return model.ScheduledTask{}, err
	}
	owners, err := ownersField(rec)
	if err != nil {
		return model.ScheduledTask{}, err
	}
	start, err := stringField(rec, fieldStartDateTime)
	if err != nil {
		return model.ScheduledTask{}, err
	}
	end, err := stringField(rec, fieldEndDateTime)
	if err != nil {
		return model.ScheduledTask{}, err
	}

	duration := defaultScheduleDuration
	if d := NormalizeDuration(rec[fieldDuration]); d != nil {
		duration = *d
	}

	return model.ScheduledTask{
		TaskTitle:     title,
		Priority:      priority,
		Duration:      duration,
		Owners:        owners,
		StartDateTime: start,
		EndDateTime:   end,
		Order:         orderField(rec, position),
	}, nil
}

func checkTitle(title string) error {
	if title == "" {
		return errEmptyTitle
	}
	if strings.HasPrefix(title, extract.SentinelTitle) {
		return errSentinelRecord
	}
	return nil
}

// needsShortening reports whether a title is a copy of its description or
// too long to display.
func needsShortening(title, description string) bool {
	return title == description ||
		utf8.RuneCountInString(title) > maxTitleRunes ||
		len(strings.Fields(title)) > maxTitleWords
}

// truncateTitle enforces the title length limit on a rune boundary.
func truncateTitle(title string) string {
	title = strings.TrimSpace(title)
	if utf8.RuneCountInString(title) <= maxTitleRunes {
		return title
	}
	return strings.TrimSpace(string([]rune(title)[:maxTitleRunes]))
}

// stringField returns the trimmed string at key. Absent and null are "".
func stringField(rec extract.Record, key string) (string, error) {
	v, ok := rec[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is %T", errFieldType, key, v)
	}
	return strings.TrimSpace(s), nil
}

// priorityField lower-cases the priority. Missing or unknown values become medium.
func priorityField(rec extract.Record) (model.Priority, error) {
	s, err := stringField(rec, extract.FieldPriority)
	if err != nil {
		return "", err
	}
	p := model.Priority(strings.ToLower(s))
	if !p.IsValid() {
		return model.PriorityMedium, nil
	}
	return p, nil
}

// ownersField passes owner objects through. Absent or null means no owners.
func ownersField(rec extract.Record) ([]model.Owner, error) {
	v, ok := rec[fieldOwners]
	if !ok || v == nil {
		return []model.Owner{}, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s is %T", errFieldType, fieldOwners, v)
	}
	owners := make([]model.Owner, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s[%d] is %T", errFieldType, fieldOwners, i, item)
		}
		owners = append(owners, model.Owner(obj))
	}
	return owners, nil
}

// orderField reads an integral order from a number or numeric string.
// Anything else falls back to the 1-based input position.
func orderField(rec extract.Record, position int) int {
	f, ok := toFloat(rec[fieldOrder])
	if !ok || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return position
	}
	return int(f)
}
