package extract

import (
	"regexp"
	"strings"
)

var (
	numberedItemRe   = regexp.MustCompile(`^\d+[.)]\s*(.+)`)
	bulletItemRe     = regexp.MustCompile(`^[-*•]\s*(.+)`)
	keywordItemRe    = regexp.MustCompile(`(?i)^(?:task|action|step|item)`)
	keywordPrefixRe  = regexp.MustCompile(`(?i)^(?:task|action|step|item)(?:\s*#?\d+)?[:\s.)-]+`)
	priorityWordRe   = regexp.MustCompile(`(?i)\b(?:high|medium|low|priority)\b`)
	durationPhraseRe = regexp.MustCompile(`(?i)\d+\s*(?:days?|weeks?|hours?|months?)`)
	sentenceSplitRe  = regexp.MustCompile(`[.!?]\s+`)
	leadingNumberRe  = regexp.MustCompile(`^\d+[.)]\s*`)
	leadingBulletRe  = regexp.MustCompile(`^[-*•]\s*`)
)

// ParseText is the last-resort parser for responses that contain no usable
// JSON. It always returns at least one record; when nothing resembling a
// task is found the single record is the sentinel.
func ParseText(text string) []Record {
	p := &textParser{}
	for _, line := range strings.Split(text, "\n") {
		p.feed(line)
	}
	p.finish()

	if len(p.records) > 0 {
		return p.records
	}
	if records := parseSentences(text); len(records) > 0 {
		return records
	}
	return []Record{sentinelRecord()}
}

// textParser holds at most one open record while scanning lines.
type textParser struct {
	open    *openRecord
	records []Record
}

// openRecord accumulates the lines of a task until the next item starts.
type openRecord struct {
	lines    []string
	priority string
	duration any
}

// feed classifies one line and applies the matching transition.
func (p *textParser) feed(line string) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return
	}

	if m := numberedItemRe.FindStringSubmatch(line); m != nil {
		p.start(m[1])
		return
	}
	if m := bulletItemRe.FindStringSubmatch(line); m != nil {
		p.start(m[1])
		return
	}
	if keywordItemRe.MatchString(line) {
		p.start(keywordPrefixRe.ReplaceAllString(line, ""))
		return
	}

	if p.open == nil {
		return
	}
	p.open.absorb(line)
}

// start closes the open record, if any, and opens a new one from remainder.
func (p *textParser) start(remainder string) {
	p.finish()
	p.open = newOpenRecord()
	if remainder = strings.TrimSpace(remainder); remainder != "" {
		p.open.lines = append(p.open.lines, remainder)
	}
}

// finish emits the open record. A record with no buffered text is dropped.
func (p *textParser) finish() {
	if p.open == nil {
		return
	}
	if rec, ok := p.open.flush(); ok {
		p.records = append(p.records, rec)
	}
	p.open = nil
}

func newOpenRecord() *openRecord {
	return &openRecord{priority: defaultPriority}
}

// absorb handles a continuation line. Lines mentioning a priority update
// the record metadata; "high" wins over "low" when both appear.
func (o *openRecord) absorb(line string) {
	if !priorityWordRe.MatchString(line) {
		o.lines = append(o.lines, line)
		return
	}
	lower := strings.ToLower(line)
	switch {
	case strings.Contains(lower, "high"):
		o.priority = "high"
	case strings.Contains(lower, "low"):
		o.priority = "low"
	}
	if d := durationPhraseRe.FindString(line); d != "" {
		o.duration = d
	}
}

// flush turns the buffered lines into a record. It does not modify o.
func (o *openRecord) flush() (Record, bool) {
	text := strings.TrimSpace(strings.Join(o.lines, " "))
	if text == "" {
		return nil, false
	}

	var title, description string
	if before, after, found := strings.Cut(text, ":"); found {
		title = strings.TrimSpace(before)
		description = strings.TrimSpace(after)
	} else {
		title = strings.TrimSpace(truncateRunes(text, titleMaxRunes))
		description = text
	}

	return Record{
		FieldTask:              title,
		FieldDescription:       description,
		FieldPriority:          o.priority,
		FieldEstimatedDuration: o.duration,
	}, true
}

// parseSentences emits one record per sentence longer than sentenceMinRunes.
func parseSentences(text string) []Record {
	var records []Record
	for _, sentence := range sentenceSplitRe.Split(text, -1) {
		sentence = strings.TrimSpace(sentence)
		if runeLen(sentence) <= sentenceMinRunes || strings.HasPrefix(sentence, "#") {
			continue
		}
		sentence = leadingNumberRe.ReplaceAllString(sentence, "")
		sentence = leadingBulletRe.ReplaceAllString(sentence, "")
		if sentence == "" {
			continue
		}
		records = append(records, Record{
			FieldTask:              truncateRunes(sentence, titleMaxRunes),
			FieldDescription:       truncateRunes(sentence, sentenceDescMax),
			FieldPriority:          defaultPriority,
			FieldEstimatedDuration: nil,
		})
	}
	return records
}

func sentinelRecord() Record {
	return Record{
		FieldTask:              SentinelTitle,
		FieldDescription:       sentinelDescription,
		FieldPriority:          defaultPriority,
		FieldEstimatedDuration: nil,
	}
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func runeLen(s string) int {
	return len([]rune(s))
}
