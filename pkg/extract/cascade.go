package extract

import (
	"regexp"
	"strings"
)

var (
	fencedArrayRe = regexp.MustCompile("(?s)```(?:json)?\\s*(\\[.*?\\])\\s*```")
	arrayShapeRe  = regexp.MustCompile(`\[[\s\S]*?\]`)
	taskObjectRe  = regexp.MustCompile(`\{[\s\S]*?"task"[\s\S]*?\}`)
	fenceMarkerRe = regexp.MustCompile("```(?:json)?")
)

// cascade lists the JSON strategies in the order they are tried. The text
// parser is not part of it because it cannot fail.
var cascade = []strategy{
	{name: StrategyFencedBlock, run: fromFencedBlock},
	{name: StrategyBracketSpan, run: fromBracketSpan},
	{name: StrategyPatternScan, run: fromPatternScan},
	{name: StrategyWholeText, run: fromWholeText},
	{name: StrategyLineRebuild, run: fromLineRebuild},
}

// Extract recovers records from raw model output. It returns nil only when
// raw is blank; otherwise the result is non-empty, possibly a single
// sentinel record.
func Extract(raw string) []Record {
	records, _ := ExtractWithStrategy(raw)
	return records
}

// ExtractWithStrategy is Extract that also reports the name of the strategy
// that produced the records. The name is empty for blank input.
func ExtractWithStrategy(raw string) ([]Record, string) {
	if strings.TrimSpace(raw) == "" {
		return nil, ""
	}
	if records, name, ok := firstSuccess(raw, cascade); ok {
		return records, name
	}
	return ParseText(raw), StrategyTextParser
}

// firstSuccess runs strategies in order and stops at the first one that yields records.
func firstSuccess(text string, strategies []strategy) ([]Record, string, bool) {
	for _, s := range strategies {
		if records, ok := s.run(text); ok {
			return records, s.name, true
		}
	}
	return nil, "", false
}

func fromFencedBlock(text string) ([]Record, bool) {
	m := fencedArrayRe.FindStringSubmatch(text)
	if len(m) < 2 {
		return nil, false
	}
	return decodeArray(m[1])
}

func fromBracketSpan(text string) ([]Record, bool) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end <= start {
		return nil, false
	}
	return decodeArray(text[start : end+1])
}

// fromPatternScan tries every array-shaped candidate first, then every
// object-shaped candidate that mentions "task".
func fromPatternScan(text string) ([]Record, bool) {
	for _, candidate := range arrayShapeRe.FindAllString(text, -1) {
		if records, ok := decodeArray(candidate); ok {
			return records, true
		}
	}
	for _, candidate := range taskObjectRe.FindAllString(text, -1) {
		v, ok := decode(candidate)
		if !ok {
			continue
		}
		if records, ok := toRecords(v); ok {
			return records, true
		}
		if obj, ok := v.(map[string]any); ok {
			if _, has := obj[FieldTask]; has {
				return []Record{obj}, true
			}
		}
	}
	return nil, false
}

func fromWholeText(text string) ([]Record, bool) {
	cleaned := strings.TrimSpace(fenceMarkerRe.ReplaceAllString(text, ""))
	if !strings.HasPrefix(cleaned, "[") || !strings.HasSuffix(cleaned, "]") {
		return nil, false
	}
	return decodeArray(cleaned)
}

// fromLineRebuild accumulates lines from the first one that opens a bracket
// until the bracket depth returns to zero, then tries to parse the block.
// A failed block is discarded and scanning resumes on the following lines.
func fromLineRebuild(text string) ([]Record, bool) {
	var (
		block []string
		depth int
		open  bool
	)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !open {
			if !strings.Contains(line, "[") {
				continue
			}
			open = true
			depth = 0
		}
		block = append(block, line)
		depth += bracketDelta(line)
		if depth > 0 {
			continue
		}
		if records, ok := decodeArray(strings.Join(block, "\n")); ok {
			return records, true
		}
		block = block[:0]
		open = false
	}
	return nil, false
}

// bracketDelta counts '[' minus ']' on one line, ignoring brackets inside
// JSON string literals.
func bracketDelta(line string) int {
	delta := 0
	inString := false
	escape := false
	for _, r := range line {
		if inString {
			switch {
			case escape:
				escape = false
			case r == '\\':
				escape = true
			case r == '"':
				inString = false
			}
			continue
		}
		switch r {
		case '"':
			inString = true
		case '[':
			delta++
		case ']':
			delta--
		}
	}
	return delta
}
