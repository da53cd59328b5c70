package usecase

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"ai-planning-service/internal/model"
	"ai-planning-service/pkg/extract"
)

var (
	durationTokenRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(hours?|days?|hrs?|d)`)
	weekTokenRe     = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*weeks?`)
)

// NormalizeDuration converts the duration shapes models produce into a
// Duration. It returns nil for anything it cannot resolve into both a
// quantity and a unit.
//
// Accepted shapes: {"quantity": 2, "unit": "days"} style objects (quantity
// may be a numeric string, unit is matched loosely) and free text such as
// "4 hours", "2.5d" or "1 week".
func NormalizeDuration(v any) *model.Duration {
	if isFalsy(v) {
		return nil
	}
	switch d := v.(type) {
	case map[string]any:
		return durationFromObject(d)
	case extract.Record:
		return durationFromObject(d)
	case string:
		return durationFromText(d)
	}
	return nil
}

func durationFromObject(obj map[string]any) *model.Duration {
	raw, ok := obj["quantity"]
	if !ok || raw == nil {
		return nil
	}
	qty, ok := toFloat(raw)
	if !ok {
		return nil
	}
	unitText, ok := obj["unit"].(string)
	if !ok {
		return nil
	}
	unit, ok := resolveUnit(unitText)
	if !ok {
		return nil
	}
	return &model.Duration{Quantity: qty, Unit: unit}
}

func durationFromText(s string) *model.Duration {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "null" || s == "none" {
		return nil
	}
	if m := durationTokenRe.FindStringSubmatch(s); m != nil {
		qty, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return nil
		}
		unit, ok := resolveUnit(m[2])
		if !ok {
			unit = model.UnitDays // bare "d"
		}
		return &model.Duration{Quantity: qty, Unit: unit}
	}
	if m := weekTokenRe.FindStringSubmatch(s); m != nil {
		qty, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return nil
		}
		return &model.Duration{Quantity: qty * 7, Unit: model.UnitDays}
	}
	return nil
}

// resolveUnit matches case-insensitively by substring: "hour" or "hr" means
// hours, "day" means days.
func resolveUnit(s string) (model.DurationUnit, bool) {
	s = strings.ToLower(s)
	switch {
	case strings.Contains(s, "hour"), strings.Contains(s, "hr"):
		return model.UnitHours, true
	case strings.Contains(s, "day"):
		return model.UnitDays, true
	}
	return "", false
}

// toFloat coerces JSON numbers and numeric strings. Non-finite values are rejected.
func toFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// isFalsy treats nil, zero numbers, false and empty strings/collections as absent.
func isFalsy(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case bool:
		return !x
	case string:
		return x == ""
	case float64:
		return x == 0
	case int:
		return x == 0
	case map[string]any:
		return len(x) == 0
	case extract.Record:
		return len(x) == 0
	case []any:
		return len(x) == 0
	}
	return false
}
