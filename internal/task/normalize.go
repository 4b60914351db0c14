package task

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"
)

// normalizeBase is the fixed timestamp used when a raw record carries no
// parseable createdAt. Each record without one gets normalizeBase plus its
// position in hours, so normalization never depends on the wall clock and
// repeated runs over the same input produce identical output.
var normalizeBase = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// completionLag is added to createdAt when a done record arrives without a
// completedAt of its own.
const completionLag = 24 * time.Hour

// Timestamp layouts accepted from raw input, tried in order.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// DecodeRaw decodes a JSON payload into loosely-typed raw records.
// Anything that is not a JSON array, including invalid JSON, decodes to an
// empty slice rather than an error: a bad seed payload means "no records",
// and the caller's fallback generator takes over from there.
//
// Elements are coerced individually: a scalar, array, or null element
// becomes an empty map, so one malformed record never discards its
// neighbors and the output length always matches the array length.
func DecodeRaw(data []byte) []map[string]any {
	var elems []any
	if err := json.Unmarshal(data, &elems); err != nil {
		return []map[string]any{}
	}

	raws := make([]map[string]any, len(elems))
	for i, e := range elems {
		if obj, ok := e.(map[string]any); ok {
			raws[i] = obj
		} else {
			raws[i] = map[string]any{}
		}
	}
	return raws
}

// Normalize converts loosely-typed raw records into well-formed tasks.
// The output has the same length and order as the input, and every record
// satisfies the Task invariants regardless of how malformed its source was.
// One bad record never affects its neighbors.
//
// Normalize is a pure function: no clock, no randomness. Missing identifiers
// and timestamps are derived from the record's position.
func Normalize(raws []map[string]any) []Task {
	tasks := make([]Task, len(raws))
	for i, raw := range raws {
		tasks[i] = normalizeOne(raw, i)
	}
	return tasks
}

func normalizeOne(raw map[string]any, pos int) Task {
	t := Task{
		Title: coerceString(raw["title"]),
		Notes: coerceString(raw["notes"]),
	}

	t.ID = coerceString(raw["id"])
	if t.ID == "" {
		// Positional fallback keeps normalization deterministic.
		t.ID = fmt.Sprintf("task-%04d", pos+1)
	}

	// Non-numeric revenue falls back to 0. A falsy check is not enough
	// here: strconv failure and non-string junk must both land on 0, and
	// NaN from the source must not leak through.
	t.Revenue = coerceNumber(raw["revenue"], 0)

	t.TimeTaken = coerceNumber(raw["timeTaken"], 1)
	if t.TimeTaken <= 0 {
		t.TimeTaken = 1
	}

	t.Priority = Priority(coerceString(raw["priority"]))
	t.Status = Status(coerceString(raw["status"]))

	if created, ok := parseTime(raw["createdAt"]); ok {
		t.CreatedAt = created
	} else {
		t.CreatedAt = normalizeBase.Add(time.Duration(pos) * time.Hour)
	}

	if completed, ok := parseTime(raw["completedAt"]); ok {
		t.CompletedAt = &completed
	} else if t.Status.IsDone() {
		done := t.CreatedAt.Add(completionLag)
		t.CompletedAt = &done
	}

	return t
}

// coerceString converts a raw value to a string. Non-string scalars are
// formatted; composites and nil collapse to "".
func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case json.Number:
		return val.String()
	default:
		return ""
	}
}

// coerceNumber converts a raw value to a float64, falling back when the
// value is absent, non-numeric, or not finite.
func coerceNumber(v any, fallback float64) float64 {
	switch val := v.(type) {
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return fallback
		}
		return val
	case int:
		return float64(val)
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return fallback
		}
		return f
	case string:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return fallback
		}
		return f
	default:
		return fallback
	}
}

// parseTime attempts to parse a raw value as a timestamp.
func parseTime(v any) (time.Time, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.UTC(), true
		}
	}
	return time.Time{}, false
}
