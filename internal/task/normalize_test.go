package task

import (
	"reflect"
	"testing"
	"time"
)

func TestDecodeRawNonArray(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"object", `{"id": "a"}`},
		{"string", `"not an array"`},
		{"number", `42`},
		{"null", `null`},
		{"invalid", `{{{`},
		{"empty", ``},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raws := DecodeRaw([]byte(tc.data))
			if raws == nil {
				t.Fatal("DecodeRaw returned nil, want empty slice")
			}
			if len(raws) != 0 {
				t.Errorf("DecodeRaw(%q) len = %d, want 0", tc.data, len(raws))
			}
		})
	}
}

func TestDecodeRawArray(t *testing.T) {
	raws := DecodeRaw([]byte(`[{"id": "a"}, null, {"id": "b"}]`))
	if len(raws) != 3 {
		t.Fatalf("len = %d, want 3", len(raws))
	}
	// The null element should decode to an empty map, not nil.
	if raws[1] == nil {
		t.Error("null element decoded to nil map")
	}
}

func TestDecodeRawMalformedElements(t *testing.T) {
	// Non-object elements become empty maps; the good records around them
	// survive and the array length is preserved.
	raws := DecodeRaw([]byte(`[{"id": "a", "revenue": 10}, 5, "junk", [1, 2], {"id": "b"}]`))
	if len(raws) != 5 {
		t.Fatalf("len = %d, want 5", len(raws))
	}
	if raws[0]["id"] != "a" || raws[4]["id"] != "b" {
		t.Error("object elements should pass through intact")
	}
	for i := 1; i <= 3; i++ {
		if raws[i] == nil {
			t.Errorf("raws[%d] is nil, want empty map", i)
		}
		if len(raws[i]) != 0 {
			t.Errorf("raws[%d] = %v, want empty map", i, raws[i])
		}
	}

	tasks := Normalize(raws)
	if len(tasks) != 5 {
		t.Fatalf("Normalize len = %d, want 5", len(tasks))
	}
	if tasks[0].ID != "a" || tasks[4].ID != "b" {
		t.Error("good records should normalize unchanged around malformed ones")
	}
	if tasks[1].ID != "task-0002" {
		t.Errorf("tasks[1].ID = %q, want positional fallback task-0002", tasks[1].ID)
	}
}

func TestNormalizeLengthAndOrder(t *testing.T) {
	raws := []map[string]any{
		{"id": "z", "title": "Last alphabetically"},
		{}, // fully empty record
		{"id": "a", "title": "First alphabetically"},
	}
	tasks := Normalize(raws)
	if len(tasks) != len(raws) {
		t.Fatalf("len = %d, want %d", len(tasks), len(raws))
	}
	if tasks[0].ID != "z" || tasks[2].ID != "a" {
		t.Errorf("input order not preserved: got %q, %q, %q", tasks[0].ID, tasks[1].ID, tasks[2].ID)
	}
}

func TestNormalizeEmpty(t *testing.T) {
	tasks := Normalize(nil)
	if tasks == nil {
		t.Fatal("Normalize(nil) returned nil, want empty slice")
	}
	if len(tasks) != 0 {
		t.Errorf("len = %d, want 0", len(tasks))
	}
}

func TestNormalizeIDFallback(t *testing.T) {
	tasks := Normalize([]map[string]any{
		{"title": "no id"},
		{"id": 42.0},
		{"title": "no id either"},
	})
	if tasks[0].ID != "task-0001" {
		t.Errorf("tasks[0].ID = %q, want task-0001", tasks[0].ID)
	}
	if tasks[1].ID != "42" {
		t.Errorf("tasks[1].ID = %q, want 42 (numeric id coerced to string)", tasks[1].ID)
	}
	if tasks[2].ID != "task-0003" {
		t.Errorf("tasks[2].ID = %q, want task-0003", tasks[2].ID)
	}
}

func TestNormalizeRevenueCoercion(t *testing.T) {
	cases := []struct {
		name string
		raw  any
		want float64
	}{
		{"number", 123.5, 123.5},
		{"numeric string", "88", 88},
		{"zero", 0.0, 0},
		{"negative", -40.0, -40},
		{"garbage string", "lots", 0},
		{"missing", nil, 0},
		{"bool", true, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw := map[string]any{}
			if tc.raw != nil {
				raw["revenue"] = tc.raw
			}
			got := Normalize([]map[string]any{raw})[0].Revenue
			if got != tc.want {
				t.Errorf("revenue = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNormalizeTimeTakenInvariant(t *testing.T) {
	raws := []map[string]any{
		{"timeTaken": 5.0},
		{"timeTaken": 0.0},
		{"timeTaken": -3.0},
		{"timeTaken": "junk"},
		{},
	}
	want := []float64{5, 1, 1, 1, 1}
	tasks := Normalize(raws)
	for i, task := range tasks {
		if task.TimeTaken != want[i] {
			t.Errorf("tasks[%d].TimeTaken = %v, want %v", i, task.TimeTaken, want[i])
		}
		if task.TimeTaken <= 0 {
			t.Errorf("tasks[%d] violates timeTaken > 0 invariant", i)
		}
	}
}

func TestNormalizeTimestamps(t *testing.T) {
	raws := []map[string]any{
		{"createdAt": "2023-06-15T10:30:00Z"},
		{"createdAt": "not a date"},
		{},
	}
	tasks := Normalize(raws)

	want := time.Date(2023, 6, 15, 10, 30, 0, 0, time.UTC)
	if !tasks[0].CreatedAt.Equal(want) {
		t.Errorf("tasks[0].CreatedAt = %v, want %v", tasks[0].CreatedAt, want)
	}

	// Unparseable and missing timestamps fall back to base + position hours.
	if !tasks[1].CreatedAt.Equal(normalizeBase.Add(time.Hour)) {
		t.Errorf("tasks[1].CreatedAt = %v, want base+1h", tasks[1].CreatedAt)
	}
	if !tasks[2].CreatedAt.Equal(normalizeBase.Add(2 * time.Hour)) {
		t.Errorf("tasks[2].CreatedAt = %v, want base+2h", tasks[2].CreatedAt)
	}
}

func TestNormalizeCompletedAt(t *testing.T) {
	raws := []map[string]any{
		{"status": "done", "completedAt": "2023-06-16T00:00:00Z"},
		{"status": "done", "createdAt": "2023-06-15T00:00:00Z"},
		{"status": "in_progress"},
	}
	tasks := Normalize(raws)

	if tasks[0].CompletedAt == nil {
		t.Fatal("tasks[0].CompletedAt = nil, want supplied value kept")
	}
	if got := *tasks[0].CompletedAt; !got.Equal(time.Date(2023, 6, 16, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("tasks[0].CompletedAt = %v", got)
	}

	// Done without a completedAt stamps createdAt + 24h.
	if tasks[1].CompletedAt == nil {
		t.Fatal("tasks[1].CompletedAt = nil, want createdAt+24h")
	}
	if got := *tasks[1].CompletedAt; !got.Equal(tasks[1].CreatedAt.Add(24 * time.Hour)) {
		t.Errorf("tasks[1].CompletedAt = %v, want %v", got, tasks[1].CreatedAt.Add(24*time.Hour))
	}

	if tasks[2].CompletedAt != nil {
		t.Errorf("tasks[2].CompletedAt = %v, want nil for non-done status", *tasks[2].CompletedAt)
	}
}

func TestNormalizeKeepsSuppliedCompletedAtForNonDone(t *testing.T) {
	got := Normalize([]map[string]any{
		{"status": "in_progress", "completedAt": "2023-06-16T00:00:00Z"},
	})[0]
	if got.CompletedAt == nil {
		t.Fatal("CompletedAt = nil, want supplied value kept regardless of status")
	}
	if !got.CompletedAt.Equal(time.Date(2023, 6, 16, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("CompletedAt = %v, want supplied value", *got.CompletedAt)
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	raws := DecodeRaw([]byte(`[
		{"title": "Renew contract", "revenue": "1200", "timeTaken": 8, "status": "done"},
		{"revenue": true, "timeTaken": -1, "priority": "high"},
		{"id": "x-1", "createdAt": "2023-01-02", "notes": "follow up"}
	]`))

	first := Normalize(raws)
	second := Normalize(raws)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("normalization is not deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestNormalizePassesThroughEnums(t *testing.T) {
	got := Normalize([]map[string]any{{"priority": "urgent-ish", "status": "blocked"}})[0]
	if got.Priority != Priority("urgent-ish") {
		t.Errorf("Priority = %q, want pass-through", got.Priority)
	}
	if got.Status != Status("blocked") {
		t.Errorf("Status = %q, want pass-through", got.Status)
	}
}
