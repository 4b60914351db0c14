// Package testutil provides testing utilities for tasktally tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// SampleRecords returns a small, well-formed raw task payload covering the
// three statuses. The records normalize without any coercion surprises.
func SampleRecords() []map[string]any {
	return []map[string]any{
		{
			"id":        "fix-login",
			"title":     "Fix login flow",
			"revenue":   100.0,
			"timeTaken": 10.0,
			"priority":  "high",
			"status":    "done",
			"createdAt": "2024-02-01T09:00:00Z",
		},
		{
			"id":        "migrate-db",
			"title":     "Migrate billing database",
			"revenue":   50.0,
			"timeTaken": 5.0,
			"priority":  "medium",
			"status":    "in_progress",
			"createdAt": "2024-02-02T09:00:00Z",
		},
		{
			"id":        "write-docs",
			"title":     "Write onboarding docs",
			"revenue":   90.0,
			"timeTaken": 3.0,
			"priority":  "low",
			"status":    "not_started",
			"createdAt": "2024-02-03T09:00:00Z",
		},
	}
}

// WriteSeedFile marshals records to a JSON file under a temp directory and
// returns the path. The file is cleaned up with the test.
func WriteSeedFile(t *testing.T, records []map[string]any) string {
	t.Helper()

	data, err := json.Marshal(records)
	if err != nil {
		t.Fatalf("failed to marshal seed records: %v", err)
	}

	path := filepath.Join(t.TempDir(), "tasks.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write seed file: %v", err)
	}
	return path
}

// WriteSeedPayload writes a raw payload to a temp JSON file and returns the
// path. Used for malformed or non-array payloads that should not round-trip
// through json.Marshal.
func WriteSeedPayload(t *testing.T, payload []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tasks.json")
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("failed to write seed payload: %v", err)
	}
	return path
}

// FixedClock returns a clock function frozen at the given instant.
func FixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

// StepClock returns a clock that starts at the given instant and advances
// by step on every call, for tests that need distinct stamps in order.
func StepClock(start time.Time, step time.Duration) func() time.Time {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(step)
		return now
	}
}
