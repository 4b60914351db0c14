package seed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/hmartin/tasktally/internal/errors"
)

func TestFetchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	want := `[{"id": "a"}]`
	if err := os.WriteFile(path, []byte(want), 0644); err != nil {
		t.Fatalf("write seed file: %v", err)
	}

	data, err := Fetch(context.Background(), path)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if string(data) != want {
		t.Errorf("Fetch = %q, want %q", data, want)
	}
}

func TestFetchFileMissing(t *testing.T) {
	_, err := Fetch(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("Fetch of missing file should error")
	}
	var seedErr *errors.SeedError
	if !errors.As(err, &seedErr) {
		t.Fatalf("error type = %T, want *errors.SeedError", err)
	}
	if seedErr.Source == "" {
		t.Error("seed error should carry the source path")
	}
	if !errors.IsUserFacing(err) {
		t.Error("fetch failure should be user-facing")
	}
}

func TestFetchEmptyPath(t *testing.T) {
	_, err := Fetch(context.Background(), "")
	if !errors.Is(err, errors.ErrSeedUnavailable) {
		t.Errorf("err = %v, want ErrSeedUnavailable", err)
	}
}

func TestFetchURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id": "remote"}]`))
	}))
	defer srv.Close()

	data, err := Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if string(data) != `[{"id": "remote"}]` {
		t.Errorf("Fetch = %q", data)
	}
}

func TestFetchURLNonSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down for maintenance", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := Fetch(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("Fetch of 503 should error")
	}
	var seedErr *errors.SeedError
	if !errors.As(err, &seedErr) {
		t.Fatalf("error type = %T", err)
	}
	if seedErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("StatusCode = %d, want 503", seedErr.StatusCode)
	}
	if !errors.IsRetryable(err) {
		t.Error("non-success response should be retryable")
	}
}

func TestGenerateDeterministic(t *testing.T) {
	first := Generate(DefaultCount)
	second := Generate(DefaultCount)
	if !reflect.DeepEqual(first, second) {
		t.Error("Generate is not deterministic across calls")
	}
	if len(first) != DefaultCount {
		t.Errorf("len = %d, want %d", len(first), DefaultCount)
	}
}

func TestGenerateRecordShape(t *testing.T) {
	raws := Generate(5)
	for i, raw := range raws {
		for _, key := range []string{"id", "title", "revenue", "timeTaken", "priority", "status"} {
			if _, ok := raw[key]; !ok {
				t.Errorf("record %d missing %q", i, key)
			}
		}
		if tt, ok := raw["timeTaken"].(float64); !ok || tt <= 0 {
			t.Errorf("record %d timeTaken = %v, want positive number", i, raw["timeTaken"])
		}
	}
	if raws[0]["id"] != "seed-001" {
		t.Errorf("first id = %v, want seed-001", raws[0]["id"])
	}
}

func TestGenerateNonPositive(t *testing.T) {
	for _, n := range []int{0, -3} {
		if got := Generate(n); len(got) != 0 {
			t.Errorf("Generate(%d) len = %d, want 0", n, len(got))
		}
	}
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tasks.json")
	if err := Write(path, 10); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := Fetch(context.Background(), path)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	// The written file must decode back to the generated records.
	if len(data) == 0 || data[0] != '[' {
		t.Fatalf("written file is not a JSON array: %q", data[:min(20, len(data))])
	}
}
