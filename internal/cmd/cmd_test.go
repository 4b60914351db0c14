package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/hmartin/tasktally/internal/errors"
	"github.com/hmartin/tasktally/internal/seed"
	"github.com/hmartin/tasktally/internal/task"
	"github.com/hmartin/tasktally/internal/testutil"
)

// executeCommand runs a cobra command with args and returns captured output
func executeCommand(root *cobra.Command, args ...string) (output string, err error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err = root.Execute()
	return buf.String(), err
}

// resetFlags restores the package-level flag variables to their defaults.
// pflag keeps the last parsed value across Execute calls.
func resetFlags() {
	statsJSON = false
	listJSON = false
	listSort = ""
	seedCount = seed.DefaultCount
	seedOut = "data/tasks.json"
}

func TestRootCommand(t *testing.T) {
	if rootCmd == nil {
		t.Fatal("rootCmd is nil")
	}

	if rootCmd.Use != "tasktally" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "tasktally")
	}

	expectedCmds := []string{"dash", "stats", "list", "seed"}
	cmdMap := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		cmdMap[cmd.Name()] = true
	}

	for _, expected := range expectedCmds {
		if !cmdMap[expected] {
			t.Errorf("expected subcommand %q not found", expected)
		}
	}
}

func TestSeedCommand(t *testing.T) {
	defer resetFlags()

	out := filepath.Join(t.TempDir(), "data", "tasks.json")
	output, err := executeCommand(rootCmd, "seed", "--count", "7", "--out", out)
	if err != nil {
		t.Fatalf("seed command failed: %v\nOutput: %s", err, output)
	}
	if !strings.Contains(output, "7 records") {
		t.Errorf("output %q should report the record count", output)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("seed file not written: %v", err)
	}
	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		t.Fatalf("seed file is not a JSON array: %v", err)
	}
	if len(records) != 7 {
		t.Errorf("seed file has %d records, want 7", len(records))
	}
}

func TestSeedCommandRejectsNonPositiveCount(t *testing.T) {
	defer resetFlags()

	_, err := executeCommand(rootCmd, "seed", "--count", "0", "--out", filepath.Join(t.TempDir(), "t.json"))
	if err == nil {
		t.Fatal("seed --count 0 should fail")
	}
	if !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("err = %v, want an invalid-input validation error", err)
	}
	if !strings.Contains(err.Error(), "count") {
		t.Errorf("err %q should name the offending flag", err)
	}
}

func TestStatsCommandText(t *testing.T) {
	defer resetFlags()

	source := testutil.WriteSeedFile(t, testutil.SampleRecords())
	output, err := executeCommand(rootCmd, "stats", "--source", source)
	if err != nil {
		t.Fatalf("stats command failed: %v\nOutput: %s", err, output)
	}

	for _, want := range []string{"COLLECTION SUMMARY", "PERFORMANCE", "Total Revenue:", "Grade:", "TOP TASKS BY ROI"} {
		if !strings.Contains(output, want) {
			t.Errorf("stats output missing %q\nOutput: %s", want, output)
		}
	}
	if !strings.Contains(output, "Tasks: 3 (1 done)") {
		t.Errorf("stats output should count tasks and done tasks\nOutput: %s", output)
	}
}

func TestStatsCommandJSON(t *testing.T) {
	defer resetFlags()

	source := testutil.WriteSeedFile(t, testutil.SampleRecords())
	output, err := executeCommand(rootCmd, "stats", "--source", source, "--json")
	if err != nil {
		t.Fatalf("stats --json failed: %v\nOutput: %s", err, output)
	}

	var got struct {
		Source  string       `json:"source"`
		Metrics task.Metrics `json:"metrics"`
	}
	if err := json.Unmarshal([]byte(output), &got); err != nil {
		t.Fatalf("stats --json produced invalid JSON: %v\nOutput: %s", err, output)
	}
	if got.Source != source {
		t.Errorf("source = %q, want %q", got.Source, source)
	}
	if got.Metrics.TaskCount != 3 {
		t.Errorf("task_count = %d, want 3", got.Metrics.TaskCount)
	}
	if got.Metrics.TotalRevenue != 240 {
		t.Errorf("total_revenue = %v, want 240", got.Metrics.TotalRevenue)
	}
}

func TestListCommand(t *testing.T) {
	defer resetFlags()

	source := testutil.WriteSeedFile(t, testutil.SampleRecords())
	output, err := executeCommand(rootCmd, "list", "--source", source)
	if err != nil {
		t.Fatalf("list command failed: %v\nOutput: %s", err, output)
	}

	for _, title := range []string{"Fix login flow", "Migrate billing database", "Write onboarding docs"} {
		if !strings.Contains(output, title) {
			t.Errorf("list output missing task %q", title)
		}
	}

	// Default ordering is ROI descending: docs (30) above login (10).
	docsIdx := strings.Index(output, "Write onboarding docs")
	loginIdx := strings.Index(output, "Fix login flow")
	if docsIdx > loginIdx {
		t.Error("list should order by ROI descending by default")
	}
}

func TestListCommandJSON(t *testing.T) {
	defer resetFlags()

	source := testutil.WriteSeedFile(t, testutil.SampleRecords())
	output, err := executeCommand(rootCmd, "list", "--source", source, "--json")
	if err != nil {
		t.Fatalf("list --json failed: %v\nOutput: %s", err, output)
	}

	var got []task.DerivedTask
	if err := json.Unmarshal([]byte(output), &got); err != nil {
		t.Fatalf("list --json produced invalid JSON: %v\nOutput: %s", err, output)
	}
	if len(got) != 3 {
		t.Fatalf("got %d tasks, want 3", len(got))
	}
	if got[0].ID != "write-docs" {
		t.Errorf("first task = %s, want write-docs (highest ROI)", got[0].ID)
	}
}

func TestListCommandInvalidSort(t *testing.T) {
	defer resetFlags()

	source := testutil.WriteSeedFile(t, testutil.SampleRecords())
	_, err := executeCommand(rootCmd, "list", "--source", source, "--sort", "alphabetical")
	if err == nil {
		t.Fatal("list --sort alphabetical should fail")
	}
	if !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("err = %v, want an invalid-input validation error", err)
	}
}

func TestListCommandSingleTask(t *testing.T) {
	defer resetFlags()

	source := testutil.WriteSeedFile(t, testutil.SampleRecords())
	output, err := executeCommand(rootCmd, "list", "fix-login", "--source", source, "--json")
	if err != nil {
		t.Fatalf("list fix-login failed: %v\nOutput: %s", err, output)
	}

	var got task.DerivedTask
	if err := json.Unmarshal([]byte(output), &got); err != nil {
		t.Fatalf("invalid JSON: %v\nOutput: %s", err, output)
	}
	if got.ID != "fix-login" || got.Title != "Fix login flow" {
		t.Errorf("got %s (%q), want fix-login", got.ID, got.Title)
	}
}

func TestListCommandUnknownID(t *testing.T) {
	defer resetFlags()

	source := testutil.WriteSeedFile(t, testutil.SampleRecords())
	_, err := executeCommand(rootCmd, "list", "no-such-task", "--source", source)
	if err == nil {
		t.Fatal("list with an unknown id should fail")
	}
	if !errors.Is(err, errors.ErrTaskNotFound) {
		t.Errorf("err = %v, want a task-not-found error", err)
	}
	if !strings.Contains(err.Error(), "no-such-task") {
		t.Errorf("err %q should name the missing id", err)
	}
}

func TestListCommandSortByRevenue(t *testing.T) {
	defer resetFlags()

	source := testutil.WriteSeedFile(t, testutil.SampleRecords())
	output, err := executeCommand(rootCmd, "list", "--source", source, "--sort", "revenue", "--json")
	if err != nil {
		t.Fatalf("list --sort revenue failed: %v\nOutput: %s", err, output)
	}

	var got []task.DerivedTask
	if err := json.Unmarshal([]byte(output), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got[0].ID != "fix-login" {
		t.Errorf("first task = %s, want fix-login (highest revenue)", got[0].ID)
	}
}

func TestStatsCommandFallbackNotice(t *testing.T) {
	defer resetFlags()

	missing := filepath.Join(t.TempDir(), "absent.json")
	output, err := executeCommand(rootCmd, "stats", "--source", missing)
	if err != nil {
		t.Fatalf("stats with missing source should fall back, got: %v", err)
	}
	if !strings.Contains(output, "warning:") {
		t.Errorf("expected fallback warning in output\nOutput: %s", output)
	}
	if !strings.Contains(output, "Tasks: 50") {
		t.Errorf("fallback should seed 50 generated tasks\nOutput: %s", output)
	}
}
