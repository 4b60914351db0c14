package task

import "time"

// Priority represents the urgency bucket assigned to a task.
type Priority string

const (
	// PriorityLow indicates the task can wait.
	PriorityLow Priority = "low"

	// PriorityMedium indicates the task should be handled in normal order.
	PriorityMedium Priority = "medium"

	// PriorityHigh indicates the task should be handled first.
	PriorityHigh Priority = "high"
)

// String returns the string representation of the priority.
func (p Priority) String() string {
	return string(p)
}

// Status represents the progress state of a task.
type Status string

const (
	// StatusNotStarted indicates no work has begun on the task.
	StatusNotStarted Status = "not_started"

	// StatusInProgress indicates the task is actively being worked.
	StatusInProgress Status = "in_progress"

	// StatusDone indicates the task is finished.
	StatusDone Status = "done"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsDone returns true if this status represents finished work.
func (s Status) IsDone() bool {
	return s == StatusDone
}

// Task is the strict internal record shape. All instances either come out of
// [Normalize] or are constructed by the store's mutation methods, so the
// invariants below hold everywhere downstream:
//
//   - TimeTaken is always > 0.
//   - CreatedAt is always set.
//   - A done task always has a CompletedAt. The converse is not forced:
//     normalization keeps a supplied completedAt even on a non-done record,
//     though store mutations clear it when a task leaves done.
type Task struct {
	// ID is an opaque unique identifier.
	ID string `json:"id"`

	// Title is the display name.
	Title string `json:"title"`

	// Revenue is the income attributed to the task. May be zero or negative.
	Revenue float64 `json:"revenue"`

	// TimeTaken is the hours invested. Always > 0.
	TimeTaken float64 `json:"time_taken"`

	// Priority is the urgency bucket. Passed through from input as-is;
	// unknown values are surfaced by the presentation layer, not corrected.
	Priority Priority `json:"priority"`

	// Status is the progress state. Passed through from input as-is.
	Status Status `json:"status"`

	// Notes is optional free text.
	Notes string `json:"notes,omitempty"`

	// CreatedAt is when the task was created.
	CreatedAt time.Time `json:"created_at"`

	// CompletedAt is when the task was finished. Always set for done tasks;
	// may also carry a supplied timestamp on non-done records.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// DerivedTask is a Task augmented with computed figures. Derived tasks are
// ephemeral: they are recomputed from the full collection on every change
// and never persisted.
type DerivedTask struct {
	Task

	// ROI is revenue per hour invested. Zero when the ratio is degenerate,
	// see [ROI].
	ROI float64 `json:"roi"`
}

// Derive computes the derived figures for a single task.
func Derive(t Task) DerivedTask {
	return DerivedTask{
		Task: t,
		ROI:  ROI(t.Revenue, t.TimeTaken),
	}
}

// DeriveAll computes derived figures for every task, preserving order.
// Always returns a non-nil slice.
func DeriveAll(tasks []Task) []DerivedTask {
	derived := make([]DerivedTask, len(tasks))
	for i, t := range tasks {
		derived[i] = Derive(t)
	}
	return derived
}
