package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hmartin/tasktally/internal/logging"
	"github.com/hmartin/tasktally/internal/task"
)

// Store manages the session's task collection. All methods are safe for
// concurrent use via an internal mutex. Mutations are synchronous and
// total: each one either fully applies or is a no-op, and the derived view
// and metrics are recomputed before the method returns.
type Store struct {
	mu          sync.Mutex
	tasks       []task.Task
	lastDeleted *task.Task

	// Recomputed wholesale after every mutation.
	derived []task.DerivedTask
	metrics task.Metrics
	sortKey task.SortKey

	// One-shot seeding state, see loader.go.
	seeded  bool
	seedErr error
	source  string

	now func() time.Time
	log *logging.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used to stamp createdAt/completedAt on
// mutations. Tests use this for reproducible timestamps; normalization
// never touches the clock at all.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger attaches a logger for mutation and seeding events.
func WithLogger(log *logging.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithSortKey sets the initial display sort key. Defaults to ROI.
func WithSortKey(key task.SortKey) Option {
	return func(s *Store) { s.sortKey = key }
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		tasks:   []task.Task{},
		sortKey: task.SortByROI,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.mu.Lock()
	s.recomputeLocked()
	s.mu.Unlock()
	return s
}

// Input is the caller-supplied shape for Add. ID is optional; everything
// else is taken as-is and then forced onto the Task invariants.
type Input struct {
	ID        string
	Title     string
	Revenue   float64
	TimeTaken float64
	Priority  task.Priority
	Status    task.Status
	Notes     string
}

// Patch carries the fields an Update should merge onto an existing task.
// Nil fields are left untouched.
type Patch struct {
	Title       *string
	Revenue     *float64
	TimeTaken   *float64
	Priority    *task.Priority
	Status      *task.Status
	Notes       *string
	CompletedAt *time.Time
}

// Add appends a new task built from input. A missing ID gets a generated
// UUID, timeTaken is coerced onto the > 0 invariant, createdAt is stamped
// with the current time, and completedAt is set iff the status is done.
// Returns a copy of the stored task. Display order is owned by the sort
// comparator, not by insertion order.
func (s *Store) Add(input Input) task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := task.Task{
		ID:        input.ID,
		Title:     input.Title,
		Revenue:   input.Revenue,
		TimeTaken: input.TimeTaken,
		Priority:  input.Priority,
		Status:    input.Status,
		Notes:     input.Notes,
		CreatedAt: s.now(),
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.TimeTaken <= 0 {
		t.TimeTaken = 1
	}
	if t.Status.IsDone() {
		done := t.CreatedAt
		t.CompletedAt = &done
	}

	s.tasks = append(s.tasks, t)
	s.recomputeLocked()

	if s.log != nil {
		s.log.Info("task added", "task_id", t.ID, "title", t.Title)
	}
	return t
}

// Update merges patch onto the task with the given id and returns the
// updated task. An unknown id is a no-op, reported by the false return,
// never an error. A status transition into done without an explicit
// completedAt in the patch stamps the current time; a transition out of
// done clears it. The timeTaken > 0 invariant is re-applied after the
// merge.
func (s *Store) Update(id string, patch Patch) (task.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return task.Task{}, false
	}

	t := &s.tasks[idx]
	wasDone := t.Status.IsDone()

	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Revenue != nil {
		t.Revenue = *patch.Revenue
	}
	if patch.TimeTaken != nil {
		t.TimeTaken = *patch.TimeTaken
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.Notes != nil {
		t.Notes = *patch.Notes
	}
	if patch.CompletedAt != nil {
		completed := *patch.CompletedAt
		t.CompletedAt = &completed
	}

	if t.TimeTaken <= 0 {
		t.TimeTaken = 1
	}

	if t.Status.IsDone() && !wasDone && patch.CompletedAt == nil {
		done := s.now()
		t.CompletedAt = &done
	}
	if !t.Status.IsDone() {
		t.CompletedAt = nil
	}

	s.recomputeLocked()

	if s.log != nil {
		s.log.Info("task updated", "task_id", id)
	}
	cp := *t
	return cp, true
}

// Delete removes the task with the given id and parks a copy in the
// last-deleted slot, overwriting any previous occupant. An unknown id is a
// no-op.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return false
	}

	deleted := s.tasks[idx]
	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	s.lastDeleted = &deleted
	s.recomputeLocked()

	if s.log != nil {
		s.log.Info("task deleted", "task_id", id)
	}
	return true
}

// UndoDelete re-inserts the last deleted task and clears the slot.
// Returns the restored task, or false when the slot is empty.
func (s *Store) UndoDelete() (task.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastDeleted == nil {
		return task.Task{}, false
	}

	restored := *s.lastDeleted
	s.tasks = append(s.tasks, restored)
	s.lastDeleted = nil
	s.recomputeLocked()

	if s.log != nil {
		s.log.Info("delete undone", "task_id", restored.ID)
	}
	return restored, true
}

// ClearLastDeleted drops the last-deleted slot without reinserting. Used
// once the undo affordance has expired or been dismissed.
func (s *Store) ClearLastDeleted() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastDeleted = nil
}

// Tasks returns a copy of the current collection in insertion order.
func (s *Store) Tasks() []task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]task.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Get returns the task with the given id.
func (s *Store) Get(id string) (task.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return task.Task{}, false
	}
	return s.tasks[idx], true
}

// Derived returns the current derived view, already ordered by the active
// sort key. The slice is a copy.
func (s *Store) Derived() []task.DerivedTask {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]task.DerivedTask, len(s.derived))
	copy(out, s.derived)
	return out
}

// Metrics returns the aggregate snapshot for the current collection.
func (s *Store) Metrics() task.Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.metrics
}

// LastDeleted returns the occupant of the undo slot, if any.
func (s *Store) LastDeleted() (task.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastDeleted == nil {
		return task.Task{}, false
	}
	return *s.lastDeleted, true
}

// Len returns the number of tasks in the collection.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// SortKey returns the active display sort key.
func (s *Store) SortKey() task.SortKey {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortKey
}

// SetSortKey changes the display ordering and re-sorts the derived view.
func (s *Store) SetSortKey(key task.SortKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortKey = key
	s.recomputeLocked()
}

// indexLocked returns the position of id in the collection, or -1.
// Callers must hold the mutex.
func (s *Store) indexLocked(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// recomputeLocked rebuilds the derived view and metrics from the full
// collection. Always wholesale, never incremental. Callers must hold the
// mutex.
func (s *Store) recomputeLocked() {
	s.derived = task.DeriveAll(s.tasks)
	task.SortDerivedBy(s.derived, s.sortKey)
	s.metrics = task.ComputeMetrics(s.tasks)
}
