// Package store holds the session's task collection and owns every write
// to it. The Store applies synchronous CRUD mutations, keeps a single-slot
// last-deleted holding area for one-level undo, and recomputes the derived
// view and aggregate metrics wholesale after every change.
//
// A Store is seeded at most once per session via [Store.Seed], guarded by a
// one-shot flag: no matter how many times the UI lifecycle re-fires, the
// fetch-normalize-seed pass runs exactly once. Fetch failures fall back to
// the deterministic synthetic set and are retained for display via
// [Store.SeedErr].
//
// All methods are safe for concurrent use via an internal mutex, and every
// read returns copies so callers can never alias internal state.
//
// Usage:
//
//	s := store.New()
//	_ = s.Seed(ctx, "data/tasks.json")
//
//	added := s.Add(store.Input{Title: "Renew Acme", Revenue: 1200, TimeTaken: 8})
//	s.Delete(added.ID)
//	s.UndoDelete()
//
//	rows := s.Derived() // sorted for display
//	m := s.Metrics()
package store
