// Package task defines the Task record and the pure computation pipeline
// over it: normalization of loosely-typed raw records, per-record and
// aggregate derived metrics, and the display sort order.
//
// Everything in this package is a pure function of its input. Normalization
// in particular is deterministic: the same raw input always produces the
// same output, including generated identifiers and fallback timestamps, so
// repeated seeding of a session never drifts.
//
// The core types are [Task] (the strict internal record shape), [DerivedTask]
// (a Task plus computed figures, never persisted), and [Metrics] (aggregate
// figures recomputed wholesale from the full collection).
//
// Usage:
//
//	tasks := task.Normalize(task.DecodeRaw(data))
//	derived := task.DeriveAll(tasks)
//	task.SortDerived(derived)
//	metrics := task.ComputeMetrics(tasks)
package task
