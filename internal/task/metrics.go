package task

// Grade is a discrete performance label derived from average ROI.
type Grade string

const (
	// GradeExcellent is awarded for an average ROI of 2.0 or better.
	GradeExcellent Grade = "Excellent"

	// GradeGood is awarded for an average ROI of at least 1.0.
	GradeGood Grade = "Good"

	// GradeNeedsImprovement is awarded for a non-negative average ROI
	// below 1.0.
	GradeNeedsImprovement Grade = "Needs Improvement"

	// GradePoor is awarded for a negative average ROI.
	GradePoor Grade = "Poor"

	// GradeNone is returned for an empty collection.
	GradeNone Grade = "No Data"
)

// String returns the string representation of the grade.
func (g Grade) String() string {
	return string(g)
}

// Metrics is an aggregate snapshot over the full task collection. It is
// recomputed wholesale on every store change, never incrementally.
type Metrics struct {
	// TotalRevenue is the sum of revenue over all tasks.
	TotalRevenue float64 `json:"total_revenue"`

	// TotalTimeTaken is the sum of hours over all tasks.
	TotalTimeTaken float64 `json:"total_time_taken"`

	// TimeEfficiencyPct is the share of total time spent on done tasks,
	// expressed as 0-100.
	TimeEfficiencyPct float64 `json:"time_efficiency_pct"`

	// RevenuePerHour is TotalRevenue / TotalTimeTaken.
	RevenuePerHour float64 `json:"revenue_per_hour"`

	// AverageROI is the mean per-task ROI.
	AverageROI float64 `json:"average_roi"`

	// PerformanceGrade is the label for AverageROI, see [GradeFor].
	PerformanceGrade Grade `json:"performance_grade"`

	// TaskCount is the number of tasks the snapshot covers.
	TaskCount int `json:"task_count"`

	// DoneCount is the number of done tasks.
	DoneCount int `json:"done_count"`
}

// ROI computes revenue per hour invested for a single task. The function is
// total over all finite inputs: a non-positive timeTaken yields 0 rather
// than an infinity or NaN. Normalized tasks always have timeTaken > 0, so
// the guard only fires on hand-built values.
func ROI(revenue, timeTaken float64) float64 {
	if timeTaken <= 0 {
		return 0
	}
	return revenue / timeTaken
}

// GradeFor maps an average ROI onto a discrete performance grade. The bands
// cover every real input:
//
//	>= 2.0  Excellent
//	>= 1.0  Good
//	>= 0.0  Needs Improvement
//	<  0.0  Poor
func GradeFor(averageROI float64) Grade {
	switch {
	case averageROI >= 2.0:
		return GradeExcellent
	case averageROI >= 1.0:
		return GradeGood
	case averageROI >= 0:
		return GradeNeedsImprovement
	default:
		return GradePoor
	}
}

// ComputeMetrics aggregates the full collection into a Metrics snapshot.
// An empty collection returns the zero snapshot with [GradeNone] rather
// than dividing by zero.
func ComputeMetrics(tasks []Task) Metrics {
	if len(tasks) == 0 {
		return Metrics{PerformanceGrade: GradeNone}
	}

	m := Metrics{TaskCount: len(tasks)}
	var doneTime, roiSum float64
	for _, t := range tasks {
		m.TotalRevenue += t.Revenue
		m.TotalTimeTaken += t.TimeTaken
		roiSum += ROI(t.Revenue, t.TimeTaken)
		if t.Status.IsDone() {
			m.DoneCount++
			doneTime += t.TimeTaken
		}
	}

	// TotalTimeTaken > 0 follows from the timeTaken invariant, but the
	// guard stays: Metrics must be total even over hand-built tasks.
	if m.TotalTimeTaken > 0 {
		m.TimeEfficiencyPct = doneTime / m.TotalTimeTaken * 100
		m.RevenuePerHour = m.TotalRevenue / m.TotalTimeTaken
	}

	m.AverageROI = roiSum / float64(len(tasks))
	m.PerformanceGrade = GradeFor(m.AverageROI)
	return m
}
