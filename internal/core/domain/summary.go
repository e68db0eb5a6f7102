package domain

import (
	"math"
	"sort"
	"time"
)

// TaskDetail is the per-task outcome of a weekly review: how many times the
// task was due in the window, how many completions were recorded, and which
// due dates went unmet. It is computed fresh on every request, never stored.
type TaskDetail struct {
	Task         *Task
	Expected     int
	Completed    int
	MissingDates []time.Time
}

// Percentage is the completion rate rounded half-up. A task due zero times
// is vacuously perfect: nothing was due, nothing was missed.
func (d TaskDetail) Percentage() int {
	if d.Expected == 0 {
		return 100
	}
	return int(math.Round(float64(d.Completed) * 100 / float64(d.Expected)))
}

func (d TaskDetail) Perfect() bool {
	return d.Percentage() == 100
}

// WeeklySummaryResult aggregates a child's TaskDetails over one week window.
// TaskDetails keeps the enumeration order of the underlying task listing;
// the perfect/incomplete splits are derived views, not stored state.
type WeeklySummaryResult struct {
	Window         WeekWindow
	TotalExpected  int
	TotalCompleted int
	TaskDetails    []TaskDetail
}

func NewWeeklySummaryResult(window WeekWindow, details []TaskDetail) *WeeklySummaryResult {
	result := &WeeklySummaryResult{
		Window:      window,
		TaskDetails: details,
	}
	for _, d := range details {
		result.TotalExpected += d.Expected
		result.TotalCompleted += d.Completed
	}
	return result
}

func (r *WeeklySummaryResult) OverallPercentage() int {
	if r.TotalExpected == 0 {
		return 100
	}
	return int(math.Round(float64(r.TotalCompleted) * 100 / float64(r.TotalExpected)))
}

func (r *WeeklySummaryResult) Perfect() bool {
	return r.OverallPercentage() == 100
}

func (r *WeeklySummaryResult) PerfectTasks() []TaskDetail {
	var perfect []TaskDetail
	for _, d := range r.TaskDetails {
		if d.Perfect() {
			perfect = append(perfect, d)
		}
	}
	return perfect
}

// IncompleteTasks lists the non-perfect details sorted by percentage
// descending; ties keep their enumeration order.
func (r *WeeklySummaryResult) IncompleteTasks() []TaskDetail {
	var incomplete []TaskDetail
	for _, d := range r.TaskDetails {
		if !d.Perfect() {
			incomplete = append(incomplete, d)
		}
	}

	sort.SliceStable(incomplete, func(i, j int) bool {
		return incomplete[i].Percentage() > incomplete[j].Percentage()
	})

	return incomplete
}
