package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTaskDetail_Percentage(t *testing.T) {
	t.Run("Rounds half up: 3 of 7 is 43", func(t *testing.T) {
		d := TaskDetail{Expected: 7, Completed: 3}
		assert.Equal(t, 43, d.Percentage()) // 42.857 -> 43
		assert.False(t, d.Perfect())
	})

	t.Run("Zero expected is vacuously perfect", func(t *testing.T) {
		d := TaskDetail{Expected: 0, Completed: 0}
		assert.Equal(t, 100, d.Percentage())
		assert.True(t, d.Perfect())
	})

	t.Run("Full completion is perfect", func(t *testing.T) {
		d := TaskDetail{Expected: 2, Completed: 2}
		assert.Equal(t, 100, d.Percentage())
		assert.True(t, d.Perfect())
	})

	t.Run("Exact halves round up", func(t *testing.T) {
		d := TaskDetail{Expected: 8, Completed: 1} // 12.5 -> 13
		assert.Equal(t, 13, d.Percentage())
	})
}

func TestWeeklySummaryResult(t *testing.T) {
	window := NewWeekWindow(NewDate(2026, time.August, 2))

	t.Run("Totals sum across details", func(t *testing.T) {
		details := []TaskDetail{
			{Expected: 7, Completed: 3},
			{Expected: 2, Completed: 2},
		}

		result := NewWeeklySummaryResult(window, details)

		assert.Equal(t, 9, result.TotalExpected)
		assert.Equal(t, 5, result.TotalCompleted)
		assert.Equal(t, 56, result.OverallPercentage()) // 55.55 -> 56
	})

	t.Run("Empty result is perfect overall", func(t *testing.T) {
		result := NewWeeklySummaryResult(window, nil)

		assert.Equal(t, 0, result.TotalExpected)
		assert.Equal(t, 100, result.OverallPercentage())
		assert.True(t, result.Perfect())
		assert.Empty(t, result.PerfectTasks())
		assert.Empty(t, result.IncompleteTasks())
	})

	t.Run("Perfect and incomplete split by percentage", func(t *testing.T) {
		perfect := TaskDetail{Task: &Task{Name: "Make bed"}, Expected: 7, Completed: 7}
		vacuous := TaskDetail{Task: &Task{Name: "Mow lawn"}, Expected: 0, Completed: 0}
		missed := TaskDetail{Task: &Task{Name: "Clean room"}, Expected: 2, Completed: 0}

		result := NewWeeklySummaryResult(window, []TaskDetail{perfect, missed, vacuous})

		perfectTasks := result.PerfectTasks()
		assert.Len(t, perfectTasks, 2)
		assert.Equal(t, "Make bed", perfectTasks[0].Task.Name)
		assert.Equal(t, "Mow lawn", perfectTasks[1].Task.Name)

		incomplete := result.IncompleteTasks()
		assert.Len(t, incomplete, 1)
		assert.Equal(t, "Clean room", incomplete[0].Task.Name)
	})

	t.Run("Incomplete tasks sort descending by percentage", func(t *testing.T) {
		low := TaskDetail{Task: &Task{Name: "low"}, Expected: 5, Completed: 1}   // 20%
		high := TaskDetail{Task: &Task{Name: "high"}, Expected: 5, Completed: 4} // 80%

		result := NewWeeklySummaryResult(window, []TaskDetail{low, high})

		incomplete := result.IncompleteTasks()
		assert.Equal(t, "high", incomplete[0].Task.Name)
		assert.Equal(t, "low", incomplete[1].Task.Name)
	})

	t.Run("Ties keep enumeration order (stable sort)", func(t *testing.T) {
		first := TaskDetail{Task: &Task{Name: "first"}, Expected: 2, Completed: 1}
		second := TaskDetail{Task: &Task{Name: "second"}, Expected: 4, Completed: 2}
		third := TaskDetail{Task: &Task{Name: "third"}, Expected: 10, Completed: 5}

		result := NewWeeklySummaryResult(window, []TaskDetail{first, second, third})

		incomplete := result.IncompleteTasks()
		assert.Equal(t, "first", incomplete[0].Task.Name)
		assert.Equal(t, "second", incomplete[1].Task.Name)
		assert.Equal(t, "third", incomplete[2].Task.Name)
	})
}
