package workers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chorechart/internal/core/domain"
)

func TestResequence(t *testing.T) {
	task := func(name, timeOfDay string, position int) *domain.Task {
		return &domain.Task{ID: name, Name: name, TimeOfDay: timeOfDay, Position: position}
	}

	t.Run("Empty input yields no changes", func(t *testing.T) {
		assert.Empty(t, resequence(nil))
	})

	t.Run("Compacts sparse positions per group keeping relative order", func(t *testing.T) {
		a := task("Make bed", domain.TimeOfDayMorning, 7)
		b := task("Brush teeth", domain.TimeOfDayMorning, 35)
		c := task("Set table", domain.TimeOfDayEvening, 2)

		changed := resequence([]*domain.Task{a, b, c})

		require.Len(t, changed, 3)
		assert.Equal(t, 10, a.Position)
		assert.Equal(t, 20, b.Position)
		assert.Equal(t, 10, c.Position)
	})

	t.Run("Already sequenced tasks are left untouched", func(t *testing.T) {
		a := task("Make bed", domain.TimeOfDayMorning, 10)
		b := task("Brush teeth", domain.TimeOfDayMorning, 20)

		changed := resequence([]*domain.Task{a, b})

		assert.Empty(t, changed)
	})

	t.Run("Position ties break by name before renumbering", func(t *testing.T) {
		z := task("Z chore", domain.TimeOfDayAfternoon, 0)
		a := task("A chore", domain.TimeOfDayAfternoon, 0)

		changed := resequence([]*domain.Task{z, a})

		require.Len(t, changed, 2)
		assert.Equal(t, 10, a.Position)
		assert.Equal(t, 20, z.Position)
	})
}
