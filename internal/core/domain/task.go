package domain

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTaskNameEmpty      = errors.New("task name cannot be empty")
	ErrTaskNameTooLong    = errors.New("task name is too long (max 100 chars)")
	ErrTaskInvalidChildID = errors.New("invalid child id")
	ErrInvalidFrequency   = errors.New("invalid frequency (must be daily, weekend, or specific_days)")
	ErrInvalidTimeOfDay   = errors.New("invalid time of day (must be morning, afternoon, or evening)")
	ErrInvalidWeekdays    = errors.New("invalid weekdays (must be 0-6, Sunday=0)")
	ErrInvalidPosition    = errors.New("position cannot be negative")
)

const (
	TimeOfDayMorning   = "morning"
	TimeOfDayAfternoon = "afternoon"
	TimeOfDayEvening   = "evening"

	FreqDaily        = "daily"
	FreqWeekend      = "weekend"
	FreqSpecificDays = "specific_days"

	MaxTaskNameLen = 100
)

// timeOfDayRank fixes the display order of the day parts.
var timeOfDayRank = map[string]int{
	TimeOfDayMorning:   0,
	TimeOfDayAfternoon: 1,
	TimeOfDayEvening:   2,
}

type Task struct {
	ID        string    `json:"id"`
	ChildID   string    `json:"child_id"`
	Name      string    `json:"name"`
	TimeOfDay string    `json:"time_of_day"`
	Frequency string    `json:"frequency"`
	Weekdays  []int     `json:"weekdays,omitempty"`
	Active    bool      `json:"active"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// normalizeWeekdays dedups and sorts so the stored set has one canonical form.
func normalizeWeekdays(days []int) []int {
	if len(days) == 0 {
		return nil
	}

	uniqueMap := make(map[int]bool)
	var uniqueDays []int
	for _, d := range days {
		if !uniqueMap[d] {
			uniqueMap[d] = true
			uniqueDays = append(uniqueDays, d)
		}
	}

	sort.Ints(uniqueDays)
	return uniqueDays
}

func validateTask(name, timeOfDay, frequency string, weekdays []int, position int) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrTaskNameEmpty
	}
	if len(trimmed) > MaxTaskNameLen {
		return ErrTaskNameTooLong
	}

	switch timeOfDay {
	case TimeOfDayMorning, TimeOfDayAfternoon, TimeOfDayEvening:
	default:
		return ErrInvalidTimeOfDay
	}

	switch frequency {
	case FreqDaily, FreqWeekend, FreqSpecificDays:
	default:
		return ErrInvalidFrequency
	}

	for _, day := range weekdays {
		if day < 0 || day > 6 {
			return ErrInvalidWeekdays
		}
	}

	if position < 0 {
		return ErrInvalidPosition
	}

	return nil
}

func NewTask(childID, name, timeOfDay, frequency string, weekdays []int, position int) (*Task, error) {
	if childID == "" {
		return nil, ErrTaskInvalidChildID
	}

	if timeOfDay == "" {
		timeOfDay = TimeOfDayAfternoon
	}
	if frequency == "" {
		frequency = FreqDaily
	}

	if err := validateTask(name, timeOfDay, frequency, weekdays, position); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	return &Task{
		ID:        uuid.New().String(),
		ChildID:   childID,
		Name:      strings.TrimSpace(name),
		TimeOfDay: timeOfDay,
		Frequency: frequency,
		Weekdays:  normalizeWeekdays(weekdays),
		Active:    true,
		Position:  position,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (t *Task) Update(name, timeOfDay, frequency string, weekdays []int) error {
	if err := validateTask(name, timeOfDay, frequency, weekdays, t.Position); err != nil {
		return err
	}

	t.Name = strings.TrimSpace(name)
	t.TimeOfDay = timeOfDay
	t.Frequency = frequency
	t.Weekdays = normalizeWeekdays(weekdays)
	t.UpdatedAt = time.Now().UTC()

	return nil
}

func (t *Task) ChangePosition(newPosition int) error {
	if newPosition < 0 {
		return ErrInvalidPosition
	}

	t.Position = newPosition
	t.UpdatedAt = time.Now().UTC()
	return nil
}

// Deactivate soft-disables the task; it stays persisted but drops out of the
// daily and weekly views.
func (t *Task) Deactivate() {
	if !t.Active {
		return
	}
	t.Active = false
	t.UpdatedAt = time.Now().UTC()
}

func (t *Task) Activate() {
	if t.Active {
		return
	}
	t.Active = true
	t.UpdatedAt = time.Now().UTC()
}

// ValidFrequency reports whether the persisted frequency is one of the
// recognized values. A false return is a data-integrity anomaly.
func (t *Task) ValidFrequency() bool {
	switch t.Frequency {
	case FreqDaily, FreqWeekend, FreqSpecificDays:
		return true
	default:
		return false
	}
}

// DueOn answers whether the task is due on the given calendar date.
// Weekday numbering is Sunday=0..Saturday=6, the same encoding the stored
// weekday set uses. A specific_days task with no days configured is never
// due, and an unrecognized frequency is treated as not-due so one corrupted
// row cannot take down a whole review.
func (t *Task) DueOn(date time.Time) bool {
	switch t.Frequency {
	case FreqDaily:
		return true
	case FreqWeekend:
		wd := date.Weekday()
		return wd == time.Saturday || wd == time.Sunday
	case FreqSpecificDays:
		wd := int(date.Weekday())
		for _, day := range t.Weekdays {
			if day == wd {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// SortTasks orders tasks for display: time of day first (morning <
// afternoon < evening), then position, then name as the final tie-break.
func SortTasks(tasks []*Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if timeOfDayRank[a.TimeOfDay] != timeOfDayRank[b.TimeOfDay] {
			return timeOfDayRank[a.TimeOfDay] < timeOfDayRank[b.TimeOfDay]
		}
		if a.Position != b.Position {
			return a.Position < b.Position
		}
		return a.Name < b.Name
	})
}
