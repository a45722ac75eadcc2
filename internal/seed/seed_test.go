package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/pillars/internal/financial"
	"github.com/MrJamesThe3rd/pillars/internal/seed"
)

func TestLoad(t *testing.T) {
	data, err := seed.Load()
	require.NoError(t, err)

	assert.Len(t, data.Financial.Transactions, 2)
	assert.Len(t, data.Financial.Budgets, 2)
	assert.Len(t, data.Financial.Goals, 2)
	assert.Len(t, data.Financial.Investments, 2)
	assert.Len(t, data.Intellectual.Readings, 1)
	assert.Len(t, data.Intellectual.Courses, 1)
	assert.Len(t, data.Intellectual.Flashcards, 1)
	assert.Len(t, data.Intellectual.MindMaps, 1)
	assert.Len(t, data.Physical.Workouts, 3)
	assert.Len(t, data.Physical.Goals, 3)
	assert.Len(t, data.Physical.Reminders, 3)
	assert.Len(t, data.Spiritual.Meditations, 1)
	assert.Len(t, data.Spiritual.Goals, 1)
	assert.Len(t, data.Spiritual.Quotes, 1)
	assert.Len(t, data.Spiritual.Gratitude, 1)
	assert.Len(t, data.Spiritual.Habits, 1)
}

func TestLoad_FieldFidelity(t *testing.T) {
	data, err := seed.Load()
	require.NoError(t, err)

	salary := data.Financial.Transactions[0]
	assert.Equal(t, 1, salary.ID)
	assert.Equal(t, financial.TypeIncome, salary.Type)
	assert.Equal(t, int64(300000), salary.Amount)
	assert.Equal(t, financial.FrequencyMonthly, salary.Frequency)
	assert.True(t, salary.Recurring)

	reading := data.Intellectual.Readings[0]
	assert.Equal(t, "L'Art de la Guerre", reading.Title)
	assert.Equal(t, 130, reading.PagesRead)

	workout := data.Physical.Workouts[0]
	require.NotNil(t, workout.Sets)
	assert.Equal(t, 4, *workout.Sets)
	require.NotNil(t, workout.Weight)
	assert.InDelta(t, 60.0, *workout.Weight, 0.001)

	habit := data.Spiritual.Habits[0]
	assert.Equal(t, 5, habit.Streak)
	assert.Equal(t, 15, habit.TotalCompletions)
	assert.Equal(t, "2024-03-15", habit.LastCompleted)

	gratitude := data.Spiritual.Gratitude[0]
	require.NotEmpty(t, gratitude.Entries)
	assert.Len(t, gratitude.Entries, 3)
}
