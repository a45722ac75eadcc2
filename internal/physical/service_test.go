package physical_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/pillars/internal/physical"
)

func intPtr(n int) *int           { return &n }
func floatPtr(f float64) *float64 { return &f }

func testSeed() physical.Seed {
	return physical.Seed{
		Workouts: []physical.Workout{
			{
				ID: 1, Type: "Force", Description: "Musculation - Haut du corps",
				Duration: "45 min", Completed: true,
				Sets: intPtr(4), Reps: intPtr(12), Weight: floatPtr(60),
			},
			{ID: 2, Type: "Cardio", Description: "Course à pied", Duration: "30 min"},
		},
		Goals: []physical.Goal{
			{ID: 1, Name: "Poids", Current: 75, Target: 70, Unit: "kg"},
			{ID: 2, Name: "Force", Current: 80, Target: 100, Unit: "kg"},
		},
		Reminders: []physical.Reminder{
			{ID: 1, Text: "Boire 2L d'eau", Completed: true, Time: "08:00", Recurring: true},
			{ID: 2, Text: "Étirements post-entraînement", Time: "18:00", Recurring: true},
		},
	}
}

func TestService_WorkoutCRUD(t *testing.T) {
	svc := physical.NewService(testSeed())

	created := svc.CreateWorkout(physical.WorkoutParams{
		Type: "Flexibilité", Description: "Yoga matinal", Duration: "20 min",
	})
	assert.Equal(t, 3, created.ID)
	assert.Nil(t, created.Sets)

	updated, err := svc.UpdateWorkout(created.ID, physical.WorkoutParams{
		Type: "Flexibilité", Description: "Yoga matinal", Duration: "25 min",
		Notes: "Focus sur les étirements dorsaux",
	})
	require.NoError(t, err)
	assert.Equal(t, "25 min", updated.Duration)

	svc.DeleteWorkout(created.ID)
	assert.Len(t, svc.ListWorkouts(), 2)

	_, err = svc.UpdateWorkout(99, physical.WorkoutParams{})
	assert.ErrorIs(t, err, physical.ErrNotFound)
}

func TestService_ToggleWorkout(t *testing.T) {
	svc := physical.NewService(testSeed())

	w, err := svc.ToggleWorkoutCompleted(2)
	require.NoError(t, err)
	assert.True(t, w.Completed)

	w, err = svc.ToggleWorkoutCompleted(2)
	require.NoError(t, err)
	assert.False(t, w.Completed)
}

func TestService_GoalProgress(t *testing.T) {
	svc := physical.NewService(testSeed())

	g, err := svc.GetGoal(2)
	require.NoError(t, err)
	assert.Equal(t, 80, svc.GoalProgress(g))

	// Zero target does not blow up.
	assert.Equal(t, 0, svc.GoalProgress(physical.Goal{Current: 10}))

	// Current past target reads over 100.
	assert.Equal(t, 107, svc.GoalProgress(physical.Goal{Current: 75, Target: 70}))
}

func TestService_ReminderCRUD(t *testing.T) {
	svc := physical.NewService(testSeed())

	created := svc.CreateReminder(physical.ReminderParams{
		Text: "8h de sommeil", Time: "22:00", Recurring: true,
	})
	assert.Equal(t, 3, created.ID)

	r, err := svc.ToggleReminderCompleted(created.ID)
	require.NoError(t, err)
	assert.True(t, r.Completed)

	svc.DeleteReminder(created.ID)
	assert.Len(t, svc.ListReminders(), 2)
}

func TestService_Summarize(t *testing.T) {
	svc := physical.NewService(testSeed())

	sum := svc.Summarize()
	assert.Equal(t, 1, sum.WorkoutsCompleted)
	assert.Equal(t, 2, sum.WorkoutsTotal)
	// Goal progress: 107% and 80% -> average 94%.
	assert.Equal(t, 94, sum.AverageGoalProgress)
	assert.Equal(t, 1, sum.RemindersCompleted)
	assert.Equal(t, 2, sum.RemindersTotal)
}
