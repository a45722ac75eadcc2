package physical

import (
	"time"

	"github.com/MrJamesThe3rd/pillars/internal/collection"
	"github.com/MrJamesThe3rd/pillars/internal/metric"
)

var ErrNotFound = collection.ErrNotFound

// Seed holds the initial records for each physical collection.
type Seed struct {
	Workouts  []Workout  `yaml:"workouts"`
	Goals     []Goal     `yaml:"goals"`
	Reminders []Reminder `yaml:"reminders"`
}

// Service owns the physical pillar's collections.
type Service struct {
	workouts  *collection.Store[Workout]
	goals     *collection.Store[Goal]
	reminders *collection.Store[Reminder]
}

func NewService(seed Seed) *Service {
	return &Service{
		workouts: collection.New(
			func(w Workout) int { return w.ID },
			func(w Workout, id int) Workout { w.ID = id; return w },
			seed.Workouts,
		),
		goals: collection.New(
			func(g Goal) int { return g.ID },
			func(g Goal, id int) Goal { g.ID = id; return g },
			seed.Goals,
		),
		reminders: collection.New(
			func(r Reminder) int { return r.ID },
			func(r Reminder, id int) Reminder { r.ID = id; return r },
			seed.Reminders,
		),
	}
}

// WorkoutParams carries the user-supplied fields of a workout. Optional
// numeric fields stay nil when the form left them blank or unparseable.
type WorkoutParams struct {
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Completed   bool     `json:"completed"`
	Sets        *int     `json:"sets,omitempty"`
	Reps        *int     `json:"reps,omitempty"`
	Weight      *float64 `json:"weight,omitempty"`
	Notes       string   `json:"notes,omitempty"`
}

func (s *Service) ListWorkouts() []Workout {
	return s.workouts.List()
}

func (s *Service) GetWorkout(id int) (Workout, error) {
	return s.workouts.Get(id)
}

func (s *Service) CreateWorkout(p WorkoutParams) Workout {
	return s.workouts.Add(Workout{
		Type:        p.Type,
		Description: p.Description,
		Duration:    p.Duration,
		Completed:   p.Completed,
		Sets:        p.Sets,
		Reps:        p.Reps,
		Weight:      p.Weight,
		Notes:       p.Notes,
	})
}

func (s *Service) UpdateWorkout(id int, p WorkoutParams) (Workout, error) {
	w := Workout{
		ID:          id,
		Type:        p.Type,
		Description: p.Description,
		Duration:    p.Duration,
		Completed:   p.Completed,
		Sets:        p.Sets,
		Reps:        p.Reps,
		Weight:      p.Weight,
		Notes:       p.Notes,
	}

	if !s.workouts.Update(w) {
		return Workout{}, ErrNotFound
	}

	return w, nil
}

func (s *Service) DeleteWorkout(id int) {
	s.workouts.Remove(id)
}

// ToggleWorkoutCompleted flips a workout's completed flag.
func (s *Service) ToggleWorkoutCompleted(id int) (Workout, error) {
	w, ok := s.workouts.Toggle(id, func(w Workout) Workout {
		w.Completed = !w.Completed
		return w
	})
	if !ok {
		return Workout{}, ErrNotFound
	}

	return w, nil
}

// GoalParams carries the user-supplied fields of a physical goal.
type GoalParams struct {
	Name     string     `json:"name"`
	Current  float64    `json:"current"`
	Target   float64    `json:"target"`
	Unit     string     `json:"unit"`
	Deadline *time.Time `json:"deadline,omitempty"`
	Notes    string     `json:"notes,omitempty"`
}

func (s *Service) ListGoals() []Goal {
	return s.goals.List()
}

func (s *Service) GetGoal(id int) (Goal, error) {
	return s.goals.Get(id)
}

func (s *Service) CreateGoal(p GoalParams) Goal {
	return s.goals.Add(Goal{
		Name:     p.Name,
		Current:  p.Current,
		Target:   p.Target,
		Unit:     p.Unit,
		Deadline: p.Deadline,
		Notes:    p.Notes,
	})
}

func (s *Service) UpdateGoal(id int, p GoalParams) (Goal, error) {
	g := Goal{
		ID:       id,
		Name:     p.Name,
		Current:  p.Current,
		Target:   p.Target,
		Unit:     p.Unit,
		Deadline: p.Deadline,
		Notes:    p.Notes,
	}

	if !s.goals.Update(g) {
		return Goal{}, ErrNotFound
	}

	return g, nil
}

func (s *Service) DeleteGoal(id int) {
	s.goals.Remove(id)
}

// GoalProgress returns current/target as a rounded percentage.
func (s *Service) GoalProgress(g Goal) int {
	return metric.Percentage(g.Current, g.Target)
}

// ReminderParams carries the user-supplied fields of a reminder.
type ReminderParams struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Time      string `json:"time,omitempty"`
	Recurring bool   `json:"recurring"`
}

func (s *Service) ListReminders() []Reminder {
	return s.reminders.List()
}

func (s *Service) GetReminder(id int) (Reminder, error) {
	return s.reminders.Get(id)
}

func (s *Service) CreateReminder(p ReminderParams) Reminder {
	return s.reminders.Add(Reminder{
		Text:      p.Text,
		Completed: p.Completed,
		Time:      p.Time,
		Recurring: p.Recurring,
	})
}

func (s *Service) UpdateReminder(id int, p ReminderParams) (Reminder, error) {
	r := Reminder{
		ID:        id,
		Text:      p.Text,
		Completed: p.Completed,
		Time:      p.Time,
		Recurring: p.Recurring,
	}

	if !s.reminders.Update(r) {
		return Reminder{}, ErrNotFound
	}

	return r, nil
}

func (s *Service) DeleteReminder(id int) {
	s.reminders.Remove(id)
}

// ToggleReminderCompleted flips a reminder's completed flag.
func (s *Service) ToggleReminderCompleted(id int) (Reminder, error) {
	r, ok := s.reminders.Toggle(id, func(r Reminder) Reminder {
		r.Completed = !r.Completed
		return r
	})
	if !ok {
		return Reminder{}, ErrNotFound
	}

	return r, nil
}

// Summary aggregates the pillar's headline numbers.
type Summary struct {
	WorkoutsCompleted   int `json:"workouts_completed"`
	WorkoutsTotal       int `json:"workouts_total"`
	AverageGoalProgress int `json:"average_goal_progress"`
	RemindersCompleted  int `json:"reminders_completed"`
	RemindersTotal      int `json:"reminders_total"`
}

// Summarize recomputes the pillar summary from current collection contents.
func (s *Service) Summarize() Summary {
	workouts := s.workouts.List()
	goals := s.goals.List()
	reminders := s.reminders.List()

	progressTotal := 0
	for _, g := range goals {
		progressTotal += s.GoalProgress(g)
	}

	return Summary{
		WorkoutsCompleted:   metric.CountWhere(workouts, func(w Workout) bool { return w.Completed }),
		WorkoutsTotal:       len(workouts),
		AverageGoalProgress: metric.Percentage(progressTotal, len(goals)*100),
		RemindersCompleted:  metric.CountWhere(reminders, func(r Reminder) bool { return r.Completed }),
		RemindersTotal:      len(reminders),
	}
}

// Reset restores every physical collection to its seed records.
func (s *Service) Reset() {
	s.workouts.Reset()
	s.goals.Reset()
	s.reminders.Reset()
}
