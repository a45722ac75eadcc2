package spiritual

import (
	"errors"
	"time"

	"github.com/MrJamesThe3rd/pillars/internal/collection"
	"github.com/MrJamesThe3rd/pillars/internal/metric"
)

var ErrNotFound = collection.ErrNotFound

// streakSentinel stands in for "never completed" so the first completion
// always starts a streak.
const streakSentinel = "2000-01-01"

// Seed holds the initial records for each spiritual collection.
type Seed struct {
	Meditations []Meditation `yaml:"meditations"`
	Goals       []Goal       `yaml:"goals"`
	Quotes      []Quote      `yaml:"quotes"`
	Gratitude   []Gratitude  `yaml:"gratitude"`
	Habits      []Habit      `yaml:"habits"`
}

// Service owns the spiritual pillar's collections.
type Service struct {
	meditations *collection.Store[Meditation]
	goals       *collection.Store[Goal]
	quotes      *collection.Store[Quote]
	gratitude   *collection.Store[Gratitude]
	habits      *collection.Store[Habit]

	now func() time.Time
}

func NewService(seed Seed) *Service {
	return &Service{
		meditations: collection.New(
			func(m Meditation) int { return m.ID },
			func(m Meditation, id int) Meditation { m.ID = id; return m },
			seed.Meditations,
		),
		goals: collection.New(
			func(g Goal) int { return g.ID },
			func(g Goal, id int) Goal { g.ID = id; return g },
			seed.Goals,
		),
		quotes: collection.New(
			func(q Quote) int { return q.ID },
			func(q Quote, id int) Quote { q.ID = id; return q },
			seed.Quotes,
		),
		gratitude: collection.New(
			func(g Gratitude) int { return g.ID },
			func(g Gratitude, id int) Gratitude { g.ID = id; return g },
			seed.Gratitude,
		),
		habits: collection.New(
			func(h Habit) int { return h.ID },
			func(h Habit, id int) Habit { h.ID = id; return h },
			seed.Habits,
		),
		now: time.Now,
	}
}

// MeditationParams carries the user-supplied fields of a meditation session.
type MeditationParams struct {
	Date      time.Time      `json:"date"`
	Duration  int            `json:"duration"`
	Type      string         `json:"type"`
	Notes     string         `json:"notes,omitempty"`
	Mood      MeditationMood `json:"mood"`
	Completed bool           `json:"completed"`
}

func (s *Service) ListMeditations() []Meditation {
	return s.meditations.List()
}

func (s *Service) GetMeditation(id int) (Meditation, error) {
	return s.meditations.Get(id)
}

func (s *Service) CreateMeditation(p MeditationParams) Meditation {
	return s.meditations.Add(Meditation{
		Date:      p.Date,
		Duration:  p.Duration,
		Type:      p.Type,
		Notes:     p.Notes,
		Mood:      p.Mood,
		Completed: p.Completed,
	})
}

func (s *Service) UpdateMeditation(id int, p MeditationParams) (Meditation, error) {
	m := Meditation{
		ID:        id,
		Date:      p.Date,
		Duration:  p.Duration,
		Type:      p.Type,
		Notes:     p.Notes,
		Mood:      p.Mood,
		Completed: p.Completed,
	}

	if !s.meditations.Update(m) {
		return Meditation{}, ErrNotFound
	}

	return m, nil
}

func (s *Service) DeleteMeditation(id int) {
	s.meditations.Remove(id)
}

// ToggleMeditationCompleted flips a session's completed flag.
func (s *Service) ToggleMeditationCompleted(id int) (Meditation, error) {
	m, ok := s.meditations.Toggle(id, func(m Meditation) Meditation {
		m.Completed = !m.Completed
		return m
	})
	if !ok {
		return Meditation{}, ErrNotFound
	}

	return m, nil
}

// GoalParams carries the user-supplied fields of a personal goal.
type GoalParams struct {
	Name      string     `json:"name"`
	Category  string     `json:"category"`
	Progress  int        `json:"progress"`
	Deadline  *time.Time `json:"deadline,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	Completed bool       `json:"completed"`
}

func (s *Service) ListGoals() []Goal {
	return s.goals.List()
}

func (s *Service) GetGoal(id int) (Goal, error) {
	return s.goals.Get(id)
}

func (s *Service) CreateGoal(p GoalParams) Goal {
	return s.goals.Add(Goal{
		Name:      p.Name,
		Category:  p.Category,
		Progress:  p.Progress,
		Deadline:  p.Deadline,
		Notes:     p.Notes,
		Completed: p.Completed,
	})
}

func (s *Service) UpdateGoal(id int, p GoalParams) (Goal, error) {
	g := Goal{
		ID:        id,
		Name:      p.Name,
		Category:  p.Category,
		Progress:  p.Progress,
		Deadline:  p.Deadline,
		Notes:     p.Notes,
		Completed: p.Completed,
	}

	if !s.goals.Update(g) {
		return Goal{}, ErrNotFound
	}

	return g, nil
}

func (s *Service) DeleteGoal(id int) {
	s.goals.Remove(id)
}

// ToggleGoalCompleted flips a goal's completed flag.
func (s *Service) ToggleGoalCompleted(id int) (Goal, error) {
	g, ok := s.goals.Toggle(id, func(g Goal) Goal {
		g.Completed = !g.Completed
		return g
	})
	if !ok {
		return Goal{}, ErrNotFound
	}

	return g, nil
}

// QuoteParams carries the user-supplied fields of a quote. DateAdded is
// stamped by the service on create.
type QuoteParams struct {
	Text     string `json:"text"`
	Author   string `json:"author"`
	Category string `json:"category"`
	Favorite bool   `json:"favorite"`
}

func (s *Service) ListQuotes() []Quote {
	return s.quotes.List()
}

func (s *Service) GetQuote(id int) (Quote, error) {
	return s.quotes.Get(id)
}

func (s *Service) CreateQuote(p QuoteParams) Quote {
	return s.quotes.Add(Quote{
		Text:      p.Text,
		Author:    p.Author,
		Category:  p.Category,
		Favorite:  p.Favorite,
		DateAdded: s.now(),
	})
}

func (s *Service) UpdateQuote(id int, p QuoteParams) (Quote, error) {
	existing, err := s.quotes.Get(id)
	if err != nil {
		return Quote{}, err
	}

	q := Quote{
		ID:        id,
		Text:      p.Text,
		Author:    p.Author,
		Category:  p.Category,
		Favorite:  p.Favorite,
		DateAdded: existing.DateAdded,
	}

	if !s.quotes.Update(q) {
		return Quote{}, ErrNotFound
	}

	return q, nil
}

func (s *Service) DeleteQuote(id int) {
	s.quotes.Remove(id)
}

// ToggleQuoteFavorite flips a quote's favorite flag.
func (s *Service) ToggleQuoteFavorite(id int) (Quote, error) {
	q, ok := s.quotes.Toggle(id, func(q Quote) Quote {
		q.Favorite = !q.Favorite
		return q
	})
	if !ok {
		return Quote{}, ErrNotFound
	}

	return q, nil
}

// GratitudeParams carries the user-supplied fields of a gratitude entry.
// Entries must hold at least one non-empty line.
type GratitudeParams struct {
	Date       time.Time     `json:"date"`
	Entries    []string      `json:"entries"`
	Mood       GratitudeMood `json:"mood"`
	Reflection string        `json:"reflection,omitempty"`
}

func (s *Service) ListGratitude() []Gratitude {
	return s.gratitude.List()
}

func (s *Service) GetGratitude(id int) (Gratitude, error) {
	return s.gratitude.Get(id)
}

// ErrNoEntries is returned when a gratitude entry has no lines at all.
var ErrNoEntries = errors.New("gratitude entry requires at least one line")

func (s *Service) CreateGratitude(p GratitudeParams) (Gratitude, error) {
	entries := nonEmpty(p.Entries)
	if len(entries) == 0 {
		return Gratitude{}, ErrNoEntries
	}

	return s.gratitude.Add(Gratitude{
		Date:       p.Date,
		Entries:    entries,
		Mood:       p.Mood,
		Reflection: p.Reflection,
	}), nil
}

func (s *Service) UpdateGratitude(id int, p GratitudeParams) (Gratitude, error) {
	entries := nonEmpty(p.Entries)
	if len(entries) == 0 {
		return Gratitude{}, ErrNoEntries
	}

	g := Gratitude{
		ID:         id,
		Date:       p.Date,
		Entries:    entries,
		Mood:       p.Mood,
		Reflection: p.Reflection,
	}

	if !s.gratitude.Update(g) {
		return Gratitude{}, ErrNotFound
	}

	return g, nil
}

func (s *Service) DeleteGratitude(id int) {
	s.gratitude.Remove(id)
}

// HabitParams carries the user-supplied fields of a habit. Streak counters
// start at zero and are only ever advanced by CompleteHabit.
type HabitParams struct {
	Name      string         `json:"name"`
	Frequency HabitFrequency `json:"frequency"`
	Notes     string         `json:"notes,omitempty"`
}

func (s *Service) ListHabits() []Habit {
	return s.habits.List()
}

func (s *Service) GetHabit(id int) (Habit, error) {
	return s.habits.Get(id)
}

func (s *Service) CreateHabit(p HabitParams) Habit {
	return s.habits.Add(Habit{
		Name:      p.Name,
		Frequency: p.Frequency,
		Notes:     p.Notes,
	})
}

func (s *Service) UpdateHabit(id int, p HabitParams) (Habit, error) {
	existing, err := s.habits.Get(id)
	if err != nil {
		return Habit{}, err
	}

	h := Habit{
		ID:               id,
		Name:             p.Name,
		Frequency:        p.Frequency,
		Streak:           existing.Streak,
		TotalCompletions: existing.TotalCompletions,
		LastCompleted:    existing.LastCompleted,
		Notes:            p.Notes,
	}

	if !s.habits.Update(h) {
		return Habit{}, ErrNotFound
	}

	return h, nil
}

func (s *Service) DeleteHabit(id int) {
	s.habits.Remove(id)
}

// CompleteHabit marks the habit done today. The streak advances only on the
// first completion of a calendar day; total completions always advance, and
// the last-completed day always moves to today.
func (s *Service) CompleteHabit(id int, now time.Time) (Habit, error) {
	today := now.Format(time.DateOnly)

	h, ok := s.habits.Toggle(id, func(h Habit) Habit {
		last := h.LastCompleted
		if last == "" {
			last = streakSentinel
		}

		if today > last {
			h.Streak++
		}

		h.TotalCompletions++
		h.LastCompleted = today

		return h
	})
	if !ok {
		return Habit{}, ErrNotFound
	}

	return h, nil
}

// Summary aggregates the pillar's headline numbers.
type Summary struct {
	MinutesMeditated  int `json:"minutes_meditated"`
	SessionsCompleted int `json:"sessions_completed"`
	SessionsTotal     int `json:"sessions_total"`
	FavoriteQuotes    int `json:"favorite_quotes"`
	BestStreak        int `json:"best_streak"`
	TotalCompletions  int `json:"total_completions"`
}

// Summarize recomputes the pillar summary from current collection contents.
func (s *Service) Summarize() Summary {
	meditations := s.meditations.List()
	quotes := s.quotes.List()
	habits := s.habits.List()

	best := 0
	for _, h := range habits {
		if h.Streak > best {
			best = h.Streak
		}
	}

	return Summary{
		MinutesMeditated:  metric.Sum(meditations, func(m Meditation) int { return m.Duration }),
		SessionsCompleted: metric.CountWhere(meditations, func(m Meditation) bool { return m.Completed }),
		SessionsTotal:     len(meditations),
		FavoriteQuotes:    metric.CountWhere(quotes, func(q Quote) bool { return q.Favorite }),
		BestStreak:        best,
		TotalCompletions:  metric.Sum(habits, func(h Habit) int { return h.TotalCompletions }),
	}
}

// Reset restores every spiritual collection to its seed records.
func (s *Service) Reset() {
	s.meditations.Reset()
	s.goals.Reset()
	s.quotes.Reset()
	s.gratitude.Reset()
	s.habits.Reset()
}

func nonEmpty(entries []string) []string {
	var out []string

	for _, e := range entries {
		if e != "" {
			out = append(out, e)
		}
	}

	return out
}
