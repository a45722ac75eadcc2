package spiritual

import "time"

// MeditationMood represents the mood after a meditation session.
type MeditationMood string

const (
	MoodCalm     MeditationMood = "calm"
	MoodNeutral  MeditationMood = "neutral"
	MoodAgitated MeditationMood = "agitated"
)

// GratitudeMood represents the overall mood of a gratitude entry.
type GratitudeMood string

const (
	GratitudeGreat   GratitudeMood = "great"
	GratitudeGood    GratitudeMood = "good"
	GratitudeNeutral GratitudeMood = "neutral"
	GratitudeBad     GratitudeMood = "bad"
)

// HabitFrequency represents how often a habit is meant to recur.
type HabitFrequency string

const (
	HabitDaily   HabitFrequency = "daily"
	HabitWeekly  HabitFrequency = "weekly"
	HabitMonthly HabitFrequency = "monthly"
)

// Meditation represents a single meditation session.
type Meditation struct {
	ID        int            `json:"id" yaml:"id"`
	Date      time.Time      `json:"date" yaml:"date"`
	Duration  int            `json:"duration" yaml:"duration"` // minutes
	Type      string         `json:"type" yaml:"type"`
	Notes     string         `json:"notes,omitempty" yaml:"notes,omitempty"`
	Mood      MeditationMood `json:"mood" yaml:"mood"`
	Completed bool           `json:"completed" yaml:"completed"`
}

// Goal represents a personal development goal. Progress is a stored
// percentage the user maintains by hand; there is no source ratio to derive
// it from.
type Goal struct {
	ID        int        `json:"id" yaml:"id"`
	Name      string     `json:"name" yaml:"name"`
	Category  string     `json:"category" yaml:"category"`
	Progress  int        `json:"progress" yaml:"progress"` // percent
	Deadline  *time.Time `json:"deadline,omitempty" yaml:"deadline,omitempty"`
	Notes     string     `json:"notes,omitempty" yaml:"notes,omitempty"`
	Completed bool       `json:"completed" yaml:"completed"`
}

// Quote represents a saved quote. DateAdded is stamped by the service.
type Quote struct {
	ID        int       `json:"id" yaml:"id"`
	Text      string    `json:"text" yaml:"text"`
	Author    string    `json:"author" yaml:"author"`
	Category  string    `json:"category" yaml:"category"`
	Favorite  bool      `json:"favorite" yaml:"favorite"`
	DateAdded time.Time `json:"date_added" yaml:"date_added"`
}

// Gratitude represents one day's gratitude journal entry. Entries always
// holds at least one line.
type Gratitude struct {
	ID         int           `json:"id" yaml:"id"`
	Date       time.Time     `json:"date" yaml:"date"`
	Entries    []string      `json:"entries" yaml:"entries"`
	Mood       GratitudeMood `json:"mood" yaml:"mood"`
	Reflection string        `json:"reflection,omitempty" yaml:"reflection,omitempty"`
}

// Habit represents a tracked habit. Streak counts consecutive distinct
// calendar days of completion; LastCompleted is a YYYY-MM-DD day, empty when
// the habit was never completed.
type Habit struct {
	ID               int            `json:"id" yaml:"id"`
	Name             string         `json:"name" yaml:"name"`
	Frequency        HabitFrequency `json:"frequency" yaml:"frequency"`
	Streak           int            `json:"streak" yaml:"streak"`
	TotalCompletions int            `json:"total_completions" yaml:"total_completions"`
	LastCompleted    string         `json:"last_completed,omitempty" yaml:"last_completed,omitempty"`
	Notes            string         `json:"notes,omitempty" yaml:"notes,omitempty"`
}
