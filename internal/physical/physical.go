package physical

import "time"

// Workout represents a training session. Sets, reps and weight only apply to
// strength workouts and stay nil otherwise.
type Workout struct {
	ID          int      `json:"id" yaml:"id"`
	Type        string   `json:"type" yaml:"type"`
	Description string   `json:"description" yaml:"description"`
	Duration    string   `json:"duration" yaml:"duration"` // freeform, e.g. "45 min"
	Completed   bool     `json:"completed" yaml:"completed"`
	Sets        *int     `json:"sets,omitempty" yaml:"sets,omitempty"`
	Reps        *int     `json:"reps,omitempty" yaml:"reps,omitempty"`
	Weight      *float64 `json:"weight,omitempty" yaml:"weight,omitempty"` // kg
	Notes       string   `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Goal represents a measurable physical goal. Progress is derived from
// current/target, never stored.
type Goal struct {
	ID       int        `json:"id" yaml:"id"`
	Name     string     `json:"name" yaml:"name"`
	Current  float64    `json:"current" yaml:"current"`
	Target   float64    `json:"target" yaml:"target"`
	Unit     string     `json:"unit" yaml:"unit"`
	Deadline *time.Time `json:"deadline,omitempty" yaml:"deadline,omitempty"`
	Notes    string     `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Reminder represents a recurring daily reminder.
type Reminder struct {
	ID        int    `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	Completed bool   `json:"completed" yaml:"completed"`
	Time      string `json:"time,omitempty" yaml:"time,omitempty"` // HH:MM
	Recurring bool   `json:"recurring" yaml:"recurring"`
}
