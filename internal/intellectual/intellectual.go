package intellectual

import "time"

// Difficulty represents how hard a flashcard is rated.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Reading represents a book in progress. Progress is a stored field the user
// maintains alongside pagesRead/totalPages; the two are not reconciled.
type Reading struct {
	ID         int    `json:"id" yaml:"id"`
	Title      string `json:"title" yaml:"title"`
	Author     string `json:"author" yaml:"author"`
	Progress   int    `json:"progress" yaml:"progress"` // percent
	PagesRead  int    `json:"pages_read" yaml:"pages_read"`
	TotalPages int    `json:"total_pages" yaml:"total_pages"`
	TimeSpent  int    `json:"time_spent" yaml:"time_spent"` // minutes
	Notes      string `json:"notes,omitempty" yaml:"notes,omitempty"`
	Completed  bool   `json:"completed" yaml:"completed"`
}

// Course represents an enrolled course. Progress is stored, like Reading.
type Course struct {
	ID          int        `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Progress    int        `json:"progress" yaml:"progress"` // percent
	NextSession *time.Time `json:"next_session,omitempty" yaml:"next_session,omitempty"`
	Materials   []string   `json:"materials" yaml:"materials"`
	Notes       string     `json:"notes,omitempty" yaml:"notes,omitempty"`
	Completed   bool       `json:"completed" yaml:"completed"`
}

// Flashcard represents a question/answer card. LastReviewed is stamped by the
// service on create and update, never supplied by the user.
type Flashcard struct {
	ID           int        `json:"id" yaml:"id"`
	Question     string     `json:"question" yaml:"question"`
	Answer       string     `json:"answer" yaml:"answer"`
	Category     string     `json:"category" yaml:"category"`
	LastReviewed *time.Time `json:"last_reviewed,omitempty" yaml:"last_reviewed,omitempty"`
	Difficulty   Difficulty `json:"difficulty" yaml:"difficulty"`
	Mastered     bool       `json:"mastered" yaml:"mastered"`
}

// Connection links two topics of a mind map.
type Connection struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// MindMap represents a topic graph. LastEdited is stamped by the service.
type MindMap struct {
	ID          int          `json:"id" yaml:"id"`
	Title       string       `json:"title" yaml:"title"`
	Topics      []string     `json:"topics" yaml:"topics"`
	Connections []Connection `json:"connections" yaml:"connections"`
	LastEdited  time.Time    `json:"last_edited" yaml:"last_edited"`
}
