package intellectual

import (
	"time"

	"github.com/MrJamesThe3rd/pillars/internal/collection"
	"github.com/MrJamesThe3rd/pillars/internal/metric"
)

var ErrNotFound = collection.ErrNotFound

// Seed holds the initial records for each intellectual collection.
type Seed struct {
	Readings   []Reading   `yaml:"readings"`
	Courses    []Course    `yaml:"courses"`
	Flashcards []Flashcard `yaml:"flashcards"`
	MindMaps   []MindMap   `yaml:"mindmaps"`
}

// Service owns the intellectual pillar's collections.
type Service struct {
	readings   *collection.Store[Reading]
	courses    *collection.Store[Course]
	flashcards *collection.Store[Flashcard]
	mindMaps   *collection.Store[MindMap]

	now func() time.Time
}

func NewService(seed Seed) *Service {
	return &Service{
		readings: collection.New(
			func(r Reading) int { return r.ID },
			func(r Reading, id int) Reading { r.ID = id; return r },
			seed.Readings,
		),
		courses: collection.New(
			func(c Course) int { return c.ID },
			func(c Course, id int) Course { c.ID = id; return c },
			seed.Courses,
		),
		flashcards: collection.New(
			func(f Flashcard) int { return f.ID },
			func(f Flashcard, id int) Flashcard { f.ID = id; return f },
			seed.Flashcards,
		),
		mindMaps: collection.New(
			func(m MindMap) int { return m.ID },
			func(m MindMap, id int) MindMap { m.ID = id; return m },
			seed.MindMaps,
		),
		now: time.Now,
	}
}

// ReadingParams carries the user-supplied fields of a reading.
type ReadingParams struct {
	Title      string `json:"title"`
	Author     string `json:"author"`
	Progress   int    `json:"progress"`
	PagesRead  int    `json:"pages_read"`
	TotalPages int    `json:"total_pages"`
	TimeSpent  int    `json:"time_spent"`
	Notes      string `json:"notes,omitempty"`
	Completed  bool   `json:"completed"`
}

func (s *Service) ListReadings() []Reading {
	return s.readings.List()
}

func (s *Service) GetReading(id int) (Reading, error) {
	return s.readings.Get(id)
}

func (s *Service) CreateReading(p ReadingParams) Reading {
	return s.readings.Add(Reading{
		Title:      p.Title,
		Author:     p.Author,
		Progress:   p.Progress,
		PagesRead:  p.PagesRead,
		TotalPages: p.TotalPages,
		TimeSpent:  p.TimeSpent,
		Notes:      p.Notes,
		Completed:  p.Completed,
	})
}

func (s *Service) UpdateReading(id int, p ReadingParams) (Reading, error) {
	r := Reading{
		ID:         id,
		Title:      p.Title,
		Author:     p.Author,
		Progress:   p.Progress,
		PagesRead:  p.PagesRead,
		TotalPages: p.TotalPages,
		TimeSpent:  p.TimeSpent,
		Notes:      p.Notes,
		Completed:  p.Completed,
	}

	if !s.readings.Update(r) {
		return Reading{}, ErrNotFound
	}

	return r, nil
}

func (s *Service) DeleteReading(id int) {
	s.readings.Remove(id)
}

// ToggleReadingCompleted flips a reading's completed flag.
func (s *Service) ToggleReadingCompleted(id int) (Reading, error) {
	r, ok := s.readings.Toggle(id, func(r Reading) Reading {
		r.Completed = !r.Completed
		return r
	})
	if !ok {
		return Reading{}, ErrNotFound
	}

	return r, nil
}

// PageProgress derives a reading's percentage from pages, independent of the
// stored progress field.
func (s *Service) PageProgress(r Reading) int {
	return metric.Percentage(r.PagesRead, r.TotalPages)
}

// CourseParams carries the user-supplied fields of a course. Materials come
// from a comma-separated form field, already split and trimmed.
type CourseParams struct {
	Name        string     `json:"name"`
	Progress    int        `json:"progress"`
	NextSession *time.Time `json:"next_session,omitempty"`
	Materials   []string   `json:"materials"`
	Notes       string     `json:"notes,omitempty"`
	Completed   bool       `json:"completed"`
}

func (s *Service) ListCourses() []Course {
	return s.courses.List()
}

func (s *Service) GetCourse(id int) (Course, error) {
	return s.courses.Get(id)
}

func (s *Service) CreateCourse(p CourseParams) Course {
	return s.courses.Add(Course{
		Name:        p.Name,
		Progress:    p.Progress,
		NextSession: p.NextSession,
		Materials:   p.Materials,
		Notes:       p.Notes,
		Completed:   p.Completed,
	})
}

func (s *Service) UpdateCourse(id int, p CourseParams) (Course, error) {
	c := Course{
		ID:          id,
		Name:        p.Name,
		Progress:    p.Progress,
		NextSession: p.NextSession,
		Materials:   p.Materials,
		Notes:       p.Notes,
		Completed:   p.Completed,
	}

	if !s.courses.Update(c) {
		return Course{}, ErrNotFound
	}

	return c, nil
}

func (s *Service) DeleteCourse(id int) {
	s.courses.Remove(id)
}

// ToggleCourseCompleted flips a course's completed flag.
func (s *Service) ToggleCourseCompleted(id int) (Course, error) {
	c, ok := s.courses.Toggle(id, func(c Course) Course {
		c.Completed = !c.Completed
		return c
	})
	if !ok {
		return Course{}, ErrNotFound
	}

	return c, nil
}

// FlashcardParams carries the user-supplied fields of a flashcard.
// LastReviewed is stamped by the service.
type FlashcardParams struct {
	Question   string     `json:"question"`
	Answer     string     `json:"answer"`
	Category   string     `json:"category"`
	Difficulty Difficulty `json:"difficulty"`
	Mastered   bool       `json:"mastered"`
}

func (s *Service) ListFlashcards() []Flashcard {
	return s.flashcards.List()
}

func (s *Service) GetFlashcard(id int) (Flashcard, error) {
	return s.flashcards.Get(id)
}

func (s *Service) CreateFlashcard(p FlashcardParams) Flashcard {
	reviewed := s.now()

	return s.flashcards.Add(Flashcard{
		Question:     p.Question,
		Answer:       p.Answer,
		Category:     p.Category,
		LastReviewed: &reviewed,
		Difficulty:   p.Difficulty,
		Mastered:     p.Mastered,
	})
}

func (s *Service) UpdateFlashcard(id int, p FlashcardParams) (Flashcard, error) {
	reviewed := s.now()
	f := Flashcard{
		ID:           id,
		Question:     p.Question,
		Answer:       p.Answer,
		Category:     p.Category,
		LastReviewed: &reviewed,
		Difficulty:   p.Difficulty,
		Mastered:     p.Mastered,
	}

	if !s.flashcards.Update(f) {
		return Flashcard{}, ErrNotFound
	}

	return f, nil
}

func (s *Service) DeleteFlashcard(id int) {
	s.flashcards.Remove(id)
}

// ToggleFlashcardMastered flips a flashcard's mastered flag.
func (s *Service) ToggleFlashcardMastered(id int) (Flashcard, error) {
	f, ok := s.flashcards.Toggle(id, func(f Flashcard) Flashcard {
		f.Mastered = !f.Mastered
		return f
	})
	if !ok {
		return Flashcard{}, ErrNotFound
	}

	return f, nil
}

// MindMapParams carries the user-supplied fields of a mind map.
// LastEdited is stamped by the service.
type MindMapParams struct {
	Title       string       `json:"title"`
	Topics      []string     `json:"topics"`
	Connections []Connection `json:"connections"`
}

func (s *Service) ListMindMaps() []MindMap {
	return s.mindMaps.List()
}

func (s *Service) GetMindMap(id int) (MindMap, error) {
	return s.mindMaps.Get(id)
}

func (s *Service) CreateMindMap(p MindMapParams) MindMap {
	return s.mindMaps.Add(MindMap{
		Title:       p.Title,
		Topics:      p.Topics,
		Connections: p.Connections,
		LastEdited:  s.now(),
	})
}

func (s *Service) UpdateMindMap(id int, p MindMapParams) (MindMap, error) {
	m := MindMap{
		ID:          id,
		Title:       p.Title,
		Topics:      p.Topics,
		Connections: p.Connections,
		LastEdited:  s.now(),
	}

	if !s.mindMaps.Update(m) {
		return MindMap{}, ErrNotFound
	}

	return m, nil
}

func (s *Service) DeleteMindMap(id int) {
	s.mindMaps.Remove(id)
}

// Summary aggregates the pillar's headline numbers.
type Summary struct {
	ReadingsCompleted  int `json:"readings_completed"`
	ReadingsTotal      int `json:"readings_total"`
	PagesRead          int `json:"pages_read"`
	TimeSpentMinutes   int `json:"time_spent_minutes"`
	AverageProgress    int `json:"average_progress"`
	CoursesCompleted   int `json:"courses_completed"`
	FlashcardsMastered int `json:"flashcards_mastered"`
	MindMaps           int `json:"mind_maps"`
}

// Summarize recomputes the pillar summary from current collection contents.
func (s *Service) Summarize() Summary {
	readings := s.readings.List()
	courses := s.courses.List()
	flashcards := s.flashcards.List()

	progressTotal := metric.Sum(readings, func(r Reading) int { return r.Progress })

	return Summary{
		ReadingsCompleted:  metric.CountWhere(readings, func(r Reading) bool { return r.Completed }),
		ReadingsTotal:      len(readings),
		PagesRead:          metric.Sum(readings, func(r Reading) int { return r.PagesRead }),
		TimeSpentMinutes:   metric.Sum(readings, func(r Reading) int { return r.TimeSpent }),
		AverageProgress:    metric.Percentage(progressTotal, len(readings)*100),
		CoursesCompleted:   metric.CountWhere(courses, func(c Course) bool { return c.Completed }),
		FlashcardsMastered: metric.CountWhere(flashcards, func(f Flashcard) bool { return f.Mastered }),
		MindMaps:           s.mindMaps.Len(),
	}
}

// Reset restores every intellectual collection to its seed records.
func (s *Service) Reset() {
	s.readings.Reset()
	s.courses.Reset()
	s.flashcards.Reset()
	s.mindMaps.Reset()
}
