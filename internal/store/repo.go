package store

import (
	"context"
	"errors"
	"time"

	"github.com/ankivoice/ankivoice/internal/srs"
)

// ErrCorruptState marks a loaded progress row that violates scheduler
// invariants (negative counters, correct > total). The scheduler never
// repairs such rows; surfacing them here keeps the corruption visible.
var ErrCorruptState = errors.New("corrupt progress state")

// Card is a piece of study material.
type Card struct {
	ID             int
	Content        string
	SourceMaterial string
	Tags           []string
	Difficulty     int
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Question is a generated prompt/answer pair for a card.
type Question struct {
	ID           int
	CardID       int
	QuestionText string
	AnswerText   string
	Type         string
	Difficulty   int
	GeneratedBy  string
}

// CardEntry pairs a card with its scheduling state for planning.
// Cards never studied get a default state.
type CardEntry struct {
	Card  *Card
	State srs.State
}

// CardRepo manages cards and their questions.
type CardRepo interface {
	// Create stores a new card and returns its id.
	Create(ctx context.Context, c Card) (int, error)

	// Get returns a card by id, or nil if it does not exist.
	Get(ctx context.Context, id int) (*Card, error)

	// List returns cards ordered by creation time, newest first.
	// Inactive cards are included only when includeInactive is set.
	List(ctx context.Context, includeInactive bool, limit, offset int) ([]*Card, error)

	// Update persists changes to content, tags, difficulty, and active flag.
	Update(ctx context.Context, c Card) error

	// Deactivate removes a card from study without deleting its history.
	Deactivate(ctx context.Context, id int) error

	// Delete removes a card and its questions permanently.
	Delete(ctx context.Context, id int) error

	// AddQuestion stores a generated question for a card.
	AddQuestion(ctx context.Context, q Question) (int, error)

	// QuestionsFor returns all questions for a card.
	QuestionsFor(ctx context.Context, cardID int) ([]*Question, error)

	// WithoutQuestions returns active cards that have no questions yet.
	WithoutQuestions(ctx context.Context) ([]*Card, error)
}

// ProgressRepo manages per-card scheduling state. States round-trip
// losslessly: float ease, second-resolution timestamps.
type ProgressRepo interface {
	// GetOrDefault loads the state for a card, or returns the given
	// default when the card has never been studied. Returns
	// ErrCorruptState when the stored row violates invariants.
	GetOrDefault(ctx context.Context, cardID int, def srs.State) (srs.State, error)

	// Save upserts the state for a card.
	Save(ctx context.Context, cardID int, s srs.State) error

	// ActiveEntries returns every active card paired with its state
	// (default state for never-studied cards), for session planning.
	ActiveEntries(ctx context.Context, def srs.State) ([]CardEntry, error)
}

// SessionRecord describes one study sitting.
type SessionRecord struct {
	SessionID      string
	Mode           string
	StartedAt      time.Time
	EndedAt        time.Time
	CardsReviewed  int
	CorrectAnswers int
	AvgResponseSec float64
	Completed      bool
}

// ReviewRecord is the immutable log of one answer attempt.
type ReviewRecord struct {
	SessionID       string
	CardID          int
	QuestionID      int
	UserAnswer      string
	Correct         bool
	Confidence      float64
	ResponseSeconds float64
	Quality         int
	Feedback        string
	ReviewedAt      time.Time
}

// SessionRepo manages study sessions and their review logs.
type SessionRepo interface {
	// Start records the beginning of a session.
	Start(ctx context.Context, rec SessionRecord) error

	// Finish closes a session with its summary counters.
	Finish(ctx context.Context, rec SessionRecord) error

	// AppendReview stores one review log entry.
	AppendReview(ctx context.Context, rec ReviewRecord) error

	// Recent returns the most recent sessions, newest first.
	Recent(ctx context.Context, limit int) ([]SessionRecord, error)

	// ReviewsSince returns review logs recorded at or after the cutoff.
	ReviewsSince(ctx context.Context, cutoff time.Time) ([]ReviewRecord, error)
}

// LLMEventData captures one LLM API call.
type LLMEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMEventRecord is a stored LLM event.
type LLMEventRecord struct {
	ID        int
	Timestamp time.Time
	LLMEventData
}

// LLMUsageStats aggregates token spend per purpose.
type LLMUsageStats struct {
	Purpose      string
	Requests     int
	InputTokens  int
	OutputTokens int
	Failures     int
}

// LLMEventRecorder is the narrow write interface the llm middleware needs.
type LLMEventRecorder interface {
	AppendLLMEvent(ctx context.Context, data LLMEventData) error
}

// LLMEventRepo provides read access on top of recording.
type LLMEventRepo interface {
	LLMEventRecorder

	// Query returns events newest first, up to limit (0 = no limit).
	Query(ctx context.Context, limit int) ([]LLMEventRecord, error)

	// UsageByPurpose aggregates usage grouped by purpose label.
	UsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)
}
