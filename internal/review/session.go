package review

import (
	"github.com/LeoFurone/personal-finance-furone/internal/common"
	"github.com/LeoFurone/personal-finance-furone/internal/model"
)

// Session holds the mutable state of one user's review: the eligible batch,
// the answers collected so far, and the cursor. The batch is fixed for the
// lifetime of the session; the cursor only ever moves forward. A Session is
// owned by exactly one review and must not be shared.
type Session struct {
	batch   []model.StatementEntry
	answers []model.ReviewAnswer
	cursor  int
}

// NewSession creates a session over an eligible batch, with one empty answer
// slot per row and the cursor at the first row.
func NewSession(batch []model.StatementEntry) *Session {
	answers := make([]model.ReviewAnswer, len(batch))
	for i := range batch {
		answers[i].Identifier = batch[i].Identifier
	}

	return &Session{
		batch:   batch,
		answers: answers,
	}
}

// Len returns the number of rows in the batch.
func (s *Session) Len() int {
	return len(s.batch)
}

// Cursor returns the 0-based index of the row under review.
func (s *Session) Cursor() int {
	return s.cursor
}

// IsTerminal reports whether every row has been visited.
func (s *Session) IsTerminal() bool {
	return s.cursor >= len(s.batch)
}

// CurrentEntry returns the row under review. It fails once the session is
// terminal.
func (s *Session) CurrentEntry() (model.StatementEntry, error) {
	if s.IsTerminal() {
		return model.StatementEntry{}, common.ErrCursorOutOfRange
	}
	return s.batch[s.cursor], nil
}

// CurrentAnswer returns the answer slot for the row under review, or nil
// once the session is terminal.
func (s *Session) CurrentAnswer() *model.ReviewAnswer {
	if s.IsTerminal() {
		return nil
	}
	return &s.answers[s.cursor]
}

// Advance moves the cursor to the next row. Calls past the terminal state
// are a no-op.
func (s *Session) Advance() {
	if s.IsTerminal() {
		return
	}
	s.cursor++
}

// Answers returns a copy of the collected answers, in batch order.
func (s *Session) Answers() []model.ReviewAnswer {
	answers := make([]model.ReviewAnswer, len(s.answers))
	copy(answers, s.answers)
	return answers
}
