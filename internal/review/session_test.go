package review

import (
	"testing"

	"github.com/LeoFurone/personal-finance-furone/internal/common"
	"github.com/LeoFurone/personal-finance-furone/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	batch := []model.StatementEntry{
		makeEntry("A1", "01/02/2024", "12.50", "Uber"),
		makeEntry("A2", "02/02/2024", "3.99", "Padaria"),
	}

	session := NewSession(batch)

	assert.Equal(t, 2, session.Len())
	assert.Equal(t, 0, session.Cursor())
	assert.False(t, session.IsTerminal())

	answers := session.Answers()
	require.Len(t, answers, 2)
	assert.Equal(t, "A1", answers[0].Identifier)
	assert.Equal(t, "A2", answers[1].Identifier)
	assert.False(t, answers[0].Complete())
}

func TestSession_EmptyBatchIsTerminal(t *testing.T) {
	session := NewSession(nil)

	assert.True(t, session.IsTerminal())

	_, err := session.CurrentEntry()
	assert.ErrorIs(t, err, common.ErrCursorOutOfRange)
	assert.Nil(t, session.CurrentAnswer())
}

func TestSession_AdvanceIsMonotonic(t *testing.T) {
	batch := []model.StatementEntry{
		makeEntry("A1", "01/02/2024", "12.50", "Uber"),
		makeEntry("A2", "02/02/2024", "3.99", "Padaria"),
	}
	session := NewSession(batch)

	entry, err := session.CurrentEntry()
	require.NoError(t, err)
	assert.Equal(t, "A1", entry.Identifier)

	session.Advance()
	assert.Equal(t, 1, session.Cursor())
	entry, err = session.CurrentEntry()
	require.NoError(t, err)
	assert.Equal(t, "A2", entry.Identifier)

	session.Advance()
	assert.True(t, session.IsTerminal())
	assert.Equal(t, 2, session.Cursor())

	// Advancing past the terminal state is a no-op.
	session.Advance()
	assert.Equal(t, 2, session.Cursor())

	_, err = session.CurrentEntry()
	assert.ErrorIs(t, err, common.ErrCursorOutOfRange)
}

func TestSession_CurrentAnswerIsWritable(t *testing.T) {
	batch := []model.StatementEntry{
		makeEntry("A1", "01/02/2024", "12.50", "Uber"),
	}
	session := NewSession(batch)

	answer := session.CurrentAnswer()
	require.NotNil(t, answer)
	answer.Account = model.AccountCasal
	answer.Category = "Transporte"
	answer.Source = "Salário Mensal"

	answers := session.Answers()
	require.Len(t, answers, 1)
	assert.True(t, answers[0].Complete())
	assert.Equal(t, model.AccountCasal, answers[0].Account)
}
