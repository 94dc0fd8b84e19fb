package review

import (
	"context"
	"fmt"
	"sync"

	"github.com/LeoFurone/personal-finance-furone/internal/common"
)

// CancelReply is the scripted reply that makes MockConversation behave like
// a reviewer aborting the session.
const CancelReply = "/cancel"

// MockConversation is a scripted Conversation for tests. Replies are
// consumed in order across AskText and AskOption calls; running out of
// scripted replies is a test bug and fails loudly.
type MockConversation struct {
	replies    []string
	said       []string
	prompts    []string
	optionSets [][]string
	replyIdx   int
	mu         sync.Mutex
}

// NewMockConversation creates a mock conversation with the given scripted
// replies.
func NewMockConversation(replies ...string) *MockConversation {
	return &MockConversation{replies: replies}
}

// Say records the outbound message.
func (m *MockConversation) Say(_ context.Context, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.said = append(m.said, text)
	return nil
}

// AskText records the prompt and returns the next scripted reply.
func (m *MockConversation) AskText(_ context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prompts = append(m.prompts, prompt)
	return m.next(prompt)
}

// AskOption records the prompt and option set and returns the next scripted
// reply.
func (m *MockConversation) AskOption(_ context.Context, prompt string, options []string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prompts = append(m.prompts, prompt)
	m.optionSets = append(m.optionSets, options)
	return m.next(prompt)
}

func (m *MockConversation) next(prompt string) (string, error) {
	if m.replyIdx >= len(m.replies) {
		return "", fmt.Errorf("no scripted reply left for prompt %q", prompt)
	}
	reply := m.replies[m.replyIdx]
	m.replyIdx++
	if reply == CancelReply {
		return "", common.ErrReviewCanceled
	}
	return reply, nil
}

// Said returns all outbound messages in order.
func (m *MockConversation) Said() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	said := make([]string, len(m.said))
	copy(said, m.said)
	return said
}

// Prompts returns all prompts issued, in order.
func (m *MockConversation) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	prompts := make([]string, len(m.prompts))
	copy(prompts, m.prompts)
	return prompts
}

// OptionSets returns the option lists offered at closed-option prompts.
func (m *MockConversation) OptionSets() [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	sets := make([][]string, len(m.optionSets))
	copy(sets, m.optionSets)
	return sets
}
