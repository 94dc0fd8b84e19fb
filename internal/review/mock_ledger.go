package review

import (
	"context"
	"errors"
	"sync"

	"github.com/LeoFurone/personal-finance-furone/internal/model"
)

// MockLedger is an in-memory Ledger for tests.
type MockLedger struct {
	known       map[string]struct{}
	records     []model.LedgerRecord
	failAppends int
	appendCalls int
	mu          sync.Mutex
}

// NewMockLedger creates a mock ledger pre-seeded with known identifiers.
func NewMockLedger(knownIDs ...string) *MockLedger {
	known := make(map[string]struct{}, len(knownIDs))
	for _, id := range knownIDs {
		known[id] = struct{}{}
	}
	return &MockLedger{known: known}
}

// KnownIdentifiers returns the seeded identifier set.
func (m *MockLedger) KnownIdentifiers(_ context.Context) (map[string]struct{}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	known := make(map[string]struct{}, len(m.known))
	for id := range m.known {
		known[id] = struct{}{}
	}
	return known, nil
}

// Append stores the record, or fails while failures remain scheduled.
func (m *MockLedger) Append(_ context.Context, record model.LedgerRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.appendCalls++
	if m.failAppends > 0 {
		m.failAppends--
		return errors.New("simulated append failure")
	}
	m.records = append(m.records, record)
	return nil
}

// Close is a no-op.
func (m *MockLedger) Close() error {
	return nil
}

// FailAppends schedules the next n Append calls to fail.
func (m *MockLedger) FailAppends(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failAppends = n
}

// Records returns the appended records in order.
func (m *MockLedger) Records() []model.LedgerRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	records := make([]model.LedgerRecord, len(m.records))
	copy(records, m.records)
	return records
}

// AppendCalls returns the total number of Append invocations, including
// failed ones.
func (m *MockLedger) AppendCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.appendCalls
}
