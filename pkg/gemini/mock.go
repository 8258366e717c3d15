package gemini

import (
	"context"
	"sync"
)

// MockClient is a mock question-answering client for testing.
type MockClient struct {
	mu           sync.Mutex
	answer       string
	err          error
	lastQuestion string
	lastHistory  []Message
	lastContext  string
	calls        int
}

// MockOption configures the mock client.
type MockOption func(*MockClient)

// WithAnswer sets the answer to return.
func WithAnswer(answer string) MockOption {
	return func(m *MockClient) {
		m.answer = answer
	}
}

// WithError sets an error to return from Ask.
func WithError(err error) MockOption {
	return func(m *MockClient) {
		m.err = err
	}
}

// NewMock creates a mock client with the given options.
func NewMock(opts ...MockOption) *MockClient {
	m := &MockClient{answer: "mock answer"}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *MockClient) Ask(ctx context.Context, question string, history []Message, knowledge string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	m.lastQuestion = question
	m.lastHistory = history
	m.lastContext = knowledge

	if m.err != nil {
		return "", m.err
	}
	return m.answer, nil
}

// LastQuestion returns the question from the most recent Ask call.
func (m *MockClient) LastQuestion() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastQuestion
}

// LastContext returns the knowledge context from the most recent Ask call.
func (m *MockClient) LastContext() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastContext
}

// LastHistory returns the history from the most recent Ask call.
func (m *MockClient) LastHistory() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastHistory
}

// Calls returns how many times Ask was invoked.
func (m *MockClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
