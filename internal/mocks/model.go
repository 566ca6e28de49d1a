package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/outfit-api/internal/generation"
)

// MockModel implements generation.Model for testing
type MockModel struct {
	// GenerateFn allows test cases to mock the Generate behavior
	GenerateFn func(ctx context.Context, prompt string) (string, error)

	// Default response values
	Reply string
	Err   error

	// Call tracking for verification
	GenerateCalls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times Generate was called
		Count int

		// Prompts contains all prompts passed to Generate calls
		Prompts []string
	}
}

var _ generation.Model = (*MockModel)(nil)

// Generate implements the generation.Model interface
func (m *MockModel) Generate(ctx context.Context, prompt string) (string, error) {
	m.GenerateCalls.mu.Lock()
	m.GenerateCalls.Count++
	m.GenerateCalls.Prompts = append(m.GenerateCalls.Prompts, prompt)
	m.GenerateCalls.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, prompt)
	}

	return m.Reply, m.Err
}

// CallCount returns the number of Generate calls so far.
func (m *MockModel) CallCount() int {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()
	return m.GenerateCalls.Count
}

// LastPrompt returns the most recent prompt, or "" if Generate was never called.
func (m *MockModel) LastPrompt() string {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()
	if len(m.GenerateCalls.Prompts) == 0 {
		return ""
	}
	return m.GenerateCalls.Prompts[len(m.GenerateCalls.Prompts)-1]
}
