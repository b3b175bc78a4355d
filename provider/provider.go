package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/studymesh/studymesh/logging"
)

// GenerateOptions carries per-call tuning parameters. Zero values mean
// "use the adapter's configured default".
type GenerateOptions struct {
	Temperature float64
	MaxTokens   int
}

// Info contains metadata about a generator implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "openai", "anthropic", "mock", etc.
}

// Generator is the minimal interface required by agents to drive generation.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// Info returns information about the generator implementation.
	Info() Info
}

// ErrExhausted is returned by Chain when every configured generator failed
// or produced empty output.
var ErrExhausted = errors.New("all generation providers failed")

// Chain tries generators in priority order. A generator that returns an
// error or an empty completion is skipped in favor of the next one; only
// when the whole chain is exhausted does Generate return an error. Agents
// treat that error as the trigger for their deterministic fallback content.
type Chain struct {
	generators []Generator
	logger     logging.Logger
}

// ChainOption customizes Chain construction.
type ChainOption func(*Chain)

// WithLogger attaches a logger recording per-provider attempts.
func WithLogger(l logging.Logger) ChainOption {
	return func(c *Chain) { c.logger = l }
}

// NewChain builds a fallback chain over the given generators, first is
// primary.
func NewChain(generators []Generator, opts ...ChainOption) *Chain {
	c := &Chain{generators: generators, logger: logging.NoOpLogger{}}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Generate implements Generator by delegating to the first generator that
// produces non-empty output.
func (c *Chain) Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	if len(c.generators) == 0 {
		return "", ErrExhausted
	}
	var lastErr error
	for _, g := range c.generators {
		start := time.Now()
		text, err := g.Generate(ctx, prompt, opts)
		logging.LogGenerationCall(c.logger, g.Info().Provider, time.Since(start), err == nil, err)
		if err != nil {
			lastErr = err
			continue
		}
		if strings.TrimSpace(text) == "" {
			lastErr = fmt.Errorf("provider %s returned empty output", g.Info().Provider)
			continue
		}
		return text, nil
	}
	if lastErr != nil {
		return "", fmt.Errorf("%w: %w", ErrExhausted, lastErr)
	}
	return "", ErrExhausted
}

// Info implements Generator reporting the composite chain identity.
func (c *Chain) Info() Info {
	names := make([]string, 0, len(c.generators))
	for _, g := range c.generators {
		names = append(names, g.Info().Provider)
	}
	return Info{Name: "chain(" + strings.Join(names, ",") + ")", Provider: "chain"}
}

// MockGenerator is a lightweight in-memory Generator useful for tests &
// examples. It records every prompt it receives and replies with a canned
// response, a fixed reply, or a deterministic echo, in that precedence.
// Safe for concurrent use.
type MockGenerator struct {
	mu        sync.Mutex
	info      Info
	responses map[string]string
	reply     string
	err       error
	calls     []string
}

// NewMockGenerator constructs a MockGenerator identified by name.
func NewMockGenerator(name string) *MockGenerator {
	return &MockGenerator{
		info:      Info{Name: name, Provider: "mock"},
		responses: make(map[string]string),
	}
}

// AddResponse registers a deterministic canned completion for an exact
// prompt.
func (m *MockGenerator) AddResponse(prompt, response string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[prompt] = response
}

// SetReply fixes the completion returned for every prompt without a canned
// response.
func (m *MockGenerator) SetReply(reply string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reply = reply
}

// SetError forces every subsequent Generate call to fail with err.
func (m *MockGenerator) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Generate implements Generator.
func (m *MockGenerator) Generate(_ context.Context, prompt string, _ GenerateOptions) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, prompt)
	if m.err != nil {
		return "", m.err
	}
	if resp, ok := m.responses[prompt]; ok {
		return resp, nil
	}
	if m.reply != "" {
		return m.reply, nil
	}
	return "Mock response to: " + prompt, nil
}

// Info implements Generator.
func (m *MockGenerator) Info() Info { return m.info }

// Calls returns a copy of every prompt received so far.
func (m *MockGenerator) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallCount reports how many Generate calls were made.
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}
