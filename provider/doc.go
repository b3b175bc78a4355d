// Package provider defines the text-generation capability used by agents and
// the primary/secondary fallback policy over it.
//
// Generator is the minimal interface required to drive generation: a single
// prompt in, completed text out. Chain composes generators in priority order,
// advancing past any generator that errors or returns empty output, so the
// agent layer owns only its final degraded fallback and never the ordering.
//
// Sub-packages adapt the official OpenAI and Anthropic SDKs to Generator.
// MockGenerator offers canned responses and failure injection for tests.
package provider
