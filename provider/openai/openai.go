// Package openai adapts the OpenAI Chat Completions API (via the official
// client) to the provider.Generator interface used by the agent layer.
package openai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/studymesh/studymesh/provider"
)

// Options configure the OpenAI generator adapter. Fields mirror a minimal
// subset of Chat Completion parameters; extend via functional options
// without breaking callers.
type Options struct {
	Model               string
	Temperature         float64
	MaxCompletionTokens int64
}

// Generator wraps the OpenAI Chat Completions API behind the generic
// provider.Generator interface.
type Generator struct {
	client *openai.Client
	opts   Options
}

// NewGenerator creates a new OpenAI generator using the official client,
// which reads OPENAI_API_KEY from the environment.
func NewGenerator(optFns ...func(o *Options)) *Generator {
	client := openai.NewClient()
	return NewGeneratorFromClient(&client, optFns...)
}

// NewGeneratorFromClient creates a new OpenAI generator from an existing
// client.
func NewGeneratorFromClient(client *openai.Client, optFns ...func(o *Options)) *Generator {
	opts := Options{
		Model:               openai.ChatModelGPT4oMini,
		Temperature:         0.7,
		MaxCompletionTokens: 2048,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Generator{client: client, opts: opts}
}

// Generate implements provider.Generator with a single-turn, non-streaming
// completion.
func (g *Generator) Generate(ctx context.Context, prompt string, opts provider.GenerateOptions) (string, error) {
	temperature := g.opts.Temperature
	if opts.Temperature > 0 {
		temperature = opts.Temperature
	}
	maxTokens := g.opts.MaxCompletionTokens
	if opts.MaxTokens > 0 {
		maxTokens = int64(opts.MaxTokens)
	}

	params := openai.ChatCompletionNewParams{
		Messages:            []openai.ChatCompletionMessageParamUnion{openai.UserMessage(prompt)},
		Model:               g.opts.Model,
		Temperature:         openai.Float(temperature),
		MaxCompletionTokens: openai.Int(maxTokens),
	}

	resp, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai api error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}

// Info implements provider.Generator.
func (g *Generator) Info() provider.Info {
	return provider.Info{Name: g.opts.Model, Provider: "openai"}
}
