package agent

import (
	"context"
	"fmt"

	"github.com/studymesh/studymesh/core"
	"github.com/studymesh/studymesh/logging"
)

// RetrievalInput is the input to RetrievalAgent.Process.
type RetrievalInput struct {
	Query string
	// K is the retrieval width; defaults to 5 when non-positive.
	K int
}

// RetrievalOutput carries the retrieved documents. An empty Documents slice
// with a completed step means the search genuinely found nothing; paired
// with an error step it means the search itself failed.
type RetrievalOutput struct {
	Documents     []core.Document
	ThinkingSteps []core.ThinkingStep
}

// RetrievalAgent delegates to the knowledge store's similarity search.
// A store failure degrades gracefully to "no context" rather than failing
// the whole pipeline.
type RetrievalAgent struct {
	name   string
	store  core.KnowledgeStore
	logger logging.Logger
}

// NewRetrievalAgent constructs a RetrievalAgent over the given store.
func NewRetrievalAgent(store core.KnowledgeStore, opts ...Option) *RetrievalAgent {
	cfg := newConfig(opts)
	return &RetrievalAgent{name: "RetrievalAgent", store: store, logger: cfg.logger}
}

// Name implements Agent.
func (a *RetrievalAgent) Name() string { return a.name }

// Process performs the similarity search. It never returns an error: a
// failing store is recorded as an error-status step and yields an empty
// document set.
func (a *RetrievalAgent) Process(ctx context.Context, in RetrievalInput) RetrievalOutput {
	k := in.K
	if k <= 0 {
		k = 5
	}

	steps := []core.ThinkingStep{
		core.NewProcessingStep(a.name, "Vector Search", "Searching for relevant documents..."),
	}

	documents, err := a.store.Search(ctx, in.Query, k)
	if err != nil {
		a.logger.Error("knowledge store search failed", "query", in.Query, "k", k, "error", err)
		steps = append(steps, core.NewErrorStep(a.name, "Vector Search",
			fmt.Sprintf("Search failed: %s", err)))
		return RetrievalOutput{Documents: []core.Document{}, ThinkingSteps: steps}
	}

	a.logger.Debug("knowledge store search completed", "query", in.Query, "k", k, "found", len(documents))
	steps = append(steps, core.NewCompletedStep(a.name, "Vector Search",
		fmt.Sprintf("Found %d relevant documents", len(documents))))

	if documents == nil {
		documents = []core.Document{}
	}
	return RetrievalOutput{Documents: documents, ThinkingSteps: steps}
}
