package agent

import (
	"fmt"
	"strings"

	"github.com/studymesh/studymesh/core"
)

// interrogative tokens that gate retrieval
var interrogatives = []string{"what", "how", "why", "when", "where", "who", "which"}

// QueryInput is the input to QueryAgent.Process.
type QueryInput struct {
	Query string
}

// QueryOutput is the result of query analysis.
type QueryOutput struct {
	Query         core.Query
	ThinkingSteps []core.ThinkingStep
}

// QueryAgent analyzes raw user input: it trims the query and decides whether
// retrieval is heuristically warranted. Process is a pure function with no
// side effects beyond its single completed thinking step.
type QueryAgent struct {
	name string
}

// NewQueryAgent constructs a QueryAgent.
func NewQueryAgent() *QueryAgent {
	return &QueryAgent{name: "QueryAgent"}
}

// Name implements Agent.
func (a *QueryAgent) Name() string { return a.name }

// Process analyzes the query. The retrieval gate avoids unnecessary store
// lookups for trivial inputs such as greetings; false negatives are
// tolerated since quiz/tutor pipelines retrieve unconditionally.
func (a *QueryAgent) Process(in QueryInput) QueryOutput {
	processed := strings.TrimSpace(in.Query)
	needsRetrieval := shouldRetrieve(processed)

	step := core.NewCompletedStep(a.name, "Query Analysis",
		fmt.Sprintf("Query processed. Needs retrieval: %t", needsRetrieval)).
		WithDetails(map[string]any{
			"originalQuery":  in.Query,
			"processedQuery": processed,
			"needsRetrieval": needsRetrieval,
		})

	return QueryOutput{
		Query: core.Query{
			Raw:            in.Query,
			Processed:      processed,
			NeedsRetrieval: needsRetrieval,
		},
		ThinkingSteps: []core.ThinkingStep{step},
	}
}

// shouldRetrieve reports whether the query contains an interrogative token,
// exceeds 20 characters, or contains a question mark.
func shouldRetrieve(query string) bool {
	lower := strings.ToLower(query)
	for _, word := range interrogatives {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return len(query) > 20 || strings.Contains(lower, "?")
}
