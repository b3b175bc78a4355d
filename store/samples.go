package store

import (
	"context"

	"github.com/studymesh/studymesh/core"
)

// SampleDocuments is a small starter corpus for demos and empty knowledge
// bases.
var SampleDocuments = []core.Document{
	{
		Content: "Artificial Intelligence (AI) is the simulation of human intelligence in machines. " +
			"AI systems can learn from data, recognize patterns, make decisions, and solve problems. " +
			"Modern AI spans narrow systems built for a single task and general approaches that transfer across domains.",
		Metadata: map[string]any{"source": "AI Basics", "category": "technology", "type": "definition"},
	},
	{
		Content: "Machine Learning is a subset of AI where algorithms improve through experience without " +
			"being explicitly programmed. Supervised learning trains on labeled examples, unsupervised " +
			"learning finds structure in unlabeled data, and reinforcement learning optimizes behavior " +
			"through reward signals.",
		Metadata: map[string]any{"source": "ML Fundamentals", "category": "machine-learning", "type": "definition"},
	},
	{
		Content: "RAG (Retrieval-Augmented Generation) combines information retrieval with language model " +
			"generation. A query is embedded, similar documents are fetched from a vector store, and the " +
			"model answers using the retrieved context. This grounds responses in source material and " +
			"reduces hallucination compared to generation from parametric memory alone.",
		Metadata: map[string]any{"source": "RAG Architecture", "category": "ai-architecture", "type": "explanation"},
	},
	{
		Content: "Vector databases store high-dimensional embeddings and answer nearest-neighbor queries " +
			"efficiently. Similarity is measured with metrics such as cosine similarity or inner product. " +
			"Approximate indexes trade a little recall for large speedups on big collections.",
		Metadata: map[string]any{"source": "Vector Databases", "category": "ai-architecture", "type": "explanation"},
	},
	{
		Content: "Natural Language Processing (NLP) enables computers to understand, interpret and generate " +
			"human language. Core tasks include tokenization, named entity recognition, summarization and " +
			"question answering. Transformer models dominate modern NLP.",
		Metadata: map[string]any{"source": "NLP Overview", "category": "machine-learning", "type": "explanation"},
	},
}

// LoadSamples adds the sample corpus to the given store and returns the
// number of documents loaded.
func LoadSamples(ctx context.Context, s core.KnowledgeStore) (int, error) {
	if err := s.Add(ctx, SampleDocuments); err != nil {
		return 0, err
	}
	return len(SampleDocuments), nil
}
