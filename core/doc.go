// Package core provides the foundational domain types and interfaces shared
// by the StudyMesh agents and pipelines. It defines the core abstractions for:
//
//   - Documents (retrieved knowledge snippets with provenance metadata)
//   - Thinking steps (immutable audit / progress records emitted by agents)
//   - Queries (analyzed user input)
//   - Generated artifacts (quiz questions, tutorial sections, suggestion sets)
//   - The pluggable KnowledgeStore retrieval capability
//
// The package intentionally keeps implementation concerns (vector backends,
// model providers, concrete agents) out of scope, exposing small types and
// interfaces so custom backends can be plugged in without touching the
// orchestration layer.
package core
