package core

import "github.com/google/uuid"

// StepStatus classifies the outcome of a thinking step.
type StepStatus string

const (
	// StepProcessing marks a step announced before its work completes.
	StepProcessing StepStatus = "processing"
	// StepCompleted marks a step whose work finished successfully.
	StepCompleted StepStatus = "completed"
	// StepError marks a step that observed a failure. Agents emitting an
	// error step still return a well-formed (degraded) result.
	StepError StepStatus = "error"
)

// ThinkingStep is an immutable audit record emitted by an agent. Pipelines
// concatenate the steps of every agent in execution order to form the audit
// trail of a whole run; the slice is append-only and never reordered.
type ThinkingStep struct {
	Agent   string         `json:"agent"`
	Step    string         `json:"step"`
	Status  StepStatus     `json:"status"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// NewStep creates a thinking step authored by 'agent' for the given stage
// label. Prefer the status-specific constructors at call sites.
func NewStep(agent, step string, status StepStatus, message string) ThinkingStep {
	return ThinkingStep{Agent: agent, Step: step, Status: status, Message: message}
}

// NewProcessingStep records that a stage has started.
func NewProcessingStep(agent, step, message string) ThinkingStep {
	return NewStep(agent, step, StepProcessing, message)
}

// NewCompletedStep records that a stage finished successfully.
func NewCompletedStep(agent, step, message string) ThinkingStep {
	return NewStep(agent, step, StepCompleted, message)
}

// NewErrorStep records an observed failure. The failure is absorbed by the
// emitting agent, not propagated.
func NewErrorStep(agent, step, message string) ThinkingStep {
	return NewStep(agent, step, StepError, message)
}

// WithDetails returns a copy of the step carrying a diagnostic payload.
func (s ThinkingStep) WithDetails(details map[string]any) ThinkingStep {
	s.Details = details
	return s
}

// NewID generates a unique identifier for run and artifact correlation.
func NewID() string { return uuid.NewString() }
