// Package agent provides the single-purpose processing units composed into
// pipelines. Each agent exposes a typed Process method that returns a result
// payload together with the thinking steps it emitted.
//
// Agents never return errors: transient external failures (store search,
// provider generation, malformed model output) are absorbed at the agent
// boundary and degrade to an empty, default or original value, recorded as
// an error-status thinking step where the contract calls for one. A partial
// answer or clearly labeled fallback content is always more useful to the
// end user than a hard failure.
package agent
