package models

// ErrorKind categorizes why a model call or a whole pipeline run failed.
// Per-model kinds (timeout through invalid_response) are absorbed into
// ModelCallResults; only the run-level kinds surface to callers.
type ErrorKind string

const (
	// Per-model error kinds — recorded on a failed ModelCallResult.
	ErrorKindTimeout         ErrorKind = "timeout"
	ErrorKindCircuitOpen     ErrorKind = "circuit_open"
	ErrorKindRateLimited     ErrorKind = "rate_limited"
	ErrorKindProviderError   ErrorKind = "provider_error"
	ErrorKindInvalidResponse ErrorKind = "invalid_response"

	// Run-level error kinds — the only kinds surfaced to callers.
	ErrorKindAllProvidersFailed ErrorKind = "all_providers_failed"
	ErrorKindSynthesisFailed    ErrorKind = "synthesis_failed"
	ErrorKindCancelled          ErrorKind = "cancelled"
)

// RunLevel reports whether this kind terminates a whole run (as opposed to
// a single model call within an otherwise healthy stage).
func (k ErrorKind) RunLevel() bool {
	switch k {
	case ErrorKindAllProvidersFailed, ErrorKindSynthesisFailed, ErrorKindCancelled:
		return true
	}
	return false
}

// CallError carries the categorized failure of a single provider call.
type CallError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// Error implements the error interface.
func (e *CallError) Error() string {
	return string(e.Kind) + ": " + e.Message
}

// NewCallError builds a CallError from a kind and an underlying error.
func NewCallError(kind ErrorKind, err error) *CallError {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return &CallError{Kind: kind, Message: msg}
}

// RunError carries the terminal failure of a pipeline run, including which
// models were implicated so a failed run never surfaces as an opaque 500.
type RunError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
	Models  []string  `json:"models,omitempty"`
}

// Error implements the error interface.
func (e *RunError) Error() string {
	return string(e.Kind) + ": " + e.Message
}
