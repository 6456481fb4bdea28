package gateway

import "fmt"

// ConfigurationError means the gateway cannot talk to the provider at all,
// typically a missing API key. It is fatal and never retried.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configurationError: %s", e.Message)
}

func NewConfigurationError(msg string) error {
	return &ConfigurationError{Message: msg}
}

// TimeoutError means the provider did not respond within the per-call
// deadline. Callers treat it the same as an upstream failure, but keeping
// it distinct preserves the diagnostic difference.
type TimeoutError struct {
	Operation string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timeoutError: provider call %q exceeded its deadline", e.Operation)
}

// UpstreamError is a non-2xx response from the provider, with status and
// body captured for diagnostics. The body is never shown to end users.
type UpstreamError struct {
	Operation string
	Status    int
	Body      string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstreamError: provider call %q failed (status=%d)", e.Operation, e.Status)
}
