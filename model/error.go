package model

import "fmt"

// ConfigError reports missing or invalid configuration. It is fatal: the
// caller prints the message and exits before any network call is attempted.
type ConfigError struct {
	Field  string
	Reason string
}

func NewConfigError(field, reason string) *ConfigError {
	return &ConfigError{Field: field, Reason: reason}
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

// FetchError wraps the last underlying error after the retry budget is
// exhausted. Attempts records how many calls were actually made.
type FetchError struct {
	Attempts int
	Err      error
}

func NewFetchError(attempts int, err error) *FetchError {
	return &FetchError{Attempts: attempts, Err: err}
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch: giving up after %d attempts: %v", e.Attempts, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
