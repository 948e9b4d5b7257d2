package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyResponse reports a successful provider call that produced no
// usable text.
var ErrEmptyResponse = errors.New("provider returned an empty response")

// CredentialError reports a required API key missing from the environment.
// It is returned before any network call is made.
type CredentialError struct {
	EnvVar string
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("missing credential: %s is not set", e.EnvVar)
}

// HTTPError reports a non-success status from a provider endpoint and
// carries the upstream response body.
type HTTPError struct {
	Provider   string
	StatusCode int
	Body       string
	Hint       string
}

func (e *HTTPError) Error() string {
	msg := fmt.Sprintf("%s: HTTP %d: %s", e.Provider, e.StatusCode, e.Body)
	if e.Hint != "" {
		msg += " (" + e.Hint + ")"
	}
	return msg
}
