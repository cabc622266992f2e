package adapter

import "errors"

var (
	// ErrAuthentication means the credential was rejected (401/403).
	// Not retried; the operator must supply a valid token with repo scope.
	ErrAuthentication = errors.New("github credential rejected")

	// ErrNotFound means the repository or resource does not exist, or the
	// credential lacks access to it (404). Not retried.
	ErrNotFound = errors.New("github resource not found")

	// ErrTransient covers 5xx responses, network failures and timeouts.
	// Callers may retry with backoff; no automatic retry happens here.
	ErrTransient = errors.New("github transient failure")
)
