package fetchers

import "fmt"

// Error taxonomy for the DHMZ client. AuthenticationError is fatal and not
// retriable by this layer, CommunicationError is transient and safe for the
// caller's scheduler to retry with backoff, MalformedFeedError marks a
// persistently broken payload and everything else surfaces as a generic
// ClientError. The orchestrator wraps parser failures in ClientError so one
// error surface covers all feeds.

// ClientError indicates a general client failure, wrapping its cause.
type ClientError struct {
	msg   string
	cause error
}

func (e *ClientError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

func (e *ClientError) Unwrap() error {
	return e.cause
}

// AuthenticationError indicates the upstream rejected the request (401/403).
type AuthenticationError struct {
	url string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("invalid credentials fetching %s", e.url)
}

// CommunicationError indicates a timeout or connection-level failure.
type CommunicationError struct {
	url   string
	cause error
}

func (e *CommunicationError) Error() string {
	return fmt.Sprintf("error fetching %s: %v", e.url, e.cause)
}

func (e *CommunicationError) Unwrap() error {
	return e.cause
}

// MalformedFeedError indicates a feed payload that does not match the
// expected document structure. Missing individual data fields never produce
// this error; missing structural containers do.
type MalformedFeedError struct {
	Feed   string
	reason string
	cause  error
}

func (e *MalformedFeedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("malformed %s feed: %s: %v", e.Feed, e.reason, e.cause)
	}
	return fmt.Sprintf("malformed %s feed: %s", e.Feed, e.reason)
}

func (e *MalformedFeedError) Unwrap() error {
	return e.cause
}

func malformed(feed, reason string) error {
	return &MalformedFeedError{Feed: feed, reason: reason}
}

func malformedWrap(feed, reason string, cause error) error {
	return &MalformedFeedError{Feed: feed, reason: reason, cause: cause}
}
