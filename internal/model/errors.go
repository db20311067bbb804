package model

import "fmt"

// NotFoundError indicates the requested account does not exist.
// Fatal: no analysis is possible without an identity.
type NotFoundError struct {
	Username string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("reddit user not found: u/%s", e.Username)
}

// SuspendedError indicates the account is suspended or its history is
// otherwise inaccessible. Fatal, but reported distinctly from not-found.
type SuspendedError struct {
	Username string
}

func (e *SuspendedError) Error() string {
	return fmt.Sprintf("reddit user suspended or private: u/%s", e.Username)
}

// FetchError indicates one content stream failed after its retry budget was
// exhausted. Non-fatal: items collected before the failure are kept and the
// stream is reported as partial.
type FetchError struct {
	Stream string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s stream: %v", e.Stream, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// EmptyCorpusError indicates that no usable content units survived fetching
// and normalization, so there is nothing to analyze.
type EmptyCorpusError struct {
	Username string
}

func (e *EmptyCorpusError) Error() string {
	return fmt.Sprintf("no usable posts or comments for u/%s", e.Username)
}
