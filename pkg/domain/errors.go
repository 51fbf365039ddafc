package domain

import (
	"errors"
	"fmt"
)

// ErrMalformedGraph is returned when edges point outside the graph or lists disagree.
var ErrMalformedGraph = errors.New("malformed graph")

// ErrTooManyNodes is returned when a graph has more nodes than a Bits value can track.
var ErrTooManyNodes = errors.New("too many nodes")

// ErrMalformedInput is returned when the input stream cannot be parsed.
var ErrMalformedInput = errors.New("malformed input")

// ErrCaseSelection is returned for an invalid case selection list.
var ErrCaseSelection = errors.New("invalid case selection")

// ErrResultNotFound is returned when a result store has no entry for a fingerprint.
var ErrResultNotFound = errors.New("result not found")

// InputError locates a failure inside a batch input stream.
type InputError struct {
	Case  int // 1-based case number, 0 for the header
	Token int // 1-based token position in the stream
	Cause error
}

func (e *InputError) Error() string {
	if e.Case == 0 {
		return fmt.Sprintf("input header (token %d): %v", e.Token, e.Cause)
	}
	return fmt.Sprintf("case #%d (token %d): %v", e.Case, e.Token, e.Cause)
}

func (e *InputError) Unwrap() error {
	return e.Cause
}
