// Copyright (c) 2026 BVK Chaitanya

package client

import "fmt"

// HTTPError is returned when the server responds with a non-2xx status code.
type HTTPError struct {
	StatusCode int

	// Status is the status line text, e.g. "404 Not Found".
	Status string

	// Body holds the response body, which is usually an error description from
	// the server.
	Body []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// ParseError is returned when a successful response body cannot be decoded
// as JSON or into the expected response type.
type ParseError struct {
	Body []byte

	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse response body: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
