package api

import (
	"errors"
	"fmt"
)

// Network failure kinds reaching the session controller. Everything the
// transport can throw is translated into one of these three before it
// leaves this package.
var (
	ErrTimeout     = errors.New("request timed out, try reducing course combinations or retrying")
	ErrUnreachable = errors.New("cannot reach the scheduling service, it may still be starting up")
)

// ServerError is a non-success response from the service. Detail carries
// the structured error payload when one was decodable.
type ServerError struct {
	Status int
	Detail string
}

func (e *ServerError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed: %d", e.Status)
}
