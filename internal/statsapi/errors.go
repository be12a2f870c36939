package statsapi

import (
	"errors"
	"fmt"
)

// StatusError is returned when the stats API answers with a non-2xx status.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("statsapi %s: unexpected status %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("statsapi %s: unexpected status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// AsStatusError unwraps err into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}
