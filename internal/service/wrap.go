package service

import (
	"errors"
	"strconv"

	"cardvault/internal/client/api"
	"cardvault/internal/core"
)

const unknownErrorMessage = "An unknown error occurred"

// wrap normalizes a client call into the response envelope. Envelope
// bodies (success or failure) pass through unchanged; an HTTP error
// without a decodable envelope uses the status code as error.code; a
// connection-level failure falls back to UNKNOWN_ERROR.
func wrap(resp *core.Response, err error) *core.Response {
	if err == nil {
		return resp
	}
	var statusErr *api.StatusError
	if errors.As(err, &statusErr) {
		return core.Fail(strconv.Itoa(statusErr.Status), unknownErrorMessage)
	}
	return core.Fail(core.ErrUnknown, unknownErrorMessage)
}
