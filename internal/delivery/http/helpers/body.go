package helpers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"eventmanager/internal/delivery/respond"
)

// MaxBodyBytes caps request bodies.
const MaxBodyBytes = 1 << 20

// ReadBody reads the whole request body. On failure it writes a JSON error
// (413 past MaxBodyBytes, 400 otherwise) and returns false; callers should
// return immediately.
func ReadBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteJSONError(w, http.StatusRequestEntityTooLarge, respond.ErrCodeBadRequest,
				fmt.Sprintf("request body must not exceed %d bytes", tooLarge.Limit))
			return nil, false
		}
		WriteJSONError(w, http.StatusBadRequest, respond.ErrCodeBadRequest, "could not read request body")
		return nil, false
	}
	return body, true
}
