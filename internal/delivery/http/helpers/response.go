package helpers

import (
	"encoding/json"
	"net/http"

	"eventmanager/internal/delivery/respond"
)

// WriteJSON sets Content-Type to application/json, writes statusCode, and encodes body.
func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteResponse writes a shaped service result.
func WriteResponse(w http.ResponseWriter, resp respond.Response) {
	WriteJSON(w, resp.Status, resp.Body)
}

// WriteJSONError writes an ErrorBody with the given code and message.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	WriteJSON(w, statusCode, respond.ErrorBody{Code: code, Message: message})
}
