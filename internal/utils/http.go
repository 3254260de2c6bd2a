// Package utils provides small helpers shared by the transport layer:
// response writers, request port resolution, trace id generation and an
// HTTP client wrapper.
package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ContentTypeTextPlain is the Content-Type of every endpoint response.
const ContentTypeTextPlain = "text/plain;charset=UTF-8"

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.NewErrorResponse(http.StatusNotFound, "", r.URL.Path), http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteText writes text as a UTF-8 plain text body with the given status.
func WriteText(w http.ResponseWriter, text string, statusCode int) (int, error) {
	w.Header().Set("Content-Type", ContentTypeTextPlain)
	w.WriteHeader(statusCode)

	return w.Write([]byte(text))
}
