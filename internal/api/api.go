// Package api defines the uniform response envelope returned by every
// endpoint and the helpers for writing it.
package api

import (
	"encoding/json"
	"log"
	"net/http"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response is the wire envelope. Message is a plain string on every path
// except field validation failures, where it is an ordered string array.
type Response struct {
	Status  string `json:"status"`
	Message any    `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func Success(message string, data any) Response {
	return Response{Status: StatusSuccess, Message: message, Data: data}
}

func Error(message any) Response {
	return Response{Status: StatusError, Message: message}
}

// Write serializes resp with the given status code. Encoding an envelope
// cannot fail for the types used here; a failure means a programming error
// and is only logged.
func Write(w http.ResponseWriter, statusCode int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Print(err.Error())
	}
}
