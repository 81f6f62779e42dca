package backend

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

// FallbackMessage: banner cuando el backend no explica el error.
const FallbackMessage = "Failed to fetch match data"

type APIError struct {
	Status int
	Detail string // campo "detail" del body, si vino como string
	Body   string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend status %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("backend status %d: %s", e.Status, e.Body)
}

// UserMessage: texto para el banner de error a partir de cualquier error de fetch.
func UserMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return FallbackMessage
}
