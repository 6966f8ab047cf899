package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnauthorized marks responses rejected with HTTP 401. The session manager
// reacts to it by attempting a token refresh before expiring the session.
var ErrUnauthorized = errors.New("session is no longer valid")

// Error is the typed failure returned for any non-2xx backend response.
type Error struct {
	Status    int
	Detail    string
	RequestID string
}

func (e *Error) Error() string {
	detail := strings.TrimSpace(e.Detail)
	if detail == "" {
		detail = "no detail"
	}
	return fmt.Sprintf("reels api: http %d: %s", e.Status, detail)
}

func (e *Error) Unwrap() error {
	if e.Status == 401 {
		return ErrUnauthorized
	}
	return nil
}

// Detail extracts the backend's structured error detail from err, falling back
// to the supplied message when the failure carries no detail (transport errors,
// shapeless 4xx/5xx bodies).
func Detail(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		if detail := strings.TrimSpace(apiErr.Detail); detail != "" {
			return detail
		}
	}
	return fallback
}

type errorBody struct {
	Detail string `json:"detail"`
}

func parseDetail(body []byte) string {
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}
	return strings.TrimSpace(parsed.Detail)
}
