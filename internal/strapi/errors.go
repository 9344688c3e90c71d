package strapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const (
	TextCodeSubmitFailed = "CMS_SUBMIT_FAILED"
)

// StatusError reports a non-2xx CMS response.
type StatusError struct {
	Method   string
	Resource string
	Status   int
	Message  string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("strapi: %s %s: %d %s", e.Method, e.Resource, e.Status, http.StatusText(e.Status))
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// apiMessage pulls error.message out of a Strapi error body.
func apiMessage(body []byte) string {
	var payload struct {
		Error struct {
			Name    string `json:"name"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return strings.TrimSpace(payload.Error.Message)
}
