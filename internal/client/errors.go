package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"adizon-admin/internal/domain"
)

// limit for error bodies kept in memory
const maxErrorBody = 64 << 10

// APIError — ответ бэкенда с кодом вне 2xx.
type APIError struct {
	Status  int
	Message string
}

var _ domain.Detailer = (*APIError)(nil)

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("adizon api: http %d", e.Status)
	}
	return fmt.Sprintf("adizon api: http %d: %s", e.Status, e.Message)
}

// Detail возвращает сообщение бэкенда (поле detail).
func (e *APIError) Detail() string { return e.Message }

func (e *APIError) StatusCode() int { return e.Status }

// validation errors come as a list of {loc, msg, type}
type validationItem struct {
	Msg string `json:"msg"`
}

func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return apiErr
	}

	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || len(body.Detail) == 0 {
		return apiErr
	}

	apiErr.Message = parseDetail(body.Detail)
	return apiErr
}

func parseDetail(raw json.RawMessage) string {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}

	var items []validationItem
	if err := json.Unmarshal(raw, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, item := range items {
			if item.Msg != "" {
				msgs = append(msgs, item.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}

	return ""
}
