package apiclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTransport         = errors.New("backend unreachable")
	ErrUnexpectedPayload = errors.New("unexpected backend payload")
)

const genericMessage = "Something went wrong"

// APIError is a non-2xx response. Data keeps the decoded payload for callers
// that render field errors themselves.
type APIError struct {
	Status  int
	Message string
	Data    any

	raw json.RawMessage
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend %d: %s", e.Status, e.Message)
}

// FieldErrors returns the payload as field -> messages, or nil when the
// payload is not a field-error object.
func (e *APIError) FieldErrors() map[string][]string {
	obj, ok := e.Data.(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string][]string, len(obj))
	for k, v := range obj {
		out[k] = messagesOf(v)
	}
	return out
}

// FieldSummary renders every field error in document order as
// "field: a, b | field2: c". Empty when the payload is not a field-error object.
func (e *APIError) FieldSummary() string {
	fields, ok := orderedFields(e.raw)
	if !ok {
		return ""
	}
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		var v any
		if err := json.Unmarshal(f.value, &v); err != nil {
			continue
		}
		if msgs := messagesOf(v); len(msgs) > 0 {
			parts = append(parts, f.key+": "+strings.Join(msgs, ", "))
		}
	}
	return strings.Join(parts, " | ")
}

// StatusCode reports the HTTP status of err when it is an *APIError.
func StatusCode(err error) (int, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status, true
	}
	return 0, false
}

func newAPIError(status int, raw json.RawMessage) *APIError {
	e := &APIError{Status: status, Message: genericMessage, raw: raw}
	if len(raw) == 0 {
		return e
	}
	var data any
	if err := json.Unmarshal(raw, &data); err == nil {
		e.Data = data
	}
	if msg := messageFrom(raw); msg != "" {
		e.Message = msg
	}
	return e
}

// messageFrom picks detail, then error, then the first field of a field-error
// object in document order ("name: This field is required.").
func messageFrom(raw json.RawMessage) string {
	fields, ok := orderedFields(raw)
	if !ok || len(fields) == 0 {
		return ""
	}
	for _, key := range []string{"detail", "error"} {
		for _, f := range fields {
			if f.key == key {
				if msg := flatMessage(f.value); msg != "" {
					return msg
				}
			}
		}
	}
	first := fields[0]
	var v any
	if err := json.Unmarshal(first.value, &v); err != nil {
		return ""
	}
	msgs := messagesOf(v)
	if len(msgs) == 0 {
		return ""
	}
	return first.key + ": " + strings.Join(msgs, ", ")
}

// flatMessage accepts a string or an {"message": "..."} object.
func flatMessage(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var obj struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return strings.TrimSpace(obj.Message)
	}
	return ""
}

func messagesOf(v any) []string {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		return []string{t}
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			out = append(out, messagesOf(item)...)
		}
		return out
	case map[string]any:
		b, _ := json.Marshal(t)
		return []string{string(b)}
	default:
		return []string{fmt.Sprint(t)}
	}
}

type field struct {
	key   string
	value json.RawMessage
}

// orderedFields walks a JSON object keeping key order, which a map decode loses.
func orderedFields(raw json.RawMessage) ([]field, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, false
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, false
	}
	var out []field
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return nil, false
		}
		key, ok := kt.(string)
		if !ok {
			return nil, false
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, false
		}
		out = append(out, field{key: key, value: value})
	}
	return out, true
}
