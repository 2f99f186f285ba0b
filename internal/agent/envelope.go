package agent

import "encoding/json"

// RequestError describes a failed API request. StatusCode is zero for
// transport-level failures (connection refused, DNS errors, timeouts) and
// carries the HTTP status for error responses, so the two failure kinds
// stay structurally distinguishable.
type RequestError struct {
	Message    string
	StatusCode int
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	return e.Message
}

// Envelope is the result of a single API call: either the decoded JSON
// body of a successful response, or a locally constructed RequestError.
// Exactly one of the two fields is set.
type Envelope struct {
	Body map[string]any
	Err  *RequestError
}

// OK reports whether the envelope carries a successful response body.
func (e Envelope) OK() bool {
	return e.Err == nil
}

// Field returns the named body field and whether it is present.
func (e Envelope) Field(key string) (any, bool) {
	if e.Body == nil {
		return nil, false
	}
	v, ok := e.Body[key]
	return v, ok
}

// StringField returns the named body field as a string, or def when the
// field is missing or has another type.
func (e Envelope) StringField(key, def string) string {
	if v, ok := e.Field(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

// BoolField returns the named body field as a bool, or def when the field
// is missing or has another type.
func (e Envelope) BoolField(key string, def bool) bool {
	if v, ok := e.Field(key); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

// MarshalJSON renders the success body unchanged, or the error as
// {"error": message} plus a status_code field when the failure carried an
// HTTP status. Formatting code never has to branch on the variant.
func (e Envelope) MarshalJSON() ([]byte, error) {
	if e.Err == nil {
		return json.Marshal(e.Body)
	}
	out := map[string]any{"error": e.Err.Message}
	if e.Err.StatusCode != 0 {
		out["status_code"] = e.Err.StatusCode
	}
	return json.Marshal(out)
}
