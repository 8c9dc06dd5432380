package wire

// Result is the decoded outcome of a command. Whether the remote call
// succeeded is decided once, at decode time: a response with a non-empty
// "error" field is a remote failure, everything else is a success. Legacy
// commands that return raw domain fields with no explicit success flag
// therefore count as successes, which matches the editor plugin's
// behavior.
type Result struct {
	Fields    map[string]any
	remoteErr string
}

// Ok reports whether the remote call succeeded.
func (r Result) Ok() bool {
	return r.remoteErr == ""
}

// RemoteErr returns the remote error message, or "" on success.
func (r Result) RemoteErr() string {
	return r.remoteErr
}

// Message returns the response "message" field, or fallback when the
// field is absent or not a string.
func (r Result) Message(fallback string) string {
	if s, ok := r.Fields["message"].(string); ok && s != "" {
		return s
	}
	return fallback
}

// StringField returns a top-level string field, or fallback.
func (r Result) StringField(key, fallback string) string {
	if s, ok := r.Fields[key].(string); ok && s != "" {
		return s
	}
	return fallback
}

// Data returns the response "data" field, which may be nil.
func (r Result) Data() any {
	return r.Fields["data"]
}

// List returns a top-level array field, or nil when absent. Legacy
// commands return collections this way ("objects", "assets", "scripts").
func (r Result) List(key string) []any {
	items, _ := r.Fields[key].([]any)
	return items
}

// Object returns a top-level object field, or nil when absent.
func (r Result) Object(key string) map[string]any {
	obj, _ := r.Fields[key].(map[string]any)
	return obj
}

// RemoteError builds a Result representing a remote failure. Used by
// tests and by callers that synthesize failures locally.
func RemoteError(msg string) Result {
	return Result{Fields: map[string]any{"error": msg}, remoteErr: msg}
}

// OkResult builds a successful Result around the given fields.
func OkResult(fields map[string]any) Result {
	return Result{Fields: fields}
}
