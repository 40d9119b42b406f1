package askdocs

// Envelope status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope is the normalized per-request response returned for every query,
// successful or not.
type Envelope struct {
	Status               string         `json:"status"`
	Response             string         `json:"response"`
	Sources              []string       `json:"sources"`
	FoundRelevantSources bool           `json:"found_relevant_sources"`
	Metadata             map[string]any `json:"metadata"`
	Err                  *ErrorInfo     `json:"error"`
}

// ErrorInfo is the redacted error summary that crosses the API boundary.
// Full error detail stays in server-side logs, keyed by ID.
type ErrorInfo struct {
	// ID is a unique identifier for this error occurrence, generated
	// fresh per failure so log lines can be correlated with responses.
	ID string `json:"id"`

	// Kind classifies the error: an application error code, or the Go
	// type name for unclassified failures.
	Kind string `json:"type"`

	Message string `json:"message"`

	// Code is the HTTP status code the transport layer should use.
	Code int `json:"code"`
}
