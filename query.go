package askdocs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// QueryService is the query façade: it validates the query, delegates to the
// opaque agent collaborator and normalizes whatever comes back into an
// Envelope. It holds no mutable state and is safe for concurrent use.
type QueryService struct {
	registry Registry
	asker    Asker
	logger   *slog.Logger

	// newID generates error identifiers. Overridable in tests.
	newID func() string
}

// NewQueryService creates a new QueryService. A nil logger falls back to
// slog.Default().
func NewQueryService(registry Registry, asker Asker, logger *slog.Logger) *QueryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &QueryService{
		registry: registry,
		asker:    asker,
		logger:   logger,
		newID:    uuid.NewString,
	}
}

// Answer answers a natural language query against the knowledge base. It
// always returns a well-formed envelope; failures are folded into it rather
// than returned as an error.
func (s *QueryService) Answer(ctx context.Context, query string) *Envelope {
	files := s.listFiles(ctx)

	env := &Envelope{
		Status:  StatusSuccess,
		Sources: []string{},
		Metadata: map[string]any{
			"query":                 query,
			"knowledge_files_count": len(files),
		},
	}

	if strings.TrimSpace(query) == "" {
		return s.fail(env, Errorf(EINVALID, "query must not be empty"))
	}
	if s.asker == nil {
		return s.fail(env, Errorf(EUNAVAILABLE, "agent not initialized"))
	}

	result, err := s.asker.Ask(ctx, query)
	if err != nil {
		return s.fail(env, err)
	}

	switch r := result.(type) {
	case StructuredResult:
		env.Response = r.AnswerText
		if r.CitedSources != nil {
			env.Sources = r.CitedSources
		}
		env.FoundRelevantSources = r.FoundRelevantSources
		env.Metadata["raw_response"] = r.Raw
		env.Metadata["response_length"] = len(r.AnswerText)
		env.Metadata["token_usage"] = r.Usage
	case RawTextResult:
		env.Response = r.Text
		env.Sources, env.FoundRelevantSources = InferSources(r.Text, files)
	default:
		return s.fail(env, Errorf(EINTERNAL, "delegate returned unknown result variant"))
	}

	return env
}

// listFiles returns the current registry listing. Listing failures are logged
// and degraded to an empty list; they never fail a query.
func (s *QueryService) listFiles(ctx context.Context) []string {
	if s.registry == nil {
		return nil
	}
	files, err := s.registry.Files(ctx)
	if err != nil {
		s.logger.Error("knowledge listing failed", "error", err)
		return nil
	}
	return files
}

// fail converts err into the envelope's error terminal state. Each failure
// gets a fresh identifier; full detail is logged server-side and only the
// redacted summary is placed in the envelope.
func (s *QueryService) fail(env *Envelope, err error) *Envelope {
	id := s.newID()
	code := ErrorCode(err)

	kind := code
	var appErr *Error
	if !errors.As(err, &appErr) {
		kind = fmt.Sprintf("%T", err)
	}

	httpCode := http.StatusInternalServerError
	if code == EINVALID {
		httpCode = http.StatusBadRequest
	}

	s.logger.Error("query failed",
		"error_id", id,
		"kind", kind,
		"code", httpCode,
		"error", err,
	)

	env.Status = StatusError
	env.FoundRelevantSources = false
	env.Err = &ErrorInfo{
		ID:      id,
		Kind:    kind,
		Message: ErrorMessage(err),
		Code:    httpCode,
	}
	return env
}
