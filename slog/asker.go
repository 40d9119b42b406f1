// Package slog provides logging decorators for askdocs domain interfaces.
// Implementations stay log-free; observability is layered on here.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/ryderstorm/askdocs"
)

// Ensure LoggingAsker implements askdocs.Asker.
var _ askdocs.Asker = (*LoggingAsker)(nil)

// LoggingAsker wraps an Asker with logging of delegate calls. The query text
// itself is logged at debug level only.
type LoggingAsker struct {
	next   askdocs.Asker
	logger *slog.Logger
}

// NewLoggingAsker creates a new LoggingAsker.
func NewLoggingAsker(next askdocs.Asker, logger *slog.Logger) *LoggingAsker {
	return &LoggingAsker{next: next, logger: logger}
}

// Ask delegates to the wrapped asker and logs outcome and duration.
func (a *LoggingAsker) Ask(ctx context.Context, query string) (askdocs.AgentResult, error) {
	begin := time.Now()
	a.logger.Debug("delegate call", "query", query)

	result, err := a.next.Ask(ctx, query)
	if err != nil {
		a.logger.Error("delegate call failed",
			"query_length", len(query),
			"duration", time.Since(begin),
			"err", err,
		)
		return nil, err
	}

	a.logger.Info("delegate call",
		"query_length", len(query),
		"variant", variantName(result),
		"duration", time.Since(begin),
	)
	return result, nil
}

func variantName(result askdocs.AgentResult) string {
	switch result.(type) {
	case askdocs.StructuredResult:
		return "structured"
	case askdocs.RawTextResult:
		return "raw_text"
	default:
		return "(unknown)"
	}
}
