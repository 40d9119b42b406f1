package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/ryderstorm/askdocs"
)

// Ensure LoggingRegistry implements askdocs.Registry.
var _ askdocs.Registry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps a Registry with debug logging for knowledge listings.
type LoggingRegistry struct {
	next   askdocs.Registry
	logger *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next askdocs.Registry, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, logger: logger}
}

// Files delegates to the wrapped registry and logs the listing outcome.
func (r *LoggingRegistry) Files(ctx context.Context) ([]string, error) {
	begin := time.Now()

	files, err := r.next.Files(ctx)
	if err != nil {
		r.logger.Error("knowledge listing failed",
			"duration", time.Since(begin),
			"err", err,
		)
		return nil, err
	}

	r.logger.Debug("knowledge listing",
		"count", len(files),
		"duration", time.Since(begin),
	)
	return files, nil
}
