package mock

import (
	"context"

	"github.com/ryderstorm/askdocs"
)

var _ askdocs.Registry = (*Registry)(nil)

// Registry is a mock implementation of askdocs.Registry.
type Registry struct {
	FilesFn func(ctx context.Context) ([]string, error)
}

func (r *Registry) Files(ctx context.Context) ([]string, error) {
	return r.FilesFn(ctx)
}

var _ askdocs.DocumentSource = (*DocumentSource)(nil)

// DocumentSource is a mock implementation of askdocs.DocumentSource.
type DocumentSource struct {
	DocumentsFn func(ctx context.Context) ([]*askdocs.Document, error)
}

func (s *DocumentSource) Documents(ctx context.Context) ([]*askdocs.Document, error) {
	return s.DocumentsFn(ctx)
}
