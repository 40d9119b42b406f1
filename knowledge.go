package askdocs

import "context"

// KnowledgeExt is the file extension that marks a file as a knowledge
// document. Files with any other extension are invisible to the service.
const KnowledgeExt = ".md"

// Document represents a single markdown knowledge file. The base name is the
// document's identity and the only attribute the service itself reads; the
// content is consumed exclusively by Asker implementations.
type Document struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Registry enumerates the knowledge files currently available. The returned
// names are the universe of legal citation targets.
type Registry interface {
	// Files returns the base names of all knowledge files in a stable
	// order. The order must not change between calls absent disk changes.
	Files(ctx context.Context) ([]string, error)
}

// DocumentSource loads the full contents of the knowledge files. Only
// delegate (Asker) implementations consume document contents.
type DocumentSource interface {
	// Documents returns all knowledge documents, ordered by name.
	Documents(ctx context.Context) ([]*Document, error)
}
