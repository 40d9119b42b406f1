// Package mock provides hand-written mocks of the askdocs domain interfaces
// for use in tests.
package mock

import (
	"context"

	"github.com/ryderstorm/askdocs"
)

var _ askdocs.Asker = (*Asker)(nil)

// Asker is a mock implementation of askdocs.Asker.
type Asker struct {
	AskFn func(ctx context.Context, query string) (askdocs.AgentResult, error)

	// AskInvoked reports whether Ask was called.
	AskInvoked bool
}

func (a *Asker) Ask(ctx context.Context, query string) (askdocs.AgentResult, error) {
	a.AskInvoked = true
	return a.AskFn(ctx, query)
}
