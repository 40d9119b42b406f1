package askdocs

import "context"

// AnswerMode selects how a delegate reports its result and, consequently,
// how the façade attributes sources.
type AnswerMode string

const (
	// ModeStructured instructs the delegate to return a self-describing
	// result with answer, sources and a found flag. Sources are passed
	// through verbatim.
	ModeStructured AnswerMode = "structured"

	// ModeHeuristic lets the delegate return free text. Sources are
	// inferred afterwards by InferSources.
	ModeHeuristic AnswerMode = "heuristic"
)

// Valid reports whether m is a known answer mode.
func (m AnswerMode) Valid() bool {
	return m == ModeStructured || m == ModeHeuristic
}

// Asker is the opaque agent collaborator that performs retrieval and answer
// synthesis. Implementations are expected to be network-bound and slow;
// cancellation is the caller's responsibility via ctx.
type Asker interface {
	// Ask answers a natural language question about the knowledge base.
	// The variant of the returned AgentResult depends on the asker's
	// configured answer mode.
	Ask(ctx context.Context, query string) (AgentResult, error)
}

// TokenUsage reports LLM token consumption for a single delegate call.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// AgentResult is the delegate's reply. It has exactly two variants:
// StructuredResult and RawTextResult. The sealed marker method keeps
// downstream code to an exhaustive type switch instead of attribute probing.
type AgentResult interface {
	agentResult()
}

// StructuredResult is a self-describing delegate reply whose shape was
// enforced by the delegate itself.
type StructuredResult struct {
	AnswerText           string
	CitedSources         []string
	FoundRelevantSources bool

	// Raw is the untouched model output the structured fields were
	// decoded from, reported as diagnostic metadata.
	Raw string

	Usage TokenUsage
}

func (StructuredResult) agentResult() {}

// RawTextResult is an unstructured free-text delegate reply.
type RawTextResult struct {
	Text string
}

func (RawTextResult) agentResult() {}
