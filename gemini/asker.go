// Package gemini implements askdocs.Asker using Google Gemini. It is an
// alternative delegate selected with --provider gemini.
package gemini

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/ryderstorm/askdocs"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Asker implements askdocs.Asker at compile time.
var _ askdocs.Asker = (*Asker)(nil)

// Asker implements askdocs.Asker using Google Gemini.
type Asker struct {
	client *genai.Client
	docs   askdocs.DocumentSource
	model  string
	mode   askdocs.AnswerMode
}

// Option configures an Asker.
type Option func(*Asker)

// WithModel sets the model. Defaults to DefaultModel.
func WithModel(model string) Option {
	return func(a *Asker) {
		if model != "" {
			a.model = model
		}
	}
}

// WithMode sets the answer mode. Defaults to askdocs.ModeStructured.
func WithMode(mode askdocs.AnswerMode) Option {
	return func(a *Asker) {
		if mode.Valid() {
			a.mode = mode
		}
	}
}

// NewAsker creates a new Asker reading knowledge documents from docs.
func NewAsker(client *genai.Client, docs askdocs.DocumentSource, opts ...Option) *Asker {
	a := &Asker{
		client: client,
		docs:   docs,
		model:  DefaultModel,
		mode:   askdocs.ModeStructured,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Ask answers a natural language question about the knowledge base.
func (a *Asker) Ask(ctx context.Context, query string) (askdocs.AgentResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, askdocs.Errorf(askdocs.EINVALID, "query required")
	}

	docs, err := a.docs.Documents(ctx)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return a.emptyResult(), nil
	}

	prompt := askdocs.BuildUserPrompt(docs, query)

	result, err := a.client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(a.mode),
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, askdocs.Errorf(askdocs.EUNAVAILABLE, "gemini returned nil result")
	}

	text := result.Text()
	if a.mode == askdocs.ModeHeuristic {
		return askdocs.RawTextResult{Text: text}, nil
	}

	var answer struct {
		Response             string   `json:"response"`
		Sources              []string `json:"sources"`
		FoundRelevantSources bool     `json:"found_relevant_sources"`
	}
	if err := json.Unmarshal([]byte(text), &answer); err != nil {
		return nil, askdocs.Errorf(askdocs.EINTERNAL, "malformed structured output: %v", err)
	}

	usage := askdocs.TokenUsage{}
	if md := result.UsageMetadata; md != nil {
		usage.PromptTokens = int(md.PromptTokenCount)
		usage.CompletionTokens = int(md.CandidatesTokenCount)
		usage.TotalTokens = int(md.TotalTokenCount)
	}

	return askdocs.StructuredResult{
		AnswerText:           answer.Response,
		CitedSources:         answer.Sources,
		FoundRelevantSources: answer.FoundRelevantSources,
		Raw:                  text,
		Usage:                usage,
	}, nil
}

func (a *Asker) emptyResult() askdocs.AgentResult {
	const text = "No relevant information was found in the knowledge base."
	if a.mode == askdocs.ModeHeuristic {
		return askdocs.RawTextResult{Text: text}
	}
	return askdocs.StructuredResult{
		AnswerText:           text,
		CitedSources:         []string{},
		FoundRelevantSources: false,
	}
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls. In
// structured mode the answer schema is enforced by the API.
func BuildConfig(mode askdocs.AnswerMode) *genai.GenerateContentConfig {
	temp := float32(0.1)
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: askdocs.SystemPrompt()}},
		},
		Temperature: &temp,
	}
	if mode == askdocs.ModeStructured {
		config.ResponseMIMEType = "application/json"
		config.ResponseSchema = &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"response":               {Type: genai.TypeString},
				"sources":                {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
				"found_relevant_sources": {Type: genai.TypeBoolean},
			},
			Required: []string{"response", "sources", "found_relevant_sources"},
		}
	}
	return config
}
