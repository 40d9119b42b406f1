// Package openai implements askdocs.Asker using the OpenAI chat completion
// API. It is the default delegate: the knowledge-synthesis agent lives here
// as a system prompt, and in structured mode the answer schema is enforced by
// the API itself.
package openai

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/ryderstorm/askdocs"
	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gpt-4o-mini"

// temperature is kept low so answers stay close to the knowledge sources.
const temperature = 0.1

// Ensure Asker implements askdocs.Asker at compile time.
var _ askdocs.Asker = (*Asker)(nil)

// Asker implements askdocs.Asker using OpenAI.
type Asker struct {
	client *openai.Client
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
func NewAsker(client *openai.Client, docs askdocs.DocumentSource, opts ...Option) *Asker {
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

	req := openai.ChatCompletionRequest{
		Model:       a.model,
		Temperature: temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: askdocs.SystemPrompt()},
			{Role: openai.ChatMessageRoleUser, Content: askdocs.BuildUserPrompt(docs, query)},
		},
	}
	if a.mode == askdocs.ModeStructured {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "agent_response",
				Schema: answerSchema(),
				Strict: true,
			},
		}
	}

	resp, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, askdocs.Errorf(askdocs.EUNAVAILABLE, "model returned no choices")
	}

	content := resp.Choices[0].Message.Content
	if a.mode == askdocs.ModeHeuristic {
		return askdocs.RawTextResult{Text: content}, nil
	}

	var answer struct {
		Response             string   `json:"response"`
		Sources              []string `json:"sources"`
		FoundRelevantSources bool     `json:"found_relevant_sources"`
	}
	if err := json.Unmarshal([]byte(content), &answer); err != nil {
		return nil, askdocs.Errorf(askdocs.EINTERNAL, "malformed structured output: %v", err)
	}

	return askdocs.StructuredResult{
		AnswerText:           answer.Response,
		CitedSources:         answer.Sources,
		FoundRelevantSources: answer.FoundRelevantSources,
		Raw:                  content,
		Usage: askdocs.TokenUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}

// emptyResult is returned without calling the API when the knowledge base is
// empty: there is nothing to synthesize from.
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

// answerSchema is the JSON schema the API enforces in structured mode.
func answerSchema() *jsonschema.Definition {
	return &jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"response": {
				Type:        jsonschema.String,
				Description: "The answer, based strictly on the knowledge sources.",
			},
			"sources": {
				Type:        jsonschema.Array,
				Description: "Exact filenames of the knowledge sources used.",
				Items:       &jsonschema.Definition{Type: jsonschema.String},
			},
			"found_relevant_sources": {
				Type:        jsonschema.Boolean,
				Description: "Whether any knowledge source contained relevant information.",
			},
		},
		Required:             []string{"response", "sources", "found_relevant_sources"},
		AdditionalProperties: false,
	}
}
