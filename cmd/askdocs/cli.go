package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/ryderstorm/askdocs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx          context.Context
	Stdout       io.Writer
	Stderr       io.Writer
	Logger       *slog.Logger
	Registry     askdocs.Registry
	Service      *askdocs.QueryService
	KnowledgeDir string
	Version      string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Dir      string `default:"./knowledge" env:"KNOWLEDGE_DIR" help:"Knowledge directory containing *.md files"`
	Provider string `default:"openai" enum:"openai,gemini" help:"LLM provider"`
	Model    string `help:"Override the provider's default model"`
	Mode     string `default:"structured" enum:"structured,heuristic" help:"Answer mode: structured output or free text with heuristic source attribution"`

	Serve ServeCmd `cmd:"" help:"Start the HTTP API server"`
	Ask   AskCmd   `cmd:"" help:"Ask a one-shot question about the knowledge base"`
	Files FilesCmd `cmd:"" help:"List available knowledge files"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8000" help:"Listen address"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question string `arg:"" help:"Question to ask about the knowledge base"`
}

// FilesCmd is the "files" subcommand.
type FilesCmd struct{}
