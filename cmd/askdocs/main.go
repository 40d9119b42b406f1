package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/ryderstorm/askdocs"
	"github.com/ryderstorm/askdocs/fs"
	"github.com/ryderstorm/askdocs/gemini"
	"github.com/ryderstorm/askdocs/openai"
	adslog "github.com/ryderstorm/askdocs/slog"
	goopenai "github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
)

// Version is reported by GET / and the serve banner.
const Version = "1.0.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Library backs the knowledge registry and document source.
	Library *fs.Library

	// Service answers queries. Exposed for end-to-end testing.
	Service *askdocs.QueryService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Secrets come from the environment; a .env file is a convenience and
	// its absence is not an error.
	_ = godotenv.Load(".env")

	logger := newLogger(stderr)

	deps := &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		Logger:  logger,
		Version: Version,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("askdocs"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'askdocs --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Knowledge library, shared by every command.
	m.Library, err = fs.NewLibrary(cli.Dir)
	if err != nil {
		return fmt.Errorf("failed to open knowledge directory %q: %w", cli.Dir, err)
	}
	deps.KnowledgeDir = m.Library.Dir()
	deps.Registry = adslog.NewLoggingRegistry(m.Library, logger)

	// Commands that invoke the delegate need a provider client. A missing
	// credential refuses to start: without it no query can ever succeed.
	// The command name comes from the parsed context so root flags placed
	// before the command are handled.
	cmd, _, _ := strings.Cut(kongCtx.Command(), " ")
	if cmd == "serve" || cmd == "ask" {
		asker, err := newAsker(ctx, cli, m.Library, stderr)
		if err != nil {
			return err
		}
		m.Service = askdocs.NewQueryService(deps.Registry, adslog.NewLoggingAsker(asker, logger), logger)
		deps.Service = m.Service
	}

	return kongCtx.Run(deps)
}

// newAsker builds the configured delegate implementation.
func newAsker(ctx context.Context, cli *CLI, docs askdocs.DocumentSource, stderr io.Writer) (askdocs.Asker, error) {
	mode := askdocs.AnswerMode(cli.Mode)

	switch cli.Provider {
	case "gemini":
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return nil, fmt.Errorf("GEMINI_API_KEY not set")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewAsker(client, docs, gemini.WithModel(cli.Model), gemini.WithMode(mode)), nil

	default:
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "OPENAI_API_KEY environment variable not set.")
			return nil, fmt.Errorf("OPENAI_API_KEY not set")
		}
		client := goopenai.NewClient(apiKey)
		return openai.NewAsker(client, docs, openai.WithModel(cli.Model), openai.WithMode(mode)), nil
	}
}

// newLogger builds the process logger. Verbosity comes from the optional
// LOG_LEVEL environment variable and defaults to info.
func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
