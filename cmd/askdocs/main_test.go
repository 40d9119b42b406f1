package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	main "github.com/ryderstorm/askdocs/cmd/askdocs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run(t *testing.T) {
	t.Run("files command lists knowledge files", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "docker.md"), []byte("# Docker"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "fastapi.md"), []byte("# FastAPI"), 0644))

		var stdout, stderr bytes.Buffer
		m := main.NewMain()

		err := m.Run(context.Background(), []string{"files", "--dir", dir}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "docker.md")
		assert.Contains(t, stdout.String(), "fastapi.md")
	})

	t.Run("files command creates a missing knowledge directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "knowledge")

		var stdout, stderr bytes.Buffer
		m := main.NewMain()

		err := m.Run(context.Background(), []string{"files", "--dir", dir}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No knowledge files found")
		info, statErr := os.Stat(dir)
		require.NoError(t, statErr)
		assert.True(t, info.IsDir())
	})

	t.Run("errors when no command specified", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		m := main.NewMain()

		err := m.Run(context.Background(), nil, &stdout, &stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("serve refuses to start without a provider credential", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "")

		var stdout, stderr bytes.Buffer
		m := main.NewMain()

		err := m.Run(context.Background(), []string{"serve", "--dir", t.TempDir()}, &stdout, &stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "OPENAI_API_KEY")
	})

	t.Run("serve refuses to start when root flags precede the command", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "")

		var stdout, stderr bytes.Buffer
		m := main.NewMain()

		err := m.Run(context.Background(), []string{"--provider", "openai", "serve", "--dir", t.TempDir()}, &stdout, &stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "OPENAI_API_KEY")
		assert.Nil(t, m.Service)
	})
}
