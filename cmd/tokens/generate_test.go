package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateCommandDryRunListsConfigurations(t *testing.T) {
	cmd := newGenerateCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"unused.txt", "64", "unused.json", "--dry-run"})
	require.NoError(t, cmd.Execute())
	require.NotEmpty(t, out.String())
}

func TestGenerateCommandRejectsNtokensOutOfRange(t *testing.T) {
	cmd := newGenerateCmd()
	cmd.SetArgs([]string{"unused.txt", "1", "unused.json", "--dry-run"})
	require.Error(t, cmd.Execute())
}

func TestGenerateCommandDryRunNarrowedByConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "tokens.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("seeds:\n  - bpe\n"), 0o644))

	cmd := newGenerateCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"unused.txt", "64", "unused.json", "--dry-run", "--config", configPath})
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "bpe")
}

func TestParseNtokensValidatesRange(t *testing.T) {
	_, err := parseNtokens("not-a-number")
	require.Error(t, err)

	n, err := parseNtokens("128")
	require.NoError(t, err)
	require.Equal(t, 128, n)
}
