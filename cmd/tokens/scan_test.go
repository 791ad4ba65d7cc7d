package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eterevsky/tokens"
)

func TestScanCommandReportsStats(t *testing.T) {
	dir := t.TempDir()

	ts := tokens.BuildHexTokenSet()
	ts.AddString([]byte("ab"))
	tok, err := tokens.NewOptimalTokenizer(ts)
	require.NoError(t, err)
	stats := tok.TokenizeAndCount([]byte("abababab"), nil)

	artifactPath := filepath.Join(dir, "vocab.json")
	require.NoError(t, tokens.Save(&tokens.Result{Tokens: ts, Stats: stats, Config: tokens.Config{Fallback16: true, Seed: "top_str", Optimizer: "direct"}}, artifactPath))

	dataPath := filepath.Join(dir, "data.txt")
	require.NoError(t, os.WriteFile(dataPath, []byte("abababab"), 0o644))

	cmd := newScanCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{artifactPath, dataPath})
	require.NoError(t, cmd.Execute())

	require.Contains(t, out.String(), "scanned 8 bytes")
	require.Contains(t, out.String(), "ntokens in vocabulary")
}

func TestScanCommandRejectsMissingArtifact(t *testing.T) {
	dir := t.TempDir()
	cmd := newScanCmd()
	cmd.SetArgs([]string{filepath.Join(dir, "missing.json"), filepath.Join(dir, "data.txt")})
	require.Error(t, cmd.Execute())
}
