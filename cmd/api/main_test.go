package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aryavats2/interview-coach/internal/config"
	"aryavats2/interview-coach/internal/models"
	"aryavats2/interview-coach/internal/repositories"
	"aryavats2/interview-coach/internal/testutil"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestExtractCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.pdf")
	require.NoError(t, os.WriteFile(path, testutil.BuildPDF("Jane Doe", "Gopher"), 0o644))

	out, err := runCmd(t, "extract", "--clean", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "Gopher")

	_, err = runCmd(t, "extract", filepath.Join(dir, "notes.txt"))
	require.Error(t, err)

	broken := filepath.Join(dir, "broken.pdf")
	require.NoError(t, os.WriteFile(broken, []byte("nope"), 0o644))
	_, err = runCmd(t, "extract", broken)
	require.Error(t, err)
}

func TestHistoryCommand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("CHAT_DB", filepath.Join(dir, "chat.db"))
	t.Setenv("INTERVIEW_DB", filepath.Join(dir, "interview.db"))

	cfg, err := config.Load()
	require.NoError(t, err)
	dbs, err := config.InitDatabases(cfg)
	require.NoError(t, err)
	repo := repositories.NewChatRepository(dbs.Chat)
	require.NoError(t, repo.Create(context.Background(), &models.ChatTurn{UserMessage: "older", BotReply: "a"}))
	require.NoError(t, repo.Create(context.Background(), &models.ChatTurn{UserMessage: "newer", BotReply: "b"}))
	dbs.Close()

	out, err := runCmd(t, "history", "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "newer")
	assert.NotContains(t, out, "older")
}
