package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run_NoCommand(t *testing.T) {
	t.Parallel()

	m := NewMain()
	var stdout, stderr bytes.Buffer
	err := m.Run(context.Background(), nil, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := NewMain()
	var stdout, stderr bytes.Buffer
	require.NoError(t, m.Run(context.Background(), []string{"--help"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "read")
	assert.Contains(t, stdout.String(), "issue")
}

func TestMain_Run_Sites(t *testing.T) {
	t.Parallel()

	// A missing configuration file is fine: everything runs anonymously.
	m := NewMain()
	m.ConfigPath = filepath.Join(t.TempDir(), "kiosque.yaml")

	var stdout, stderr bytes.Buffer
	require.NoError(t, m.Run(context.Background(), []string{"sites"}, &stdout, &stderr))

	out := stdout.String()
	assert.Contains(t, out, "lemonde")
	assert.Contains(t, out, "https://www.lemonde.fr/")
	assert.Contains(t, out, "theguardian")
}

func TestMain_Run_BadConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "kiosque.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sites: [not a map"), 0o644))

	m := NewMain()
	m.ConfigPath = path

	var stdout, stderr bytes.Buffer
	err := m.Run(context.Background(), []string{"sites"}, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}
