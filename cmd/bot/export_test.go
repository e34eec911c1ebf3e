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

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestImportRefusesInMemoryStorage(t *testing.T) {
	t.Setenv("REDIS_URL", "")
	t.Setenv("RAID_SEED_FILE", "")
	t.Setenv("LOG_LEVEL", "error")

	path := filepath.Join(t.TempDir(), "template.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"id":"default","players":{}}`), 0o600))

	out, err := execute(t, "import", path)

	require.ErrorIs(t, err, errEphemeralImport)
	assert.NotContains(t, out, "imported")
}

func TestImportMissingFile(t *testing.T) {
	t.Setenv("REDIS_URL", "")

	_, err := execute(t, "import", filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}
