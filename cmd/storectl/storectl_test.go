package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureYAML = `
products:
  - id: 1
    name: 인절미
    price: 4500
    stock: 3
pickup_dates:
  - id: 1
    date: "2024-05-03"
    is_open: true
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSeedDryRunValidatesFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixtureYAML), 0o600))

	out, err := execute(t, "seed", "--dry-run", "--dsn", "", path)

	require.NoError(t, err)
	assert.Equal(t, "fixture ok: 1 products, 1 pickup dates, 0 notices\n", out)
}

func TestSeedRejectsBrokenFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("products:\n  - id: 1\n    colour: red\n"), 0o600))

	_, err := execute(t, "seed", "--dry-run", path)

	assert.Error(t, err)
}

func TestCommandsRequireDSN(t *testing.T) {
	for _, name := range []string{"migrate", "purge-sessions"} {
		t.Run(name, func(t *testing.T) {
			_, err := execute(t, name, "--dsn", "")
			assert.ErrorIs(t, err, errMissingDSN)
		})
	}
}
