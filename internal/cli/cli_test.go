package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sqldbm"
)

// runCommand executes the root command with args and returns its
// combined output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

// setupCLI points the CLI at temp config and database locations.
// Commands must still pass --mode explicitly; persistent flag values
// survive between executions.
func setupCLI(t *testing.T) string {
	t.Helper()

	originalConfigDir := configDir
	configDir = t.TempDir()
	t.Cleanup(func() { configDir = originalConfigDir })

	return filepath.Join(t.TempDir(), "test.db")
}

func TestCLI_SetGetRoundTrip(t *testing.T) {
	dbPath := setupCLI(t)

	_, err := runCommand(t, "set", "greeting", "hello world", "--db", dbPath, "--mode", "create")
	require.NoError(t, err)

	out, err := runCommand(t, "get", "greeting", "--db", dbPath, "--mode", "open")
	require.NoError(t, err)
	assert.Equal(t, "hello world", out)
}

func TestCLI_Get_MissingKey(t *testing.T) {
	dbPath := setupCLI(t)

	_, err := runCommand(t, "get", "absent", "--db", dbPath, "--mode", "create")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCLI_KeysDelHasLen(t *testing.T) {
	dbPath := setupCLI(t)

	_, err := runCommand(t, "set", "a", "hello world", "--db", dbPath, "--mode", "create")
	require.NoError(t, err)
	_, err = runCommand(t, "set", "b", "something else", "--db", dbPath, "--mode", "create")
	require.NoError(t, err)

	out, err := runCommand(t, "keys", "--db", dbPath, "--mode", "open")
	require.NoError(t, err)
	keys := strings.Fields(out)
	assert.ElementsMatch(t, []string{"a", "b"}, keys)

	_, err = runCommand(t, "del", "a", "--db", dbPath, "--mode", "open")
	require.NoError(t, err)

	out, err = runCommand(t, "has", "a", "--db", dbPath, "--mode", "open")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)

	out, err = runCommand(t, "len", "--db", dbPath, "--mode", "open")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestCLI_CreateNew_Truncates(t *testing.T) {
	dbPath := setupCLI(t)

	_, err := runCommand(t, "set", "a", "value", "--db", dbPath, "--mode", "create")
	require.NoError(t, err)

	// create-new wipes the file before opening.
	out, err := runCommand(t, "len", "--db", dbPath, "--mode", "create-new")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

func TestCLI_ReadOnly_RejectsWrites(t *testing.T) {
	dbPath := setupCLI(t)

	_, err := runCommand(t, "set", "a", "value", "--db", dbPath, "--mode", "create")
	require.NoError(t, err)

	_, err = runCommand(t, "set", "b", "nope", "--db", dbPath, "--mode", "read-only")
	assert.Error(t, err)
}

func TestCLI_UnknownMode(t *testing.T) {
	dbPath := setupCLI(t)

	_, err := runCommand(t, "len", "--db", dbPath, "--mode", "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode")
}

func TestCLI_Stat(t *testing.T) {
	dbPath := setupCLI(t)

	_, err := runCommand(t, "set", "a", "value", "--db", dbPath, "--mode", "create")
	require.NoError(t, err)

	out, err := runCommand(t, "stat", "--db", dbPath, "--mode", "open")
	require.NoError(t, err)
	assert.Contains(t, out, "Records:")
	assert.Contains(t, out, "1")
}

func TestCLI_Bench(t *testing.T) {
	dbPath := setupCLI(t)

	out, err := runCommand(t, "bench", "-n", "25", "--value-size", "8", "--db", dbPath, "--mode", "create")
	require.NoError(t, err)
	assert.Contains(t, out, "25 records")

	outLen, err := runCommand(t, "len", "--db", dbPath, "--mode", "open")
	require.NoError(t, err)
	assert.Equal(t, "25\n", outLen)
}

func TestCLI_ConfigSetAndShow(t *testing.T) {
	setupCLI(t)

	_, err := runCommand(t, "config", "set", "table", "cache")
	require.NoError(t, err)

	out, err := runCommand(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "cache")
}

func TestCLI_Config_UnknownSetting(t *testing.T) {
	setupCLI(t)

	_, err := runCommand(t, "config", "set", "bogus", "value")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown setting")
}

func TestVersionCmd_Executes(t *testing.T) {
	setupCLI(t)

	originalVersion := version
	version = "test-version-1.0.0"
	defer func() { version = originalVersion }()

	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "sqldbm version test-version-1.0.0")
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		name string
		want sqldbm.Mode
	}{
		{"open", sqldbm.ModeOpen},
		{"create", sqldbm.ModeOpenCreate},
		{"create-new", sqldbm.ModeOpenCreateNew},
		{"read-only", sqldbm.ModeReadOnly},
		{"ro", sqldbm.ModeReadOnly},
	}
	for _, tt := range tests {
		mode, err := parseMode(tt.name)
		require.NoError(t, err)
		assert.Equal(t, tt.want, mode)
	}

	_, err := parseMode("bogus")
	assert.Error(t, err)
}
