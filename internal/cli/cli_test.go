package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/potlib/potrec/internal/record"
)

// execute runs the potrec command tree with the given arguments.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// writeRecordFile builds a demo record document via the build command and
// returns the file path.
func writeRecordFile(t *testing.T, dir, id string) string {
	t.Helper()
	path := filepath.Join(dir, id+".json")
	_, _, err := execute(t,
		"build",
		"--style", "lj/cut",
		"--id", id,
		"--element", "Al", "--element", "Ni",
		"--style-term", "10.0",
		"--coeff", "Al Al 1.0 2.551",
		"--coeff", "Al Ni 1.5 2.62",
		"--coeff", "Ni Ni 2.0 2.693",
		"--out", path,
	)
	require.NoError(t, err)
	return path
}

func TestRootRejectsInvalidFormat(t *testing.T) {
	_, _, err := execute(t, "--format", "xml", "list", "--db", filepath.Join(t.TempDir(), "x.db"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestBuildCommandEmitsDocument(t *testing.T) {
	stdout, _, err := execute(t,
		"--format", "json",
		"build",
		"--style", "lj/cut",
		"--id", "demo",
		"--potid", "2009--Demo-A--Al-Ni",
		"--element", "Ni",
		"--coeff", "0.5 2.62",
	)
	require.NoError(t, err)

	rec, err := record.LoadJSON([]byte(stdout))
	require.NoError(t, err)
	assert.Equal(t, "demo", rec.ID)
	assert.Equal(t, "2009--Demo-A--Al-Ni", rec.PotID)
	assert.Equal(t, "lj/cut", rec.PairStyle)
	assert.Equal(t, []string{"Ni"}, rec.Elements())
}

func TestBuildCommandRejectsBadStyle(t *testing.T) {
	_, _, err := execute(t,
		"build", "--style", "not-a-style", "--element", "Ni", "--coeff", "1.0",
	)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestShowCommand(t *testing.T) {
	path := writeRecordFile(t, t.TempDir(), "demo")

	t.Run("document", func(t *testing.T) {
		stdout, _, err := execute(t, "show", path)
		require.NoError(t, err)
		assert.Contains(t, stdout, `"potential-LAMMPS"`)
		assert.Contains(t, stdout, `"type": "lj/cut"`)
	})

	t.Run("pair info", func(t *testing.T) {
		stdout, _, err := execute(t, "show", path, "--pair-info")
		require.NoError(t, err)
		assert.Contains(t, stdout, "mass 1 26.9815385\n")
		assert.Contains(t, stdout, "pair_style lj/cut 10.0\n")
		assert.Contains(t, stdout, "pair_coeff 1 2 1.5 2.62\n")
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := execute(t, "show", filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
		assert.Equal(t, ExitCommandError, GetExitCode(err))
	})

	t.Run("unparseable file", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
		_, _, err := execute(t, "show", bad)
		require.Error(t, err)
		assert.Equal(t, ExitFailure, GetExitCode(err))
	})
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	good := writeRecordFile(t, dir, "good")

	t.Run("valid file", func(t *testing.T) {
		_, _, err := execute(t, "validate", good)
		require.NoError(t, err)
	})

	t.Run("invalid file", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad,
			[]byte(`{"potential-LAMMPS":{"key":"k","units":"metal"}}`), 0o644))

		_, stderr, err := execute(t, "validate", good, bad)
		require.Error(t, err)
		assert.Equal(t, ExitFailure, GetExitCode(err))
		assert.Contains(t, err.Error(), "1 of 2 files failed validation")
		assert.Contains(t, stderr, "bad.json")
	})
}

func TestStoreCommands(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "potrec.db")
	path := writeRecordFile(t, dir, "2009--Demo-A--Al-Ni--LAMMPS--ipr1")

	_, _, err := execute(t, "--db", db, "save", path)
	require.NoError(t, err)

	t.Run("get", func(t *testing.T) {
		stdout, _, err := execute(t, "--db", db, "--format", "json",
			"get", "2009--Demo-A--Al-Ni--LAMMPS--ipr1")
		require.NoError(t, err)

		rec, err := record.LoadJSON([]byte(stdout))
		require.NoError(t, err)
		assert.Equal(t, "2009--Demo-A--Al-Ni--LAMMPS--ipr1", rec.ID)
	})

	t.Run("get missing", func(t *testing.T) {
		_, _, err := execute(t, "--db", db, "get", "missing")
		require.Error(t, err)
		assert.Equal(t, ExitFailure, GetExitCode(err))
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("list with filters", func(t *testing.T) {
		stdout, _, err := execute(t, "--db", db, "list", "--pair-style", "lj/cut", "--element", "Ni")
		require.NoError(t, err)
		assert.Equal(t, "2009--Demo-A--Al-Ni--LAMMPS--ipr1\n", stdout)

		stdout, _, err = execute(t, "--db", db, "list", "--element", "Cu")
		require.NoError(t, err)
		assert.Empty(t, stdout)
	})

	t.Run("export", func(t *testing.T) {
		stdout, _, err := execute(t, "--db", db, "export", "2009--Demo-A--Al-Ni--LAMMPS--ipr1")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(stdout, "mass 1 26.9815385\n"))
		assert.Contains(t, stdout, "pair_coeff 2 2 2.0 2.693\n")
	})

	t.Run("rm", func(t *testing.T) {
		_, _, err := execute(t, "--db", db, "rm", "2009--Demo-A--Al-Ni--LAMMPS--ipr1")
		require.NoError(t, err)

		_, _, err = execute(t, "--db", db, "rm", "2009--Demo-A--Al-Ni--LAMMPS--ipr1")
		require.Error(t, err)
		assert.Equal(t, ExitFailure, GetExitCode(err))
	})
}
