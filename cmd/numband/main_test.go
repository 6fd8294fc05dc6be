package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// execute runs the CLI with the given arguments and stdin, returning what it
// wrote to stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := rootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestBands(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "", "bands", "20,", "10")

	require.NoError(t, err)
	require.Equal(t, "0\t( -Infinity , 10 ]\n1\t( 10 , 20 ]\n2\t( 20 , Infinity )\n", stdout)
}

func TestBands_stdin(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "nothing numeric", "bands")

	require.NoError(t, err)
	require.Equal(t, "0\t( -Infinity , Infinity )\n", stdout)
}

func TestBands_yaml(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "", "bands", "-o", "yaml", "[10, 20)")

	require.NoError(t, err)

	var views []bandView

	require.NoError(t, yaml.Unmarshal([]byte(stdout), &views))
	require.Equal(t, []bandView{
		{Index: 0, Interval: "( -Infinity , 10 ]"},
		{Index: 1, Interval: "( 10 , 20 ]"},
		{Index: 2, Interval: "( 20 , Infinity )"},
	}, views)
}

func TestBands_badOutput(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "", "bands", "-o", "xml", "1")

	require.ErrorContains(t, err, "unknown output format")
}

func TestClean(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "30 10-20 10", "clean")

	require.NoError(t, err)
	require.Equal(t, "10 20 30\n", stdout)
}

func TestLocate(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "", "locate", "--numbers", "10 20", "15")
	require.NoError(t, err)
	require.Equal(t, "1\t( 10 , 20 ]\n", stdout)

	_, _, err = execute(t, "", "locate", "abc")
	require.Error(t, err)
}

func TestSession(t *testing.T) {
	t.Parallel()

	script := strings.Join([]string{
		"# start with one boundary",
		"text 10",
		"toggle 0 upper off",
		"annotate 0 small",
		"annotate 1 large numbers",
		"text 10, 20",
		"show",
		"history",
		"toggle 0 lower on",
		"frobnicate",
		"text 10",
		"show",
		"locate 10",
		"clean",
	}, "\n")

	stdout, stderr, err := execute(t, script, "session")

	require.NoError(t, err)
	require.Equal(t, strings.Join([]string{
		"0\t( -Infinity , 10 )\tsmall",
		"1\t[ 10 , 20 ]",
		"2\t( 20 , Infinity )",
		"[ 10 , Infinity ) => large numbers",
		"0\t( -Infinity , 10 )\tsmall",
		"1\t[ 10 , Infinity )\tlarge numbers",
		"1\t[ 10 , Infinity )\tlarge numbers",
		"10",
		"",
	}, "\n"), stdout)
	require.Contains(t, stderr, "line 9: ")
	require.Contains(t, stderr, "adjacency violation")
	require.Contains(t, stderr, "line 10: ")
	require.Contains(t, stderr, "unknown command")
}

func TestSession_historyFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	historyPath := filepath.Join(dir, "history.txt")
	scriptPath := filepath.Join(dir, "script.txt")

	require.NoError(t, os.WriteFile(historyPath, []byte("( 5 , Infinity ) => above five\nnot a record\n"), 0o600))
	require.NoError(t, os.WriteFile(scriptPath, []byte("text 5\nshow\n"), 0o600))

	stdout, stderr, err := execute(t, "", "session", "--history", historyPath, scriptPath)

	require.NoError(t, err)
	require.Equal(t, "0\t( -Infinity , 5 ]\n1\t( 5 , Infinity )\tabove five\n", stdout)
	require.Contains(t, stderr, "history: ")
}

func TestVersion(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "", "version")

	require.NoError(t, err)
	require.Contains(t, stdout, "numband version dev")
}
