package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/dadrus/bestmatch/internal/bestmatch"
	"github.com/dadrus/bestmatch/internal/encoding"
)

const sampleInput = `6
*,b,*
a,*,*
*,*,c
foo,bar,baz
w,x,*,*
*,x,y,z
5
/w/x/y/z/
a/b/c
foo/
foo/bar/
foo/bar/baz/
`

func executeMatch(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	t.Chdir(t.TempDir())

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	root := NewRootCommand()
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(append([]string{"match", "--env-config-prefix", "MATCHCMDTEST_"}, args...))

	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func TestMatchCommandReadsStdin(t *testing.T) {
	// WHEN
	stdout, _, err := executeMatch(t, sampleInput)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, "*,x,y,z\na,*,*\nNO MATCH\nNO MATCH\nfoo,bar,baz\n", stdout)
}

func TestMatchCommandReadsFile(t *testing.T) {
	// GIVEN
	file := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(file, []byte(sampleInput), 0o600))

	// WHEN
	stdout, _, err := executeMatch(t, "", file)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, "*,x,y,z\na,*,*\nNO MATCH\nNO MATCH\nfoo,bar,baz\n", stdout)
}

func TestMatchCommandJSONOutput(t *testing.T) {
	// WHEN
	stdout, _, err := executeMatch(t, "2\na,*\n*,b\n1\n/a/b/\n", "-o", "json")

	// THEN
	require.NoError(t, err)

	require.True(t, gjson.Valid(stdout))
	assert.Equal(t, int64(1), gjson.Get(stdout, "#").Int())
	assert.Equal(t, "/a/b/", gjson.Get(stdout, "0.path").String())
	assert.Equal(t, "a,*", gjson.Get(stdout, "0.best").String())
}

func TestMatchCommandUsesConfiguration(t *testing.T) {
	// GIVEN
	conf := filepath.Join(t.TempDir(), "bestmatch.yaml")
	require.NoError(t, os.WriteFile(conf, []byte(`
log:
  level: debug
  format: gelf
matcher:
  wildcard: "?"
  pattern_separator: ";"
  path_separator: "."
cache:
  enabled: true
output:
  format: yaml
`), 0o600))

	// WHEN
	stdout, stderr, err := executeMatch(t, "2\na;?\n?;b\n3\na.b\nc.b\na.b\n", "-c", conf)

	// THEN
	require.NoError(t, err)

	var results []encoding.Result

	require.NoError(t, yaml.Unmarshal([]byte(stdout), &results))
	assert.Equal(t, []encoding.Result{
		{Path: "a.b", Best: "a;?"},
		{Path: "c.b", Best: "?;b"},
		{Path: "a.b", Best: "a;?"},
	}, results)
	assert.Contains(t, stderr, "Pattern tree built")
	assert.Contains(t, stderr, `"_nodes":5`)
	assert.Contains(t, stderr, "Reusing best match from cache")
}

func TestMatchCommandFailures(t *testing.T) {
	for uc, tc := range map[string]struct {
		stdin    string
		args     []string
		expError error
	}{
		"malformed input": {
			stdin:    "x\na\n",
			expError: bestmatch.ErrArgument,
		},
		"missing input file": {
			args:     []string{"does-not-exist.txt"},
			expError: bestmatch.ErrArgument,
		},
		"unsupported output format": {
			stdin:    sampleInput,
			args:     []string{"--output", "xml"},
			expError: bestmatch.ErrConfiguration,
		},
		"not existing config file": {
			stdin:    sampleInput,
			args:     []string{"--config", "does-not-exist.yaml"},
			expError: bestmatch.ErrConfiguration,
		},
	} {
		t.Run(uc, func(t *testing.T) {
			// WHEN
			stdout, _, err := executeMatch(t, tc.stdin, tc.args...)

			// THEN
			require.Error(t, err)
			require.ErrorIs(t, err, tc.expError)
			assert.Empty(t, stdout)
		})
	}
}

func TestMatchCommandRejectsMultipleFiles(t *testing.T) {
	// WHEN
	_, _, err := executeMatch(t, "", "a.txt", "b.txt")

	// THEN
	require.Error(t, err)
}
