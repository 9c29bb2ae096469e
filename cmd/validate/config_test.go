package validate

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/bestmatch/cmd/flags"
	"github.com/dadrus/bestmatch/internal/bestmatch"
)

func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	cmd := NewValidateConfigCommand()
	flags.RegisterGlobalFlags(cmd)

	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	return cmd, buf
}

func TestValidateConfig(t *testing.T) {
	testDir := t.TempDir()

	validConfig := filepath.Join(testDir, "valid.yaml")
	require.NoError(t, os.WriteFile(validConfig, []byte("matcher:\n  wildcard: \"?\"\n"), 0o600))

	invalidConfig := filepath.Join(testDir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalidConfig, []byte("output:\n  format: xml\n"), 0o600))

	t.Chdir(testDir)

	for uc, tc := range map[string]struct {
		confFile string
		expError error
	}{
		"no config file uses defaults": {},
		"not existing config file":     {confFile: "doesnotexist.yaml", expError: bestmatch.ErrConfiguration},
		"invalid config":               {confFile: invalidConfig, expError: bestmatch.ErrConfiguration},
		"valid config":                 {confFile: validConfig},
	} {
		t.Run(uc, func(t *testing.T) {
			// GIVEN
			cmd, buf := newTestCommand()

			args := []string{"--" + flags.EnvironmentConfigPrefix, "VALIDATECMDTEST_"}
			if len(tc.confFile) != 0 {
				args = append(args, "--"+flags.Config, tc.confFile)
			}

			cmd.SetArgs(args)

			// WHEN
			err := cmd.Execute()

			// THEN
			if tc.expError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expError)
				assert.NotContains(t, buf.String(), "Configuration is valid")
			} else {
				require.NoError(t, err)
				assert.Contains(t, buf.String(), "Configuration is valid")
			}
		})
	}
}
