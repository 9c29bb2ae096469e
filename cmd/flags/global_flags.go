package flags

import "github.com/spf13/cobra"

const (
	Config                  = "config"
	EnvironmentConfigPrefix = "env-config-prefix"
	Output                  = "output"
)

func RegisterGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP(Config, "c", "",
		"Path to bestmatch's configuration file.\n"+
			"If not provided, the lookup sequence is:\n  1. $PWD/bestmatch.yaml\n  2. /etc/bestmatch/bestmatch.yaml")
	cmd.PersistentFlags().String(EnvironmentConfigPrefix, "BESTMATCH_",
		"Prefix for the environment variables to consider for\nloading configuration from")
}

// ConfigSources returns the values of the global configuration flags.
func ConfigSources(cmd *cobra.Command) (string, string) {
	envPrefix, _ := cmd.Flags().GetString(EnvironmentConfigPrefix)
	configPath, _ := cmd.Flags().GetString(Config)

	return envPrefix, configPath
}
