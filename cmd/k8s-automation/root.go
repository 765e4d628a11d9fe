package main

import (
	"github.com/spf13/cobra"
)

// NewRootCmd returns a root cobra command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "k8s-automation",
		Short: "Runs the Kubernetes automation scripts outside of the SOAR host",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringP(flagOutput, "o", "", "Output format of the result entries (json or yaml)")
	rootCmd.PersistentFlags().String(flagClusterName, "", "Cluster name used when a script is not given one")
	rootCmd.PersistentFlags().String(flagLogLevel, "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String(flagMetricsFile, "", "Write Prometheus metrics of the run to this file")

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newK8sToPanosCmd())
	rootCmd.AddCommand(newStripAccentsCmd())
	rootCmd.AddCommand(newScriptsCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
