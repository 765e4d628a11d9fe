package main

import (
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/xsoar-content/k8s-automation/config"
	"go.uber.org/zap"
)

const (
	flagVersion        = "version"
	flagKubeConfigPath = "kubeconfig"
	flagNamespace      = "namespace"
	flagClusterName    = "cluster-name"
	flagOutput         = "output"
	flagLogLevel       = "log-level"
	flagMetricsFile    = "metrics-file"
	flagPolicy         = "policy"
	flagFromCluster    = "from-cluster"
	flagArg            = "arg"
)

// Version is populated by make during build.
var version string

// panicRecoverAndExitWithStackTrace - recovery from panic, print a failure message and stack trace and exit the program
func panicRecoverAndExitWithStackTrace() {
	if r := recover(); r != nil {
		zap.L().Error("Recovered from panic", zap.Any("panic", r), zap.String("stack", string(debug.Stack())))
	}
}

func main() {
	defer panicRecoverAndExitWithStackTrace()

	rootCmd := NewRootCmd()

	if version != "" {
		viper.Set(flagVersion, version)
	}

	cobra.OnInitialize(func() {
		viper.SetEnvPrefix(config.EnvPrefix)
		viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
		viper.AutomaticEnv()
		initCommandFlags(rootCmd.Commands())
	})

	cobra.CheckErr(rootCmd.Execute())
}

func initCommandFlags(commands []*cobra.Command) {
	for _, cmd := range commands {
		// bind vars from env or conf to pflags
		err := viper.BindPFlags(cmd.Flags())
		cobra.CheckErr(err)

		c := cmd
		c.Flags().VisitAll(func(flag *pflag.Flag) {
			if viper.IsSet(flag.Name) && viper.GetString(flag.Name) != "" && !c.Flags().Changed(flag.Name) {
				err := c.Flags().Set(flag.Name, viper.GetString(flag.Name))
				cobra.CheckErr(err)
			}
		})

		// call recursively on subcommands
		if cmd.HasSubCommands() {
			initCommandFlags(cmd.Commands())
		}
	}
}
