package main

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/xsoar-content/k8s-automation/pkg/automation"
)

var errInvalidArg = errors.New("script arguments must be given as key=value")

// parseArgs turns key=value pairs into script arguments.
// A value starting with "@" is replaced by the contents of the named file.
func parseArgs(pairs []string) (automation.Args, error) {
	args := make(automation.Args, len(pairs))
	for _, pair := range pairs {
		i := strings.Index(pair, "=")
		if i <= 0 {
			return nil, errors.Wrapf(errInvalidArg, "%q", pair)
		}
		key, value := pair[:i], pair[i+1:]
		if strings.HasPrefix(value, "@") {
			b, err := os.ReadFile(value[1:])
			if err != nil {
				return nil, errors.Wrapf(err, "failed to read argument %s", key)
			}
			value = string(b)
		}
		args[key] = value
	}
	return args, nil
}

func newRunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run SCRIPT",
		Short: "Runs a registered script with the given arguments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, _ := cmd.Flags().GetStringArray(flagArg)
			scriptArgs, err := parseArgs(pairs)
			if err != nil {
				return err
			}

			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			entry, err := s.registry.Run(cmd.Context(), args[0], scriptArgs)
			if err != nil {
				return err
			}
			return s.write(cmd.OutOrStdout(), entry)
		},
	}

	runCmd.Flags().StringArrayP(flagArg, "a", nil, "Script argument as key=value, or key=@file to read the value from a file (repeatable)")

	return runCmd
}
