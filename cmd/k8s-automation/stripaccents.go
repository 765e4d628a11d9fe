package main

import (
	"github.com/spf13/cobra"
	"github.com/xsoar-content/k8s-automation/pkg/automation"
	"github.com/xsoar-content/k8s-automation/util"
)

func newStripAccentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strip-accents VALUE",
		Short: "Removes accent marks from VALUE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			entry, err := s.registry.Run(cmd.Context(), util.StripAccentMarksScript, automation.Args{util.ValueArg: args[0]})
			if err != nil {
				return err
			}
			return s.write(cmd.OutOrStdout(), entry)
		},
	}
}
