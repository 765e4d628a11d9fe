package main

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/xsoar-content/k8s-automation/pkg/automation"
	"github.com/xsoar-content/k8s-automation/pkg/source"
	"github.com/xsoar-content/k8s-automation/util"
	autoerrors "github.com/xsoar-content/k8s-automation/util/errors"
	"go.uber.org/zap"
)

var errSpecifyOneSource = errors.New("must specify exactly one of --policy or --from-cluster")

func readPolicyDocument(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		return b, errors.Wrap(err, "failed to read policy from stdin")
	}
	b, err := os.ReadFile(path)
	return b, errors.Wrapf(err, "failed to read policy file %s", path)
}

func clusterPolicies(ctx context.Context, s *session) ([]map[string]interface{}, error) {
	client, err := source.NewClientset(s.config.KubeConfigPath)
	if err != nil {
		return nil, autoerrors.Error(util.K8sToPanosScript, autoerrors.ListPolicies, err)
	}
	src := source.NewClusterSource(client,
		source.WithRetry(s.config.Retry.Attempts, s.retryDelay()),
		source.WithLogger(s.logger))
	if err := src.CheckServerVersion(); err != nil {
		return nil, autoerrors.Error(util.K8sToPanosScript, autoerrors.ListPolicies, err)
	}
	objs, err := src.Objects(ctx, s.config.Namespace)
	return objs, autoerrors.Error(util.K8sToPanosScript, autoerrors.ListPolicies, err)
}

// translateAll runs K8sToPanos once per policy and writes every entry.
func translateAll(cmd *cobra.Command, s *session, policies []map[string]interface{}) error {
	for _, policy := range policies {
		b, err := json.Marshal(policy)
		if err != nil {
			return errors.Wrap(err, "failed to encode policy")
		}
		entry, err := s.registry.Run(cmd.Context(), util.K8sToPanosScript, automation.Args{
			util.KubernetesNetworkPolicyArg: string(b),
			util.ClusterNameArg:             s.config.ClusterName,
		})
		if err != nil {
			return err
		}
		if err := s.write(cmd.OutOrStdout(), entry); err != nil {
			return err
		}
	}
	s.logger.Info("Translated network policies", zap.Int("count", len(policies)))
	return nil
}

func newK8sToPanosCmd() *cobra.Command {
	k8sToPanosCmd := &cobra.Command{
		Use:   "k8stopanos",
		Short: "Translates NetworkPolicies into firewall rules, address groups and service objects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			policyPath, _ := cmd.Flags().GetString(flagPolicy)
			fromCluster, _ := cmd.Flags().GetBool(flagFromCluster)
			if (policyPath == "") == !fromCluster {
				return errSpecifyOneSource
			}

			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			var policies []map[string]interface{}
			if fromCluster {
				policies, err = clusterPolicies(cmd.Context(), s)
				if err != nil {
					return err
				}
			} else {
				data, err := readPolicyDocument(cmd, policyPath)
				if err != nil {
					return err
				}
				policies, err = source.Decode(data)
				if err != nil {
					return autoerrors.Error(util.K8sToPanosScript, autoerrors.DecodePolicy, err)
				}
			}

			return translateAll(cmd, s, policies)
		},
	}

	k8sToPanosCmd.Flags().StringP(flagPolicy, "p", "", "NetworkPolicy document (JSON or YAML, a List is allowed); - reads stdin")
	k8sToPanosCmd.Flags().Bool(flagFromCluster, false, "Translate every NetworkPolicy in the cluster")
	k8sToPanosCmd.Flags().StringP(flagNamespace, "n", "", "Namespace to list policies from (default all namespaces)")
	k8sToPanosCmd.Flags().String(flagKubeConfigPath, "", "Path to the kubeconfig (default in-cluster config)")

	return k8sToPanosCmd
}
