package scripts

import (
	"context"
	"fmt"

	"github.com/xsoar-content/k8s-automation/log"
	"github.com/xsoar-content/k8s-automation/metrics"
	"github.com/xsoar-content/k8s-automation/pkg/automation"
	"github.com/xsoar-content/k8s-automation/pkg/source"
	"github.com/xsoar-content/k8s-automation/pkg/translation"
	"github.com/xsoar-content/k8s-automation/util"
	autoerrors "github.com/xsoar-content/k8s-automation/util/errors"
	"go.uber.org/zap"
)

// K8sToPanos translates one NetworkPolicy into a firewall rule, its address groups and service objects.
type K8sToPanos struct {
	logger      *zap.Logger
	clusterName string
}

// NewK8sToPanos returns the script. clusterName is used when the host does not pass ClusterName.
func NewK8sToPanos(logger *zap.Logger, clusterName string) *K8sToPanos {
	return &K8sToPanos{
		logger:      log.OrNop(logger).With(zap.String("script", util.K8sToPanosScript)),
		clusterName: clusterName,
	}
}

func (s *K8sToPanos) Name() string {
	return util.K8sToPanosScript
}

func (s *K8sToPanos) Run(_ context.Context, args automation.Args) (*automation.Entry, error) {
	doc := args.Get(util.KubernetesNetworkPolicyArg, "")
	if doc == "" {
		return nil, autoerrors.Errorf(s.Name(), autoerrors.ParseArguments, "%w: %s", autoerrors.ErrMissingArgument, util.KubernetesNetworkPolicyArg)
	}
	clusterName := args.Get(util.ClusterNameArg, s.clusterName)

	objs, err := source.Decode([]byte(doc))
	if err != nil {
		return nil, autoerrors.Error(s.Name(), autoerrors.DecodePolicy, err)
	}
	if len(objs) != 1 {
		return nil, autoerrors.Error(s.Name(), autoerrors.DecodePolicy,
			fmt.Errorf("%w: got %d objects", ErrNotSinglePolicy, len(objs)))
	}

	converted, err := translation.AnalyzePolicy(clusterName, objs[0])
	if err != nil {
		return nil, autoerrors.Error(s.Name(), autoerrors.AnalyzePolicy, err)
	}
	recordConverted(converted)

	s.logger.Debug("Translated network policy",
		zap.String("rule", converted.Rule.Name),
		zap.Int("services", len(converted.Services)))
	return automation.NoteEntry(translation.Result{ConvertedPolicy: converted}), nil
}

func recordConverted(converted *translation.ConvertedPolicy) {
	metrics.AddConvertedObjects(metrics.RuleKind, 1)
	dags := 0
	for _, group := range converted.DAG {
		if !group.IsEmpty() {
			dags++
		}
	}
	metrics.AddConvertedObjects(metrics.DAGKind, dags)
	metrics.AddConvertedObjects(metrics.ServiceKind, len(converted.Services))
}
