// Package scripts holds the automation scripts served by the registry.
package scripts

import (
	"errors"

	"github.com/xsoar-content/k8s-automation/pkg/automation"
	"go.uber.org/zap"
)

// ErrNotSinglePolicy is returned when K8sToPanos receives a list instead of one policy.
var ErrNotSinglePolicy = errors.New("expected a single network policy")

// Default returns a registry with every script. clusterName is the fallback ClusterName for K8sToPanos.
func Default(logger *zap.Logger, clusterName string) *automation.Registry {
	return automation.NewRegistry(logger,
		NewK8sToPanos(logger, clusterName),
		NewStripAccentMarks(logger),
	)
}
