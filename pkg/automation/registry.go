package automation

import (
	"context"
	"sort"
	"sync"

	"github.com/xsoar-content/k8s-automation/log"
	"github.com/xsoar-content/k8s-automation/metrics"
	autoerrors "github.com/xsoar-content/k8s-automation/util/errors"
	"go.uber.org/zap"
)

// Registry holds the scripts a host can run by name.
type Registry struct {
	logger *zap.Logger

	mu      sync.RWMutex
	scripts map[string]Script
}

// NewRegistry returns a Registry holding scripts.
func NewRegistry(logger *zap.Logger, scripts ...Script) *Registry {
	metrics.InitializeAll()
	r := &Registry{
		logger:  log.OrNop(logger),
		scripts: make(map[string]Script, len(scripts)),
	}
	for _, s := range scripts {
		r.Register(s)
	}
	return r
}

// Register adds s, replacing any script with the same name.
func (r *Registry) Register(s Script) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scripts[s.Name()] = s
}

// Get returns the script registered as name.
func (r *Registry) Get(name string) (Script, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.scripts[name]
	return s, ok
}

// Names returns the registered script names in ascending order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.scripts))
	for name := range r.scripts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run runs the script registered as name with args.
// Every failure is returned as an *errors.AutomationError.
func (r *Registry) Run(ctx context.Context, name string, args Args) (*Entry, error) {
	s, ok := r.Get(name)
	if !ok {
		r.logger.Error("Unknown script requested", zap.String("script", name))
		return nil, autoerrors.Errorf(name, autoerrors.RunScript, "%w: %s", autoerrors.ErrUnknownScript, name)
	}

	metrics.IncScriptRuns(name)
	timer := metrics.StartNewTimer()
	defer metrics.RecordScriptExecTime(timer, name)

	r.logger.Info("Script called", zap.String("script", name), zap.Strings("args", argNames(args)))
	entry, err := s.Run(ctx, args)
	if err != nil {
		op := autoerrors.OperationOf(err)
		if op == "" {
			op = autoerrors.RunScript
			err = autoerrors.Error(name, op, err)
		}
		metrics.IncScriptFailures(name, op)
		r.logger.Error("Script failed", zap.String("script", name), zap.String("operation", op), zap.Error(err))
		return nil, err
	}

	r.logger.Info("Script succeeded", zap.String("script", name), zap.Duration("elapsed", timer.Elapsed()))
	return entry, nil
}

// argNames returns the sorted argument names; values may hold whole objects and are not logged.
func argNames(args Args) []string {
	names := make([]string, 0, len(args))
	for k := range args {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
