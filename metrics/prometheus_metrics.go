package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const namespace = "k8s_automation"

// Prometheus Metrics
// Counter metrics have the methods Inc() and Add(float64)
// Summary metrics has the method Observe(float64)
// For any Vector metric, you can call With(prometheus.Labels) before the above methods
//   e.g. SomeCounterVec.With(prometheus.Labels{label1: val1, label2: val2, ...).Inc()
var (
	scriptRuns       *prometheus.CounterVec
	scriptFailures   *prometheus.CounterVec
	scriptExecTime   *prometheus.SummaryVec
	convertedObjects *prometheus.CounterVec
)

var registry = prometheus.NewRegistry()
var haveInitialized = false

// Constants for metric names and descriptions as well as exported labels for Vector metrics
const (
	scriptRunsName = "script_runs_total"
	scriptRunsHelp = "The number of script runs requested by the host"

	scriptFailuresName = "script_failures_total"
	scriptFailuresHelp = "The number of script runs that returned an error"

	scriptExecTimeName = "script_exec_time"
	scriptExecTimeHelp = "Execution time in milliseconds of a script run"

	convertedObjectsName = "converted_objects_total"
	convertedObjectsHelp = "The number of firewall objects generated from network policies"

	ScriptLabel    = "script"
	OperationLabel = "operation"
	KindLabel      = "kind"
)

// Kinds of converted firewall objects
const (
	RuleKind    = "rule"
	DAGKind     = "dag"
	ServiceKind = "service"
)

func ReInitializeAllMetrics() {
	registry = prometheus.NewRegistry()
	haveInitialized = false
	InitializeAll()
}

// InitializeAll creates all the Prometheus Metrics. The metrics will be nil before this method is called.
func InitializeAll() {
	if !haveInitialized {
		scriptRuns = createCounterVec(scriptRunsName, scriptRunsHelp, ScriptLabel)
		scriptFailures = createCounterVec(scriptFailuresName, scriptFailuresHelp, ScriptLabel, OperationLabel)
		scriptExecTime = createSummaryVec(scriptExecTimeName, scriptExecTimeHelp, ScriptLabel)
		convertedObjects = createCounterVec(convertedObjectsName, convertedObjectsHelp, KindLabel)
		zap.L().Debug("Finished initializing all Prometheus metrics")
		haveInitialized = true
	}
}

// GetRegistry returns the registry every metric is registered with.
func GetRegistry() *prometheus.Registry {
	return registry
}

// WriteTextfile writes all metrics to path in the text exposition format,
// for pickup by a node exporter textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, registry)
}

func register(collector prometheus.Collector, name string) {
	err := registry.Register(collector)
	if err != nil {
		zap.L().Error("Error creating metric", zap.String("name", name), zap.Error(err))
	}
}

func createCounterVec(name, helpMessage string, labels ...string) *prometheus.CounterVec {
	counterVec := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
			Help:      helpMessage,
		},
		labels,
	)
	register(counterVec, name)
	return counterVec
}

func createSummaryVec(name, helpMessage string, labels ...string) *prometheus.SummaryVec {
	summaryVec := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace:  namespace,
			Name:       name,
			Help:       helpMessage,
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
			// quantiles e.g. the "0.5 quantile" will actually be the phi quantile for some phi in [0.5 - 0.05, 0.5 + 0.05]
		},
		labels,
	)
	register(summaryVec, name)
	return summaryVec
}
