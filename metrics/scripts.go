package metrics

import "github.com/prometheus/client_golang/prometheus"

// IncScriptRuns increments the number of runs of script.
func IncScriptRuns(script string) {
	scriptRuns.With(prometheus.Labels{ScriptLabel: script}).Inc()
}

// IncScriptFailures increments the number of failed runs of script in operation.
func IncScriptFailures(script, operation string) {
	scriptFailures.With(prometheus.Labels{ScriptLabel: script, OperationLabel: operation}).Inc()
}

// RecordScriptExecTime adds an observation of execution time for a run of script.
// The execution time is from the timer's start until now.
func RecordScriptExecTime(timer *Timer, script string) {
	timer.stopAndRecord(scriptExecTime.With(prometheus.Labels{ScriptLabel: script}))
}

// AddConvertedObjects adds n to the number of generated firewall objects of kind.
func AddConvertedObjects(kind string, n int) {
	if n <= 0 {
		return
	}
	convertedObjects.With(prometheus.Labels{KindLabel: kind}).Add(float64(n))
}

// GetScriptRuns returns the number of runs of script.
// This function is slow.
func GetScriptRuns(script string) (int, error) {
	return getCounterValue(scriptRuns.With(prometheus.Labels{ScriptLabel: script}))
}

// GetScriptFailures returns the number of failed runs of script in operation.
// This function is slow.
func GetScriptFailures(script, operation string) (int, error) {
	return getCounterValue(scriptFailures.With(prometheus.Labels{ScriptLabel: script, OperationLabel: operation}))
}

// GetScriptExecCount returns the number of observations for execution time of script.
// This function is slow.
func GetScriptExecCount(script string) (int, error) {
	return getCountValue(scriptExecTime.With(prometheus.Labels{ScriptLabel: script}))
}

// GetConvertedObjects returns the number of generated firewall objects of kind.
// This function is slow.
func GetConvertedObjects(kind string) (int, error) {
	return getCounterValue(convertedObjects.With(prometheus.Labels{KindLabel: kind}))
}
