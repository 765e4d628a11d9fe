package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// getCounterValue returns a Counter metric's value.
// This function is slow.
func getCounterValue(counterMetric prometheus.Counter) (int, error) {
	dtoMetric, err := getDTOMetric(counterMetric)
	if err != nil {
		return 0, err
	}
	return int(dtoMetric.Counter.GetValue()), nil
}

// getCountValue returns the number of times a Summary metric has recorded an observation.
// This function is slow.
func getCountValue(summaryMetric prometheus.Observer) (int, error) {
	collector, ok := summaryMetric.(prometheus.Collector)
	if !ok {
		return 0, fmt.Errorf("observer %T is not a collector", summaryMetric)
	}
	dtoMetric, err := getDTOMetric(collector)
	if err != nil {
		return 0, err
	}
	return int(dtoMetric.Summary.GetSampleCount()), nil
}

// This function is slow.
func getDTOMetric(collector prometheus.Collector) (*dto.Metric, error) {
	channel := make(chan prometheus.Metric, 1)
	collector.Collect(channel)
	metric := &dto.Metric{}
	err := (<-channel).Write(metric)
	if err != nil {
		err = fmt.Errorf("error while extracting Prometheus metric value: %w", err)
	}
	return metric, err
}
