package repetmetrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-repet/repet/pkg/repet"
)

func TestMetricsSatisfiesRepetInterface(t *testing.T) {
	reg := prometheus.NewRegistry()
	var _ repet.MetricsRecorder = New(reg)
}

func TestObserveInvocationIncrementsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveInvocation("Original", 10*time.Millisecond, nil)
	m.ObserveInvocation("Original", 10*time.Millisecond, assert.AnError)

	families, err := reg.Gather()
	require.NoError(t, err)

	found := false
	for _, f := range families {
		if f.GetName() == "repet_pipeline_invocations_total" {
			found = true
			var total float64
			for _, metric := range f.Metric {
				total += metric.GetCounter().GetValue()
			}
			assert.Equal(t, 2.0, total)
		}
	}
	assert.True(t, found, "invocation counter should be registered")
}

func TestObserveDegenerateStructureIncrementsCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.ObserveDegenerateStructure("Sim")

	families, err := reg.Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() == "repet_degenerate_structure_total" {
			var metric *dto.Metric
			if len(f.Metric) > 0 {
				metric = f.Metric[0]
			}
			require.NotNil(t, metric)
			assert.Equal(t, 1.0, metric.GetCounter().GetValue())
		}
	}
}
