package logging

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(buf *bytes.Buffer) (*ObservableLogger, *MetricsCollector) {
	logger := NewObservableLogger(log.NewWithOptions(buf, log.Options{Level: log.DebugLevel}))
	collector := NewMetricsCollector()
	logger.AddHook(collector)
	return logger, collector
}

func TestMetricsAggregateByNameAndTags(t *testing.T) {
	var buf bytes.Buffer
	logger, collector := newTestLogger(&buf)

	logger.Metric(context.Background(), "setup.tasks.total", 1, map[string]string{"result": "ok"})
	logger.Metric(context.Background(), "setup.tasks.total", 1, map[string]string{"result": "ok"})
	logger.Metric(context.Background(), "setup.tasks.total", 1, map[string]string{"result": "failed"})

	metrics := collector.Snapshot()
	require.Len(t, metrics, 2)
	assert.Equal(t, "failed", metrics[0].Tags["result"])
	assert.Equal(t, float64(1), metrics[0].Value)
	assert.Equal(t, "ok", metrics[1].Tags["result"])
	assert.Equal(t, float64(2), metrics[1].Value)
	assert.Equal(t, int64(2), metrics[1].Count)
}

func TestErrorLogsAreCounted(t *testing.T) {
	var buf bytes.Buffer
	logger, _ := newTestLogger(&buf)

	logger.Error("task failed", "task", "Committing changes", "err", errors.New("boom"))

	var errorsCount, logsCount float64
	for _, m := range logger.Metrics() {
		switch m.Name {
		case MetricPrefix + ".errors.count":
			errorsCount += m.Value
			assert.Equal(t, "Committing changes", m.Tags["task"])
		case MetricPrefix + ".logs.count":
			logsCount += m.Value
		}
	}
	assert.Equal(t, float64(1), errorsCount)
	assert.Equal(t, float64(1), logsCount)
	assert.Contains(t, buf.String(), "task failed")
}

func TestWithSharesHooks(t *testing.T) {
	var buf bytes.Buffer
	logger, collector := newTestLogger(&buf)

	logger.With("component", "runner").Info("hello")

	require.Len(t, collector.Snapshot(), 1)
	assert.Contains(t, buf.String(), "component=runner")
}

func TestClosedCollectorIgnoresMetrics(t *testing.T) {
	collector := NewMetricsCollector()
	require.NoError(t, collector.Close())

	collector.OnMetric(context.Background(), "x", 1, nil)
	assert.Empty(t, collector.Snapshot())
}

func TestLoggerFromContext(t *testing.T) {
	assert.Nil(t, FromObservable(context.Background()))
	assert.Nil(t, From(context.Background()))

	var buf bytes.Buffer
	logger, _ := newTestLogger(&buf)
	ctx := WithObservableLogger(context.Background(), logger)
	assert.Same(t, logger, FromObservable(ctx))
	assert.Same(t, logger.Logger(), From(ctx))
}

func TestGetLoggerFromCommand(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	require.NoError(t, SetupCharmLogger(cmd, "info", true, true))

	observable := GetObservableLogger(cmd)
	assert.Same(t, observable, FromObservable(cmd.Context()))
	assert.Same(t, observable.Logger(), GetLogger(cmd))
}
