package task

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fvena/typescript-library-template-pro/internal/logging"
	"github.com/fvena/typescript-library-template-pro/internal/ui"
)

// MockIndicator is a mock implementation of Indicator for testing
type MockIndicator struct {
	mock.Mock
}

func (m *MockIndicator) Start()              { m.Called() }
func (m *MockIndicator) Stop(final string)   { m.Called(final) }
func (m *MockIndicator) Fail(message string) { m.Called(message) }

func newMockRunner(out io.Writer, indicators ...*MockIndicator) *Runner {
	i := 0
	factory := func(_ context.Context, _ io.Writer, _ string, _ ui.Styles) Indicator {
		ind := indicators[i]
		i++
		return ind
	}
	return NewRunner(out, ui.PlainStyles(), WithIndicator(factory))
}

func TestRunSuccessStopsOnce(t *testing.T) {
	ind := &MockIndicator{}
	ind.On("Start").Once()
	ind.On("Stop", "LICENSE updated").Once()

	var out bytes.Buffer
	ok := newMockRunner(&out, ind).Run(context.Background(), Task{
		Loading: "Updating LICENSE",
		Success: "LICENSE updated",
		Run:     func(context.Context) error { return nil },
	})

	assert.True(t, ok)
	ind.AssertExpectations(t)
	ind.AssertNotCalled(t, "Fail", mock.Anything)
	assert.Empty(t, out.String())
}

func TestRunFailureFailsOnceAndNeverStops(t *testing.T) {
	ind := &MockIndicator{}
	ind.On("Start").Once()
	ind.On("Fail", "Committing changes... [ERROR]").Once()

	var out bytes.Buffer
	ok := newMockRunner(&out, ind).Run(context.Background(), Task{
		Loading: "Committing changes",
		Success: "Changes committed",
		Run:     func(context.Context) error { return errors.New("failed to commit changes") },
	})

	assert.False(t, ok)
	ind.AssertExpectations(t)
	ind.AssertNotCalled(t, "Stop", mock.Anything)
	assert.Equal(t, "\r     failed to commit changes\n", out.String())
}

func TestRunRecoversPanics(t *testing.T) {
	ind := &MockIndicator{}
	ind.On("Start").Once()
	ind.On("Fail", mock.Anything).Once()

	var out bytes.Buffer
	ok := newMockRunner(&out, ind).Run(context.Background(), Task{
		Loading: "Exploding",
		Run:     func(context.Context) error { panic("boom") },
	})

	assert.False(t, ok)
	assert.Contains(t, out.String(), "unexpected failure: boom")
	ind.AssertExpectations(t)
}

func TestRunWithoutFuncFails(t *testing.T) {
	ind := &MockIndicator{}
	ind.On("Start").Once()
	ind.On("Fail", "Nothing... [ERROR]").Once()

	ok := newMockRunner(io.Discard, ind).Run(context.Background(), Task{Loading: "Nothing"})
	assert.False(t, ok)
	ind.AssertExpectations(t)
}

func TestRunAllContinuesAfterFailure(t *testing.T) {
	first, second, third := &MockIndicator{}, &MockIndicator{}, &MockIndicator{}
	for _, ind := range []*MockIndicator{first, second, third} {
		ind.On("Start").Once()
	}
	first.On("Stop", "one done").Once()
	second.On("Fail", "two... [ERROR]").Once()
	third.On("Stop", "three done").Once()

	var ran []string
	step := func(name string, err error) Func {
		return func(context.Context) error {
			ran = append(ran, name)
			return err
		}
	}

	report := newMockRunner(io.Discard, first, second, third).RunAll(context.Background(), []Task{
		{Loading: "one", Success: "one done", Run: step("one", nil)},
		{Loading: "two", Success: "two done", Run: step("two", errors.New("nope"))},
		{Loading: "three", Success: "three done", Run: step("three", nil)},
	})

	assert.Equal(t, []string{"one", "two", "three"}, ran)
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, []string{"two"}, report.Failed)
	assert.False(t, report.OK())
	for _, ind := range []*MockIndicator{first, second, third} {
		ind.AssertExpectations(t)
	}
}

func TestRunAllStopsWhenContextDone(t *testing.T) {
	first := &MockIndicator{}
	first.On("Start").Once()
	first.On("Stop", "one done").Once()

	ctx, cancel := context.WithCancel(context.Background())
	var ran []string

	report := newMockRunner(io.Discard, first).RunAll(ctx, []Task{
		{Loading: "one", Success: "one done", Run: func(context.Context) error {
			ran = append(ran, "one")
			cancel()
			return nil
		}},
		{Loading: "two", Run: func(context.Context) error {
			ran = append(ran, "two")
			return nil
		}},
	})

	assert.Equal(t, []string{"one"}, ran)
	assert.Equal(t, 1, report.Skipped)
	assert.Empty(t, report.Failed)
	assert.False(t, report.OK())
	first.AssertExpectations(t)
}

func TestRunRecordsMetrics(t *testing.T) {
	logger := logging.NewObservableLogger(log.NewWithOptions(io.Discard, log.Options{}))
	collector := logging.NewMetricsCollector()
	logger.AddHook(collector)

	ok := &MockIndicator{}
	ok.On("Start")
	ok.On("Stop", mock.Anything)
	bad := &MockIndicator{}
	bad.On("Start")
	bad.On("Fail", mock.Anything)

	i := 0
	indicators := []Indicator{ok, bad}
	runner := NewRunner(io.Discard, ui.PlainStyles(),
		WithLogger(logger),
		WithIndicator(func(context.Context, io.Writer, string, ui.Styles) Indicator {
			ind := indicators[i]
			i++
			return ind
		}),
	)
	runner.RunAll(context.Background(), []Task{
		{Loading: "good", Run: func(context.Context) error { return nil }},
		{Loading: "bad", Run: func(context.Context) error { return errors.New("x") }},
	})

	totals := map[string]float64{}
	for _, m := range collector.Snapshot() {
		if m.Name == logging.MetricPrefix+".tasks.total" {
			totals[m.Tags["result"]] += m.Value
		}
	}
	require.Len(t, totals, 2)
	assert.Equal(t, float64(1), totals["ok"])
	assert.Equal(t, float64(1), totals["failed"])
}

func TestSpinnerIndicatorRendersFinalLine(t *testing.T) {
	var out bytes.Buffer
	ind := SpinnerIndicator(context.Background(), &out, "Updating", ui.PlainStyles())
	ind.Start()
	ind.Stop("Updated")

	assert.Contains(t, out.String(), "✔ Updated (0s)")
}
