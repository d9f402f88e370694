// Copyright 2025 The Library Template Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logging

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// ObservabilityHook defines an interface for hooks that can be attached to
// the logging system to collect metrics from log events.
type ObservabilityHook interface {
	// OnLog is called whenever a log event occurs
	OnLog(ctx context.Context, level log.Level, msg string, keyvals []interface{})

	// OnError is called whenever an error-level log occurs
	OnError(ctx context.Context, msg string, err error, keyvals []interface{})

	// OnMetric is called to record custom metrics
	OnMetric(ctx context.Context, name string, value float64, tags map[string]string)

	// Close cleans up resources used by the hook
	Close() error
}

// MetricsCollector aggregates metrics from log events.
type MetricsCollector struct {
	mu      sync.RWMutex
	metrics map[string]*Metric
}

// Metric represents a collected metric with its metadata.
type Metric struct {
	Name      string            `json:"name"`
	Value     float64           `json:"value"`
	Tags      map[string]string `json:"tags"`
	Timestamp time.Time         `json:"timestamp"`
	Count     int64             `json:"count"`
}

// NewMetricsCollector creates a new metrics collector.
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		metrics: make(map[string]*Metric),
	}
}

// OnLog implements ObservabilityHook.
func (mc *MetricsCollector) OnLog(ctx context.Context, level log.Level, msg string, keyvals []interface{}) {
	mc.recordMetric(MetricPrefix+".logs.count", 1, map[string]string{
		"level": level.String(),
	})
}

// OnError implements ObservabilityHook.
func (mc *MetricsCollector) OnError(ctx context.Context, msg string, err error, keyvals []interface{}) {
	tags := map[string]string{
		"error_type": "unknown",
	}

	// Extract error context from keyvals
	for i := 0; i < len(keyvals)-1; i += 2 {
		if key, ok := keyvals[i].(string); ok {
			if value, ok := keyvals[i+1].(string); ok {
				switch key {
				case "component", "operation", "task":
					tags[key] = value
				}
			}
		}
	}

	mc.recordMetric(MetricPrefix+".errors.count", 1, tags)
}

// OnMetric implements ObservabilityHook.
func (mc *MetricsCollector) OnMetric(ctx context.Context, name string, value float64, tags map[string]string) {
	mc.recordMetric(name, value, tags)
}

// recordMetric records a metric with aggregation.
func (mc *MetricsCollector) recordMetric(name string, value float64, tags map[string]string) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	if mc.metrics == nil {
		return
	}

	key := buildMetricKey(name, tags)

	now := time.Now()
	if existing, exists := mc.metrics[key]; exists {
		existing.Value += value
		existing.Count++
		existing.Timestamp = now
	} else {
		mc.metrics[key] = &Metric{
			Name:      name,
			Value:     value,
			Tags:      copyTags(tags),
			Timestamp: now,
			Count:     1,
		}
	}
}

// Snapshot returns a copy of every metric, ordered by name and tags.
func (mc *MetricsCollector) Snapshot() []Metric {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	keys := make([]string, 0, len(mc.metrics))
	for key := range mc.metrics {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]Metric, 0, len(keys))
	for _, key := range keys {
		m := *mc.metrics[key]
		m.Tags = copyTags(m.Tags)
		out = append(out, m)
	}
	return out
}

// Close implements ObservabilityHook.
func (mc *MetricsCollector) Close() error {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.metrics = nil
	return nil
}

// buildMetricKey creates a stable key for a metric based on name and tags.
func buildMetricKey(name string, tags map[string]string) string {
	names := make([]string, 0, len(tags))
	for k := range tags {
		names = append(names, k)
	}
	sort.Strings(names)

	key := name
	for _, k := range names {
		key += ":" + k + "=" + tags[k]
	}
	return key
}

// copyTags creates a copy of the tags map.
func copyTags(tags map[string]string) map[string]string {
	if tags == nil {
		return nil
	}
	copy := make(map[string]string, len(tags))
	for k, v := range tags {
		copy[k] = v
	}
	return copy
}

// ObservableLogger wraps a logger with observability hooks.
type ObservableLogger struct {
	logger *log.Logger
	hooks  []ObservabilityHook
	mu     sync.RWMutex
}

// NewObservableLogger creates a new observable logger.
func NewObservableLogger(logger *log.Logger) *ObservableLogger {
	return &ObservableLogger{
		logger: logger,
		hooks:  make([]ObservabilityHook, 0),
	}
}

// AddHook adds an observability hook.
func (ol *ObservableLogger) AddHook(hook ObservabilityHook) {
	ol.mu.Lock()
	defer ol.mu.Unlock()
	ol.hooks = append(ol.hooks, hook)
}

// Logger returns the underlying logger.
func (ol *ObservableLogger) Logger() *log.Logger {
	return ol.logger
}

// Debug logs a debug message and notifies hooks.
func (ol *ObservableLogger) Debug(msg string, keyvals ...interface{}) {
	ol.logger.Debug(msg, keyvals...)
	ol.notifyHooks(context.Background(), log.DebugLevel, msg, keyvals)
}

// Info logs an info message and notifies hooks.
func (ol *ObservableLogger) Info(msg string, keyvals ...interface{}) {
	ol.logger.Info(msg, keyvals...)
	ol.notifyHooks(context.Background(), log.InfoLevel, msg, keyvals)
}

// Warn logs a warning message and notifies hooks.
func (ol *ObservableLogger) Warn(msg string, keyvals ...interface{}) {
	ol.logger.Warn(msg, keyvals...)
	ol.notifyHooks(context.Background(), log.WarnLevel, msg, keyvals)
}

// Error logs an error message and notifies hooks.
func (ol *ObservableLogger) Error(msg string, keyvals ...interface{}) {
	ol.logger.Error(msg, keyvals...)
	ol.notifyHooks(context.Background(), log.ErrorLevel, msg, keyvals)

	var err error
	for i := 0; i < len(keyvals)-1; i += 2 {
		if key, ok := keyvals[i].(string); ok && key == "err" {
			if e, ok := keyvals[i+1].(error); ok {
				err = e
				break
			}
		}
	}

	ol.notifyErrorHooks(context.Background(), msg, err, keyvals)
}

// With returns a new logger with additional key-value pairs.
func (ol *ObservableLogger) With(keyvals ...interface{}) *ObservableLogger {
	ol.mu.RLock()
	defer ol.mu.RUnlock()
	return &ObservableLogger{
		logger: ol.logger.With(keyvals...),
		hooks:  ol.hooks, // Share hooks with the parent logger
	}
}

// Metric records a custom metric.
func (ol *ObservableLogger) Metric(ctx context.Context, name string, value float64, tags map[string]string) {
	for _, hook := range ol.snapshotHooks() {
		hook.OnMetric(ctx, name, value, tags)
	}
}

// Metrics returns the aggregated metrics of every attached collector.
func (ol *ObservableLogger) Metrics() []Metric {
	var out []Metric
	for _, hook := range ol.snapshotHooks() {
		if mc, ok := hook.(*MetricsCollector); ok {
			out = append(out, mc.Snapshot()...)
		}
	}
	return out
}

func (ol *ObservableLogger) notifyHooks(ctx context.Context, level log.Level, msg string, keyvals []interface{}) {
	for _, hook := range ol.snapshotHooks() {
		hook.OnLog(ctx, level, msg, keyvals)
	}
}

func (ol *ObservableLogger) notifyErrorHooks(ctx context.Context, msg string, err error, keyvals []interface{}) {
	for _, hook := range ol.snapshotHooks() {
		hook.OnError(ctx, msg, err, keyvals)
	}
}

func (ol *ObservableLogger) snapshotHooks() []ObservabilityHook {
	ol.mu.RLock()
	defer ol.mu.RUnlock()
	hooks := make([]ObservabilityHook, len(ol.hooks))
	copy(hooks, ol.hooks)
	return hooks
}

// Close closes all observability hooks.
func (ol *ObservableLogger) Close() error {
	ol.mu.Lock()
	defer ol.mu.Unlock()

	for _, hook := range ol.hooks {
		_ = hook.Close()
	}

	ol.hooks = nil
	return nil
}
