package logging

const (
	// LogTimeFormat is the timestamp layout of every log line
	LogTimeFormat = "15:04:05"

	// LogPrefix is printed before every log line
	LogPrefix = "setup"

	// MetricPrefix namespaces the metrics recorded by the collector
	MetricPrefix = "setup"
)
