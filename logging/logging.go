// Package logging sets up the global logger.
// For this to work this package needs to be imported with the blank
// identifier.
package logging

import (
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
)

// These are the log levels that we support.
// We should rely on them when retrieving them from the
// environment variables.
const (
	Debug = "DEBUG"
	Info  = "INFO"
	Warn  = "WARN"
	Error = "ERROR"
)

// init configures the logger from the LOG_LEVEL and LOG_FORMAT environment
// variables. At debug level the caller (filename and line number) is logged
// as well.
func init() {
	log.AddHook(&logrusContextHook{})

	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info" // Default log level
	}

	level, err := log.ParseLevel(logLevel)
	if err != nil {
		log.Fatal(err)
	}

	log.SetLevel(level)
	log.SetFormatter(formatterFromEnv())

	if log.StandardLogger().GetLevel() == log.DebugLevel {
		log.SetReportCaller(true)
	}
}

// formatterFromEnv returns a new formatter based on LOG_FORMAT.
func formatterFromEnv() log.Formatter {
	logFormat := os.Getenv("LOG_FORMAT")

	if logFormat == "json" {
		return &log.JSONFormatter{}
	}

	return &log.TextFormatter{}
}

type logrusContextHook struct {
}

func (hook *logrusContextHook) Levels() []log.Level {
	return log.AllLevels
}

// Fire extracts the trace ID and span ID from the log entry's context and
// adds them as fields to the log entry, following the Datadog convention.
func (hook *logrusContextHook) Fire(entry *log.Entry) error {
	span := trace.SpanFromContext(entry.Context).SpanContext()

	if span.IsValid() {
		entry.Data["dd.trace_id"] = convertTraceID(span.TraceID().String())
		entry.Data["dd.span_id"] = convertTraceID(span.SpanID().String())
	}

	return nil
}

// Took from DD https://docs.datadoghq.com/tracing/other_telemetry/connect_logs_and_traces/opentelemetry?tab=go
func convertTraceID(id string) string {
	if len(id) < 16 {
		return ""
	}
	if len(id) > 16 {
		id = id[16:]
	}
	intValue, err := strconv.ParseUint(id, 16, 64)
	if err != nil {
		return ""
	}

	return strconv.FormatUint(intValue, 10)
}
