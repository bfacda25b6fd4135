// Package telemetry wires compilation into OpenTelemetry and clue logging.
// It uses the global providers, so nothing is exported unless the host
// configures them (typically through clue.ConfigureOpenTelemetry).
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	"goa.design/clue/log"
)

const instrumentationName = "vapor-go/packages/compiler"

// Metric and span names
const (
	SpanCompile         = "vapor.compile"
	MetricCompiledFiles = "vapor.compile.files"
	MetricCodeBytes     = "vapor.compile.code_bytes"
)

type (
	// Recorder traces and counts file compilations.
	Recorder struct {
		tracer    trace.Tracer
		files     metric.Int64Counter
		codeBytes metric.Int64Histogram
	}

	// FileSpan is the span of a single file compilation.
	FileSpan struct {
		span trace.Span
	}
)

// NewRecorder builds a Recorder on the global tracer and meter providers.
// Instruments that fail to register are replaced by no-ops.
func NewRecorder() *Recorder {
	meter := otel.Meter(instrumentationName)
	files, err := meter.Int64Counter(MetricCompiledFiles,
		metric.WithDescription("Number of IR documents compiled, by outcome"))
	if err != nil {
		files, _ = noopMeter().Int64Counter(MetricCompiledFiles)
	}
	codeBytes, err := meter.Int64Histogram(MetricCodeBytes,
		metric.WithDescription("Size of the generated code"),
		metric.WithUnit("By"))
	if err != nil {
		codeBytes, _ = noopMeter().Int64Histogram(MetricCodeBytes)
	}
	return &Recorder{
		tracer:    otel.Tracer(instrumentationName),
		files:     files,
		codeBytes: codeBytes,
	}
}

// StartFile opens the span for compiling path.
func (r *Recorder) StartFile(ctx context.Context, path string) (context.Context, *FileSpan) {
	ctx, span := r.tracer.Start(ctx, SpanCompile, trace.WithAttributes(attribute.String("vapor.file", path)))
	return ctx, &FileSpan{span: span}
}

// Succeeded records a successful compilation and closes the span.
func (r *Recorder) Succeeded(ctx context.Context, s *FileSpan, codeBytes int, helpers, vaporHelpers int) {
	s.span.SetAttributes(
		attribute.Int("vapor.helpers", helpers),
		attribute.Int("vapor.vapor_helpers", vaporHelpers),
		attribute.Int("vapor.code_bytes", codeBytes),
	)
	s.span.SetStatus(codes.Ok, "")
	s.span.End()
	r.files.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "ok")))
	r.codeBytes.Record(ctx, int64(codeBytes))
}

// Failed records a failed compilation and closes the span.
func (r *Recorder) Failed(ctx context.Context, s *FileSpan, err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
	s.span.End()
	r.files.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "error")))
}

func noopMeter() metric.Meter {
	return noop.NewMeterProvider().Meter(instrumentationName)
}

// KV turns alternating key/value pairs into clue log fields. Non-string keys
// are skipped and an odd trailing key is paired with nil.
func KV(keyvals ...any) []log.Fielder {
	var fielders []log.Fielder
	for i := 0; i < len(keyvals); i += 2 {
		k, ok := keyvals[i].(string)
		if !ok {
			continue
		}
		var v any
		if i+1 < len(keyvals) {
			v = keyvals[i+1]
		}
		fielders = append(fielders, log.KV{K: k, V: v})
	}
	return fielders
}
