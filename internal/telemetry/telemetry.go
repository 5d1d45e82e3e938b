// Package telemetry records course-overlay sessions as OpenTelemetry spans.
//
// Each time an overlay opens a span starts; level selections and settles are added as
// span events, and the span ends when the overlay closes. Export is optional and only
// enabled when OTEL_EXPORTER_OTLP_ENDPOINT is set. A nil *Recorder is valid and records
// nothing.
package telemetry

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const (
	tracerName = "melodious/ui"

	AttrCourse   = attribute.Key("melodious.course")
	AttrLevel    = attribute.Key("melodious.level")
	AttrDeferred = attribute.Key("melodious.deferred")
	AttrFound    = attribute.Key("melodious.catalog.found")
)

// Recorder turns overlay lifecycle calls into spans.
type Recorder struct {
	tracer   oteltrace.Tracer
	provider *sdktrace.TracerProvider
	span     oteltrace.Span
}

// NewRecorder records with tracer. The caller owns the tracer's provider.
func NewRecorder(tracer oteltrace.Tracer) *Recorder {
	return &Recorder{tracer: tracer}
}

// NewOTLPRecorder creates a recorder exporting over OTLP/HTTP if
// OTEL_EXPORTER_OTLP_ENDPOINT is set. Returns nil if the endpoint is not configured.
func NewOTLPRecorder(ctx context.Context) (*Recorder, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "melodious"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return &Recorder{
		tracer:   provider.Tracer(tracerName),
		provider: provider,
	}, nil
}

// OverlayOpened starts a span for the overlay of course, ending any span still open.
func (r *Recorder) OverlayOpened(course string, found bool) {
	if r == nil || r.tracer == nil {
		return
	}
	r.OverlayClosed()
	_, r.span = r.tracer.Start(context.Background(), "course.overlay",
		oteltrace.WithAttributes(AttrCourse.String(course), AttrFound.Bool(found)),
	)
}

// LevelSelected notes a level change request.
func (r *Recorder) LevelSelected(course, level string, deferred bool) {
	if r == nil || r.span == nil {
		return
	}
	r.span.AddEvent("level.selected", oteltrace.WithAttributes(
		AttrCourse.String(course),
		AttrLevel.String(level),
		AttrDeferred.Bool(deferred),
	))
}

// LevelSettled notes that a deferred change was applied (or dropped as stale).
func (r *Recorder) LevelSettled(course, level string, applied bool) {
	if r == nil || r.span == nil {
		return
	}
	name := "level.settled"
	if !applied {
		name = "level.stale"
	}
	r.span.AddEvent(name, oteltrace.WithAttributes(
		AttrCourse.String(course),
		AttrLevel.String(level),
	))
}

// OverlayClosed ends the current overlay span, if any.
func (r *Recorder) OverlayClosed() {
	if r == nil || r.span == nil {
		return
	}
	r.span.End()
	r.span = nil
}

// Shutdown ends any open span and flushes the exporter.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if r == nil {
		return nil
	}
	r.OverlayClosed()
	if r.provider == nil {
		return nil
	}
	return r.provider.Shutdown(ctx)
}
