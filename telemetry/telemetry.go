package telemetry

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/ragforge/flowgraph/config"
)

var (
	NodesAdded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flowgraph_nodes_added_total",
			Help: "Total number of nodes added to editing sessions.",
		},
		[]string{"step_type"},
	)
	NodesRemoved = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "flowgraph_nodes_removed_total",
			Help: "Total number of nodes removed from editing sessions.",
		},
	)
	ConnectionsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "flowgraph_connections_created_total",
			Help: "Total number of port connections created.",
		},
	)
	ConnectionsRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flowgraph_connections_rejected_total",
			Help: "Total number of rejected connection requests.",
		},
		[]string{"reason"},
	)
	PipelinesSaved = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "flowgraph_pipelines_saved_total",
			Help: "Total number of pipeline snapshots saved.",
		},
	)
)

func init() {
	// Register Prometheus metrics
	prometheus.MustRegister(NodesAdded, NodesRemoved, ConnectionsCreated, ConnectionsRejected, PipelinesSaved)
}

// Init sets up the tracing exporter based on config. Supported: "stdout".
// Without a tracing section, the default no-op tracer provider stays in place.
func Init(cfg *config.Config) {
	if cfg == nil || cfg.Tracing == nil || cfg.Tracing.Exporter != "stdout" {
		return
	}
	serviceName := "flowgraph"
	if cfg.Tracing.ServiceName != "" {
		serviceName = cfg.Tracing.ServiceName
	}
	res, _ := resource.New(
		context.Background(),
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	exp, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
}

// Tracer returns the tracer used for editor operations.
func Tracer() trace.Tracer {
	return otel.Tracer("flowgraph")
}
