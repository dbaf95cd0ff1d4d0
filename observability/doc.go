// Package observability provides optional OpenTelemetry tracing and
// metrics for the marketplace SDK. Applications that want instrumented
// API calls initialize a tracer and meter provider at startup and enable
// them on the HTTP client:
//
//	tp, _ := observability.InitTracer(ctx, observability.DefaultTracerConfig("my-app"))
//	defer tp.Shutdown(ctx)
//
//	metrics, _ := observability.NewRequestMetrics(observability.Meter("my-app"))
//	client, _ := httpclient.New(cfg, httpclient.WithTracing(), httpclient.WithMetrics(metrics))
//
// Without initialization the otel no-op providers are used and the
// instrumentation costs nothing.
package observability
