// Package reqctx provides centralized request context management.
//
// This package is the single source of truth for request-scoped data
// set by HTTP middleware.
//
// # Context Keys
//
// All context keys are private unexported types to prevent collisions.
// Access is provided through type-safe getter and setter functions.
//
// # Usage
//
// Setting values (typically in middleware):
//
//	ctx = reqctx.WithRequestMeta(ctx, &reqctx.RequestMeta{
//	    RequestID:   "abc-123",
//	    ClientIP:    "192.168.1.1",
//	    UserAgent:   "Mozilla/5.0",
//	    RequestedAt: time.Now(),
//	})
//
// Getting values (in handlers, services, etc.):
//
//	meta, ok := reqctx.RequestMetaFromContext(ctx)
//	requestID := reqctx.RequestIDFromContext(ctx)
//
// Distributed tracing is handled by OpenTelemetry directly; span context
// lives in the context.Context managed by the otel SDK, not here.
//
// # Contracts
//
//   - RequestMeta is always set by HTTP middleware for all requests
package reqctx
