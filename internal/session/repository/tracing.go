package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/bellarosa/storefront/internal/session/domain"
)

var tracer = otel.Tracer("session-store")

// TracingStore wraps a SnapshotStore with OpenTelemetry spans.
type TracingStore struct {
	inner domain.SnapshotStore
}

// NewTracingStore decorates the given store with tracing.
func NewTracingStore(inner domain.SnapshotStore) *TracingStore {
	return &TracingStore{inner: inner}
}

// Write with tracing
func (s *TracingStore) Write(ctx context.Context, key string, snapshot *domain.Snapshot) error {
	ctx, span := tracer.Start(ctx, "store.Write",
		trace.WithAttributes(
			attribute.String("snapshot.key", key),
			attribute.Int("snapshot.cart_lines", len(snapshot.Cart)),
			attribute.Int("snapshot.wishlist_entries", len(snapshot.Wishlist)),
		),
	)
	defer span.End()

	if err := s.inner.Write(ctx, key, snapshot); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// Read with tracing
func (s *TracingStore) Read(ctx context.Context, key string) (*domain.Snapshot, error) {
	ctx, span := tracer.Start(ctx, "store.Read",
		trace.WithAttributes(
			attribute.String("snapshot.key", key),
		),
	)
	defer span.End()

	snap, err := s.inner.Read(ctx, key)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("snapshot.version", snap.Version))
	return snap, nil
}
