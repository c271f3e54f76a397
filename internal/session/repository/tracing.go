package repository

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/wastesmart-storefront/internal/session/domain"
)

var tracer = otel.Tracer("session-store")

// TracingStore wraps a Store with a span per call
type TracingStore struct {
	next    domain.Store
	backend string
}

func NewTracingStore(next domain.Store, backend string) *TracingStore {
	return &TracingStore{next: next, backend: backend}
}

func (s *TracingStore) start(ctx context.Context, op, key string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "session."+op,
		trace.WithAttributes(
			attribute.String("session.backend", s.backend),
			attribute.String("session.key", key),
		),
	)
}

func (s *TracingStore) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, span := s.start(ctx, "Get", key)
	defer span.End()

	data, err := s.next.Get(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		span.SetAttributes(attribute.Bool("session.hit", false))
		return nil, err
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Bool("session.hit", true))
	return data, nil
}

func (s *TracingStore) Set(ctx context.Context, key string, value []byte) error {
	ctx, span := s.start(ctx, "Set", key)
	defer span.End()

	if err := s.next.Set(ctx, key, value); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (s *TracingStore) Remove(ctx context.Context, key string) error {
	ctx, span := s.start(ctx, "Remove", key)
	defer span.End()

	if err := s.next.Remove(ctx, key); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (s *TracingStore) Ping(ctx context.Context) error {
	return s.next.Ping(ctx)
}
