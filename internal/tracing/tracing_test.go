package tracing

import (
	"context"
	"testing"

	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestSetup_WithoutExporter(t *testing.T) {
	// Arrange
	cfg := config.Otel{ServiceName: "apparel-commerce-test", SamplerRatio: 1.0}

	// Act
	shutdown, err := Setup(context.Background(), cfg)

	// Assert
	require.NoError(t, err)
	_, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider)
	assert.True(t, ok)

	_, span := otel.Tracer("test").Start(context.Background(), "op")
	assert.True(t, span.SpanContext().IsSampled())
	span.End()

	assert.NoError(t, shutdown(context.Background()))
}

func TestSetup_ZeroRatioDropsRootSpans(t *testing.T) {
	// Arrange
	cfg := config.Otel{ServiceName: "apparel-commerce-test", SamplerRatio: 0}

	// Act
	shutdown, err := Setup(context.Background(), cfg)
	require.NoError(t, err)
	defer shutdown(context.Background())

	_, span := otel.Tracer("test").Start(context.Background(), "op")
	defer span.End()

	// Assert
	assert.False(t, span.SpanContext().IsSampled())
}
