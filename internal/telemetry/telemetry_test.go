package telemetry

import (
	"context"
	"testing"
)

func TestTracerAndMeterWithoutSetup(t *testing.T) {
	ctx, span := Tracer("test").Start(context.Background(), "span")
	defer span.End()
	if ctx == nil {
		t.Fatal("Tracer returned a nil context")
	}

	counter, err := Meter("test").Int64Counter("test.counter")
	if err != nil {
		t.Fatalf("Int64Counter failed: %v", err)
	}
	counter.Add(ctx, 1)
}

func TestGetHostname(t *testing.T) {
	if getHostname() == "" {
		t.Error("getHostname returned an empty string")
	}
}
