package telemetry_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/in-tuned/emotion-engine/internal/telemetry"
)

// providerOnce ensures we only create one Provider per test run to avoid
// duplicate Prometheus metric registration errors from promauto's global registry
var (
	testProvider *telemetry.Provider
	providerOnce sync.Once
)

func getTestProvider(t *testing.T) *telemetry.Provider {
	t.Helper()
	providerOnce.Do(func() {
		testProvider = telemetry.NewProvider()
	})
	return testProvider
}

func TestNewProvider(t *testing.T) {
	provider := getTestProvider(t)
	if provider == nil {
		t.Fatal("expected non-nil provider")
	}
	if provider.Tracer == nil {
		t.Error("expected non-nil tracer")
	}
	if provider.Metrics == nil {
		t.Error("expected non-nil metrics")
	}
}

func TestRecordAnalysis(t *testing.T) {
	provider := getTestProvider(t)
	ctx := context.Background()

	// Must not panic for any flag combination.
	provider.RecordAnalysis(ctx, "en", "joy", false, false, 3*time.Millisecond)
	provider.RecordAnalysis(ctx, "es", "", true, false, time.Millisecond)
	provider.RecordAnalysis(ctx, "pt", "sadness", false, true, 2*time.Millisecond)
	provider.RecordAnalysisFailure(ctx, "empty_input")
}

func TestRecordRiskLevel(t *testing.T) {
	provider := getTestProvider(t)
	ctx := context.Background()

	for _, level := range []string{"none", "possible", "likely", "severe"} {
		provider.RecordRiskLevel(ctx, level)
	}
}

func TestRecordLexiconLoad(t *testing.T) {
	provider := getTestProvider(t)
	provider.RecordLexiconLoad(1200, 3)
	provider.RecordLexiconLoad(1201, 0)
}

func TestRecordExpansion(t *testing.T) {
	provider := getTestProvider(t)
	provider.RecordExpansionLookup("free_dictionary", "ok", 120*time.Millisecond)
	provider.RecordExpansionLookup("urban_dictionary", "circuit_open", 0)
	provider.RecordExpansionCacheHit()
}

func TestStartSpan(t *testing.T) {
	provider := getTestProvider(t)
	ctx, span := provider.StartSpan(context.Background(), "test.span")
	if ctx == nil {
		t.Fatal("expected non-nil context")
	}
	if span == nil {
		t.Fatal("expected non-nil span")
	}
	span.End()
}

func TestMetricsHandler(t *testing.T) {
	provider := getTestProvider(t)
	if provider.Handler() == nil {
		t.Fatal("expected a metrics handler")
	}
}
