package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetAndGet(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	Set(zap.New(core))

	Get().Infow("transfer completed", "from", "js", "to", "aa")

	entries := logs.FilterMessage("transfer completed").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["from"] != "js" || fields["to"] != "aa" {
		t.Errorf("unexpected fields: %v", fields)
	}
}

func TestInitKeepsExistingLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	Set(zap.New(core))

	Init("production")
	Get().Debug("still observed")

	if logs.Len() != 1 {
		t.Errorf("expected Init to keep the configured logger, got %d entries", logs.Len())
	}
}
