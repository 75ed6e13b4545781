package metrics

import (
	"testing"
	"time"

	"github.com/habitlock/verify-server/internal/llm"
)

func TestStoreSnapshot(t *testing.T) {
	store := NewStore()

	store.RecordSuccess(100*time.Millisecond, llm.Usage{InputTokens: 500, OutputTokens: 80, TotalTokens: 580})
	store.RecordSuccess(300*time.Millisecond, llm.Usage{InputTokens: 700, OutputTokens: 120, TotalTokens: 820})
	store.RecordError(200 * time.Millisecond)

	snapshot := store.Snapshot()
	if snapshot["total_calls"] != 3 {
		t.Fatalf("expected 3 calls, got %v", snapshot["total_calls"])
	}
	if snapshot["total_errors"] != 1 {
		t.Fatalf("expected 1 error, got %v", snapshot["total_errors"])
	}
	if snapshot["total_input_tokens"] != 1200 {
		t.Fatalf("expected 1200 input tokens, got %v", snapshot["total_input_tokens"])
	}
	if snapshot["total_output_tokens"] != 200 {
		t.Fatalf("expected 200 output tokens, got %v", snapshot["total_output_tokens"])
	}
	if snapshot["avg_duration_ms"] != 200 {
		t.Fatalf("expected 200ms average, got %v", snapshot["avg_duration_ms"])
	}
}

func TestEmptyStoreSnapshot(t *testing.T) {
	snapshot := NewStore().Snapshot()
	if snapshot["total_calls"] != 0 || snapshot["avg_duration_ms"] != 0 {
		t.Fatalf("expected zeroed snapshot, got %v", snapshot)
	}
}
