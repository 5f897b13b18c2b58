package tracex

import (
	"context"
	"testing"
)

func TestTraceID_往返(t *testing.T) {
	ctx := context.Background()
	if _, ok := TraceIDFrom(ctx); ok {
		t.Fatal("空 ctx 不应有 trace_id")
	}

	ctx = WithTraceID(ctx, "abc123")
	tid, ok := TraceIDFrom(ctx)
	if !ok || tid != "abc123" {
		t.Fatalf("期望取回 abc123，got=%q ok=%v", tid, ok)
	}
}

func TestNewTraceID_长度与唯一性(t *testing.T) {
	a := NewTraceID()
	b := NewTraceID()
	if len(a) != 32 || len(b) != 32 {
		t.Fatalf("期望 32 位 hex，got len(a)=%d len(b)=%d", len(a), len(b))
	}
	if a == b {
		t.Fatalf("两次生成不应相同：%s", a)
	}
}
