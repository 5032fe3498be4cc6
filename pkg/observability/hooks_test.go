package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	NoopComputeHooks{}.OnCompute(ctx, "spacing", time.Millisecond, nil)
	NoopComputeHooks{}.OnCompute(ctx, "fretboard", time.Millisecond, errors.New("boom"))
	NoopServerHooks{}.OnRequest(ctx, "POST", "/api/v1/convert", 200, time.Millisecond)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Compute().(NoopComputeHooks); !ok {
		t.Error("Compute() should return NoopComputeHooks by default")
	}
	if _, ok := Server().(NoopServerHooks); !ok {
		t.Error("Server() should return NoopServerHooks by default")
	}

	compute := &recordingHooks{}
	SetComputeHooks(compute)
	if Compute() != compute {
		t.Error("SetComputeHooks should set custom hooks")
	}

	server := &recordingHooks{}
	SetServerHooks(server)
	if Server() != server {
		t.Error("SetServerHooks should set custom hooks")
	}

	Compute().OnCompute(context.Background(), "spacing", time.Second, nil)
	if len(compute.ops) != 1 || compute.ops[0] != "spacing" {
		t.Errorf("recorded ops = %v", compute.ops)
	}

	Reset()
	if _, ok := Compute().(NoopComputeHooks); !ok {
		t.Error("Reset() should restore NoopComputeHooks")
	}
	if _, ok := Server().(NoopServerHooks); !ok {
		t.Error("Reset() should restore NoopServerHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &recordingHooks{}
	SetComputeHooks(custom)
	SetComputeHooks(nil)
	if Compute() != custom {
		t.Error("SetComputeHooks(nil) should be ignored")
	}
}

type recordingHooks struct {
	ops    []string
	routes []string
}

func (h *recordingHooks) OnCompute(_ context.Context, op string, _ time.Duration, _ error) {
	h.ops = append(h.ops, op)
}

func (h *recordingHooks) OnRequest(_ context.Context, _, route string, _ int, _ time.Duration) {
	h.routes = append(h.routes, route)
}
