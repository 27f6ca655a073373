package ctxutil

import (
	"context"
	"testing"
	"time"
)

func TestRequestIDRoundtrip(t *testing.T) {
	ctx := context.Background()
	if _, ok := RequestID(ctx); ok {
		t.Fatal("empty context should carry no request id")
	}
	ctx = WithRequestID(ctx, "r1")
	id, ok := RequestID(ctx)
	if !ok || id != "r1" {
		t.Fatalf("RequestID = %q, %v", id, ok)
	}
}

func TestActorRoundtrip(t *testing.T) {
	ctx := WithActor(context.Background(), "admin")
	actor, ok := Actor(ctx)
	if !ok || actor != "admin" {
		t.Fatalf("Actor = %q, %v", actor, ok)
	}
}

func TestWithDBTimeout_ShrinksToParentDeadline(t *testing.T) {
	parent, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	ctx, cancel2 := WithDBTimeout(parent)
	defer cancel2()
	dl, ok := ctx.Deadline()
	if !ok {
		t.Fatal("expected a deadline")
	}
	if time.Until(dl) > time.Second {
		t.Fatalf("deadline %v exceeds the parent's", dl)
	}
}
