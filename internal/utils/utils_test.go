package utils

import (
	"context"
	"testing"
	"time"
)

func TestWaitForReturnsImmediatelyOnNonPositiveDuration(t *testing.T) {
	t.Parallel()

	if err := WaitFor(context.Background(), 0); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := WaitFor(context.Background(), -time.Second); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestWaitForCompletes(t *testing.T) {
	t.Parallel()

	if err := WaitFor(context.Background(), time.Millisecond); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestWaitForHonorsCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WaitFor(ctx, time.Minute)
	if err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
