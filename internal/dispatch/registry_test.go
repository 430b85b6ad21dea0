package dispatch

import (
	"sync"
	"testing"
)

func TestRegistryRegisterUnregister(t *testing.T) {
	registry := NewRegistry()

	first := NewSession(1)
	second := NewSession(1)
	registry.Register(first)
	registry.Register(second)

	if got := len(registry.SessionsFor(1)); got != 2 {
		t.Fatalf("expected 2 sessions, got %d", got)
	}
	if got := registry.ConnectionCount(); got != 2 {
		t.Fatalf("expected connection count 2, got %d", got)
	}

	registry.Unregister(first)
	if got := len(registry.SessionsFor(1)); got != 1 {
		t.Fatalf("expected 1 session after unregister, got %d", got)
	}

	registry.Unregister(second)
	if got := registry.ConnectionCount(); got != 0 {
		t.Fatalf("expected empty registry, got %d", got)
	}
}

func TestRegistryUnregisterIdempotent(t *testing.T) {
	registry := NewRegistry()

	session := NewSession(1)
	registry.Register(session)
	registry.Unregister(session)
	// Second unregister is a no-op, not a panic.
	registry.Unregister(session)

	if got := registry.ConnectionCount(); got != 0 {
		t.Fatalf("expected empty registry, got %d", got)
	}
}

func TestRegistryClosedSessionDropsFrames(t *testing.T) {
	registry := NewRegistry()

	session := NewSession(1)
	registry.Register(session)
	registry.Unregister(session)

	if session.enqueue([]byte("late frame")) {
		t.Fatal("enqueue on a closed session must report a drop")
	}
}

func TestRegistryConcurrentChurn(t *testing.T) {
	registry := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(employeeID uint) {
			defer wg.Done()
			session := NewSession(employeeID)
			registry.Register(session)
			registry.SessionsFor(employeeID)
			registry.Unregister(session)
		}(uint(i % 5))
	}
	wg.Wait()

	if got := registry.ConnectionCount(); got != 0 {
		t.Fatalf("expected empty registry after churn, got %d", got)
	}
}
