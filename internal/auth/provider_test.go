package auth

import (
	"context"
	"sync"
	"testing"
)

func TestLocalProvider_SignIn(t *testing.T) {
	p := NewLocalProvider()
	ctx := context.Background()

	a, err := p.SignIn(ctx)
	if err != nil {
		t.Fatalf("SignIn returned error: %v", err)
	}
	if a.DisplayName == "" || a.Activity == "" {
		t.Errorf("Expected handle and activity, got %+v", a)
	}

	b, _ := p.SignIn(ctx)
	if a.DisplayName == b.DisplayName {
		t.Error("Expected unique handles", a.DisplayName, b.DisplayName)
	}
	if p.ActiveCount() != 2 {
		t.Errorf("Expected 2 active handles, got %d", p.ActiveCount())
	}

	if err := p.SignOut(ctx, a); err != nil {
		t.Fatalf("SignOut returned error: %v", err)
	}
	if p.ActiveCount() != 1 {
		t.Errorf("Expected handle released, got %d active", p.ActiveCount())
	}
	if err := p.SignOut(ctx, nil); err != nil {
		t.Errorf("SignOut(nil) should be a no-op, got %v", err)
	}
}

func TestLocalProvider_CancelledContext(t *testing.T) {
	p := NewLocalProvider()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.SignIn(ctx); err == nil {
		t.Error("Expected error for cancelled context")
	}
	if p.ActiveCount() != 0 {
		t.Error("Cancelled sign in should not reserve a handle")
	}
}

func TestLocalProvider_Concurrency(t *testing.T) {
	p := NewLocalProvider()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.SignIn(context.Background())
		}()
	}
	wg.Wait()

	if p.ActiveCount() != 50 {
		t.Errorf("Expected 50 unique handles, got %d", p.ActiveCount())
	}
}
