package ui

import (
	"errors"
	"testing"
)

type countingRenderer struct {
	calls int
	err   error
}

func (c *countingRenderer) Render(s string) (string, error) {
	c.calls++
	if c.err != nil {
		return "", c.err
	}
	return "<" + s + ">", nil
}

func TestRenderCache_Hit(t *testing.T) {
	next := &countingRenderer{}
	rc := NewRenderCache(next, 4)

	for i := 0; i < 3; i++ {
		out, err := rc.Render("hello")
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		if out != "<hello>" {
			t.Fatalf("unexpected output %q", out)
		}
	}
	if next.calls != 1 {
		t.Errorf("expected 1 underlying render, got %d", next.calls)
	}
}

func TestRenderCache_Evicts(t *testing.T) {
	next := &countingRenderer{}
	rc := NewRenderCache(next, 2)

	_, _ = rc.Render("a")
	_, _ = rc.Render("b")
	_, _ = rc.Render("c")
	if rc.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", rc.Len())
	}

	// "a" was evicted first
	_, _ = rc.Render("a")
	if next.calls != 4 {
		t.Errorf("expected re-render of evicted entry, calls=%d", next.calls)
	}
}

func TestRenderCache_ErrorsNotCached(t *testing.T) {
	next := &countingRenderer{err: errors.New("boom")}
	rc := NewRenderCache(next, 0)

	if _, err := rc.Render("x"); err == nil {
		t.Fatalf("expected error")
	}
	if rc.Len() != 0 {
		t.Fatalf("error result was cached")
	}

	rc.Clear()
	if rc.Len() != 0 {
		t.Fatalf("Clear left entries")
	}
}

func TestRenderCache_Reset(t *testing.T) {
	first := &countingRenderer{}
	rc := NewRenderCache(first, 4)
	_, _ = rc.Render("a")
	if rc.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", rc.Len())
	}

	second := &countingRenderer{}
	rc.Reset(second)
	if rc.Len() != 0 {
		t.Fatalf("Reset left %d entries", rc.Len())
	}

	out, err := rc.Render("a")
	if err != nil || out != "<a>" {
		t.Fatalf("Render after Reset: %q, %v", out, err)
	}
	if first.calls != 1 || second.calls != 1 {
		t.Errorf("expected one call on each renderer, got %d and %d", first.calls, second.calls)
	}
}

func TestRenderCache_NoRenderer(t *testing.T) {
	rc := NewRenderCache(nil, 0)
	out, err := rc.Render("plain")
	if err != nil || out != "plain" {
		t.Fatalf("expected passthrough, got %q, %v", out, err)
	}
	if rc.Len() != 0 {
		t.Errorf("passthrough output was cached")
	}
}
