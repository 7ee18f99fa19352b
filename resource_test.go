package silo

import (
	"context"
	"testing"
)

type counterResource struct {
	Value int
}

func (c *counterResource) Update() {
	c.Value++
}

func TestResourceAddGetOverwrite(t *testing.T) {
	s := NewStore()
	AddResource(s, counterResource{Value: 1})

	r, ok := GetResource[counterResource](s)
	if !ok {
		t.Fatalf("GetResource reported ok=false for a registered resource")
	}
	if r.Value != 1 {
		t.Fatalf("GetResource = %+v, want Value 1", *r)
	}

	AddResource(s, counterResource{Value: 9})
	r, _ = GetResource[counterResource](s)
	if r.Value != 9 {
		t.Fatalf("AddResource must overwrite the existing value")
	}
}

// TestGetResourceAbsent is the resource analogue of a try_get on a missing
// component: absence is a valid, recoverable outcome, not a programmer
// error, so it reports ok=false rather than panicking (spec.md §7's
// must-panic taxonomy names only a resource downcast failure, never
// absence).
func TestGetResourceAbsent(t *testing.T) {
	s := NewStore()
	if _, ok := GetResource[counterResource](s); ok {
		t.Fatalf("GetResource reported ok=true for an unregistered type")
	}
	if _, ok := GetResourceMut[counterResource](s); ok {
		t.Fatalf("GetResourceMut reported ok=true for an unregistered type")
	}
}

func TestRemoveResource(t *testing.T) {
	s := NewStore()
	AddResource(s, counterResource{})
	RemoveResource[counterResource](s)
	if _, ok := GetResource[counterResource](s); ok {
		t.Fatalf("resource still present after RemoveResource")
	}
}

// TestResourceUpdateOverFiveTicks is scenario S5: a resource whose Update
// increments a counter reaches 5 after 5 ticks of an otherwise empty world.
func TestResourceUpdateOverFiveTicks(t *testing.T) {
	s := NewStore()
	AddResource(s, counterResource{Value: 0})
	w := NewWorld(s)

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if err := w.Tick(ctx); err != nil {
			t.Fatalf("Tick %d returned error: %v", i, err)
		}
	}

	got, ok := GetResource[counterResource](s)
	if !ok {
		t.Fatalf("resource missing after ticking")
	}
	if got.Value != 5 {
		t.Fatalf("resource value = %d, want 5", got.Value)
	}
}
