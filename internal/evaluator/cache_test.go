package evaluator

import (
	"testing"

	"github.com/cwbudde/go-aksoscript/internal/value"
	"github.com/cwbudde/go-aksoscript/pkg/graph"
)

func TestCacheStoreAndLookup(t *testing.T) {
	c := newCache(nil)
	c.store(graph.Name("x"), value.Number(42))

	v, ok := c.lookup(graph.Name("x"))
	if !ok || v != value.Number(42) {
		t.Errorf("lookup(x) = %v,%v want 42,true", v, ok)
	}
	if _, ok := c.lookup(graph.Name("missing")); ok {
		t.Error("lookup of an unstored identifier should fail")
	}
}

func TestCacheChainsToParent(t *testing.T) {
	parent := newCache(nil)
	parent.store(graph.Name("x"), value.Number(1))
	child := newCache(parent)

	v, ok := child.lookup(graph.Name("x"))
	if !ok || v != value.Number(1) {
		t.Errorf("child lookup(x) = %v,%v want 1,true (inherited from parent)", v, ok)
	}
}

func TestCacheWriteLandsInInnermost(t *testing.T) {
	parent := newCache(nil)
	child := newCache(parent)
	child.store(graph.Name("x"), value.Number(2))

	if _, ok := parent.lookup(graph.Name("x")); ok {
		t.Error("a write to the child cache should not appear in the parent")
	}
	v, ok := child.lookup(graph.Name("x"))
	if !ok || v != value.Number(2) {
		t.Errorf("child lookup(x) = %v,%v want 2,true", v, ok)
	}
}

func TestCacheChildShadowsParent(t *testing.T) {
	parent := newCache(nil)
	parent.store(graph.Name("x"), value.Number(1))
	child := newCache(parent)
	child.store(graph.Name("x"), value.Number(99))

	v, _ := child.lookup(graph.Name("x"))
	if v != value.Number(99) {
		t.Errorf("child lookup(x) = %v, want shadowed value 99", v)
	}
	v, _ = parent.lookup(graph.Name("x"))
	if v != value.Number(1) {
		t.Errorf("parent lookup(x) = %v, want unshadowed 1", v)
	}
}
