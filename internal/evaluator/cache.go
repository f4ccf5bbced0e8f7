package evaluator

import (
	"github.com/cwbudde/go-aksoscript/internal/value"
	"github.com/cwbudde/go-aksoscript/pkg/graph"
)

// Cache memoizes one evaluated value per identifier within a lexical scope.
// The cache key is definition-node identity; since a given scope layer
// maps each identifier to exactly one node, keying by identifier within
// that scope is equivalent and avoids needing an identity-preserving
// wrapper around *graph.Def. Caches chain to the cache active in the
// enclosing lexical scope so lookups can see outer memoized results;
// writes always land in the innermost cache.
type Cache struct {
	parent *Cache
	values map[graph.Ident]value.Value
}

func newCache(parent *Cache) *Cache {
	return &Cache{parent: parent, values: make(map[graph.Ident]value.Value)}
}

// lookup searches from innermost to outermost.
func (c *Cache) lookup(id graph.Ident) (value.Value, bool) {
	for cur := c; cur != nil; cur = cur.parent {
		if v, ok := cur.values[id]; ok {
			return v, true
		}
	}
	return nil, false
}

func (c *Cache) store(id graph.Ident, v value.Value) {
	c.values[id] = v
}
