package lattice

import "sync"

// Cache memoizes Build per depth. The zero value is ready to use.
type Cache struct {
	mu      sync.Mutex
	byDepth map[int][]Cell
}

// Get returns the cells for maxDepth, building them on first use.
// The returned slice is shared between callers and must not be modified.
func (c *Cache) Get(maxDepth int) ([]Cell, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cells, ok := c.byDepth[maxDepth]; ok {
		return cells, nil
	}
	cells, err := Build(maxDepth)
	if err != nil {
		return nil, err
	}
	if c.byDepth == nil {
		c.byDepth = make(map[int][]Cell)
	}
	c.byDepth[maxDepth] = cells
	return cells, nil
}

// Len reports how many depths are cached.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.byDepth)
}
