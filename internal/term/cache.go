package term

import (
	"github.com/emirpasic/gods/trees/redblacktree"
)

// ElementCache keeps one Element per materialized position, ordered by
// position. Reusing the cached element across re-renders preserves element
// identity for a position, so the engine's rebind detection only fires when
// an item's content actually changes instance.
type ElementCache struct {
	byPosition *redblacktree.Tree
}

func NewElementCache() *ElementCache {
	return &ElementCache{
		byPosition: redblacktree.NewWithIntComparator(),
	}
}

// Get returns the cached element for pos, creating it from makeContent on a
// miss or when the content changed.
func (c *ElementCache) Get(pos int, makeContent func() string) *Element {
	content := makeContent()
	if v, ok := c.byPosition.Get(pos); ok {
		el := v.(*Element)
		if el.Content() == content {
			return el
		}
	}
	el := NewElement(content)
	c.byPosition.Put(pos, el)
	return el
}

// EvictOutside removes entries for positions outside [first, pastLast).
func (c *ElementCache) EvictOutside(first, pastLast int) {
	var evict []int
	it := c.byPosition.Iterator()
	for it.Next() {
		pos := it.Key().(int)
		if pos >= first && pos < pastLast {
			continue
		}
		evict = append(evict, pos)
	}
	for _, pos := range evict {
		c.byPosition.Remove(pos)
	}
}

func (c *ElementCache) Len() int {
	return c.byPosition.Size()
}
