package network

// Index maps the identifying name of catalog items to the items themselves.
// It preserves insertion order and never holds two items with the same name.
type Index[T any] struct {
	name   func(T) string
	items  []T
	byName map[string]int
}

// NewIndex returns an empty index using name to identify items.
func NewIndex[T any](name func(T) string) *Index[T] {
	return &Index[T]{
		name:   name,
		byName: map[string]int{},
	}
}

// Add inserts item in the index. It returns false and leaves the index
// unchanged if an item with the same name is already present.
func (idx *Index[T]) Add(item T) bool {
	n := idx.name(item)
	if _, ok := idx.byName[n]; ok {
		return false
	}
	idx.byName[n] = len(idx.items)
	idx.items = append(idx.items, item)
	return true
}

// Lookup returns the item with the given name. The second returned value is
// false if no such item exists.
func (idx *Index[T]) Lookup(name string) (T, bool) {
	i, ok := idx.byName[name]
	if !ok {
		var zero T
		return zero, false
	}
	return idx.items[i], true
}

// Position returns the insertion rank of the item with the given name, or -1
// if no such item exists.
func (idx *Index[T]) Position(name string) int {
	if i, ok := idx.byName[name]; ok {
		return i
	}
	return -1
}

// Items returns the indexed items in insertion order.
//
// Important: the slice is a view on the index's internal structure and should
// only be used in read-only operations.
func (idx *Index[T]) Items() []T {
	return idx.items
}

// Len returns the number of items in the index.
func (idx *Index[T]) Len() int {
	return len(idx.items)
}

func routerName(r *Router) string { return r.ModelName }
func cableName(c *Cable) string   { return c.Name }
func nodeName(n *Node) string     { return n.Name }

// IndexRouters indexes routers by model name. The first router wins when
// several share the same name.
func IndexRouters(routers []*Router) *Index[*Router] {
	idx := NewIndex(routerName)
	for _, r := range routers {
		idx.Add(r)
	}
	return idx
}

// IndexCables indexes cables by name. The first cable wins when several share
// the same name.
func IndexCables(cables []*Cable) *Index[*Cable] {
	idx := NewIndex(cableName)
	for _, c := range cables {
		idx.Add(c)
	}
	return idx
}

// IndexNodes indexes nodes by name. The first node wins when several share the
// same name.
func IndexNodes(nodes []*Node) *Index[*Node] {
	idx := NewIndex(nodeName)
	for _, n := range nodes {
		idx.Add(n)
	}
	return idx
}
