package memory

// collection хранит сущности в порядке добавления с индексом по ID.
// Синхронизацию обеспечивает репозиторий-владелец.
type collection[T any] struct {
	items []T
	index map[string]int
	id    func(T) string
}

func newCollection[T any](id func(T) string) *collection[T] {
	return &collection[T]{index: make(map[string]int), id: id}
}

func (c *collection[T]) get(id string) (T, bool) {
	pos, ok := c.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return c.items[pos], true
}

// add возвращает false, если ID уже занят.
func (c *collection[T]) add(item T) bool {
	id := c.id(item)
	if _, exists := c.index[id]; exists {
		return false
	}
	c.index[id] = len(c.items)
	c.items = append(c.items, item)
	return true
}

func (c *collection[T]) replace(item T) bool {
	pos, ok := c.index[c.id(item)]
	if !ok {
		return false
	}
	c.items[pos] = item
	return true
}

func (c *collection[T]) remove(id string) bool {
	pos, ok := c.index[id]
	if !ok {
		return false
	}
	c.items = append(c.items[:pos], c.items[pos+1:]...)
	delete(c.index, id)
	for i := pos; i < len(c.items); i++ {
		c.index[c.id(c.items[i])] = i
	}
	return true
}

func (c *collection[T]) list(clone func(T) T) []T {
	result := make([]T, len(c.items))
	for i, item := range c.items {
		result[i] = clone(item)
	}
	return result
}

func identity[T any](v T) T { return v }
