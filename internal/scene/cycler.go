package scene

// Cycler steps through a fixed list of presets, wrapping at the end.
type Cycler[T any] struct {
	items []T
	index int
}

// NewCycler starts at index start (taken modulo len(items)).
// items must not be empty.
func NewCycler[T any](items []T, start int) *Cycler[T] {
	n := len(items)
	return &Cycler[T]{items: items, index: ((start % n) + n) % n}
}

func (c *Cycler[T]) Current() T { return c.items[c.index] }

func (c *Cycler[T]) Index() int { return c.index }

// Next advances to the following preset and returns it.
func (c *Cycler[T]) Next() T {
	c.index = (c.index + 1) % len(c.items)
	return c.items[c.index]
}
