// Package layout is a small retained element tree that hosts the wave rings and
// the scene elements they can be anchored to. Hosts feed it their final geometry
// through SetBounds and paint its children in order.
package layout

import "image/color"

// Gradient is a two-stop radial fill from the centre to the edge.
type Gradient struct {
	Center color.NRGBA
	Edge   color.NRGBA
}

// Element is a rectangle positioned in container coordinates. Scale is applied
// around the element centre.
type Element struct {
	ID     string
	X, Y   float64
	Width  float64
	Height float64
	ScaleX float64
	ScaleY float64
	Fill   Gradient
	Round  bool
}

// Center returns the unscaled centre point.
func (e *Element) Center() (float64, float64) {
	return e.X + e.Width/2, e.Y + e.Height/2
}

// Bounds returns the scaled rectangle as x, y, width, height.
func (e *Element) Bounds() (float64, float64, float64, float64) {
	cx, cy := e.Center()
	w := e.Width * e.ScaleX
	h := e.Height * e.ScaleY
	return cx - w/2, cy - h/2, w, h
}

// Container owns an ordered list of children. Index 0 is painted first.
type Container struct {
	width, height float64
	laidOut       bool

	children  []*Element
	listeners map[int]func()
	nextID    int
}

func NewContainer() *Container {
	return &Container{listeners: map[int]func(){}}
}

// SetBounds records the final geometry. The first call marks the container
// laid out and runs every pending one-shot listener.
func (c *Container) SetBounds(width, height float64) {
	c.width, c.height = width, height
	if c.laidOut {
		return
	}
	c.laidOut = true

	pending := c.listeners
	c.listeners = map[int]func(){}
	for id := 0; id < c.nextID; id++ {
		if fn, ok := pending[id]; ok {
			fn()
		}
	}
}

func (c *Container) IsLaidOut() bool { return c.laidOut }

func (c *Container) Size() (float64, float64) { return c.width, c.height }

// OnLaidOut runs fn once the container has been laid out, immediately if that
// already happened. The returned func cancels a listener that has not run yet.
func (c *Container) OnLaidOut(fn func()) (cancel func()) {
	if c.laidOut {
		fn()
		return func() {}
	}
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	return func() { delete(c.listeners, id) }
}

// Add appends el on top of the existing children.
func (c *Container) Add(el *Element) {
	c.children = append(c.children, el)
}

// AddAt inserts el at index, clamped to the child range.
func (c *Container) AddAt(index int, el *Element) {
	if index < 0 {
		index = 0
	}
	if index >= len(c.children) {
		c.children = append(c.children, el)
		return
	}
	c.children = append(c.children, nil)
	copy(c.children[index+1:], c.children[index:])
	c.children[index] = el
}

// Remove detaches el and reports whether it was a child.
func (c *Container) Remove(el *Element) bool {
	for i, child := range c.children {
		if child == el {
			c.children = append(c.children[:i], c.children[i+1:]...)
			return true
		}
	}
	return false
}

// Children returns a copy of the child list in paint order.
func (c *Container) Children() []*Element {
	out := make([]*Element, len(c.children))
	copy(out, c.children)
	return out
}

func (c *Container) Len() int { return len(c.children) }

// FindByID returns the first child with the given non-empty id.
func (c *Container) FindByID(id string) (*Element, bool) {
	if id == "" {
		return nil, false
	}
	for _, child := range c.children {
		if child.ID == id {
			return child, true
		}
	}
	return nil, false
}
