package layout

import "testing"

func TestOnLaidOutFiresOnce(t *testing.T) {
	c := NewContainer()
	calls := 0
	c.OnLaidOut(func() { calls++ })

	if c.IsLaidOut() {
		t.Fatal("new container reports laid out")
	}
	c.SetBounds(200, 100)
	c.SetBounds(300, 150)

	if calls != 1 {
		t.Errorf("listener ran %d times, want 1", calls)
	}
	if w, h := c.Size(); w != 300 || h != 150 {
		t.Errorf("Size() = %v,%v, want 300,150", w, h)
	}
}

func TestOnLaidOutImmediateAfterLayout(t *testing.T) {
	c := NewContainer()
	c.SetBounds(10, 10)
	ran := false
	c.OnLaidOut(func() { ran = true })
	if !ran {
		t.Error("listener registered after layout did not run immediately")
	}
}

func TestOnLaidOutCancel(t *testing.T) {
	c := NewContainer()
	ran := false
	cancel := c.OnLaidOut(func() { ran = true })
	cancel()
	c.SetBounds(10, 10)
	if ran {
		t.Error("cancelled listener ran")
	}
}

func TestListenersRunInRegistrationOrder(t *testing.T) {
	c := NewContainer()
	var order []int
	for i := 0; i < 5; i++ {
		i := i
		c.OnLaidOut(func() { order = append(order, i) })
	}
	c.SetBounds(1, 1)
	for i, v := range order {
		if v != i {
			t.Fatalf("order = %v", order)
		}
	}
}

func TestChildrenOrderingAndLookup(t *testing.T) {
	c := NewContainer()
	anchor := &Element{ID: "mic", X: 10, Y: 20, Width: 40, Height: 20}
	c.Add(anchor)

	ring1 := &Element{}
	ring2 := &Element{}
	c.AddAt(0, ring1)
	c.AddAt(0, ring2)

	children := c.Children()
	if len(children) != 3 || children[0] != ring2 || children[1] != ring1 || children[2] != anchor {
		t.Fatalf("unexpected child order: %v", children)
	}

	got, ok := c.FindByID("mic")
	if !ok || got != anchor {
		t.Fatal("FindByID did not return the anchor")
	}
	if _, ok := c.FindByID(""); ok {
		t.Error("empty id matched a child")
	}

	if !c.Remove(ring1) || c.Remove(ring1) {
		t.Error("Remove should succeed once")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestElementBoundsScaleAroundCenter(t *testing.T) {
	e := &Element{X: 95, Y: 95, Width: 10, Height: 10, ScaleX: 20, ScaleY: 20}
	x, y, w, h := e.Bounds()
	if x != 0 || y != 0 || w != 200 || h != 200 {
		t.Errorf("Bounds() = %v,%v,%v,%v, want 0,0,200,200", x, y, w, h)
	}
}
