package cell

import "testing"

func TestPutTake(t *testing.T) {
	var c Cell[string]

	c.Put("hello")
	if got := c.Take(); got != "hello" {
		t.Fatalf("Take() = %q, want %q", got, "hello")
	}

	// Take resets the cell to the zero value.
	if got := c.Take(); got != "" {
		t.Fatalf("Take() after Take() = %q, want empty", got)
	}
}

func TestPutReplaces(t *testing.T) {
	var c Cell[int]

	c.Put(1)
	c.Put(2)
	if got := c.Take(); got != 2 {
		t.Fatalf("Take() = %d, want 2", got)
	}
}

func TestTakeClearsReference(t *testing.T) {
	var c Cell[*int]

	n := 42
	c.Put(&n)
	if got := c.Take(); got == nil || *got != 42 {
		t.Fatalf("Take() = %v, want pointer to 42", got)
	}
	if got := c.Take(); got != nil {
		t.Fatal("cell still holds a reference after Take()")
	}
}

func TestDrop(t *testing.T) {
	var c Cell[*int]

	n := 7
	c.Put(&n)
	c.Drop()
	if got := c.Take(); got != nil {
		t.Fatal("cell still holds a reference after Drop()")
	}
}
