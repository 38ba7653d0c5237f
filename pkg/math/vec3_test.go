package math

import "testing"

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(-4, 0.5, 2)

	if got, want := a.Add(b), NewVec3(-3, 2.5, 5); got != want {
		t.Errorf("Add: expected %v, got %v", want, got)
	}
	if got, want := a.Subtract(b), NewVec3(5, 1.5, 1); got != want {
		t.Errorf("Subtract: expected %v, got %v", want, got)
	}
	if got, want := b.Multiply(-2), NewVec3(8, -1, -4); got != want {
		t.Errorf("Multiply: expected %v, got %v", want, got)
	}
	if got := NewVec3(3, 4, 0).Length(); got != 5 {
		t.Errorf("Length: expected 5, got %f", got)
	}
}
