package date

import "testing"

func TestAppendKeepsChronologicalOrder(t *testing.T) {
	h := new(History[string])
	d1, v1 := New(2025, 07, 01), "25 Jul 1"
	d2, v2 := New(2024, 07, 01), "24 Jul 1"

	// Append two values in reverse order and check everything along the way.

	if h.Len() != 0 {
		t.Errorf("History.Len() = %v want 0", h.Len())
	}

	h.Append(d1, v1)
	if h.Len() != 1 {
		t.Errorf("Append(d1, v1).Len() = %v want 1", h.Len())
	}

	h.Append(d2, v2)
	if h.Len() != 2 {
		t.Errorf("Append(d2, v2).Len() = %v want 2", h.Len())
	}

	if h.days[0] != d2 || h.days[1] != d1 {
		t.Errorf("days = %v want [%v %v]", h.days, d2, d1)
	}
	if h.values[0] != v2 || h.values[1] != v1 {
		t.Errorf("values = %v want [%v %v]", h.values, v2, v1)
	}
}

func TestAppendOverwrites(t *testing.T) {
	h := new(History[float64])
	on := New(2025, 1, 15)
	h.Append(on, 1.0)
	h.Append(on, 2.0)

	if h.Len() != 1 {
		t.Fatalf("Len() = %v want 1", h.Len())
	}
	if v, _ := h.Get(on); v != 2.0 {
		t.Errorf("Get() = %v want 2.0 (last write wins)", v)
	}
}

func TestValueAsOf(t *testing.T) {
	h := new(History[float64])
	h.Append(New(2025, 1, 10), 100)
	h.Append(New(2025, 1, 13), 103)

	// exact hit
	if v, ok := h.ValueAsOf(New(2025, 1, 10)); !ok || v != 100 {
		t.Errorf("ValueAsOf(jan 10) = %v, %v want 100, true", v, ok)
	}
	// gap: carries the most recent prior value, no interpolation
	if v, ok := h.ValueAsOf(New(2025, 1, 12)); !ok || v != 100 {
		t.Errorf("ValueAsOf(jan 12) = %v, %v want 100, true", v, ok)
	}
	// after the last point
	if v, ok := h.ValueAsOf(New(2025, 2, 1)); !ok || v != 103 {
		t.Errorf("ValueAsOf(feb 1) = %v, %v want 103, true", v, ok)
	}
	// before the first point
	if _, ok := h.ValueAsOf(New(2025, 1, 9)); ok {
		t.Errorf("ValueAsOf(jan 9) = _, true want false")
	}
}

func TestFirstLatest(t *testing.T) {
	h := new(History[float64])
	if day, _ := h.First(); !day.IsZero() {
		t.Errorf("First() on empty history = %v want zero date", day)
	}

	h.Append(New(2025, 3, 1), 1)
	h.Append(New(2025, 1, 1), 2)

	if day, v := h.First(); day != New(2025, 1, 1) || v != 2 {
		t.Errorf("First() = %v, %v want 2025-01-01, 2", day, v)
	}
	if day, v := h.Latest(); day != New(2025, 3, 1) || v != 1 {
		t.Errorf("Latest() = %v, %v want 2025-03-01, 1", day, v)
	}
}
