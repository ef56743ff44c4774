package rle

import (
	"testing"

	"github.com/nwidger/parquetenc/internal/quick"
)

func roundTrip(t *testing.T, values []bool) {
	e := NewEncoder()
	if _, err := e.AddBoolean(values); err != nil {
		t.Fatalf("AddBoolean: %v", err)
	}
	page, err := e.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	d := NewDecoder()
	if err := d.SetData(e.NumValues(), page); err != nil {
		t.Fatalf("SetData: %v", err)
	}
	if d.ValuesLeft() != len(values) {
		t.Fatalf("ValuesLeft() = %d, want %d", d.ValuesLeft(), len(values))
	}

	out := make([]bool, len(values))
	n, err := d.GetBoolean(out)
	if err != nil {
		t.Fatalf("GetBoolean: %v", err)
	}
	if n != len(values) {
		t.Fatalf("GetBoolean() = %d, want %d", n, len(values))
	}
	for i := range values {
		if out[i] != values[i] {
			t.Fatalf("value %d: got %v, want %v", i, out[i], values[i])
		}
	}
}

func TestRoundTrip(t *testing.T) {
	err := quick.Check(func(values []bool) bool {
		roundTrip(t, values)
		return !t.Failed()
	})
	if err != nil {
		t.Error(err)
	}
}

func TestConstantRunCollapses(t *testing.T) {
	values := make([]bool, 100000)
	for i := range values {
		values[i] = true
	}
	e := NewEncoder()
	e.AddBoolean(values)
	page, err := e.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	// a single repeated-run header plus one value byte: the header varint
	// for 100000<<1 needs 3 bytes (100000<<1 = 200000 < 2^21).
	if len(page) != 4 {
		t.Fatalf("len(page) = %d, want 4", len(page))
	}
	roundTrip(t, values)
}

func TestAlternatingPattern(t *testing.T) {
	values := make([]bool, 100000)
	for i := range values {
		values[i] = i%2 == 0
	}
	roundTrip(t, values)
}

func TestResetClearsState(t *testing.T) {
	e := NewEncoder()
	e.AddBoolean([]bool{true, false, true})
	e.Reset()
	if e.NumValues() != 0 {
		t.Fatalf("NumValues() after Reset = %d, want 0", e.NumValues())
	}
	page, err := e.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(page) != 0 {
		t.Fatalf("len(page) after Reset = %d, want 0", len(page))
	}
}

func TestEncodeIsIdempotent(t *testing.T) {
	e := NewEncoder()
	e.AddBoolean([]bool{true, true, false, true, false, false, false, false, false, false})
	a, err := e.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	b, err := e.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if string(a) != string(b) {
		t.Fatalf("Encode() not idempotent: %x != %x", a, b)
	}
}
