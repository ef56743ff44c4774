package delta

import (
	"testing"

	"github.com/nwidger/parquetenc/format"
	"github.com/nwidger/parquetenc/internal/quick"
)

func TestBinaryPackedInt64RoundTrip(t *testing.T) {
	err := quick.Check(func(values []int64) bool {
		e, err := NewBinaryPackedEncoder(format.Int64)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := e.AddInt64(values); err != nil {
			t.Fatal(err)
		}
		page, err := e.Encode()
		if err != nil {
			t.Error(err)
			return false
		}

		d, err := NewBinaryPackedDecoder(format.Int64)
		if err != nil {
			t.Fatal(err)
		}
		if err := d.SetData(e.NumValues(), page); err != nil {
			t.Error(err)
			return false
		}
		out := make([]int64, len(values))
		n, err := d.GetInt64(out)
		if err != nil {
			t.Error(err)
			return false
		}
		if n != len(values) {
			t.Errorf("GetInt64() = %d, want %d", n, len(values))
			return false
		}
		for i := range values {
			if out[i] != values[i] {
				t.Errorf("value %d: got %d, want %d", i, out[i], values[i])
				return false
			}
		}
		return true
	})
	if err != nil {
		t.Error(err)
	}
}

func TestBinaryPackedDecreasingSequence(t *testing.T) {
	values := []int64{7, 5, 3, 1, 2, 3, 4, 5}

	e, _ := NewBinaryPackedEncoder(format.Int64)
	e.AddInt64(values)
	page, err := e.Encode()
	if err != nil {
		t.Fatal(err)
	}

	d, _ := NewBinaryPackedDecoder(format.Int64)
	if err := d.SetData(e.NumValues(), page); err != nil {
		t.Fatal(err)
	}
	out := make([]int64, len(values))
	n, err := d.GetInt64(out)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(values) {
		t.Fatalf("GetInt64() = %d, want %d", n, len(values))
	}
	for i := range values {
		if out[i] != values[i] {
			t.Fatalf("value %d: got %d, want %d", i, out[i], values[i])
		}
	}
}

func TestBinaryPackedAllZerosHasNoPayloadBits(t *testing.T) {
	values := make([]int64, 100)

	e, _ := NewBinaryPackedEncoder(format.Int64)
	e.AddInt64(values)
	page, err := e.Encode()
	if err != nil {
		t.Fatal(err)
	}

	// header only: block_size VLQ (4*32 = 128, 2 bytes), num_mini_blocks
	// and values_minus_one VLQs (1 byte each), first_value and min_delta
	// zig-zag VLQs (both zero, 1 byte each), plus one width byte per
	// mini-block, all zero, and zero payload bits.
	numMiniBlocks := (len(values) - 1 + miniBlockSize - 1) / miniBlockSize
	want := 6 + numMiniBlocks
	if len(page) != want {
		t.Fatalf("len(page) = %d, want %d", len(page), want)
	}

	d, _ := NewBinaryPackedDecoder(format.Int64)
	if err := d.SetData(e.NumValues(), page); err != nil {
		t.Fatal(err)
	}
	out := make([]int64, len(values))
	n, err := d.GetInt64(out)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(values) {
		t.Fatalf("GetInt64() = %d, want %d", n, len(values))
	}
	for i, v := range out {
		if v != 0 {
			t.Fatalf("value %d: got %d, want 0", i, v)
		}
	}
}

func TestBinaryPackedRejectsNonIntegerTypes(t *testing.T) {
	if _, err := NewBinaryPackedEncoder(format.Float); err == nil {
		t.Fatal("expected error constructing a DELTA_BINARY_PACKED encoder for FLOAT")
	}
	if _, err := NewBinaryPackedDecoder(format.ByteArray); err == nil {
		t.Fatal("expected error constructing a DELTA_BINARY_PACKED decoder for BYTE_ARRAY")
	}
}

func TestBinaryPackedResetClearsState(t *testing.T) {
	e, _ := NewBinaryPackedEncoder(format.Int32)
	e.AddInt32([]int32{1, 2, 3})
	e.Reset()
	if e.NumValues() != 0 {
		t.Fatalf("NumValues() after Reset = %d, want 0", e.NumValues())
	}
	page, err := e.Encode()
	if err != nil {
		t.Fatal(err)
	}
	if page != nil {
		t.Fatalf("Encode() after Reset = %x, want nil", page)
	}
}
