package delta

import (
	"testing"

	"github.com/nwidger/parquetenc/encoding"
)

func TestLengthByteArrayScenario(t *testing.T) {
	strings := []string{"Hello", "World", "Foobar", "ABCDEF"}

	e := NewLengthByteArrayEncoder()
	values := make([]encoding.ByteArray, len(strings))
	for i, s := range strings {
		values[i] = encoding.ByteArray{Bytes: []byte(s)}
	}
	if _, err := e.AddByteArray(values); err != nil {
		t.Fatal(err)
	}
	page, err := e.Encode()
	if err != nil {
		t.Fatal(err)
	}

	d := NewLengthByteArrayDecoder()
	if err := d.SetData(e.NumValues(), page); err != nil {
		t.Fatal(err)
	}
	out := make([]encoding.ByteArray, len(strings))
	n, err := d.GetByteArray(out)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(strings) {
		t.Fatalf("GetByteArray() = %d, want %d", n, len(strings))
	}
	for i, s := range strings {
		if string(out[i].Bytes) != s {
			t.Errorf("value %d: got %q, want %q", i, out[i].Bytes, s)
		}
		if out[i].Owned {
			t.Errorf("value %d: expected borrowed byte array, got owned", i)
		}
	}
}

func TestLengthByteArrayRoundTrip(t *testing.T) {
	strings := [][]byte{
		[]byte(""), []byte("x"), []byte("hello, world"),
		[]byte("a longer string with more than sixteen bytes in it"),
	}

	e := NewLengthByteArrayEncoder()
	values := make([]encoding.ByteArray, len(strings))
	for i, s := range strings {
		values[i] = encoding.ByteArray{Bytes: s}
	}
	e.AddByteArray(values)
	page, err := e.Encode()
	if err != nil {
		t.Fatal(err)
	}

	d := NewLengthByteArrayDecoder()
	if err := d.SetData(e.NumValues(), page); err != nil {
		t.Fatal(err)
	}
	out := make([]encoding.ByteArray, len(strings))
	n, err := d.GetByteArray(out)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(strings) {
		t.Fatalf("GetByteArray() = %d, want %d", n, len(strings))
	}
	for i, s := range strings {
		if string(out[i].Bytes) != string(s) {
			t.Errorf("value %d: got %q, want %q", i, out[i].Bytes, s)
		}
	}
}

func TestLengthByteArrayResetClearsState(t *testing.T) {
	e := NewLengthByteArrayEncoder()
	e.AddByteArray([]encoding.ByteArray{{Bytes: []byte("a")}, {Bytes: []byte("b")}})
	e.Reset()
	if e.NumValues() != 0 {
		t.Fatalf("NumValues() after Reset = %d, want 0", e.NumValues())
	}
	page, err := e.Encode()
	if err != nil {
		t.Fatal(err)
	}
	if len(page) != 4 {
		t.Fatalf("len(page) after Reset = %d, want 4 (empty length-region header)", len(page))
	}
}
