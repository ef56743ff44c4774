package delta

import (
	"testing"

	"github.com/nwidger/parquetenc/encoding"
)

func TestByteArrayScenario(t *testing.T) {
	strings := []string{"myxa", "myxophyta", "myxopod", "nab", "nabbed"}
	wantPrefixLens := []int32{0, 3, 5, 0, 3}
	wantSuffixes := []string{"myxa", "ophyta", "od", "nab", "bed"}

	for i, s := range strings {
		var prev string
		if i > 0 {
			prev = strings[i-1]
		}
		pl := int(wantPrefixLens[i])
		if got := commonPrefixLen([]byte(prev), []byte(s)); got != pl {
			t.Errorf("commonPrefixLen(%q, %q) = %d, want %d", prev, s, got, pl)
		}
		if suffix := s[pl:]; suffix != wantSuffixes[i] {
			t.Errorf("value %d: suffix %q, want %q", i, suffix, wantSuffixes[i])
		}
	}

	e := NewByteArrayEncoder()
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

	d := NewByteArrayDecoder()
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
		if !out[i].Owned {
			t.Errorf("value %d: expected owned byte array, got borrowed", i)
		}
	}
}

func TestByteArrayRoundTripRandomStrings(t *testing.T) {
	strings := []string{
		"", "a", "ab", "abc", "abd", "abd", "xyz", "xy", "", "zzzzzzzzzzzzzzzzzzzz",
	}

	e := NewByteArrayEncoder()
	values := make([]encoding.ByteArray, len(strings))
	for i, s := range strings {
		values[i] = encoding.ByteArray{Bytes: []byte(s)}
	}
	e.AddByteArray(values)
	page, err := e.Encode()
	if err != nil {
		t.Fatal(err)
	}

	d := NewByteArrayDecoder()
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
	}
}

func TestByteArrayResetClearsState(t *testing.T) {
	e := NewByteArrayEncoder()
	e.AddByteArray([]encoding.ByteArray{{Bytes: []byte("a")}, {Bytes: []byte("ab")}})
	e.Reset()
	if e.NumValues() != 0 {
		t.Fatalf("NumValues() after Reset = %d, want 0", e.NumValues())
	}
}
