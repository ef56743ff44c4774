package delta

import (
	"encoding/binary"

	"github.com/nwidger/parquetenc/encoding"
	"github.com/nwidger/parquetenc/format"
)

// ByteArrayEncoder implements encoding.Encoder for DELTA_BYTE_ARRAY: each
// string is split into the length of its shared prefix with the previous
// string, written through an inner DELTA_BINARY_PACKED INT32 encoder, and a
// suffix, written through an inner DELTA_LENGTH_BYTE_ARRAY encoder.
//
// Every added value passes through AddByteArray exactly once and increments
// numValues exactly once; there is no separate bulk counter to fall out of
// sync with it.
type ByteArrayEncoder struct {
	encoding.Unsupported
	prefixLengths *BinaryPackedEncoder
	suffixes      *LengthByteArrayEncoder
	previous      []byte
	numValues     int
}

// NewByteArrayEncoder returns an empty DELTA_BYTE_ARRAY encoder.
func NewByteArrayEncoder() *ByteArrayEncoder {
	prefixLengths, _ := NewBinaryPackedEncoder(format.Int32)
	return &ByteArrayEncoder{
		prefixLengths: prefixLengths,
		suffixes:      NewLengthByteArrayEncoder(),
	}
}

func (e *ByteArrayEncoder) Type() format.Type { return format.ByteArray }

func (e *ByteArrayEncoder) Encoding() format.Encoding { return format.DeltaByteArray }

func (e *ByteArrayEncoder) NumValues() int { return e.numValues }

func (e *ByteArrayEncoder) Reset() {
	e.prefixLengths.Reset()
	e.suffixes.Reset()
	e.previous = e.previous[:0]
	e.numValues = 0
}

func commonPrefixLen(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

func (e *ByteArrayEncoder) AddByteArray(values []encoding.ByteArray) (int, error) {
	for _, v := range values {
		prefixLen := commonPrefixLen(e.previous, v.Bytes)
		if _, err := e.prefixLengths.AddInt32([]int32{int32(prefixLen)}); err != nil {
			return 0, err
		}
		if _, err := e.suffixes.AddByteArray([]encoding.ByteArray{{Bytes: v.Bytes[prefixLen:]}}); err != nil {
			return 0, err
		}
		e.previous = append(e.previous[:0], v.Bytes...)
		e.numValues++
	}
	return len(values), nil
}

func (e *ByteArrayEncoder) Encode() ([]byte, error) {
	prefixPage, err := e.prefixLengths.Encode()
	if err != nil {
		return nil, err
	}
	suffixPage, err := e.suffixes.Encode()
	if err != nil {
		return nil, err
	}

	out := make([]byte, 4, 4+len(prefixPage)+len(suffixPage))
	binary.LittleEndian.PutUint32(out, uint32(len(prefixPage)))
	out = append(out, prefixPage...)
	out = append(out, suffixPage...)
	return out, nil
}
