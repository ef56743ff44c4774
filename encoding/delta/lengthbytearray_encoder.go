package delta

import (
	"encoding/binary"

	"github.com/nwidger/parquetenc/encoding"
	"github.com/nwidger/parquetenc/format"
)

// LengthByteArrayEncoder implements encoding.Encoder for
// DELTA_LENGTH_BYTE_ARRAY: an inner DELTA_BINARY_PACKED INT32 page of
// string lengths followed by the raw, unseparated string bytes.
type LengthByteArrayEncoder struct {
	encoding.Unsupported
	lengths *BinaryPackedEncoder
	data    []byte
}

// NewLengthByteArrayEncoder returns an empty DELTA_LENGTH_BYTE_ARRAY
// encoder.
func NewLengthByteArrayEncoder() *LengthByteArrayEncoder {
	lengths, _ := NewBinaryPackedEncoder(format.Int32)
	return &LengthByteArrayEncoder{lengths: lengths}
}

func (e *LengthByteArrayEncoder) Type() format.Type { return format.ByteArray }

func (e *LengthByteArrayEncoder) Encoding() format.Encoding { return format.DeltaLengthByteArray }

func (e *LengthByteArrayEncoder) NumValues() int { return e.lengths.NumValues() }

func (e *LengthByteArrayEncoder) Reset() {
	e.lengths.Reset()
	e.data = e.data[:0]
}

func (e *LengthByteArrayEncoder) AddByteArray(values []encoding.ByteArray) (int, error) {
	lengths := make([]int32, len(values))
	for i, v := range values {
		lengths[i] = int32(len(v.Bytes))
		e.data = append(e.data, v.Bytes...)
	}
	return e.lengths.AddInt32(lengths)
}

func (e *LengthByteArrayEncoder) Encode() ([]byte, error) {
	lengthsPage, err := e.lengths.Encode()
	if err != nil {
		return nil, err
	}

	out := make([]byte, 4, 4+len(lengthsPage)+len(e.data))
	binary.LittleEndian.PutUint32(out, uint32(len(lengthsPage)))
	out = append(out, lengthsPage...)
	out = append(out, e.data...)
	return out, nil
}
