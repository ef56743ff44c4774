package plain

import (
	"encoding/binary"

	"github.com/nwidger/parquetenc/encoding"
	"github.com/nwidger/parquetenc/format"
	"github.com/nwidger/parquetenc/internal/bits"
)

// Encoder implements encoding.Encoder for INT32, INT64, FLOAT, DOUBLE, and
// BYTE_ARRAY using the PLAIN layout.
type Encoder struct {
	encoding.Unsupported
	typ       format.Type
	buf       []byte
	numValues int
}

// NewEncoder returns a PLAIN encoder for typ, or an error if typ is not one
// of INT32, INT64, FLOAT, DOUBLE, or BYTE_ARRAY.
func NewEncoder(typ format.Type) (*Encoder, error) {
	if err := checkType(typ); err != nil {
		return nil, err
	}
	return &Encoder{typ: typ}, nil
}

func (e *Encoder) Type() format.Type { return e.typ }

func (e *Encoder) Encoding() format.Encoding { return format.Plain }

func (e *Encoder) NumValues() int { return e.numValues }

func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
	e.numValues = 0
}

func (e *Encoder) Encode() ([]byte, error) { return e.buf, nil }

func (e *Encoder) AddInt32(values []int32) (int, error) {
	if e.typ != format.Int32 {
		return 0, encoding.Error(format.Plain, encoding.ErrTypeMismatch)
	}
	e.buf = append(e.buf, bits.Int32ToBytes(values)...)
	e.numValues += len(values)
	return len(values), nil
}

func (e *Encoder) AddInt64(values []int64) (int, error) {
	if e.typ != format.Int64 {
		return 0, encoding.Error(format.Plain, encoding.ErrTypeMismatch)
	}
	e.buf = append(e.buf, bits.Int64ToBytes(values)...)
	e.numValues += len(values)
	return len(values), nil
}

func (e *Encoder) AddFloat(values []float32) (int, error) {
	if e.typ != format.Float {
		return 0, encoding.Error(format.Plain, encoding.ErrTypeMismatch)
	}
	e.buf = append(e.buf, bits.Float32ToBytes(values)...)
	e.numValues += len(values)
	return len(values), nil
}

func (e *Encoder) AddDouble(values []float64) (int, error) {
	if e.typ != format.Double {
		return 0, encoding.Error(format.Plain, encoding.ErrTypeMismatch)
	}
	e.buf = append(e.buf, bits.Float64ToBytes(values)...)
	e.numValues += len(values)
	return len(values), nil
}

func (e *Encoder) AddByteArray(values []encoding.ByteArray) (int, error) {
	if e.typ != format.ByteArray {
		return 0, encoding.Error(format.Plain, encoding.ErrTypeMismatch)
	}
	var lengthPrefix [4]byte
	for _, v := range values {
		binary.LittleEndian.PutUint32(lengthPrefix[:], uint32(len(v.Bytes)))
		e.buf = append(e.buf, lengthPrefix[:]...)
		e.buf = append(e.buf, v.Bytes...)
	}
	e.numValues += len(values)
	return len(values), nil
}
