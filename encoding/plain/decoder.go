package plain

import (
	"encoding/binary"
	"math"

	"github.com/nwidger/parquetenc/encoding"
	"github.com/nwidger/parquetenc/format"
	"github.com/nwidger/parquetenc/internal/bits"
)

// Decoder implements encoding.Decoder for INT32, INT64, FLOAT, DOUBLE, and
// BYTE_ARRAY using the PLAIN layout.
type Decoder struct {
	encoding.Unsupported
	typ        format.Type
	data       []byte
	pos        int
	valuesLeft int
}

// NewDecoder returns a PLAIN decoder for typ, or an error if typ is not one
// of INT32, INT64, FLOAT, DOUBLE, or BYTE_ARRAY.
func NewDecoder(typ format.Type) (*Decoder, error) {
	if err := checkType(typ); err != nil {
		return nil, err
	}
	return &Decoder{typ: typ}, nil
}

func (d *Decoder) Type() format.Type { return d.typ }

func (d *Decoder) Encoding() format.Encoding { return format.Plain }

func (d *Decoder) ValuesLeft() int { return d.valuesLeft }

func (d *Decoder) SetData(numValues int, data []byte) error {
	if numValues < 0 {
		return encoding.Error(format.Plain, encoding.ErrInvalidArgument)
	}
	d.data = data
	d.pos = 0
	d.valuesLeft = numValues
	return nil
}

func (d *Decoder) decodeFixed(n, elemSize int) ([]byte, int, error) {
	if n > d.valuesLeft {
		n = d.valuesLeft
	}
	need := n * elemSize
	if len(d.data)-d.pos < need {
		return nil, 0, encoding.Error(format.Plain, encoding.ErrEndOfData)
	}
	src := d.data[d.pos : d.pos+need]
	d.pos += need
	d.valuesLeft -= n
	return src, n, nil
}

func (d *Decoder) GetInt32(out []int32) (int, error) {
	if d.typ != format.Int32 {
		return 0, encoding.Error(format.Plain, encoding.ErrTypeMismatch)
	}
	src, n, err := d.decodeFixed(len(out), 4)
	if err != nil {
		return 0, err
	}
	copy(out[:n], bits.BytesToInt32(src))
	return n, nil
}

func (d *Decoder) GetInt64(out []int64) (int, error) {
	if d.typ != format.Int64 {
		return 0, encoding.Error(format.Plain, encoding.ErrTypeMismatch)
	}
	src, n, err := d.decodeFixed(len(out), 8)
	if err != nil {
		return 0, err
	}
	copy(out[:n], bits.BytesToInt64(src))
	return n, nil
}

func (d *Decoder) GetFloat(out []float32) (int, error) {
	if d.typ != format.Float {
		return 0, encoding.Error(format.Plain, encoding.ErrTypeMismatch)
	}
	src, n, err := d.decodeFixed(len(out), 4)
	if err != nil {
		return 0, err
	}
	for i := 0; i < n; i++ {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(src[i*4:]))
	}
	return n, nil
}

func (d *Decoder) GetDouble(out []float64) (int, error) {
	if d.typ != format.Double {
		return 0, encoding.Error(format.Plain, encoding.ErrTypeMismatch)
	}
	src, n, err := d.decodeFixed(len(out), 8)
	if err != nil {
		return 0, err
	}
	for i := 0; i < n; i++ {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(src[i*8:]))
	}
	return n, nil
}

// GetByteArray decodes up to len(out) values, returning borrowed views into
// the page buffer installed by SetData. Passing an out slice shorter than
// ValuesLeft is not an error; it simply decodes fewer values.
func (d *Decoder) GetByteArray(out []encoding.ByteArray) (int, error) {
	if d.typ != format.ByteArray {
		return 0, encoding.Error(format.Plain, encoding.ErrTypeMismatch)
	}
	n := len(out)
	if n > d.valuesLeft {
		n = d.valuesLeft
	}
	for i := 0; i < n; i++ {
		if len(d.data)-d.pos < 4 {
			return i, encoding.Error(format.Plain, encoding.ErrEndOfData)
		}
		length := int(binary.LittleEndian.Uint32(d.data[d.pos:]))
		d.pos += 4
		if len(d.data)-d.pos < length {
			return i, encoding.Error(format.Plain, encoding.ErrEndOfData)
		}
		out[i] = encoding.ByteArray{Bytes: d.data[d.pos : d.pos+length], Owned: false}
		d.pos += length
	}
	d.valuesLeft -= n
	return n, nil
}
