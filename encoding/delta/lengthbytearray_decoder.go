package delta

import (
	"encoding/binary"

	"github.com/nwidger/parquetenc/encoding"
	"github.com/nwidger/parquetenc/format"
)

// LengthByteArrayDecoder implements encoding.Decoder for
// DELTA_LENGTH_BYTE_ARRAY.
type LengthByteArrayDecoder struct {
	encoding.Unsupported
	lengths    *BinaryPackedDecoder
	data       []byte
	pos        int
	valuesLeft int
}

// NewLengthByteArrayDecoder returns a DELTA_LENGTH_BYTE_ARRAY decoder with
// no page installed.
func NewLengthByteArrayDecoder() *LengthByteArrayDecoder {
	lengths, _ := NewBinaryPackedDecoder(format.Int32)
	return &LengthByteArrayDecoder{lengths: lengths}
}

func (d *LengthByteArrayDecoder) Type() format.Type { return format.ByteArray }

func (d *LengthByteArrayDecoder) Encoding() format.Encoding { return format.DeltaLengthByteArray }

func (d *LengthByteArrayDecoder) ValuesLeft() int { return d.valuesLeft }

func (d *LengthByteArrayDecoder) SetData(numValues int, data []byte) error {
	if numValues < 0 {
		return encoding.Error(format.DeltaLengthByteArray, encoding.ErrInvalidArgument)
	}
	if numValues == 0 {
		d.valuesLeft = 0
		d.data = nil
		d.pos = 0
		return nil
	}
	if len(data) < 4 {
		return encoding.Error(format.DeltaLengthByteArray, encoding.ErrEndOfData)
	}
	prefixBytes := int(binary.LittleEndian.Uint32(data))
	if len(data)-4 < prefixBytes {
		return encoding.Error(format.DeltaLengthByteArray, encoding.ErrEndOfData)
	}
	if err := d.lengths.SetData(numValues, data[4:4+prefixBytes]); err != nil {
		return err
	}
	d.data = data[4+prefixBytes:]
	d.pos = 0
	d.valuesLeft = numValues
	return nil
}

func (d *LengthByteArrayDecoder) GetByteArray(out []encoding.ByteArray) (int, error) {
	n := len(out)
	if n > d.valuesLeft {
		n = d.valuesLeft
	}
	if n == 0 {
		return 0, nil
	}

	lengths := make([]int32, n)
	got, err := d.lengths.GetInt32(lengths)
	if err != nil {
		return 0, err
	}

	for i := 0; i < got; i++ {
		length := int(lengths[i])
		if length < 0 || d.pos+length > len(d.data) {
			return i, encoding.Error(format.DeltaLengthByteArray, encoding.ErrEndOfData)
		}
		out[i] = encoding.ByteArray{Bytes: d.data[d.pos : d.pos+length], Owned: false}
		d.pos += length
	}
	d.valuesLeft -= got
	return got, nil
}
