package delta

import (
	"encoding/binary"

	"github.com/nwidger/parquetenc/encoding"
	"github.com/nwidger/parquetenc/format"
)

// ByteArrayDecoder implements encoding.Decoder for DELTA_BYTE_ARRAY.
//
// Every decoded value is reconstructed from a prefix copied out of the
// previously decoded string and a suffix read from the page, so the result
// cannot be a zero-copy view into the page buffer: decoded ByteArray values
// are always Owned.
type ByteArrayDecoder struct {
	encoding.Unsupported
	prefixLengths *BinaryPackedDecoder
	suffixes      *LengthByteArrayDecoder
	previous      []byte
	valuesLeft    int
}

// NewByteArrayDecoder returns a DELTA_BYTE_ARRAY decoder with no page
// installed.
func NewByteArrayDecoder() *ByteArrayDecoder {
	prefixLengths, _ := NewBinaryPackedDecoder(format.Int32)
	return &ByteArrayDecoder{
		prefixLengths: prefixLengths,
		suffixes:      NewLengthByteArrayDecoder(),
	}
}

func (d *ByteArrayDecoder) Type() format.Type { return format.ByteArray }

func (d *ByteArrayDecoder) Encoding() format.Encoding { return format.DeltaByteArray }

func (d *ByteArrayDecoder) ValuesLeft() int { return d.valuesLeft }

func (d *ByteArrayDecoder) SetData(numValues int, data []byte) error {
	if numValues < 0 {
		return encoding.Error(format.DeltaByteArray, encoding.ErrInvalidArgument)
	}
	d.previous = d.previous[:0]
	if numValues == 0 {
		d.valuesLeft = 0
		return nil
	}
	if len(data) < 4 {
		return encoding.Error(format.DeltaByteArray, encoding.ErrEndOfData)
	}
	prefixRegionBytes := int(binary.LittleEndian.Uint32(data))
	if len(data)-4 < prefixRegionBytes {
		return encoding.Error(format.DeltaByteArray, encoding.ErrEndOfData)
	}
	if err := d.prefixLengths.SetData(numValues, data[4:4+prefixRegionBytes]); err != nil {
		return err
	}
	if err := d.suffixes.SetData(numValues, data[4+prefixRegionBytes:]); err != nil {
		return err
	}
	d.valuesLeft = numValues
	return nil
}

func (d *ByteArrayDecoder) GetByteArray(out []encoding.ByteArray) (int, error) {
	n := len(out)
	if n > d.valuesLeft {
		n = d.valuesLeft
	}

	var prefixLen [1]int32
	var suffix [1]encoding.ByteArray
	for i := 0; i < n; i++ {
		if _, err := d.prefixLengths.GetInt32(prefixLen[:]); err != nil {
			return i, err
		}
		if _, err := d.suffixes.GetByteArray(suffix[:]); err != nil {
			return i, err
		}

		pl := int(prefixLen[0])
		if pl < 0 || pl > len(d.previous) {
			return i, encoding.Error(format.DeltaByteArray, encoding.ErrInvalidArgument)
		}

		value := make([]byte, pl+len(suffix[0].Bytes))
		copy(value, d.previous[:pl])
		copy(value[pl:], suffix[0].Bytes)

		out[i] = encoding.ByteArray{Bytes: value, Owned: true}
		d.previous = value
	}
	d.valuesLeft -= n
	return n, nil
}
