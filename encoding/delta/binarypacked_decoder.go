package delta

import (
	"github.com/nwidger/parquetenc/encoding"
	"github.com/nwidger/parquetenc/encoding/bitio"
	"github.com/nwidger/parquetenc/format"
)

// BinaryPackedDecoder implements encoding.Decoder for the
// DELTA_BINARY_PACKED codec applied to INT32 and INT64.
type BinaryPackedDecoder struct {
	encoding.Unsupported
	typ        format.Type
	r          *bitio.BitReader
	valuesLeft int

	blockLoaded       bool
	firstValuePending bool
	lastValue         int64
	minDelta          int64
	widths            []byte
	widthIdx          int
	valuesPerBlock    int
	valuesLeftInBlock int
}

// NewBinaryPackedDecoder returns a DELTA_BINARY_PACKED decoder for typ,
// which must be INT32 or INT64.
func NewBinaryPackedDecoder(typ format.Type) (*BinaryPackedDecoder, error) {
	if err := checkBinaryPackedType(typ); err != nil {
		return nil, err
	}
	return &BinaryPackedDecoder{typ: typ, r: bitio.NewBitReader(nil)}, nil
}

func (d *BinaryPackedDecoder) Type() format.Type { return d.typ }

func (d *BinaryPackedDecoder) Encoding() format.Encoding { return format.DeltaBinaryPacked }

func (d *BinaryPackedDecoder) ValuesLeft() int { return d.valuesLeft }

func (d *BinaryPackedDecoder) SetData(numValues int, data []byte) error {
	if numValues < 0 {
		return encoding.Error(format.DeltaBinaryPacked, encoding.ErrInvalidArgument)
	}
	d.r.Reset(data)
	d.valuesLeft = numValues
	d.blockLoaded = false
	return nil
}

func (d *BinaryPackedDecoder) loadBlock() error {
	blockSize, ok := d.r.GetVlqInt()
	if !ok {
		return encoding.Error(format.DeltaBinaryPacked, encoding.ErrEndOfData)
	}
	numMiniBlocks, ok := d.r.GetVlqInt()
	if !ok {
		return encoding.Error(format.DeltaBinaryPacked, encoding.ErrEndOfData)
	}
	if _, ok := d.r.GetVlqInt(); !ok { // total_value_count_minus_one: informational, valuesLeft is authoritative
		return encoding.Error(format.DeltaBinaryPacked, encoding.ErrEndOfData)
	}
	firstValue, ok := d.r.GetZigZagVlqInt()
	if !ok {
		return encoding.Error(format.DeltaBinaryPacked, encoding.ErrEndOfData)
	}
	minDelta, ok := d.r.GetZigZagVlqInt()
	if !ok {
		return encoding.Error(format.DeltaBinaryPacked, encoding.ErrEndOfData)
	}

	widths := make([]byte, numMiniBlocks)
	for i := range widths {
		b, ok := d.r.GetAligned(1)
		if !ok {
			return encoding.Error(format.DeltaBinaryPacked, encoding.ErrEndOfData)
		}
		widths[i] = byte(b)
	}

	d.widths = widths
	d.widthIdx = 0
	d.minDelta = minDelta
	d.lastValue = firstValue
	d.firstValuePending = true
	d.valuesPerBlock = 0
	d.valuesLeftInBlock = 0
	if numMiniBlocks > 0 {
		d.valuesPerBlock = int(blockSize / numMiniBlocks)
		d.valuesLeftInBlock = d.valuesPerBlock
	}
	d.blockLoaded = true
	return nil
}

func (d *BinaryPackedDecoder) next() (int64, error) {
	if !d.blockLoaded {
		if err := d.loadBlock(); err != nil {
			return 0, err
		}
	}
	if d.firstValuePending {
		d.firstValuePending = false
		return d.lastValue, nil
	}

	if d.valuesLeftInBlock == 0 {
		d.widthIdx++
		if d.widthIdx >= len(d.widths) {
			return 0, encoding.Error(format.DeltaBinaryPacked, encoding.ErrEndOfData)
		}
		d.valuesLeftInBlock = d.valuesPerBlock
	}

	raw, ok := d.r.GetValue(uint(d.widths[d.widthIdx]))
	if !ok {
		return 0, encoding.Error(format.DeltaBinaryPacked, encoding.ErrEndOfData)
	}
	d.lastValue += int64(raw) + d.minDelta
	d.valuesLeftInBlock--
	return d.lastValue, nil
}

func (d *BinaryPackedDecoder) GetInt32(out []int32) (int, error) {
	if d.typ != format.Int32 {
		return 0, encoding.Error(format.DeltaBinaryPacked, encoding.ErrTypeMismatch)
	}
	n := len(out)
	if n > d.valuesLeft {
		n = d.valuesLeft
	}
	for i := 0; i < n; i++ {
		v, err := d.next()
		if err != nil {
			return i, err
		}
		out[i] = int32(v)
	}
	d.valuesLeft -= n
	return n, nil
}

func (d *BinaryPackedDecoder) GetInt64(out []int64) (int, error) {
	if d.typ != format.Int64 {
		return 0, encoding.Error(format.DeltaBinaryPacked, encoding.ErrTypeMismatch)
	}
	n := len(out)
	if n > d.valuesLeft {
		n = d.valuesLeft
	}
	for i := 0; i < n; i++ {
		v, err := d.next()
		if err != nil {
			return i, err
		}
		out[i] = v
	}
	d.valuesLeft -= n
	return n, nil
}
