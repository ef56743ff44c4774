package rle

import (
	"github.com/nwidger/parquetenc/encoding"
	"github.com/nwidger/parquetenc/encoding/bitio"
	"github.com/nwidger/parquetenc/format"
)

// Decoder implements encoding.Decoder for format.Boolean.
type Decoder struct {
	encoding.Unsupported
	r          *bitio.BitReader
	valuesLeft int
	run        []bool
	runPos     int
}

// NewDecoder returns a boolean decoder with no page installed.
func NewDecoder() *Decoder {
	return &Decoder{r: bitio.NewBitReader(nil)}
}

func (d *Decoder) Type() format.Type { return format.Boolean }

func (d *Decoder) Encoding() format.Encoding { return format.RLE }

func (d *Decoder) ValuesLeft() int { return d.valuesLeft }

func (d *Decoder) SetData(numValues int, data []byte) error {
	if numValues < 0 {
		return encoding.Error(format.RLE, encoding.ErrInvalidArgument)
	}
	d.r.Reset(data)
	d.valuesLeft = numValues
	d.run = d.run[:0]
	d.runPos = 0
	return nil
}

func (d *Decoder) nextRun() error {
	header, ok := d.r.GetVlqInt()
	if !ok {
		return encoding.Error(format.RLE, encoding.ErrEndOfData)
	}

	d.run = d.run[:0]
	if header&1 == 0 {
		runLength := int(header >> 1)
		v, ok := d.r.GetAligned(1)
		if !ok {
			return encoding.Error(format.RLE, encoding.ErrEndOfData)
		}
		value := v&1 != 0
		for i := 0; i < runLength; i++ {
			d.run = append(d.run, value)
		}
	} else {
		numGroups := int(header >> 1)
		for i := 0; i < numGroups*8; i++ {
			bit, ok := d.r.GetValue(1)
			if !ok {
				return encoding.Error(format.RLE, encoding.ErrEndOfData)
			}
			d.run = append(d.run, bit != 0)
		}
	}
	d.runPos = 0
	return nil
}

func (d *Decoder) GetBoolean(out []bool) (int, error) {
	n := len(out)
	if n > d.valuesLeft {
		n = d.valuesLeft
	}
	for i := 0; i < n; i++ {
		if d.runPos >= len(d.run) {
			if err := d.nextRun(); err != nil {
				return i, err
			}
		}
		out[i] = d.run[d.runPos]
		d.runPos++
	}
	d.valuesLeft -= n
	return n, nil
}
