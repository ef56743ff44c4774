// Package rle implements the RLE/bit-packed hybrid codec used for the
// BOOLEAN primitive type.
//
// The page is a stream of runs. A repeated run is a header varint (LSB 0,
// upper bits the repetition count) followed by one value packed into
// ceil(bit_width/8) bytes. A bit-packed run is a header varint (LSB 1, upper
// bits the number of 8-value groups) followed by that many groups of
// bit_width-wide values, LSB first, the last group zero-padded if needed.
// Booleans fix bit_width at 1, so every repeated-run value is a single byte
// and every bit-packed group is a single byte.
package rle

import (
	"github.com/nwidger/parquetenc/encoding"
	"github.com/nwidger/parquetenc/encoding/bitio"
	"github.com/nwidger/parquetenc/format"
)

// minRepeatedRun is the shortest run of equal values worth emitting as a
// repeated run instead of folding into the surrounding bit-packed groups.
const minRepeatedRun = 8

// Encoder implements encoding.Encoder for format.Boolean.
type Encoder struct {
	encoding.Unsupported
	values []bool
}

// NewEncoder returns a boolean encoder with an empty buffer.
func NewEncoder() *Encoder {
	return &Encoder{}
}

func (e *Encoder) Type() format.Type { return format.Boolean }

func (e *Encoder) Encoding() format.Encoding { return format.RLE }

func (e *Encoder) NumValues() int { return len(e.values) }

func (e *Encoder) Reset() { e.values = e.values[:0] }

func (e *Encoder) AddBoolean(values []bool) (int, error) {
	e.values = append(e.values, values...)
	return len(values), nil
}

func (e *Encoder) Encode() ([]byte, error) {
	w := bitio.NewBitWriter(len(e.values)/8 + 16)

	var pending []bool
	flushPending := func() {
		if len(pending) == 0 {
			return
		}
		numGroups := bitio.Ceil(len(pending), 8)
		w.PutVlqInt(uint64(numGroups)<<1 | 1)
		for i := 0; i < numGroups*8; i++ {
			var v uint64
			if i < len(pending) && pending[i] {
				v = 1
			}
			w.PutValue(v, 1)
		}
		pending = pending[:0]
	}

	for i := 0; i < len(e.values); {
		j := i + 1
		for j < len(e.values) && e.values[j] == e.values[i] {
			j++
		}
		// Only the final bit-packed group may be padded, so top pending up
		// to whole groups from this run before anything else is emitted.
		for len(pending)%8 != 0 && i < j {
			pending = append(pending, e.values[i])
			i++
		}
		runLength := j - i

		if runLength >= minRepeatedRun {
			flushPending()
			w.PutVlqInt(uint64(runLength) << 1)
			var v uint64
			if e.values[i] {
				v = 1
			}
			w.PutAligned(v, 1)
		} else {
			for ; i < j; i++ {
				pending = append(pending, e.values[i])
			}
			continue
		}

		i = j
	}
	flushPending()

	w.Flush()
	return w.Bytes(), nil
}
