package delta

import (
	"github.com/nwidger/parquetenc/encoding"
	"github.com/nwidger/parquetenc/encoding/bitio"
	"github.com/nwidger/parquetenc/format"
)

// BinaryPackedEncoder implements encoding.Encoder for the DELTA_BINARY_PACKED
// codec applied to INT32 and INT64. Values are staged as int64 internally;
// INT32 inputs are widened on Add and narrowed back on decode.
type BinaryPackedEncoder struct {
	encoding.Unsupported
	typ    format.Type
	values []int64
}

// NewBinaryPackedEncoder returns a DELTA_BINARY_PACKED encoder for typ,
// which must be INT32 or INT64.
func NewBinaryPackedEncoder(typ format.Type) (*BinaryPackedEncoder, error) {
	if err := checkBinaryPackedType(typ); err != nil {
		return nil, err
	}
	return &BinaryPackedEncoder{typ: typ}, nil
}

func (e *BinaryPackedEncoder) Type() format.Type { return e.typ }

func (e *BinaryPackedEncoder) Encoding() format.Encoding { return format.DeltaBinaryPacked }

func (e *BinaryPackedEncoder) NumValues() int { return len(e.values) }

func (e *BinaryPackedEncoder) Reset() { e.values = e.values[:0] }

func (e *BinaryPackedEncoder) AddInt32(values []int32) (int, error) {
	if e.typ != format.Int32 {
		return 0, encoding.Error(format.DeltaBinaryPacked, encoding.ErrTypeMismatch)
	}
	for _, v := range values {
		e.values = append(e.values, int64(v))
	}
	return len(values), nil
}

func (e *BinaryPackedEncoder) AddInt64(values []int64) (int, error) {
	if e.typ != format.Int64 {
		return 0, encoding.Error(format.DeltaBinaryPacked, encoding.ErrTypeMismatch)
	}
	e.values = append(e.values, values...)
	return len(values), nil
}

func (e *BinaryPackedEncoder) Encode() ([]byte, error) {
	n := len(e.values)
	if n == 0 {
		return nil, nil
	}

	numMiniBlocks := bitio.Ceil(n-1, miniBlockSize)

	deltas := make([]int64, n-1)
	minDelta := int64(0)
	if n > 1 {
		minDelta = e.values[1] - e.values[0]
		for i := 1; i < n; i++ {
			deltas[i-1] = e.values[i] - e.values[i-1]
			if deltas[i-1] < minDelta {
				minDelta = deltas[i-1]
			}
		}
	}

	w := bitio.NewBitWriter(16 + numMiniBlocks*(1+miniBlockSize*8))
	w.PutVlqInt(uint64(numMiniBlocks * miniBlockSize))
	w.PutVlqInt(uint64(numMiniBlocks))
	w.PutVlqInt(uint64(n - 1))
	w.PutZigZagVlqInt(e.values[0])
	w.PutZigZagVlqInt(minDelta)

	w.Grow(numMiniBlocks * (1 + miniBlockSize*8))
	widths := w.GetNextBytePtr(numMiniBlocks)

	idx := 0
	for i := 0; i < numMiniBlocks; i++ {
		count := miniBlockSize
		if idx+count > len(deltas) {
			count = len(deltas) - idx
		}

		maxDelta := minDelta
		for j := 0; j < count; j++ {
			if deltas[idx+j] > maxDelta {
				maxDelta = deltas[idx+j]
			}
		}
		width := bitio.NumRequiredBits(uint64(maxDelta - minDelta))
		widths[i] = byte(width)

		for j := 0; j < miniBlockSize; j++ {
			var v uint64
			if j < count {
				v = uint64(deltas[idx+j] - minDelta)
			}
			w.PutValue(v, width)
		}
		idx += count
	}

	w.Flush()
	return w.Bytes(), nil
}
