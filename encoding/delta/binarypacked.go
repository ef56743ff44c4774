// Package delta implements the three DELTA_* page codecs: binary-packed
// deltas for INT32/INT64, length-delta framing for BYTE_ARRAY, and
// prefix-shared byte-array deltas built on top of the other two.
package delta

import (
	"github.com/nwidger/parquetenc/encoding"
	"github.com/nwidger/parquetenc/format"
)

// miniBlockSize is the number of values packed into each mini-block. It is
// a free implementation choice the page format does not constrain; 32
// matches the bit width of a machine word and keeps the per-mini-block
// width byte cheap relative to the data it describes.
const miniBlockSize = 32

func checkBinaryPackedType(typ format.Type) error {
	switch typ {
	case format.Int32, format.Int64:
		return nil
	default:
		return encoding.Errorf(format.DeltaBinaryPacked, "delta binary packing applies only to INT32 and INT64, got %s", typ)
	}
}
