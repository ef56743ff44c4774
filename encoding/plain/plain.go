// Package plain implements the PLAIN codec: fixed-width little-endian
// packing for numeric types, and a 4-byte length-prefixed framing for
// BYTE_ARRAY. It does not support BOOLEAN; booleans are always carried by
// the RLE hybrid codec.
package plain

import (
	"github.com/nwidger/parquetenc/encoding"
	"github.com/nwidger/parquetenc/format"
)

func checkType(typ format.Type) error {
	switch typ {
	case format.Int32, format.Int64, format.Float, format.Double, format.ByteArray:
		return nil
	case format.Boolean:
		return encoding.Errorf(format.Plain, "booleans are encoded with RLE, not PLAIN")
	default:
		return encoding.Error(format.Plain, encoding.ErrNotImplemented)
	}
}
