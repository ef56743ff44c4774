// Package format defines the closed sets of primitive type and encoding tags
// that the columnar container attaches to a page alongside its byte blob.
//
// The container itself (footer metadata, row groups, the schema tree) is not
// part of this module; format only carries the small vocabulary of constants
// that the page-level codecs and their caller need to agree on.
package format

// Type is the primitive value kind stored in a page, matching the Parquet
// physical type enumeration.
type Type int8

const (
	Boolean Type = iota
	Int32
	Int64
	Int96
	Float
	Double
	ByteArray
	FixedLenByteArray
)

func (t Type) String() string {
	switch t {
	case Boolean:
		return "BOOLEAN"
	case Int32:
		return "INT32"
	case Int64:
		return "INT64"
	case Int96:
		return "INT96"
	case Float:
		return "FLOAT"
	case Double:
		return "DOUBLE"
	case ByteArray:
		return "BYTE_ARRAY"
	case FixedLenByteArray:
		return "FIXED_LEN_BYTE_ARRAY"
	default:
		return "UNKNOWN_TYPE"
	}
}

// Encoding is the wire encoding tag a page is stamped with, matching the
// Parquet encoding enumeration.
type Encoding int8

const (
	Plain Encoding = iota
	PlainDictionary
	RLE
	DeltaBinaryPacked
	DeltaLengthByteArray
	DeltaByteArray
)

func (e Encoding) String() string {
	switch e {
	case Plain:
		return "PLAIN"
	case PlainDictionary:
		return "PLAIN_DICTIONARY"
	case RLE:
		return "RLE"
	case DeltaBinaryPacked:
		return "DELTA_BINARY_PACKED"
	case DeltaLengthByteArray:
		return "DELTA_LENGTH_BYTE_ARRAY"
	case DeltaByteArray:
		return "DELTA_BYTE_ARRAY"
	default:
		return "UNKNOWN_ENCODING"
	}
}

// CompressionCodec identifies the page compressor a container stamps a
// page with. Compression sits outside the page codecs this module
// implements: a container applies it to the bytes a page codec produces,
// and undoes it before handing those bytes to a decoder's SetData.
type CompressionCodec int8

const (
	Uncompressed CompressionCodec = iota
	Snappy
	Gzip
	Lz4
	Zstd
	Brotli
)

func (c CompressionCodec) String() string {
	switch c {
	case Uncompressed:
		return "UNCOMPRESSED"
	case Snappy:
		return "SNAPPY"
	case Gzip:
		return "GZIP"
	case Lz4:
		return "LZ4"
	case Zstd:
		return "ZSTD"
	case Brotli:
		return "BROTLI"
	default:
		return "UNKNOWN_COMPRESSION_CODEC"
	}
}
