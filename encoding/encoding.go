// Package encoding defines the page-level encoder and decoder contracts
// shared by the PLAIN, RLE, and DELTA_* codecs, along with the small closed
// set of errors they can raise.
//
// An Encoder buffers typed values added with its Add* methods and produces
// a self-delimiting page of bytes on Encode; a Decoder installs a page with
// SetData and pulls values back out with its Get* methods. Neither type is
// safe for concurrent use; a single instance is meant to be driven by one
// goroutine for the lifetime of one page at a time.
package encoding

import (
	"errors"
	"fmt"

	"github.com/nwidger/parquetenc/format"
)

var (
	// ErrEndOfData is returned when a decoder is asked to produce values
	// beyond what its current page contains.
	ErrEndOfData = errors.New("encoding: end of page data")

	// ErrTypeMismatch is returned when an Add/Get method is invoked on an
	// encoder or decoder that was constructed for a different primitive
	// type.
	ErrTypeMismatch = errors.New("encoding: value type does not match the type the codec was constructed for")

	// ErrBufferFull is returned by Add when the encoder's output buffer
	// budget has been exhausted. The caller should Encode (or Reset) and
	// resubmit the values that were not accepted.
	ErrBufferFull = errors.New("encoding: encoder buffer is full")

	// ErrNotImplemented is returned when constructing a codec for a
	// (type, encoding) pair that is a recognized member of the format
	// enumerations but has no implementation in this package.
	ErrNotImplemented = errors.New("encoding: combination not implemented")

	// ErrInvalidArgument is returned when a constructor or method receives
	// arguments that make no sense for the codec, e.g. a non-integer type
	// passed to the delta binary-packed codec.
	ErrInvalidArgument = errors.New("encoding: invalid argument")
)

// Error wraps err with the name of the encoding that produced it.
func Error(e format.Encoding, err error) error {
	return fmt.Errorf("%s: %w", e, err)
}

// Errorf is like Error but builds the wrapped error from a format string.
func Errorf(e format.Encoding, msg string, args ...interface{}) error {
	return Error(e, fmt.Errorf(msg, args...))
}

// ByteArray is a decoded byte string paired with a description of who owns
// its backing storage.
//
// Borrowed values reference bytes inside the page buffer that was passed to
// SetData; they are valid only until the next SetData call on the same
// decoder, or until the caller frees that page buffer. Owned values hold a
// private allocation the decoder made on the caller's behalf (this occurs
// only in DELTA_BYTE_ARRAY, where a decoded string is stitched together from
// a shared prefix and a fresh suffix) and remain valid for as long as the
// caller keeps a reference to them.
type ByteArray struct {
	Bytes []byte
	Owned bool
}

// Encoder is implemented by every page-level encoder. Concrete codecs embed
// Unsupported and override only the Add* methods for the primitive types
// they accept; the rest report ErrTypeMismatch.
type Encoder interface {
	// Type reports the primitive type the encoder was constructed for.
	Type() format.Type

	// Encoding reports the wire encoding tag the encoder produces.
	Encoding() format.Encoding

	// NumValues reports the number of values added since the last Reset.
	NumValues() int

	// Reset discards any buffered values, returning the encoder to the
	// state it was in right after construction. Bytes returned by a prior
	// Encode call are invalidated.
	Reset()

	// Encode returns the page bytes for all values added since the last
	// Reset. The returned slice is owned by the encoder and is only valid
	// until the next call to Encode or Reset. Calling Encode twice with no
	// intervening Add/Reset returns identical bytes.
	Encode() ([]byte, error)

	AddBoolean(values []bool) (int, error)
	AddInt32(values []int32) (int, error)
	AddInt64(values []int64) (int, error)
	AddFloat(values []float32) (int, error)
	AddDouble(values []float64) (int, error)
	AddByteArray(values []ByteArray) (int, error)
}

// Decoder is implemented by every page-level decoder. Concrete codecs embed
// Unsupported and override only the Get* methods for the primitive types
// they accept; the rest report ErrTypeMismatch.
type Decoder interface {
	// Type reports the primitive type the decoder was constructed for.
	Type() format.Type

	// Encoding reports the wire encoding tag the decoder consumes.
	Encoding() format.Encoding

	// ValuesLeft reports how many values remain to be pulled from the
	// current page.
	ValuesLeft() int

	// SetData installs a new page. It may be called repeatedly on the same
	// decoder; each call replaces whatever page was previously installed
	// and resets the read cursor.
	SetData(numValues int, data []byte) error

	GetBoolean(out []bool) (int, error)
	GetInt32(out []int32) (int, error)
	GetInt64(out []int64) (int, error)
	GetFloat(out []float32) (int, error)
	GetDouble(out []float64) (int, error)
	GetByteArray(out []ByteArray) (int, error)
}

// Unsupported implements Encoder's and Decoder's Add*/Get* methods by
// returning ErrTypeMismatch for every type. Codecs embed it and override the
// handful of methods for the types they actually support.
type Unsupported struct{}

func (Unsupported) AddBoolean([]bool) (int, error)        { return 0, ErrTypeMismatch }
func (Unsupported) AddInt32([]int32) (int, error)         { return 0, ErrTypeMismatch }
func (Unsupported) AddInt64([]int64) (int, error)         { return 0, ErrTypeMismatch }
func (Unsupported) AddFloat([]float32) (int, error)       { return 0, ErrTypeMismatch }
func (Unsupported) AddDouble([]float64) (int, error)      { return 0, ErrTypeMismatch }
func (Unsupported) AddByteArray([]ByteArray) (int, error) { return 0, ErrTypeMismatch }
func (Unsupported) GetBoolean([]bool) (int, error)        { return 0, ErrTypeMismatch }
func (Unsupported) GetInt32([]int32) (int, error)         { return 0, ErrTypeMismatch }
func (Unsupported) GetInt64([]int64) (int, error)         { return 0, ErrTypeMismatch }
func (Unsupported) GetFloat([]float32) (int, error)       { return 0, ErrTypeMismatch }
func (Unsupported) GetDouble([]float64) (int, error)      { return 0, ErrTypeMismatch }
func (Unsupported) GetByteArray([]ByteArray) (int, error) { return 0, ErrTypeMismatch }
