package snappy

import (
	"io"

	"github.com/klauspost/compress/snappy"

	"github.com/nwidger/parquetenc/compress"
	"github.com/nwidger/parquetenc/format"
)

type Codec struct {
	compressor   compress.Compressor
	decompressor compress.Decompressor
}

func (c *Codec) String() string { return "SNAPPY" }

func (c *Codec) CompressionCodec() format.CompressionCodec { return format.Snappy }

func (c *Codec) Encode(dst, src []byte) ([]byte, error) {
	return c.compressor.Encode(dst, src, c.NewWriter)
}

func (c *Codec) Decode(dst, src []byte) ([]byte, error) {
	return c.decompressor.Decode(dst, src, c.NewReader)
}

func (c *Codec) NewReader(r io.Reader) (compress.Reader, error) {
	return reader{snappy.NewReader(r)}, nil
}

func (c *Codec) NewWriter(w io.Writer) (compress.Writer, error) {
	return writer{snappy.NewWriter(w)}, nil
}

type reader struct{ *snappy.Reader }

func (r reader) Close() error             { return nil }
func (r reader) Reset(rr io.Reader) error { r.Reader.Reset(rr); return nil }

type writer struct{ *snappy.Writer }

func (w writer) Reset(ww io.Writer) { w.Writer.Reset(ww) }
