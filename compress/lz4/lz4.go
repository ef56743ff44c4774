package lz4

import (
	"io"

	"github.com/pierrec/lz4/v4"

	"github.com/nwidger/parquetenc/compress"
	"github.com/nwidger/parquetenc/format"
)

type Codec struct {
	compressor   compress.Compressor
	decompressor compress.Decompressor
}

func (c *Codec) String() string { return "LZ4" }

func (c *Codec) CompressionCodec() format.CompressionCodec { return format.Lz4 }

func (c *Codec) Encode(dst, src []byte) ([]byte, error) {
	return c.compressor.Encode(dst, src, c.NewWriter)
}

func (c *Codec) Decode(dst, src []byte) ([]byte, error) {
	return c.decompressor.Decode(dst, src, c.NewReader)
}

func (c *Codec) NewReader(r io.Reader) (compress.Reader, error) {
	return reader{lz4.NewReader(r)}, nil
}

func (c *Codec) NewWriter(w io.Writer) (compress.Writer, error) {
	return writer{lz4.NewWriter(w)}, nil
}

type reader struct{ *lz4.Reader }

func (r reader) Close() error             { return nil }
func (r reader) Reset(rr io.Reader) error { r.Reader.Reset(rr); return nil }

type writer struct{ *lz4.Writer }

func (w writer) Reset(ww io.Writer) { w.Writer.Reset(ww) }
