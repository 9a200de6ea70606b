// Package bytecodec encodes fixed-size numeric values to and from big-endian
// byte sequences.
//
// Every value has an unpacked form of exactly its canonical byte size and a
// packed form with the leading zero bytes dropped. At least one byte is
// always kept, so zero packs to the single byte 0x00. Negative values never
// start with a zero byte and always pack to their full width.
//
// Decoding accepts either form: any buffer from one byte up to the canonical
// size is zero-extended on the left. The packed form carries no length
// framing, so it is only suitable for standalone byte slices; fixed records
// in a shared stream must use the unpacked form.
//
// EncodeUint and DecodeUint work on raw bit patterns of any width. The typed
// helpers (EncodeShort, DecodeBool and the rest) are for callers that know
// the Go type statically.
package bytecodec

import (
	"github.com/pkg/errors"
)

const (
	ByteByteSize   = 1
	ShortByteSize  = 2
	IntByteSize    = 4
	LongByteSize   = 8
	FloatByteSize  = 4
	DoubleByteSize = 8
	BoolByteSize   = 1
)

var (
	ErrInvalidLength = errors.New("invalid encoded length")
	ErrInvalidValue  = errors.New("invalid encoded value")
)

// EncodeUint writes the low size bytes of bits most-significant byte first.
// With packZeros the leading zero bytes are dropped.
func EncodeUint(bits uint64, size int, packZeros bool) []byte {
	if size < 1 || size > LongByteSize {
		panic(errors.Errorf("unsupported byte size %d", size))
	}

	buf := make([]byte, size)
	for i := size - 1; i >= 0; i-- {
		buf[i] = byte(bits)
		bits >>= 8
	}

	if !packZeros {
		return buf
	}

	start := 0
	for start < size-1 && buf[start] == 0 {
		start++
	}

	return buf[start:]
}

// DecodeUint reads a packed or unpacked value of the given canonical size.
func DecodeUint(data []byte, size int) (uint64, error) {
	if len(data) == 0 || len(data) > size {
		return 0, errors.Wrapf(ErrInvalidLength, "got %d bytes, want 1 to %d", len(data), size)
	}

	var bits uint64
	for _, b := range data {
		bits = bits<<8 | uint64(b)
	}

	return bits, nil
}

// SignExtend reinterprets the low size bytes of bits as a two's-complement
// signed integer.
func SignExtend(bits uint64, size int) int64 {
	shift := uint(64 - 8*size)
	return int64(bits<<shift) >> shift
}
