package bytecodec

import (
	"math"

	"github.com/pkg/errors"
)

func EncodeByte(v int8, packZeros bool) []byte {
	return EncodeUint(uint64(uint8(v)), ByteByteSize, packZeros)
}

func DecodeByte(data []byte) (int8, error) {
	bits, err := DecodeUint(data, ByteByteSize)
	return int8(bits), err
}

func EncodeShort(v int16, packZeros bool) []byte {
	return EncodeUint(uint64(uint16(v)), ShortByteSize, packZeros)
}

func DecodeShort(data []byte) (int16, error) {
	bits, err := DecodeUint(data, ShortByteSize)
	return int16(bits), err
}

func EncodeInt(v int32, packZeros bool) []byte {
	return EncodeUint(uint64(uint32(v)), IntByteSize, packZeros)
}

func DecodeInt(data []byte) (int32, error) {
	bits, err := DecodeUint(data, IntByteSize)
	return int32(bits), err
}

func EncodeLong(v int64, packZeros bool) []byte {
	return EncodeUint(uint64(v), LongByteSize, packZeros)
}

func DecodeLong(data []byte) (int64, error) {
	bits, err := DecodeUint(data, LongByteSize)
	return int64(bits), err
}

// EncodeFloat encodes the IEEE-754 bit pattern of v.
func EncodeFloat(v float32, packZeros bool) []byte {
	return EncodeUint(uint64(math.Float32bits(v)), FloatByteSize, packZeros)
}

func DecodeFloat(data []byte) (float32, error) {
	bits, err := DecodeUint(data, FloatByteSize)
	return math.Float32frombits(uint32(bits)), err
}

// EncodeDouble encodes the IEEE-754 bit pattern of v.
func EncodeDouble(v float64, packZeros bool) []byte {
	return EncodeUint(math.Float64bits(v), DoubleByteSize, packZeros)
}

func DecodeDouble(data []byte) (float64, error) {
	bits, err := DecodeUint(data, DoubleByteSize)
	return math.Float64frombits(bits), err
}

// EncodeBool always produces a single byte, packing has no effect.
func EncodeBool(v bool) []byte {
	if v {
		return []byte{1}
	}
	return []byte{0}
}

func DecodeBool(data []byte) (bool, error) {
	bits, err := DecodeUint(data, BoolByteSize)
	if err != nil {
		return false, err
	}

	switch bits {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, errors.Wrapf(ErrInvalidValue, "boolean byte 0x%02x", bits)
	}
}
