package bytecodec

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeShortFixedWidth(t *testing.T) {
	for _, test := range []struct {
		name     string
		value    int16
		expected []byte
	}{
		{name: "Zero", value: 0, expected: []byte{0x00, 0x00}},
		{name: "One", value: 1, expected: []byte{0x00, 0x01}},
		{name: "TwoFiftySix", value: 256, expected: []byte{0x01, 0x00}},
		{name: "MinusOne", value: -1, expected: []byte{0xff, 0xff}},
		{name: "Max", value: math.MaxInt16, expected: []byte{0x7f, 0xff}},
		{name: "Min", value: math.MinInt16, expected: []byte{0x80, 0x00}},
	} {
		t.Run(test.name, func(t *testing.T) {
			out := EncodeShort(test.value, false)
			assert.Equal(t, test.expected, out)
			assert.Len(t, out, ShortByteSize)

			decoded, err := DecodeShort(out)
			require.NoError(t, err)
			assert.Equal(t, test.value, decoded)
		})
	}
}

func TestEncodeShortPacked(t *testing.T) {
	for _, test := range []struct {
		name     string
		value    int16
		expected []byte
	}{
		{name: "Zero", value: 0, expected: []byte{0x00}},
		{name: "Small", value: 0x7f, expected: []byte{0x7f}},
		{name: "HighBitLowByte", value: 0x80, expected: []byte{0x80}},
		{name: "TwoFiftySix", value: 256, expected: []byte{0x01, 0x00}},
		{name: "MinusOne", value: -1, expected: []byte{0xff, 0xff}},
		{name: "Min", value: math.MinInt16, expected: []byte{0x80, 0x00}},
	} {
		t.Run(test.name, func(t *testing.T) {
			out := EncodeShort(test.value, true)
			assert.Equal(t, test.expected, out)
			assert.LessOrEqual(t, len(out), ShortByteSize)

			decoded, err := DecodeShort(out)
			require.NoError(t, err)
			assert.Equal(t, test.value, decoded)
		})
	}
}

func TestRoundTripAllWidths(t *testing.T) {
	for _, packZeros := range []bool{true, false} {
		for _, v := range []int8{0, 1, -1, math.MaxInt8, math.MinInt8} {
			out := EncodeByte(v, packZeros)
			decoded, err := DecodeByte(out)
			require.NoError(t, err)
			assert.Equal(t, v, decoded)
		}
		for _, v := range []int32{0, 1, -1, 1 << 16, math.MaxInt32, math.MinInt32} {
			out := EncodeInt(v, packZeros)
			if !packZeros {
				assert.Len(t, out, IntByteSize)
			}
			decoded, err := DecodeInt(out)
			require.NoError(t, err)
			assert.Equal(t, v, decoded)
		}
		for _, v := range []int64{0, 1, -1, 1 << 40, math.MaxInt64, math.MinInt64} {
			out := EncodeLong(v, packZeros)
			if !packZeros {
				assert.Len(t, out, LongByteSize)
			}
			decoded, err := DecodeLong(out)
			require.NoError(t, err)
			assert.Equal(t, v, decoded)
		}
		for _, v := range []float32{0, 1.5, -2.25, math.MaxFloat32, math.SmallestNonzeroFloat32} {
			decoded, err := DecodeFloat(EncodeFloat(v, packZeros))
			require.NoError(t, err)
			assert.Equal(t, v, decoded)
		}
		for _, v := range []float64{0, 1.5, -2.25, math.MaxFloat64, math.Inf(-1)} {
			decoded, err := DecodeDouble(EncodeDouble(v, packZeros))
			require.NoError(t, err)
			assert.Equal(t, v, decoded)
		}
	}
}

func TestPackedLongDropsLeadingZeros(t *testing.T) {
	assert.Equal(t, []byte{0x01, 0x00, 0x00}, EncodeLong(1<<16, true))
	assert.Equal(t, []byte{0x00}, EncodeLong(0, true))
	assert.Len(t, EncodeLong(-1, true), LongByteSize)
}

func TestDecodeRejectsInvalidLength(t *testing.T) {
	_, err := DecodeShort(nil)
	require.Error(t, err)
	assert.Equal(t, ErrInvalidLength, errors.Cause(err))

	_, err = DecodeShort([]byte{0x00, 0x01, 0x02})
	require.Error(t, err)
	assert.Equal(t, ErrInvalidLength, errors.Cause(err))
}

func TestBool(t *testing.T) {
	v, err := DecodeBool(EncodeBool(true))
	require.NoError(t, err)
	assert.True(t, v)

	v, err = DecodeBool(EncodeBool(false))
	require.NoError(t, err)
	assert.False(t, v)

	_, err = DecodeBool([]byte{0x02})
	require.Error(t, err)
	assert.Equal(t, ErrInvalidValue, errors.Cause(err))
}

func TestSignExtend(t *testing.T) {
	assert.Equal(t, int64(-1), SignExtend(0xffff, ShortByteSize))
	assert.Equal(t, int64(256), SignExtend(0x0100, ShortByteSize))
	assert.Equal(t, int64(math.MinInt64), SignExtend(1<<63, LongByteSize))
}

func TestEncodeUintMasksHighBits(t *testing.T) {
	assert.Equal(t, []byte{0x34, 0x56}, EncodeUint(0x123456, ShortByteSize, false))
	assert.Panics(t, func() { EncodeUint(0, 9, false) })
}
