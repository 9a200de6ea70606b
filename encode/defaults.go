package encode

import (
	"reflect"

	"github.com/lslk89/xultimate-toolkit/encoding"
	"github.com/pkg/errors"
)

const (
	ByteCodec            = "byte"
	ShortCodec           = "short"
	IntCodec             = "int"
	LongCodec            = "long"
	IntegerCodec         = "integer"
	UnsignedByteCodec    = "unsigned_byte"
	UnsignedShortCodec   = "unsigned_short"
	UnsignedIntCodec     = "unsigned_int"
	UnsignedLongCodec    = "unsigned_long"
	UnsignedIntegerCodec = "unsigned_integer"
	FloatCodec           = "float"
	DoubleCodec          = "double"
	BoolCodec            = "bool"
)

var defaultCodecs = []struct {
	name   string
	create func(bool) encoding.Codec
}{
	{name: ByteCodec, create: NewByteCodec},
	{name: ShortCodec, create: NewShortCodec},
	{name: IntCodec, create: NewIntCodec},
	{name: LongCodec, create: NewLongCodec},
	{name: IntegerCodec, create: NewIntegerCodec},
	{name: UnsignedByteCodec, create: NewUnsignedByteCodec},
	{name: UnsignedShortCodec, create: NewUnsignedShortCodec},
	{name: UnsignedIntCodec, create: NewUnsignedIntCodec},
	{name: UnsignedLongCodec, create: NewUnsignedLongCodec},
	{name: UnsignedIntegerCodec, create: NewUnsignedIntegerCodec},
	{name: FloatCodec, create: NewFloatCodec},
	{name: DoubleCodec, create: NewDoubleCodec},
	{name: BoolCodec, create: NewBoolCodec},
}

// DefaultCodecNames lists the built-in codecs in default registration order.
func DefaultCodecNames() []string {
	names := make([]string, 0, len(defaultCodecs))
	for _, c := range defaultCodecs {
		names = append(names, c.name)
	}
	return names
}

// NewDefaultCodec builds the built-in codec with the given name.
func NewDefaultCodec(name string, packZeros bool) (encoding.Codec, error) {
	for _, c := range defaultCodecs {
		if c.name == name {
			return c.create(packZeros), nil
		}
	}
	return nil, errors.Errorf("unrecognized codec '%s'", name)
}

// ProbeTypes returns every type the default codecs are expected to serve,
// in value and pointer form.
func ProbeTypes() []reflect.Type {
	values := []interface{}{
		int8(0), int16(0), int32(0), int64(0), int(0),
		uint8(0), uint16(0), uint32(0), uint64(0), uint(0),
		float32(0), float64(0), false,
	}

	types := make([]reflect.Type, 0, 2*len(values))
	for _, v := range values {
		t := reflect.TypeOf(v)
		types = append(types, t, reflect.PtrTo(t))
	}
	return types
}
