package encode

import (
	"io"
	"math"
	"reflect"

	"github.com/lslk89/xultimate-toolkit/bytecodec"
	"github.com/lslk89/xultimate-toolkit/encoding"
)

// numericSerializer encodes any value of a single numeric or boolean kind.
// It performs no type checks of its own and must be wrapped with
// NewTypeSupportCodec.
type numericSerializer struct {
	kind      reflect.Kind
	size      int
	packZeros bool
}

func newNumericCodec(name string, kind reflect.Kind, size int, packZeros bool) encoding.Codec {
	return NewTypeSupportCodec(name, KindOf(kind), &numericSerializer{
		kind:      kind,
		size:      size,
		packZeros: packZeros,
	})
}

func NewByteCodec(packZeros bool) encoding.Codec {
	return newNumericCodec(ByteCodec, reflect.Int8, bytecodec.ByteByteSize, packZeros)
}

// NewShortCodec returns the codec for int16. With packZeros, byte slices
// drop leading zero bytes; the stream path is always two bytes wide.
func NewShortCodec(packZeros bool) encoding.Codec {
	return newNumericCodec(ShortCodec, reflect.Int16, bytecodec.ShortByteSize, packZeros)
}

func NewIntCodec(packZeros bool) encoding.Codec {
	return newNumericCodec(IntCodec, reflect.Int32, bytecodec.IntByteSize, packZeros)
}

func NewLongCodec(packZeros bool) encoding.Codec {
	return newNumericCodec(LongCodec, reflect.Int64, bytecodec.LongByteSize, packZeros)
}

// NewIntegerCodec handles the platform int, always encoded as eight bytes.
func NewIntegerCodec(packZeros bool) encoding.Codec {
	return newNumericCodec(IntegerCodec, reflect.Int, bytecodec.LongByteSize, packZeros)
}

func NewUnsignedByteCodec(packZeros bool) encoding.Codec {
	return newNumericCodec(UnsignedByteCodec, reflect.Uint8, bytecodec.ByteByteSize, packZeros)
}

func NewUnsignedShortCodec(packZeros bool) encoding.Codec {
	return newNumericCodec(UnsignedShortCodec, reflect.Uint16, bytecodec.ShortByteSize, packZeros)
}

func NewUnsignedIntCodec(packZeros bool) encoding.Codec {
	return newNumericCodec(UnsignedIntCodec, reflect.Uint32, bytecodec.IntByteSize, packZeros)
}

func NewUnsignedLongCodec(packZeros bool) encoding.Codec {
	return newNumericCodec(UnsignedLongCodec, reflect.Uint64, bytecodec.LongByteSize, packZeros)
}

func NewUnsignedIntegerCodec(packZeros bool) encoding.Codec {
	return newNumericCodec(UnsignedIntegerCodec, reflect.Uint, bytecodec.LongByteSize, packZeros)
}

func NewFloatCodec(packZeros bool) encoding.Codec {
	return newNumericCodec(FloatCodec, reflect.Float32, bytecodec.FloatByteSize, packZeros)
}

func NewDoubleCodec(packZeros bool) encoding.Codec {
	return newNumericCodec(DoubleCodec, reflect.Float64, bytecodec.DoubleByteSize, packZeros)
}

// NewBoolCodec ignores packZeros since a boolean is a single byte.
func NewBoolCodec(packZeros bool) encoding.Codec {
	return newNumericCodec(BoolCodec, reflect.Bool, bytecodec.BoolByteSize, packZeros)
}

func (s *numericSerializer) ByteSize() int { return s.size }

func (s *numericSerializer) Serialize(v interface{}) ([]byte, error) {
	bits, err := s.bits(v)
	if err != nil {
		return nil, err
	}
	return bytecodec.EncodeUint(bits, s.size, s.packZeros), nil
}

func (s *numericSerializer) SerializeTo(v interface{}, w io.Writer) error {
	bits, err := s.bits(v)
	if err != nil {
		return err
	}

	out := bytecodec.EncodeUint(bits, s.size, false)
	n, err := w.Write(out)
	if err == nil && n < len(out) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return encoding.NewSerializationError(reflect.TypeOf(v), err, "writing to stream")
	}

	return nil
}

func (s *numericSerializer) Deserialize(data []byte, t reflect.Type) (interface{}, error) {
	bits, err := bytecodec.DecodeUint(data, s.size)
	if err != nil {
		return nil, encoding.NewDeserializationError(t, err, "decoding bytes")
	}
	return s.value(bits, t)
}

func (s *numericSerializer) DeserializeFrom(r io.Reader, t reflect.Type) (interface{}, error) {
	buf := make([]byte, s.size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, encoding.NewDeserializationError(t, err, "reading from stream")
	}
	return s.Deserialize(buf, t)
}

func (s *numericSerializer) bits(v interface{}) (uint64, error) {
	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return 0, encoding.NewSerializationError(val.Type(), nil, "nil pointer")
		}
		val = val.Elem()
	}

	switch s.kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uint64(val.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return val.Uint(), nil
	case reflect.Float32:
		return uint64(math.Float32bits(float32(val.Float()))), nil
	case reflect.Float64:
		return math.Float64bits(val.Float()), nil
	case reflect.Bool:
		if val.Bool() {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, encoding.NewSerializationError(val.Type(), nil, "unsupported kind "+s.kind.String())
	}
}

func (s *numericSerializer) value(bits uint64, t reflect.Type) (interface{}, error) {
	target := t
	if t.Kind() == reflect.Ptr {
		target = t.Elem()
	}
	out := reflect.New(target).Elem()

	switch s.kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		out.SetInt(bytecodec.SignExtend(bits, s.size))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		out.SetUint(bits)
	case reflect.Float32:
		out.SetFloat(float64(math.Float32frombits(uint32(bits))))
	case reflect.Float64:
		out.SetFloat(math.Float64frombits(bits))
	case reflect.Bool:
		b, err := bytecodec.DecodeBool(bytecodec.EncodeUint(bits, s.size, false))
		if err != nil {
			return nil, encoding.NewDeserializationError(t, err, "decoding bytes")
		}
		out.SetBool(b)
	default:
		return nil, encoding.NewDeserializationError(t, nil, "unsupported kind "+s.kind.String())
	}

	if t.Kind() == reflect.Ptr {
		return out.Addr().Interface(), nil
	}
	return out.Interface(), nil
}
