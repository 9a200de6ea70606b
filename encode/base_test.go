package encode

import (
	"bytes"
	"io"
	"reflect"
	"testing"

	"github.com/lslk89/xultimate-toolkit/encoding"
	"github.com/stretchr/testify/assert"
)

type recordingSerializer struct {
	calls int
}

func (s *recordingSerializer) Serialize(interface{}) ([]byte, error) {
	s.calls++
	return []byte{1}, nil
}

func (s *recordingSerializer) SerializeTo(_ interface{}, w io.Writer) error {
	s.calls++
	_, err := w.Write([]byte{1})
	return err
}

func (s *recordingSerializer) Deserialize([]byte, reflect.Type) (interface{}, error) {
	s.calls++
	return "", nil
}

func (s *recordingSerializer) DeserializeFrom(io.Reader, reflect.Type) (interface{}, error) {
	s.calls++
	return "", nil
}

type label string

func TestTypeSupportCodecGuardsImplementation(t *testing.T) {
	impl := &recordingSerializer{}
	codec := NewTypeSupportCodec("label", AssignableTo(reflect.TypeOf("")), impl)

	assert.Equal(t, "label", codec.String())
	assert.Zero(t, codec.ByteSize())

	var buf bytes.Buffer
	_, err := codec.Serialize(1)
	assert.True(t, encoding.IsUnsupportedType(err))
	assert.True(t, encoding.IsUnsupportedType(codec.SerializeTo(1, &buf)))
	_, err = codec.Deserialize(nil, reflect.TypeOf(1))
	assert.True(t, encoding.IsUnsupportedType(err))
	_, err = codec.DeserializeFrom(&buf, reflect.TypeOf(1))
	assert.True(t, encoding.IsUnsupportedType(err))
	assert.Zero(t, impl.calls)
	assert.Zero(t, buf.Len())

	_, err = codec.Serialize("ok")
	assert.NoError(t, err)
	assert.NoError(t, codec.SerializeTo("ok", &buf))
	_, err = codec.Deserialize(nil, reflect.TypeOf(""))
	assert.NoError(t, err)
	_, err = codec.DeserializeFrom(&buf, reflect.TypeOf(""))
	assert.NoError(t, err)
	assert.Equal(t, 4, impl.calls)
}

func TestSupportFuncs(t *testing.T) {
	shortType := reflect.TypeOf(int16(0))

	kind := KindOf(reflect.Int16)
	assert.True(t, kind(shortType))
	assert.True(t, kind(reflect.PtrTo(shortType)))
	assert.False(t, kind(reflect.TypeOf(int32(0))))
	assert.False(t, kind(nil))

	assignable := AssignableTo(reflect.TypeOf(""))
	assert.True(t, assignable(reflect.TypeOf("")))
	assert.True(t, assignable(reflect.TypeOf(new(string))))
	assert.False(t, assignable(reflect.TypeOf(label(""))))
	assert.False(t, assignable(nil))

	assert.True(t, KindOf(reflect.String)(reflect.TypeOf(label(""))))
}
