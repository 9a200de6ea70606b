package encode

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lslk89/xultimate-toolkit/encoding"
	"github.com/lslk89/xultimate-toolkit/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ encoding.CodecRegistry = &Registry{}

func TestRegistryFirstMatchWins(t *testing.T) {
	first := NewShortCodec(false)
	second := NewTypeSupportCodec("wide_short", KindOf(reflect.Int16, reflect.Int32), &numericSerializer{
		kind: reflect.Int32,
		size: 4,
	})

	r := NewRegistry()
	r.Register(first)
	r.Register(second)

	shortType := reflect.TypeOf(int16(0))
	for i := 0; i < 10; i++ {
		c, err := r.Resolve(shortType)
		require.NoError(t, err)
		assert.Same(t, first, c)
	}

	c, err := r.Resolve(reflect.TypeOf(int32(0)))
	require.NoError(t, err)
	assert.Same(t, second, c)
}

func TestRegistryNoCodecFound(t *testing.T) {
	r := NewRegistry()
	r.Register(NewShortCodec(true))

	_, err := r.Resolve(reflect.TypeOf("string"))
	assert.True(t, encoding.IsNoCodecFound(err))

	_, err = r.Resolve(nil)
	assert.True(t, encoding.IsNoCodecFound(err))

	var buf bytes.Buffer
	err = r.SerializeTo(3.5, &buf)
	assert.True(t, encoding.IsNoCodecFound(err))
	assert.Zero(t, buf.Len())

	_, err = r.Serialize(struct{}{})
	assert.True(t, encoding.IsNoCodecFound(err))
}

func TestRegistryDispatch(t *testing.T) {
	r := GetGlobalRegistry()
	assert.Same(t, r, GetGlobalRegistry())

	out, err := r.Serialize(int16(256))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x00}, out)

	out, err = r.Serialize(int64(1))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01}, out)

	v, err := r.Deserialize(out, reflect.TypeOf(int64(0)))
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	var buf bytes.Buffer
	values := []interface{}{int16(-1), uint32(9), true, float64(2.5)}
	for _, v := range values {
		require.NoError(t, r.SerializeTo(v, &buf))
	}
	assert.Equal(t, 2+4+1+8, buf.Len())

	var decoded []interface{}
	for _, v := range values {
		out, err := r.DeserializeFrom(&buf, reflect.TypeOf(v))
		require.NoError(t, err)
		decoded = append(decoded, out)
	}
	if diff := cmp.Diff(values, decoded); diff != "" {
		t.Errorf("stream round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryValidate(t *testing.T) {
	r := NewRegistry()
	r.Register(NewShortCodec(true))
	r.Register(NewIntCodec(true))
	assert.NoError(t, r.Validate(ProbeTypes()...))

	r.Register(NewTypeSupportCodec("any_short", AssignableTo(reflect.TypeOf(int16(0))), &numericSerializer{
		kind: reflect.Int16,
		size: 2,
	}))
	err := r.Validate(ProbeTypes()...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "int16")
	assert.Contains(t, err.Error(), "any_short")
}

func TestNewDefaultRegistry(t *testing.T) {
	t.Run("AllCodecs", func(t *testing.T) {
		r, err := NewDefaultRegistry(options.Registry{Strict: true})
		require.NoError(t, err)

		var names []string
		for _, c := range r.Codecs() {
			names = append(names, c.String())
		}
		assert.Equal(t, DefaultCodecNames(), names)

		for _, pt := range ProbeTypes() {
			_, err := r.Resolve(pt)
			assert.NoError(t, err, pt.String())
		}
	})
	t.Run("Unpacked", func(t *testing.T) {
		packZeros := false
		r, err := NewDefaultRegistry(options.Registry{PackZeros: &packZeros})
		require.NoError(t, err)

		out, err := r.Serialize(int32(0))
		require.NoError(t, err)
		assert.Equal(t, []byte{0, 0, 0, 0}, out)
	})
	t.Run("Subset", func(t *testing.T) {
		r, err := NewDefaultRegistry(options.Registry{Codecs: []string{LongCodec, ShortCodec}})
		require.NoError(t, err)
		require.Len(t, r.Codecs(), 2)
		assert.Equal(t, LongCodec, r.Codecs()[0].String())

		_, err = r.Resolve(reflect.TypeOf(int8(0)))
		assert.True(t, encoding.IsNoCodecFound(err))
	})
	t.Run("UnknownCodec", func(t *testing.T) {
		_, err := NewDefaultRegistry(options.Registry{Codecs: []string{"char"}})
		assert.Error(t, err)
	})
	t.Run("DuplicateCodec", func(t *testing.T) {
		_, err := NewDefaultRegistry(options.Registry{Codecs: []string{ShortCodec, ShortCodec}})
		assert.Error(t, err)
	})
	t.Run("FromFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "registry.yaml")
		require.NoError(t, os.WriteFile(path, []byte("pack_zeros: false\nstrict: true\ncodecs: [short, bool]\n"), 0600))

		opts, err := options.ReadRegistryFile(path)
		require.NoError(t, err)
		assert.False(t, opts.ShouldPackZeros())

		r, err := NewDefaultRegistry(*opts)
		require.NoError(t, err)
		out, err := r.Serialize(int16(1))
		require.NoError(t, err)
		assert.Equal(t, []byte{0x00, 0x01}, out)
	})
}
