package encode

import (
	"io"
	"reflect"

	"github.com/lslk89/xultimate-toolkit/encoding"
	"github.com/pkg/errors"
)

// SupportFunc reports whether a codec can handle values of a runtime type.
type SupportFunc func(reflect.Type) bool

// KindOf matches types of the given kinds and pointers to them, so a named
// type such as `type Port uint16` and a *uint16 are both matched by
// KindOf(reflect.Uint16).
func KindOf(kinds ...reflect.Kind) SupportFunc {
	return func(t reflect.Type) bool {
		if t == nil {
			return false
		}
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		for _, k := range kinds {
			if t.Kind() == k {
				return true
			}
		}
		return false
	}
}

// AssignableTo matches types assignable to target and pointers to them.
func AssignableTo(target reflect.Type) SupportFunc {
	return func(t reflect.Type) bool {
		if t == nil {
			return false
		}
		if t.AssignableTo(target) {
			return true
		}
		return t.Kind() == reflect.Ptr && t.Elem().AssignableTo(target)
	}
}

type typeSupportCodec struct {
	name     string
	supports SupportFunc
	impl     encoding.Serializer
}

// NewTypeSupportCodec guards impl with a support check: every call fails
// with an *encoding.UnsupportedTypeError before reaching impl when the
// value's runtime type, or the requested target type, is not supported.
func NewTypeSupportCodec(name string, supports SupportFunc, impl encoding.Serializer) encoding.Codec {
	return &typeSupportCodec{
		name:     name,
		supports: supports,
		impl:     impl,
	}
}

func (c *typeSupportCodec) String() string { return c.name }

func (c *typeSupportCodec) Supports(t reflect.Type) bool { return c.supports(t) }

func (c *typeSupportCodec) ByteSize() int {
	if sized, ok := c.impl.(encoding.Sized); ok {
		return sized.ByteSize()
	}
	return 0
}

func (c *typeSupportCodec) check(t reflect.Type) error {
	if !c.supports(t) {
		return errors.WithStack(&encoding.UnsupportedTypeError{Codec: c.name, Type: t})
	}
	return nil
}

func (c *typeSupportCodec) Serialize(v interface{}) ([]byte, error) {
	if err := c.check(reflect.TypeOf(v)); err != nil {
		return nil, err
	}
	return c.impl.Serialize(v)
}

func (c *typeSupportCodec) SerializeTo(v interface{}, w io.Writer) error {
	if err := c.check(reflect.TypeOf(v)); err != nil {
		return err
	}
	return c.impl.SerializeTo(v, w)
}

func (c *typeSupportCodec) Deserialize(data []byte, t reflect.Type) (interface{}, error) {
	if err := c.check(t); err != nil {
		return nil, err
	}
	return c.impl.Deserialize(data, t)
}

func (c *typeSupportCodec) DeserializeFrom(r io.Reader, t reflect.Type) (interface{}, error) {
	if err := c.check(t); err != nil {
		return nil, err
	}
	return c.impl.DeserializeFrom(r, t)
}
