package encoding

import (
	"fmt"
	"io"
	"reflect"
)

// Serializer converts values to and from bytes. Writers and readers are
// owned by the caller and are never closed or retained.
type Serializer interface {
	Serialize(interface{}) ([]byte, error)
	SerializeTo(interface{}, io.Writer) error
	Deserialize([]byte, reflect.Type) (interface{}, error)
	DeserializeFrom(io.Reader, reflect.Type) (interface{}, error)
}

type TypeSupport interface {
	Supports(reflect.Type) bool
}

// Sized reports the number of bytes a serializer reads and writes on the
// stream path. Zero means the width is not fixed.
type Sized interface {
	ByteSize() int
}

type Codec interface {
	fmt.Stringer
	TypeSupport
	Sized
	Serializer
}

type CodecRegistry interface {
	Register(Codec)
	Resolve(reflect.Type) (Codec, error)
}
