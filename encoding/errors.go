package encoding

import (
	"fmt"
	"io"
	"reflect"

	"github.com/pkg/errors"
)

func wrap(err error, msg string) error {
	if err == nil {
		return errors.New(msg)
	}
	return errors.Wrap(err, msg)
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// UnsupportedTypeError is returned when a codec is handed a value or target
// type its support check rejects.
type UnsupportedTypeError struct {
	Codec string
	Type  reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("codec '%s' does not support type '%s'", e.Codec, typeName(e.Type))
}

// NoCodecFoundError is returned when no registered codec supports a type.
type NoCodecFoundError struct {
	Type reflect.Type
}

func (e *NoCodecFoundError) Error() string {
	return fmt.Sprintf("no codec found for type '%s'", typeName(e.Type))
}

type SerializationError struct {
	Type  reflect.Type
	cause error
}

func NewSerializationError(t reflect.Type, err error, msg string) *SerializationError {
	return &SerializationError{Type: t, cause: wrap(err, msg)}
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serializing '%s': %s", typeName(e.Type), e.cause)
}

func (e *SerializationError) Cause() error  { return e.cause }
func (e *SerializationError) Unwrap() error { return e.cause }

type DeserializationError struct {
	Type  reflect.Type
	cause error
}

func NewDeserializationError(t reflect.Type, err error, msg string) *DeserializationError {
	return &DeserializationError{Type: t, cause: wrap(err, msg)}
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("deserializing '%s': %s", typeName(e.Type), e.cause)
}

func (e *DeserializationError) Cause() error  { return e.cause }
func (e *DeserializationError) Unwrap() error { return e.cause }

func IsUnsupportedType(err error) bool {
	var target *UnsupportedTypeError
	return errors.As(err, &target)
}

func IsNoCodecFound(err error) bool {
	var target *NoCodecFoundError
	return errors.As(err, &target)
}

func IsSerialization(err error) bool {
	var target *SerializationError
	return errors.As(err, &target)
}

func IsDeserialization(err error) bool {
	var target *DeserializationError
	return errors.As(err, &target)
}

// IsEndOfInput reports whether a stream read failed because the source was
// exhausted before any byte of the next value was read.
func IsEndOfInput(err error) bool {
	var target *DeserializationError
	if !errors.As(err, &target) {
		return false
	}
	return errors.Is(target.cause, io.EOF)
}
