package store

import (
	"io"
	"io/ioutil"
	"reflect"
)

// textSerializer is a variable-width serializer used to check that record
// chunks require a fixed width.
type textSerializer struct{}

func (textSerializer) Serialize(v interface{}) ([]byte, error) {
	return []byte(reflect.ValueOf(v).String()), nil
}

func (textSerializer) SerializeTo(v interface{}, w io.Writer) error {
	_, err := io.WriteString(w, reflect.ValueOf(v).String())
	return err
}

func (textSerializer) Deserialize(data []byte, t reflect.Type) (interface{}, error) {
	return reflect.ValueOf(string(data)).Convert(t).Interface(), nil
}

func (s textSerializer) DeserializeFrom(r io.Reader, t reflect.Type) (interface{}, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return s.Deserialize(data, t)
}
