package options

import (
	"reflect"
	"strings"

	"github.com/mongodb/grip"
	"github.com/pkg/errors"
)

// ValidateKey checks a store key. Keys name a single path segment, so they
// cannot contain '/'.
func ValidateKey(key string) error {
	catcher := grip.NewBasicCatcher()
	catcher.NewWhen(key == "", "must specify a key")
	catcher.NewWhen(strings.Contains(key, "/"), "key cannot contain '/'")

	return catcher.Resolve()
}

// Put stores a single value under Key using the byte-slice encoding.
type Put struct {
	Key   string
	Value interface{}
}

func (o Put) Validate() error {
	catcher := grip.NewBasicCatcher()
	catcher.Add(ValidateKey(o.Key))
	catcher.NewWhen(o.Value == nil, "value cannot be nil")

	return catcher.Resolve()
}

type Get struct {
	Key  string
	Type reflect.Type
}

func (o Get) Validate() error {
	catcher := grip.NewBasicCatcher()
	catcher.Add(ValidateKey(o.Key))
	catcher.NewWhen(o.Type == nil, "must specify a target type")

	return catcher.Resolve()
}

// PutRecords appends a chunk of fixed-width records under Key. All values
// must share one runtime type.
type PutRecords struct {
	Key    string
	Values []interface{}
}

func (o PutRecords) Validate() error {
	catcher := grip.NewBasicCatcher()
	catcher.Add(ValidateKey(o.Key))
	catcher.NewWhen(len(o.Values) == 0, "must specify at least one value")

	if len(o.Values) > 0 {
		first := reflect.TypeOf(o.Values[0])
		catcher.NewWhen(first == nil, "values cannot be nil")
		for i, v := range o.Values[1:] {
			if reflect.TypeOf(v) != first {
				catcher.Add(errors.Errorf("value %d has type '%T', expected '%s'", i+1, v, first))
			}
		}
	}

	return catcher.Resolve()
}

// GetRecords reads back every chunk stored under Key, in write order.
type GetRecords struct {
	Key  string
	Type reflect.Type
}

func (o GetRecords) Validate() error {
	catcher := grip.NewBasicCatcher()
	catcher.Add(ValidateKey(o.Key))
	catcher.NewWhen(o.Type == nil, "must specify a record type")

	return catcher.Resolve()
}
