package cmd

import (
	"reflect"
	"sort"
	"strconv"

	"github.com/pkg/errors"
)

var typeNames = map[string]reflect.Type{
	"int8":    reflect.TypeOf(int8(0)),
	"int16":   reflect.TypeOf(int16(0)),
	"int32":   reflect.TypeOf(int32(0)),
	"int64":   reflect.TypeOf(int64(0)),
	"int":     reflect.TypeOf(int(0)),
	"uint8":   reflect.TypeOf(uint8(0)),
	"uint16":  reflect.TypeOf(uint16(0)),
	"uint32":  reflect.TypeOf(uint32(0)),
	"uint64":  reflect.TypeOf(uint64(0)),
	"uint":    reflect.TypeOf(uint(0)),
	"float32": reflect.TypeOf(float32(0)),
	"float64": reflect.TypeOf(float64(0)),
	"bool":    reflect.TypeOf(false),
}

func supportedTypeNames() []string {
	names := make([]string, 0, len(typeNames))
	for name := range typeNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupType(name string) (reflect.Type, error) {
	t, ok := typeNames[name]
	if !ok {
		return nil, errors.Errorf("unrecognized type '%s', expected one of %v", name, supportedTypeNames())
	}
	return t, nil
}

// parseValue parses s as a value of type t.
func parseValue(s string, t reflect.Type) (interface{}, error) {
	out := reflect.New(t).Elem()

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(s, 0, t.Bits())
		if err != nil {
			return nil, errors.Wrapf(err, "parsing '%s' as %s", s, t)
		}
		out.SetInt(v)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(s, 0, t.Bits())
		if err != nil {
			return nil, errors.Wrapf(err, "parsing '%s' as %s", s, t)
		}
		out.SetUint(v)
	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(s, t.Bits())
		if err != nil {
			return nil, errors.Wrapf(err, "parsing '%s' as %s", s, t)
		}
		out.SetFloat(v)
	case reflect.Bool:
		v, err := strconv.ParseBool(s)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing '%s' as %s", s, t)
		}
		out.SetBool(v)
	default:
		return nil, errors.Errorf("cannot parse values of type '%s'", t)
	}

	return out.Interface(), nil
}
