// Package coerce converts loosely typed call arguments into the primitive
// wire types the daemon expects for each positional parameter.
//
// Argument signatures are written as space-delimited tag lists, for example
//
//	"str int bool"
//
// Unknown tags coerce to string. Positions without a tag are passed through.
package coerce

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Func converts one argument value
type Func func(v interface{}) (interface{}, error)

// Tag names a coercer in an argument signature
type Tag string

const (
	TagString    Tag = "str"
	TagStringAlt Tag = "string"
	TagInt       Tag = "int"
	TagFloat     Tag = "float"
	TagBool      Tag = "bool"
	TagObject    Tag = "obj"
)

// ErrNil is returned when a typed position receives nil
var ErrNil = errors.New("value is nil")

var funcs = map[Tag]Func{
	TagString:    String,
	TagStringAlt: String,
	TagInt:       Number,
	TagFloat:     Number,
	TagBool:      Boolean,
	TagObject:    Object,
}

// ForTag returns the coercer for a tag
func ForTag(tag Tag) Func {
	if f, ok := funcs[tag]; ok {
		return f
	}
	return String
}

// Arg is one parsed position of an argument signature
type Arg struct {
	Tag  Tag
	Func Func
}

// Parse splits an argument signature into positional coercers.
// An empty signature yields no coercers.
func Parse(spec string) []Arg {
	fields := strings.Fields(spec)
	args := make([]Arg, len(fields))
	for i, f := range fields {
		tag := Tag(f)
		args[i] = Arg{Tag: tag, Func: ForTag(tag)}
	}
	return args
}

// String returns the textual representation of v
func String(v interface{}) (interface{}, error) {
	s, err := text(v)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ErrNotFinite is returned for NaN and infinities, which JSON cannot carry
var ErrNotFinite = errors.New("number is not finite")

// Number parses v as a float64. Integer positions use it too, so fractional
// values are kept as-is.
func Number(v interface{}) (interface{}, error) {
	n, err := number(v)
	if err != nil {
		return nil, err
	}
	f := n.(float64)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: %v", ErrNotFinite, v)
	}
	return f, nil
}

func number(v interface{}) (interface{}, error) {
	switch n := v.(type) {
	case nil:
		return nil, ErrNil
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", n.String(), err)
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", n, err)
		}
		return f, nil
	case []byte:
		return number(string(n))
	case bool:
		return nil, fmt.Errorf("cannot convert bool to number")
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.String:
		return number(rv.String())
	}

	if s, ok := v.(fmt.Stringer); ok {
		return number(s.String())
	}
	return nil, fmt.Errorf("cannot convert %T to number", v)
}

// Boolean reports true for the bool true and for values whose text is "1"
// or "true" in any case. Everything else, nil included, is false.
func Boolean(v interface{}) (interface{}, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	if v == nil {
		return false, nil
	}
	s, err := text(v)
	if err != nil {
		return false, nil
	}
	return s == "1" || strings.EqualFold(s, "true"), nil
}

// Object decodes JSON text into a structure; other values pass through
func Object(v interface{}) (interface{}, error) {
	var data []byte
	switch o := v.(type) {
	case string:
		data = []byte(o)
	case json.RawMessage:
		data = o
	case []byte:
		data = o
	default:
		return v, nil
	}

	var out interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return out, nil
}

// text renders v the way it would appear as a string parameter
func text(v interface{}) (string, error) {
	switch s := v.(type) {
	case nil:
		return "", ErrNil
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	case json.Number:
		return s.String(), nil
	case json.RawMessage:
		return string(s), nil
	case bool:
		return strconv.FormatBool(s), nil
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32), nil
	case fmt.Stringer:
		return s.String(), nil
	case error:
		return s.Error(), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.String:
		return rv.String(), nil
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		data, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("cannot convert %T to string: %w", v, err)
		}
		return string(data), nil
	}
	return fmt.Sprint(v), nil
}
