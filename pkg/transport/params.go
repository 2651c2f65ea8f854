package transport

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"time"
)

// Params holds query parameters before encoding. Values may be strings,
// numbers, bools, time.Time, pointers to those, or slices of them.
type Params map[string]any

// FilterParams returns a copy of p without nil values, nil pointers and
// empty strings.
func FilterParams(p Params) Params {
	out := make(Params, len(p))
	for k, v := range p {
		if isBlank(v) {
			continue
		}
		out[k] = v
	}
	return out
}

// Values filters p and encodes it. Slices become repeated keys, times are
// formatted as RFC 3339 and bools as true/false.
func (p Params) Values() url.Values {
	v := url.Values{}
	for key, val := range FilterParams(p) {
		addValue(v, key, val)
	}
	return v
}

// Encode returns the URL-encoded query string, sorted by key.
func (p Params) Encode() string {
	return p.Values().Encode()
}

func isBlank(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return s == ""
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return isBlank(rv.Elem().Interface())
	case reflect.Map, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}

func addValue(v url.Values, key string, val any) {
	switch x := val.(type) {
	case string:
		v.Add(key, x)
	case bool:
		v.Add(key, strconv.FormatBool(x))
	case time.Time:
		v.Add(key, x.Format(time.RFC3339))
	case []string:
		for _, s := range x {
			v.Add(key, s)
		}
	case fmt.Stringer:
		v.Add(key, x.String())
	default:
		rv := reflect.ValueOf(val)
		switch rv.Kind() {
		case reflect.Pointer:
			if !rv.IsNil() {
				addValue(v, key, rv.Elem().Interface())
			}
		case reflect.Slice, reflect.Array:
			for i := range rv.Len() {
				elem := rv.Index(i).Interface()
				if !isBlank(elem) {
					addValue(v, key, elem)
				}
			}
		default:
			v.Add(key, fmt.Sprint(val))
		}
	}
}
