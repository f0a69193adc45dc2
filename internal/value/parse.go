package value

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/tidwall/gjson"
)

// ErrInvalidJSON is returned when input is not well-formed JSON.
var ErrInvalidJSON = errors.New("invalid JSON")

// Parse decodes a JSON document. Object members keep their source order.
func Parse(data []byte) (Value, error) {
	if !gjson.ValidBytes(data) {
		return Value{}, ErrInvalidJSON
	}
	return fromResult(gjson.ParseBytes(data)), nil
}

// MustParse is like Parse but panics on invalid input. Intended for tables
// and tests built from literal JSON.
func MustParse(s string) Value {
	v, err := Parse([]byte(s))
	if err != nil {
		panic(fmt.Sprintf("value.MustParse(%q): %v", s, err))
	}
	return v
}

func fromResult(r gjson.Result) Value {
	switch r.Type {
	case gjson.Null:
		return Null()
	case gjson.False:
		return Bool(false)
	case gjson.True:
		return Bool(true)
	case gjson.Number:
		return Value{kind: KindNumber, num: r.Num, raw: r.Raw}
	case gjson.String:
		return String(r.Str)
	case gjson.JSON:
		if r.IsArray() {
			var items []Value
			r.ForEach(func(_, item gjson.Result) bool {
				items = append(items, fromResult(item))
				return true
			})
			return Array(items...)
		}
		var members []Member
		r.ForEach(func(key, item gjson.Result) bool {
			members = append(members, Member{Key: key.Str, Value: fromResult(item)})
			return true
		})
		return Object(members...)
	}
	return Null()
}

// FromAny converts decoded Go data (as produced by config loaders) into a
// Value. Map keys are sorted since Go maps carry no order. Unsupported
// types become their fmt representation as a string.
func FromAny(x any) Value {
	switch t := x.(type) {
	case nil:
		return Null()
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case float64:
		return Number(t)
	case float32:
		return Number(float64(t))
	case int:
		return Number(float64(t))
	case int64:
		return Number(float64(t))
	case int32:
		return Number(float64(t))
	case uint64:
		return Number(float64(t))
	case []any:
		items := make([]Value, 0, len(t))
		for _, item := range t {
			items = append(items, FromAny(item))
		}
		return Array(items...)
	case []string:
		items := make([]Value, 0, len(t))
		for _, item := range t {
			items = append(items, String(item))
		}
		return Array(items...)
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		members := make([]Member, 0, len(keys))
		for _, k := range keys {
			members = append(members, Member{Key: k, Value: FromAny(t[k])})
		}
		return Object(members...)
	}
	return String(fmt.Sprint(x))
}

// formatNumber returns the literal text for a number, preferring the form
// it was written in.
func (v Value) formatNumber() string {
	if v.raw != "" {
		return v.raw
	}
	if math.IsInf(v.num, 0) || math.IsNaN(v.num) {
		return "null"
	}
	return strconv.FormatFloat(v.num, 'f', -1, 64)
}
