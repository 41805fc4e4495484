// Package jsonval models fixture inputs and expected outputs as a closed
// JSON variant type, so that equality between an expected value and a value
// exported from the interpreter follows JSON semantics rather than Go ones.
package jsonval

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
)

// Kind identifies which JSON variant a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Value is an immutable JSON value. The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	num  string // number literal as it appeared, e.g. "1", "1.0", "3e2"
	str  string
	arr  []Value
	obj  map[string]Value
}

func Null() Value            { return Value{} }
func Bool(b bool) Value      { return Value{kind: KindBool, b: b} }
func String(s string) Value  { return Value{kind: KindString, str: s} }
func Array(vs ...Value) Value { return Value{kind: KindArray, arr: vs} }

// Number builds a numeric value from a JSON number literal.
func Number(lit string) Value { return Value{kind: KindNumber, num: lit} }

// Object builds a mapping value. The map is retained, not copied.
func Object(m map[string]Value) Value { return Value{kind: KindObject, obj: m} }

func (v Value) Kind() Kind { return v.kind }

// IsArray reports whether the value is a JSON sequence.
func (v Value) IsArray() bool { return v.kind == KindArray }

// Elements returns the elements of a sequence value, nil otherwise.
func (v Value) Elements() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.arr
}

// Equal reports deep structural equality: key order in objects does not
// matter, element order in arrays does, numbers compare numerically
// (so 1 and 1.0 are equal).
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindString:
		return v.str == o.str
	case KindNumber:
		return numberEqual(v.num, o.num)
	case KindArray:
		if len(v.arr) != len(o.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(o.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.obj) != len(o.obj) {
			return false
		}
		for k, vv := range v.obj {
			ov, ok := o.obj[k]
			if !ok || !vv.Equal(ov) {
				return false
			}
		}
		return true
	}
	return false
}

func numberEqual(a, b string) bool {
	if a == b {
		return true
	}
	ai, errA := strconv.ParseInt(a, 10, 64)
	bi, errB := strconv.ParseInt(b, 10, 64)
	if errA == nil && errB == nil {
		return ai == bi
	}
	af, errA := strconv.ParseFloat(a, 64)
	bf, errB := strconv.ParseFloat(b, 64)
	if errA != nil || errB != nil {
		return false
	}
	return af == bf
}

// Interface converts the value into plain Go data suitable for handing to
// the interpreter: nil, bool, int64/float64, string, []interface{},
// map[string]interface{}.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindBool:
		return v.b
	case KindString:
		return v.str
	case KindNumber:
		if i, err := strconv.ParseInt(v.num, 10, 64); err == nil {
			return i
		}
		f, _ := strconv.ParseFloat(v.num, 64)
		return f
	case KindArray:
		out := make([]interface{}, len(v.arr))
		for i, e := range v.arr {
			out[i] = e.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]interface{}, len(v.obj))
		for k, e := range v.obj {
			out[k] = e.Interface()
		}
		return out
	default:
		return nil
	}
}

// FromInterface converts data exported from the interpreter (or decoded from
// JSON with json.Number) into a Value. Values with no JSON representation
// (functions, host objects, NaN, infinities) collapse to null, matching what
// serializing them would yield.
func FromInterface(x interface{}) Value {
	switch t := x.(type) {
	case nil:
		return Null()
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case json.Number:
		return Number(t.String())
	case int:
		return Number(strconv.FormatInt(int64(t), 10))
	case int64:
		return Number(strconv.FormatInt(t, 10))
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return Null()
		}
		return Number(strconv.FormatFloat(t, 'g', -1, 64))
	case []interface{}:
		arr := make([]Value, len(t))
		for i, e := range t {
			arr[i] = FromInterface(e)
		}
		return Array(arr...)
	case map[string]interface{}:
		obj := make(map[string]Value, len(t))
		for k, e := range t {
			obj[k] = FromInterface(e)
		}
		return Object(obj)
	default:
		return Null()
	}
}

// UnmarshalJSON decodes any JSON value, keeping number literals intact.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	*v = FromInterface(raw)
	return nil
}

// MarshalJSON writes the value back out. Object keys are emitted sorted so
// that output is deterministic.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindBool:
		return json.Marshal(v.b)
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		return []byte(v.num), nil
	case KindArray:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, e := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			b, err := e.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	case KindObject:
		keys := make([]string, 0, len(v.obj))
		for k := range v.obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			kb, _ := json.Marshal(k)
			buf.Write(kb)
			buf.WriteByte(':')
			b, err := v.obj[k].MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("jsonval: unknown kind %d", v.kind)
}

// String renders the value as compact JSON, for log and error messages.
func (v Value) String() string {
	b, err := v.MarshalJSON()
	if err != nil {
		return "<invalid>"
	}
	return string(b)
}

// MustParse parses a JSON document into a Value and panics on error.
// Intended for tests and fixtures baked into code.
func MustParse(doc string) Value {
	var v Value
	if err := v.UnmarshalJSON([]byte(doc)); err != nil {
		panic(err)
	}
	return v
}
