package godec

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	gojson "github.com/goccy/go-json"
)

// Kind enumerates the closed set of shapes a decoded-but-untyped value can
// take. KindUndefined is the absent sentinel: the value read from a key that
// was not present in the input, as distinct from an explicit null.
type Kind uint8

const (
	KindUndefined Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "invalid"
}

// Value is one node of an already-parsed input tree. Values are immutable;
// decoders read them and never write. Object values keep their keys in
// insertion order so that error messages and strict-mode checks are
// deterministic.
type Value struct {
	kind Kind
	b    bool
	num  string // canonical numeric literal, as it appeared in the source
	str  string
	arr  []Value
	obj  *object
}

type object struct {
	entries []Entry
	index   map[string]int
}

// Entry is one ordered key/value pair of an object Value.
type Entry struct {
	Key   string
	Value Value
}

// Undefined returns the absent sentinel.
func Undefined() Value { return Value{kind: KindUndefined} }

// Null returns the explicit null value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a numeric Value. The literal used in error text is the
// shortest round-trip decimal form of f.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: strconv.FormatFloat(f, 'g', -1, 64)}
}

// NumberLiteral returns a numeric Value that preserves lit as its rendered
// literal. Parsers use this to keep the source spelling of numbers intact.
func NumberLiteral(lit string) Value { return Value{kind: KindNumber, num: lit} }

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Array returns an array Value over the given elements.
func Array(elems ...Value) Value { return Value{kind: KindArray, arr: elems} }

// Object returns an object Value over the given entries, preserving their
// order. A repeated key overwrites the earlier entry in place, matching JSON
// object semantics.
func Object(entries ...Entry) Value {
	o := &object{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		if i, ok := o.index[e.Key]; ok {
			o.entries[i] = e
			continue
		}
		o.index[e.Key] = len(o.entries)
		o.entries = append(o.entries, e)
	}
	return Value{kind: KindObject, obj: o}
}

// Kind returns the shape of the value.
func (v Value) Kind() Kind { return v.kind }

// IsUndefined reports whether the value is the absent sentinel.
func (v Value) IsUndefined() bool { return v.kind == KindUndefined }

// IsNull reports whether the value is an explicit null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the boolean payload; false when the value is not a boolean.
func (v Value) Bool() bool { return v.b }

// Number returns the numeric payload as a json.Number; "" when the value is
// not a number.
func (v Value) Number() json.Number { return json.Number(v.num) }

// Float64 returns the numeric payload as a float64; 0 when the value is not a
// number or the literal does not parse.
func (v Value) Float64() float64 {
	f, _ := strconv.ParseFloat(v.num, 64)
	return f
}

// Str returns the string payload; "" when the value is not a string.
func (v Value) Str() string { return v.str }

// Len returns the element count of an array or the entry count of an object;
// 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.obj.entries)
	}
	return 0
}

// Index returns the i-th element of an array Value; the absent sentinel when
// out of range or not an array.
func (v Value) Index(i int) Value {
	if v.kind != KindArray || i < 0 || i >= len(v.arr) {
		return Undefined()
	}
	return v.arr[i]
}

// Get returns the value at key in an object Value; the absent sentinel when
// the key is missing or the value is not an object.
func (v Value) Get(key string) Value {
	if v.kind != KindObject {
		return Undefined()
	}
	if i, ok := v.obj.index[key]; ok {
		return v.obj.entries[i].Value
	}
	return Undefined()
}

// Has reports whether an object Value carries the key.
func (v Value) Has(key string) bool {
	if v.kind != KindObject {
		return false
	}
	_, ok := v.obj.index[key]
	return ok
}

// Keys returns the object keys in insertion order; nil otherwise.
func (v Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	ks := make([]string, len(v.obj.entries))
	for i, e := range v.obj.entries {
		ks[i] = e.Key
	}
	return ks
}

// Entries returns the object entries in insertion order; nil otherwise.
func (v Value) Entries() []Entry {
	if v.kind != KindObject {
		return nil
	}
	out := make([]Entry, len(v.obj.entries))
	copy(out, v.obj.entries)
	return out
}

// String renders the value as the literal text it would occupy in its own
// JSON representation: strings are quoted and escaped, null renders "null",
// the absent sentinel renders "undefined". Every error message that embeds an
// offending value uses this rendering.
func (v Value) String() string {
	var b strings.Builder
	v.render(&b, false)
	return b.String()
}

func (v Value) render(b *strings.Builder, nested bool) {
	switch v.kind {
	case KindUndefined:
		if nested {
			// undefined inside a composite serializes as null
			b.WriteString("null")
			return
		}
		b.WriteString("undefined")
	case KindNull:
		b.WriteString("null")
	case KindBool:
		if v.b {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case KindNumber:
		b.WriteString(v.num)
	case KindString:
		b.WriteString(quote(v.str))
	case KindArray:
		b.WriteByte('[')
		for i, e := range v.arr {
			if i > 0 {
				b.WriteByte(',')
			}
			e.render(b, true)
		}
		b.WriteByte(']')
	case KindObject:
		b.WriteByte('{')
		for i, e := range v.obj.entries {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(quote(e.Key))
			b.WriteByte(':')
			e.Value.render(b, true)
		}
		b.WriteByte('}')
	}
}

func quote(s string) string {
	var buf bytes.Buffer
	enc := gojson.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return strconv.Quote(s)
	}
	return strings.TrimRight(buf.String(), "\n")
}

// StrictEqual reports primitive identity between two values: both are the
// same primitive kind with an equal payload, or both null, or both absent.
// Arrays and objects are never strictly equal; composite identity has no
// meaning across independently built trees.
func (v Value) StrictEqual(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindUndefined, KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindNumber:
		return v.Float64() == o.Float64()
	case KindString:
		return v.str == o.str
	}
	return false
}

// FromGo converts a native Go value into a Value. Primitives, json.Number,
// []any, map[string]any (keys sorted for determinism) and Value itself map
// directly; anything else goes through a JSON round-trip, so structs convert
// according to their json tags. Unconvertible values become the absent
// sentinel.
func FromGo(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null()
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case json.Number:
		return NumberLiteral(string(t))
	case float64:
		return Number(t)
	case float32:
		return Number(float64(t))
	case int:
		return NumberLiteral(strconv.Itoa(t))
	case int32:
		return NumberLiteral(strconv.FormatInt(int64(t), 10))
	case int64:
		return NumberLiteral(strconv.FormatInt(t, 10))
	case uint:
		return NumberLiteral(strconv.FormatUint(uint64(t), 10))
	case uint64:
		return NumberLiteral(strconv.FormatUint(t, 10))
	case []Value:
		return Array(t...)
	case []any:
		elems := make([]Value, len(t))
		for i, e := range t {
			elems[i] = FromGo(e)
		}
		return Array(elems...)
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		entries := make([]Entry, len(keys))
		for i, k := range keys {
			entries[i] = Entry{Key: k, Value: FromGo(t[k])}
		}
		return Object(entries...)
	}
	data, err := gojson.Marshal(v)
	if err != nil {
		return Undefined()
	}
	parsed, err := parseJSONBytes(data)
	if err != nil {
		return Undefined()
	}
	return parsed
}
